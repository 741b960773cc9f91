// Command rfset works with collections of touchstone files: statistical
// reductions across a sweep, interpolation along tagged sweep parameters,
// and conversion to Generalized MDIF.
//
// A sweep is described either by a YAML manifest
//
//	name: lna_sweep
//	networks:
//	  - file: lna_77K.s2p
//	    params: {temp: 77}
//	  - file: lna_300K.s2p
//	    params: {temp: 300}
//
// or by a zip archive or plain directory of touchstone files (loaded in
// name order, untagged).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rfset/interp"
	"github.com/katalvlaran/rfset/mdif"
	"github.com/katalvlaran/rfset/networkset"
	"github.com/katalvlaran/rfset/touchstone"
)

var (
	logger *zap.Logger

	flagManifest string
	flagZip      string
	flagDir      string
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:           "rfset",
		Short:         "statistics, interpolation and conversion for touchstone sweeps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if flagVerbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&flagManifest, "manifest", "", "YAML sweep manifest")
	root.PersistentFlags().StringVar(&flagZip, "zip", "", "zip archive of touchstone files")
	root.PersistentFlags().StringVar(&flagDir, "dir", "", "directory of touchstone files")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "development logging")

	root.AddCommand(statsCmd(), interpCmd(), mdifCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rfset:", err)
		os.Exit(1)
	}
}

// loadSweep resolves the --manifest / --zip / --dir flags into a set.
func loadSweep() (*networkset.NetworkSet, error) {
	sources := 0
	for _, s := range []string{flagManifest, flagZip, flagDir} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("--manifest, --zip and --dir are mutually exclusive")
	}
	switch {
	case flagManifest != "":
		m, err := loadManifest(flagManifest)
		if err != nil {
			return nil, err
		}
		ns, err := m.loadSet()
		if err != nil {
			return nil, err
		}
		logger.Info("loaded sweep",
			zap.String("manifest", flagManifest),
			zap.Int("elements", ns.Len()),
			zap.Strings("dims", ns.Dims()))
		return ns, nil
	case flagZip != "":
		ns, err := loadZipSet(flagZip, "")
		if err != nil {
			return nil, err
		}
		logger.Info("loaded sweep",
			zap.String("zip", flagZip),
			zap.Int("elements", ns.Len()))
		return ns, nil
	case flagDir != "":
		ns, err := loadDirSet(flagDir, "")
		if err != nil {
			return nil, err
		}
		logger.Info("loaded sweep",
			zap.String("dir", flagDir),
			zap.Int("elements", ns.Len()))
		return ns, nil
	default:
		return nil, fmt.Errorf("one of --manifest, --zip or --dir is required")
	}
}

// parseSub turns repeated "key=value" flags into a selector. Values parse as
// int, then float, then fall back to string, matching how YAML manifests tag
// their elements.
func parseSub(pairs []string) (networkset.Selector, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	sub := make(networkset.Selector, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("bad --sub %q: want key=value", pair)
		}
		var v any = val
		if i, err := strconv.Atoi(val); err == nil {
			v = i
		} else if f, err := strconv.ParseFloat(val, 64); err == nil {
			v = f
		}
		sub[key] = append(sub[key], v)
	}
	return sub, nil
}

func statsCmd() *cobra.Command {
	var (
		attribute string
		reduction string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "reduce a sweep to one statistic network",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := loadSweep()
			if err != nil {
				return err
			}
			r, err := networkset.ParseReduction(reduction)
			if err != nil {
				return err
			}
			result, err := ns.Reduce(attribute, r)
			if err != nil {
				return err
			}
			if err := touchstone.WriteFile(out, result); err != nil {
				return err
			}
			logger.Info("wrote statistic",
				zap.String("attribute", attribute),
				zap.String("reduction", reduction),
				zap.String("out", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&attribute, "attribute", "s", "catalog attribute (s, s_db, z_mag, ...)")
	cmd.Flags().StringVar(&reduction, "reduction", "mean", "statistic: mean, std, max or min")
	cmd.Flags().StringVar(&out, "out", "", "output touchstone file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func interpCmd() *cobra.Command {
	var (
		param string
		at    float64
		kind  string
		out   string
		sub   []string
	)
	cmd := &cobra.Command{
		Use:   "interp",
		Short: "synthesize a network at an unmeasured sweep coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := loadSweep()
			if err != nil {
				return err
			}
			k, err := interp.ParseKind(kind)
			if err != nil {
				return err
			}
			selector, err := parseSub(sub)
			if err != nil {
				return err
			}
			result, err := ns.InterpolateFromParams(param, at, selector, k)
			if err != nil {
				return err
			}
			if err := touchstone.WriteFile(out, result); err != nil {
				return err
			}
			logger.Info("wrote interpolated network",
				zap.String("param", param),
				zap.Float64("at", at),
				zap.String("kind", kind),
				zap.String("out", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&param, "param", "", "sweep parameter to interpolate along")
	cmd.Flags().Float64Var(&at, "at", 0, "coordinate to evaluate at")
	cmd.Flags().StringVar(&kind, "kind", "linear", "interpolation kind")
	cmd.Flags().StringVar(&out, "out", "", "output touchstone file")
	cmd.Flags().StringArrayVar(&sub, "sub", nil, "fix another dimension, key=value (repeatable)")
	_ = cmd.MarkFlagRequired("param")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func mdifCmd() *cobra.Command {
	var (
		out      string
		comments []string
	)
	cmd := &cobra.Command{
		Use:   "mdif",
		Short: "convert a sweep to a Generalized MDIF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := loadSweep()
			if err != nil {
				return err
			}
			if err := mdif.WriteFile(out, ns, mdif.WithComments(comments)); err != nil {
				return err
			}
			logger.Info("wrote mdif",
				zap.Int("elements", ns.Len()),
				zap.String("out", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output MDIF file")
	cmd.Flags().StringArrayVar(&comments, "comment", nil, "comment line (repeatable)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
