package mdif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/rfset/networkset"
	"github.com/katalvlaran/rfset/touchstone"
)

var (
	// ErrEmptySet indicates a set with no elements.
	ErrEmptySet = errors.New("mdif: empty set")

	// ErrValueCount indicates a variable whose value slice does not match the
	// element count.
	ErrValueCount = errors.New("mdif: value count does not match element count")

	// ErrBadType indicates a variable type outside {int, double, string}.
	ErrBadType = errors.New("mdif: bad variable type")

	// ErrUnnamedElement indicates an unnamed element under the default
	// name-variable layout.
	ErrUnnamedElement = errors.New("mdif: unnamed element")
)

// typeCodes maps the MDIF type names to their numeric codes.
var typeCodes = map[string]string{"int": "0", "double": "1", "string": "2"}

// Option configures the writer.
type Option func(*writer)

// WithComments prepends one '!' comment line per entry.
func WithComments(comments []string) Option {
	return func(w *writer) { w.comments = comments }
}

// WithValues sets the MDIF variables: each key is a variable name and each
// slice holds one value per element, index-aligned with the set.
func WithValues(values map[string][]any) Option {
	return func(w *writer) { w.values = values }
}

// WithTypes sets variable types ("int", "double" or "string"). Variables
// without an entry default to "double".
func WithTypes(types map[string]string) Option {
	return func(w *writer) { w.types = types }
}

type writer struct {
	comments []string
	values   map[string][]any
	types    map[string]string
}

// Write serializes the set as a Generalized MDIF stream.
//
// Errors: ErrEmptySet, ErrValueCount, ErrBadType, ErrUnnamedElement (only
// when the default name variable is in effect), plus touchstone write errors.
func Write(w io.Writer, ns *networkset.NetworkSet, opts ...Option) error {
	if ns == nil || ns.Len() == 0 {
		return ErrEmptySet
	}

	cfg := writer{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.values == nil {
		names := make([]any, ns.Len())
		for i := 0; i < ns.Len(); i++ {
			name := ns.Element(i).Name()
			if name == "" {
				return fmt.Errorf("%w: index %d", ErrUnnamedElement, i)
			}
			names[i] = name
		}
		cfg.values = map[string][]any{"name": names}
		cfg.types = map[string]string{"name": "string"}
	}

	varNames := make([]string, 0, len(cfg.values))
	for name, vals := range cfg.values {
		if len(vals) != ns.Len() {
			return fmt.Errorf("%w: variable %q has %d values for %d elements",
				ErrValueCount, name, len(vals), ns.Len())
		}
		varNames = append(varNames, name)
	}
	sort.Strings(varNames)

	varTypes := make(map[string]string, len(varNames))
	for _, name := range varNames {
		typ := cfg.types[name]
		if typ == "" {
			typ = "double"
		}
		if _, ok := typeCodes[typ]; !ok {
			return fmt.Errorf("%w: variable %q has type %q", ErrBadType, name, typ)
		}
		varTypes[name] = typ
	}

	bw := bufio.NewWriter(w)
	for _, c := range cfg.comments {
		fmt.Fprintf(bw, "! %s\n", c)
	}

	option := optionString(ns.Element(0).NPorts())
	for i := 0; i < ns.Len(); i++ {
		el := ns.Element(i)
		fmt.Fprintf(bw, "!%s\n! network name: %s\n\n", strings.Repeat("-", 79), el.Name())

		for _, name := range varNames {
			typ := varTypes[name]
			if typ == "string" {
				fmt.Fprintf(bw, "VAR %s(%s) = %q\n", name, typeCodes[typ], fmt.Sprint(cfg.values[name][i]))
			} else {
				fmt.Fprintf(bw, "VAR %s(%s) = %v\n", name, typeCodes[typ], cfg.values[name][i])
			}
		}

		fmt.Fprintf(bw, "\nBEGIN ACDATA\n%s\n", option)
		if err := touchstone.Write(bw, el); err != nil {
			return err
		}
		fmt.Fprintf(bw, "END\n\n")
	}
	return bw.Flush()
}

// WriteFile writes the set to path, creating or truncating the file.
func WriteFile(path string, ns *networkset.NetworkSet, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "mdif: create %s", path)
	}
	if err := Write(f, ns, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return pkgerrors.Wrapf(err, "mdif: close %s", path)
	}
	return nil
}

// optionString lays out the %F column header for nports. Two-port files use
// the historical fixed order; three ports break the line per matrix row;
// four or more ports additionally wrap at four pairs, the Touchstone limit.
// Beyond nine ports the port indices need a separator to stay unambiguous.
func optionString(nports int) string {
	pair := func(i, j int) string {
		if nports > 9 {
			return fmt.Sprintf("n%d_%dx n%d_%dy ", i, j, i, j)
		}
		return fmt.Sprintf("n%d%dx n%d%dy ", i, j, i, j)
	}

	var sb strings.Builder
	sb.WriteString("%F ")

	if nports == 2 {
		sb.WriteString("n11x n11y n21x n21y n12x n12y n22x n22y")
		return sb.String()
	}

	for i := 1; i <= nports; i++ {
		for j := 1; j <= nports; j++ {
			sb.WriteString(pair(i, j))
			if nports == 3 && j%3 == 0 {
				sb.WriteByte('\n')
			}
			if nports >= 4 {
				if j%4 == 0 {
					sb.WriteByte('\n')
				}
				if j == nports {
					sb.WriteByte('\n')
				}
			}
		}
	}
	return sb.String()
}
