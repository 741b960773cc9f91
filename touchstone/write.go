package touchstone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/rfset/network"
)

var (
	// ErrNilNetwork indicates a nil network passed to the writer.
	ErrNilNetwork = errors.New("touchstone: nil network")

	// ErrBadOptionLine indicates an unparsable '#' option line.
	ErrBadOptionLine = errors.New("touchstone: bad option line")

	// ErrBadRecord indicates a malformed or truncated data record.
	ErrBadRecord = errors.New("touchstone: bad record")

	// ErrPortCount indicates a file name without a usable .sNp extension.
	ErrPortCount = errors.New("touchstone: cannot determine port count")
)

// pairsPerLine caps the parameter pairs on one data line for networks with
// three or more ports, per the v1 format.
const pairsPerLine = 4

// Write serializes n in Touchstone v1 RI form. The option line carries the
// network's display unit and the real part of its reference impedance.
func Write(w io.Writer, n *network.Network) error {
	if n == nil {
		return ErrNilNetwork
	}

	bw := bufio.NewWriter(w)
	if name := n.Name(); name != "" {
		fmt.Fprintf(bw, "! %s\n", name)
	}
	fmt.Fprintf(bw, "# %s S RI R %g\n", n.Frequency().Unit(), real(n.Z0()))

	p := n.NPorts()
	freqs := n.Frequency().Scaled()
	for f, fv := range freqs {
		switch {
		case p == 1:
			v, err := n.At(f, 0, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%g %g %g\n", fv, real(v), imag(v))

		case p == 2:
			// Historical column order: S11 S21 S12 S22.
			fmt.Fprintf(bw, "%g", fv)
			for _, ij := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				v, err := n.At(f, ij[0], ij[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(bw, " %g %g", real(v), imag(v))
			}
			fmt.Fprintln(bw)

		default:
			// Row-major, one matrix row starting each line group, wrapped at
			// pairsPerLine pairs.
			for i := 0; i < p; i++ {
				for j := 0; j < p; j++ {
					v, err := n.At(f, i, j)
					if err != nil {
						return err
					}
					switch {
					case i == 0 && j == 0:
						fmt.Fprintf(bw, "%g %g %g", fv, real(v), imag(v))
					case j%pairsPerLine == 0:
						fmt.Fprintf(bw, "\n%g %g", real(v), imag(v))
					default:
						fmt.Fprintf(bw, " %g %g", real(v), imag(v))
					}
				}
			}
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}

// WriteFile writes n to path, creating or truncating the file.
func WriteFile(path string, n *network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "touchstone: create %s", path)
	}
	if err := Write(f, n); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return pkgerrors.Wrapf(err, "touchstone: close %s", path)
	}
	return nil
}
