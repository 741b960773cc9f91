package touchstone

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
)

// extRe extracts the port count from a .sNp extension, case-insensitively.
var extRe = regexp.MustCompile(`(?i)\.s(\d+)p$`)

// dataFormat is the sample encoding declared on the option line.
type dataFormat int

const (
	formatRI dataFormat = iota
	formatMA
	formatDB
)

// options holds the parsed '#' line. Touchstone defaults apply for every
// omitted token.
type options struct {
	unit   frequency.Unit
	format dataFormat
	z0     float64
}

// parseOptions interprets an option line (without the leading '#').
// Defaults: GHZ S MA R 50.
func parseOptions(line string) (options, error) {
	opt := options{unit: frequency.GHz, format: formatMA, z0: 50}
	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		tok := strings.ToUpper(fields[i])
		switch tok {
		case "HZ", "KHZ", "MHZ", "GHZ", "THZ":
			u, err := frequency.ParseUnit(tok)
			if err != nil {
				return opt, fmt.Errorf("%w: %q", ErrBadOptionLine, tok)
			}
			opt.unit = u
		case "S":
			// Scattering parameters; the only network type supported.
		case "Y", "Z", "H", "G":
			return opt, fmt.Errorf("%w: unsupported parameter type %q", ErrBadOptionLine, tok)
		case "RI":
			opt.format = formatRI
		case "MA":
			opt.format = formatMA
		case "DB":
			opt.format = formatDB
		case "R":
			if i+1 >= len(fields) {
				return opt, fmt.Errorf("%w: R without a resistance", ErrBadOptionLine)
			}
			i++
			r, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return opt, fmt.Errorf("%w: resistance %q", ErrBadOptionLine, fields[i])
			}
			opt.z0 = r
		default:
			return opt, fmt.Errorf("%w: token %q", ErrBadOptionLine, tok)
		}
	}
	return opt, nil
}

// toComplex decodes one (a, b) pair under the declared format.
func (o options) toComplex(a, b float64) complex128 {
	switch o.format {
	case formatRI:
		return complex(a, b)
	case formatDB:
		a = math.Pow(10, a/20)
	}
	rad := b * math.Pi / 180
	return complex(a*math.Cos(rad), a*math.Sin(rad))
}

// Read parses a Touchstone stream holding an nports-port network. Comments
// ('!' to end of line) are stripped; data values may wrap across lines
// freely, as writers with many ports produce.
func Read(r io.Reader, nports int, opts ...network.Option) (*network.Network, error) {
	if nports < 1 {
		return nil, fmt.Errorf("%w: %d ports", ErrPortCount, nports)
	}

	opt := options{unit: frequency.GHz, format: formatMA, z0: 50}
	sawOptions := false
	var values []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if k := strings.IndexByte(line, '!'); k >= 0 {
			line = line[:k]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if sawOptions {
				// Later option lines are ignored, per common practice.
				continue
			}
			parsed, err := parseOptions(strings.TrimPrefix(line, "#"))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			opt = parsed
			sawOptions = true
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadRecord, field)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "touchstone: read")
	}

	perBlock := 1 + 2*nports*nports
	if len(values) == 0 || len(values)%perBlock != 0 {
		return nil, fmt.Errorf("%w: %d values, want a multiple of %d",
			ErrBadRecord, len(values), perBlock)
	}
	nfreq := len(values) / perBlock

	points := make([]float64, nfreq)
	data := make([]complex128, nfreq*nports*nports)
	for f := 0; f < nfreq; f++ {
		block := values[f*perBlock : (f+1)*perBlock]
		points[f] = block[0]
		pairs := block[1:]
		for k := 0; k < nports*nports; k++ {
			i, j := k/nports, k%nports
			if nports == 2 {
				// Stored column order is S11 S21 S12 S22.
				i, j = k%2, k/2
			}
			data[f*nports*nports+i*nports+j] = opt.toComplex(pairs[2*k], pairs[2*k+1])
		}
	}

	freq, err := frequency.FromPoints(points, opt.unit)
	if err != nil {
		return nil, err
	}
	all := append([]network.Option{network.WithZ0(complex(opt.z0, 0))}, opts...)
	return network.FromS(freq, data, nports, all...)
}

// PortsFromFilename extracts N from a .sNp file name.
func PortsFromFilename(name string) (int, error) {
	m := extRe.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrPortCount, name)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrPortCount, name)
	}
	return n, nil
}

// ReadFile loads one touchstone file; the port count comes from the
// extension and the network name from the base file name.
func ReadFile(path string) (*network.Network, error) {
	nports, err := PortsFromFilename(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "touchstone: open %s", path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	n, err := Read(f, nports, network.WithName(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// ReadZip loads every touchstone entry of a zip archive, in lexicographic
// entry-name order. Entries without a .sNp extension are skipped.
func ReadZip(path string) ([]*network.Network, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "touchstone: open zip %s", path)
	}
	defer zr.Close()

	entries := make([]*zip.File, 0, len(zr.File))
	for _, zf := range zr.File {
		if extRe.MatchString(zf.Name) {
			entries = append(entries, zf)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	networks := make([]*network.Network, 0, len(entries))
	for _, zf := range entries {
		nports, err := PortsFromFilename(zf.Name)
		if err != nil {
			return nil, err
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "touchstone: open zip entry %s", zf.Name)
		}
		name := strings.TrimSuffix(filepath.Base(zf.Name), filepath.Ext(zf.Name))
		n, err := Read(rc, nports, network.WithName(name))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", zf.Name, err)
		}
		networks = append(networks, n)
	}
	return networks, nil
}
