package mdif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
	"github.com/katalvlaran/rfset/touchstone"
)

var (
	// ErrBadVar indicates a VAR line that does not parse as name(type) = value.
	ErrBadVar = errors.New("mdif: bad VAR line")

	// ErrBadHeader indicates a %F column header whose pair count is not a
	// square, so no port count fits it.
	ErrBadHeader = errors.New("mdif: bad column header")
)

// varRe splits a VAR line into name, numeric type code and raw value.
var varRe = regexp.MustCompile(`^VAR\s+(\w+)\((\d)\)\s*=\s*(.+)$`)

// parseVar decodes one VAR line. String values may be quoted; int and double
// values must parse as such.
func parseVar(line string) (string, any, error) {
	m := varRe.FindStringSubmatch(line)
	if m == nil {
		return "", nil, fmt.Errorf("%w: %q", ErrBadVar, line)
	}
	name, raw := m[1], strings.TrimSpace(m[3])
	switch m[2] {
	case "0":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", ErrBadVar, line)
		}
		return name, v, nil
	case "1":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", ErrBadVar, line)
		}
		return name, v, nil
	case "2":
		if strings.HasPrefix(raw, `"`) {
			v, err := strconv.Unquote(raw)
			if err != nil {
				return "", nil, fmt.Errorf("%w: %q", ErrBadVar, line)
			}
			return name, v, nil
		}
		return name, raw, nil
	default:
		return "", nil, fmt.Errorf("%w: type code %q", ErrBadVar, m[2])
	}
}

// Read parses a Generalized MDIF stream into a set, the inverse of Write.
// Each ACDATA block becomes one element; its VAR variables become the
// element's parameters, except a string variable called "name", which becomes
// the element name. The port count is inferred from the %F column header.
//
// Errors: ErrBadVar, ErrBadHeader, ErrEmptySet for a stream without blocks,
// plus touchstone and set construction errors.
func Read(r io.Reader) (*networkset.NetworkSet, error) {
	var (
		elements []*network.Network
		vars     = map[string]any{}
		inData   bool
		data     strings.Builder
		columns  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if !inData {
			switch {
			case line == "" || strings.HasPrefix(line, "!"):
			case strings.HasPrefix(line, "VAR"):
				name, val, err := parseVar(line)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vars[name] = val
			case line == "BEGIN ACDATA":
				inData = true
				columns = 0
				data.Reset()
			}
			continue
		}

		switch {
		case line == "END":
			el, err := buildElement(columns, data.String(), vars)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", len(elements)+1, err)
			}
			elements = append(elements, el)
			vars = map[string]any{}
			inData = false
		case strings.HasPrefix(line, "%"):
			columns += len(strings.Fields(line)) - 1
		case line != "" && isLetter(line[0]):
			// Continuation of a wrapped column header.
			columns += len(strings.Fields(line))
		default:
			data.WriteString(line)
			data.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "mdif: read")
	}

	if len(elements) == 0 {
		return nil, ErrEmptySet
	}
	return networkset.New(elements)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// buildElement turns one captured ACDATA body into a network. The header
// lists two columns per scattering entry, so the port count is the square
// root of half the column count.
func buildElement(columns int, body string, vars map[string]any) (*network.Network, error) {
	pairs := columns / 2
	nports := int(math.Round(math.Sqrt(float64(pairs))))
	if pairs < 1 || columns%2 != 0 || nports*nports != pairs {
		return nil, fmt.Errorf("%w: %d columns", ErrBadHeader, columns)
	}

	var opts []network.Option
	if name, ok := vars["name"].(string); ok {
		opts = append(opts, network.WithName(name))
	}
	params := make(map[string]any, len(vars))
	for k, v := range vars {
		if k == "name" {
			continue
		}
		params[k] = v
	}
	if len(params) > 0 {
		opts = append(opts, network.WithParams(params))
	}

	return touchstone.Read(strings.NewReader(body), nports, opts...)
}

// ReadFile loads one MDIF file into a set.
func ReadFile(path string) (*networkset.NetworkSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "mdif: open %s", path)
	}
	defer f.Close()

	ns, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}
