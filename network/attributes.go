package network

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// Attribute catalog.
//
// Primaries are the matrix-valued bases: the scattering matrix itself plus
// the impedance and admittance conversions. Components are scalar views of a
// complex entry. The public attribute names are every "primary_component"
// pair, each bare primary, and the literal "passivity".
//
// Component views return real values carried in the complex buffer with a
// zero imaginary part, so a reduced view can be stored back into a network's
// scattering slot (the convention set-wise statistics rely on).

// radToDeg converts radians to degrees.
const radToDeg = 180 / math.Pi

// primaryNames lists matrix-valued attribute bases.
var primaryNames = []string{"s", "z", "y"}

// componentNames lists scalar component views, applied entrywise.
var componentNames = []string{"re", "im", "mag", "db", "deg", "rad"}

// componentOf maps a component name to its entrywise transform.
var componentOf = map[string]func(complex128) float64{
	"re":  func(v complex128) float64 { return real(v) },
	"im":  func(v complex128) float64 { return imag(v) },
	"mag": cmplx.Abs,
	"db":  func(v complex128) float64 { return MagToDB(cmplx.Abs(v)) },
	"deg": func(v complex128) float64 { return cmplx.Phase(v) * radToDeg },
	"rad": cmplx.Phase,
}

// MagToDB converts a linear magnitude to dB (20·log10). Zero magnitude maps
// to -Inf, matching the conventional definition.
func MagToDB(mag float64) float64 { return 20 * math.Log10(mag) }

// DBToMag converts dB back to linear magnitude.
func DBToMag(db float64) float64 { return math.Pow(10, db/20) }

// AttributeNames returns the sorted attribute catalog: every
// primary_component pair, each bare primary, and "passivity".
func AttributeNames() []string {
	out := make([]string, 0, len(primaryNames)*(len(componentNames)+1)+1)
	for _, p := range primaryNames {
		out = append(out, p)
		for _, c := range componentNames {
			out = append(out, p+"_"+c)
		}
	}
	out = append(out, "passivity")
	sort.Strings(out)
	return out
}

// ValidAttribute reports whether name is in the catalog.
func ValidAttribute(name string) bool {
	_, _, err := splitAttribute(name)
	return err == nil
}

// MagAttribute rewrites a dB attribute to its magnitude sibling
// ("s_db" -> "s_mag"). It returns name unchanged for non-dB attributes.
// Set-wise statistics use this to reduce dB views in their own magnitude
// domain before re-expressing the result in dB.
func MagAttribute(name string) string {
	if strings.HasSuffix(name, "_db") {
		return strings.TrimSuffix(name, "_db") + "_mag"
	}
	return name
}

// IsDBAttribute reports whether the attribute is a dB view.
func IsDBAttribute(name string) bool { return strings.HasSuffix(name, "_db") }

// splitAttribute parses an attribute name into (primary, component). The
// component is "" for bare primaries and for "passivity" (which parses as
// primary "passivity").
func splitAttribute(name string) (primary, component string, err error) {
	if name == "passivity" {
		return name, "", nil
	}
	base := name
	if k := strings.IndexByte(name, '_'); k >= 0 {
		base, component = name[:k], name[k+1:]
		if component == "" {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
	}
	validBase := false
	for _, p := range primaryNames {
		if base == p {
			validBase = true
			break
		}
	}
	if !validBase {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if component != "" {
		if _, ok := componentOf[component]; !ok {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
	}
	return base, component, nil
}

// Attribute returns the named view as a flat (F, P, P) buffer. Complex-valued
// attributes (bare primaries, passivity) return their values directly;
// component views return real values with zero imaginary part.
//
// Errors: ErrUnknownAttribute, ErrSingular (z and y require I∓S to be
// invertible at every frequency point).
func (n *Network) Attribute(name string) ([]complex128, error) {
	primary, component, err := splitAttribute(name)
	if err != nil {
		return nil, err
	}

	base, err := n.primaryMatrix(primary)
	if err != nil {
		return nil, err
	}
	if component == "" {
		return base, nil
	}

	view := componentOf[component]
	out := make([]complex128, len(base))
	for k, v := range base {
		out[k] = complex(view(v), 0)
	}
	return out, nil
}

// primaryMatrix materializes a matrix-valued base as a fresh flat buffer.
func (n *Network) primaryMatrix(primary string) ([]complex128, error) {
	switch primary {
	case "s":
		return n.S(), nil
	case "z":
		return n.impedanceMatrix()
	case "y":
		return n.admittanceMatrix()
	case "passivity":
		return n.passivityMatrix(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, primary)
	}
}

// impedanceMatrix converts S to Z per frequency: z0·(I+S)(I−S)⁻¹.
func (n *Network) impedanceMatrix() ([]complex128, error) {
	return n.mapBlocks(func(s []complex128, p int) ([]complex128, error) {
		eye := identityBlock(p)
		inv, err := invertBlock(addBlock(eye, s, -1), p)
		if err != nil {
			return nil, err
		}
		return scaleBlock(mulBlock(addBlock(eye, s, 1), inv, p), n.z0), nil
	})
}

// admittanceMatrix converts S to Y per frequency: (1/z0)·(I−S)(I+S)⁻¹.
func (n *Network) admittanceMatrix() ([]complex128, error) {
	return n.mapBlocks(func(s []complex128, p int) ([]complex128, error) {
		eye := identityBlock(p)
		inv, err := invertBlock(addBlock(eye, s, 1), p)
		if err != nil {
			return nil, err
		}
		return scaleBlock(mulBlock(addBlock(eye, s, -1), inv, p), 1/n.z0), nil
	})
}

// passivityMatrix computes I − Sᴴ·S per frequency. Entries on the diagonal
// are the per-port power balance; a passive network keeps them non-negative.
func (n *Network) passivityMatrix() []complex128 {
	p := n.nports
	pp := p * p
	out := make([]complex128, len(n.data))
	for f := 0; f < n.freq.Len(); f++ {
		s := n.data[f*pp : (f+1)*pp]
		block := addBlock(identityBlock(p), mulBlock(conjTransposeBlock(s, p), s, p), -1)
		copy(out[f*pp:(f+1)*pp], block)
	}
	return out
}

// mapBlocks applies fn to each per-frequency p×p block of S, assembling the
// results into one flat buffer.
func (n *Network) mapBlocks(fn func(s []complex128, p int) ([]complex128, error)) ([]complex128, error) {
	p := n.nports
	pp := p * p
	out := make([]complex128, len(n.data))
	for f := 0; f < n.freq.Len(); f++ {
		block, err := fn(n.data[f*pp:(f+1)*pp], p)
		if err != nil {
			return nil, fmt.Errorf("frequency point %d: %w", f, err)
		}
		copy(out[f*pp:(f+1)*pp], block)
	}
	return out, nil
}
