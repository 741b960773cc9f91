package networkset

import (
	"fmt"

	"github.com/katalvlaran/rfset/interp"
	"github.com/katalvlaran/rfset/network"
)

// InterpolateFromNetwork treats the set as samples of one network along an
// external coordinate: coords[i] is the coordinate of element i, and the
// result is the synthetic network at coordinate x. Each scattering entry is
// interpolated independently, real and imaginary parts separately. coords
// need not be sorted; they must be finite and distinct.
//
// The result is a copy of element 0 carrying the interpolated scattering
// data; its name is the set name when one is set.
//
// Errors: ErrEmptySet, ErrLengthMismatch, and the interp axis errors
// (interp.ErrTooFewPoints, interp.ErrDuplicateCoordinate, ...).
func (ns *NetworkSet) InterpolateFromNetwork(coords []float64, x float64, kind interp.Kind) (*network.Network, error) {
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}
	if len(coords) != len(ns.elements) {
		return nil, fmt.Errorf("%d coordinates for %d elements: %w",
			len(coords), len(ns.elements), ErrLengthMismatch)
	}

	axis, err := interp.NewAxis(coords, kind)
	if err != nil {
		return nil, err
	}

	first := ns.elements[0]
	cells := first.NFreq() * first.NPorts() * first.NPorts()
	n := len(ns.elements)

	stacked := make([][]complex128, n)
	for i, el := range ns.elements {
		stacked[i] = el.S()
	}

	out := make([]complex128, cells)
	re := make([]float64, n)
	im := make([]float64, n)
	for cell := 0; cell < cells; cell++ {
		for i := 0; i < n; i++ {
			v := stacked[i][cell]
			re[i] = real(v)
			im[i] = imag(v)
		}
		vr, err := axis.Eval(re, x)
		if err != nil {
			return nil, err
		}
		vi, err := axis.Eval(im, x)
		if err != nil {
			return nil, err
		}
		out[cell] = complex(vr, vi)
	}

	result := first.Copy()
	if err := result.SetS(out); err != nil {
		return nil, err
	}
	if ns.name != "" {
		result.SetName(ns.name)
	}
	return result, nil
}

// InterpolateFromParams interpolates along a tagged dimension: the coordinate
// of each element is its params[param] value. sub narrows the set first
// (e.g. fix every other dimension at one value) so the surviving elements
// vary only along param. Unlike Sel, bad sub keys and values here are hard
// errors: a silent empty narrowing would masquerade as a data problem.
//
// x outside the coordinate span (inclusive) is ErrOutOfBounds - tagged
// dimensions are categorical samples, not a continuum to extrapolate over.
func (ns *NetworkSet) InterpolateFromParams(param string, x float64, sub Selector, kind interp.Kind) (*network.Network, error) {
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}
	if !ns.hasDim(param) {
		return nil, fmt.Errorf("%q: %w", param, ErrUnknownDimension)
	}
	for key, wanted := range sub {
		if !ns.hasDim(key) {
			return nil, fmt.Errorf("%q: %w", key, ErrUnknownDimension)
		}
		for _, w := range wanted {
			if !ns.hasCoord(key, w) {
				return nil, fmt.Errorf("%q=%v: %w", key, w, ErrUnknownValue)
			}
		}
	}

	narrowed := ns
	if len(sub) > 0 {
		narrowed = ns.Sel(sub)
		if narrowed.Len() == 0 {
			return nil, fmt.Errorf("selection left no elements: %w", ErrEmptySet)
		}
	}

	coords := make([]float64, narrowed.Len())
	for i, el := range narrowed.elements {
		raw, ok := el.Params()[param]
		if !ok {
			return nil, fmt.Errorf("element %d lacks %q: %w", i, param, ErrUnknownDimension)
		}
		v, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("element %d: %q=%v: %w", i, param, raw, ErrNonNumericCoordinate)
		}
		coords[i] = v
	}

	lo, hi := coords[0], coords[0]
	for _, c := range coords[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	if x < lo || x > hi {
		return nil, fmt.Errorf("%q=%v outside [%v, %v]: %w", param, x, lo, hi, ErrOutOfBounds)
	}

	return narrowed.InterpolateFromNetwork(coords, x, kind)
}
