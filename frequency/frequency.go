package frequency

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for frequency construction.
var (
	// ErrNoPoints indicates an empty point list or npoints < 1.
	ErrNoPoints = errors.New("frequency: no points")

	// ErrBadSpan indicates stop < start or a non-finite endpoint.
	ErrBadSpan = errors.New("frequency: invalid span")

	// ErrUnsortedPoints indicates the point list is not strictly increasing.
	ErrUnsortedPoints = errors.New("frequency: points must be strictly increasing")

	// ErrUnknownUnit indicates an unrecognized unit string.
	ErrUnknownUnit = errors.New("frequency: unknown unit")
)

// Unit is a display unit for frequency values. Points are always stored in Hz;
// the unit affects Scaled() output and serialization only.
type Unit int

const (
	Hz Unit = iota
	KHz
	MHz
	GHz
	THz
)

// unitMultipliers maps Unit to its Hz multiplier. Index-aligned with the
// Unit constants.
var unitMultipliers = [...]float64{1, 1e3, 1e6, 1e9, 1e12}

// unitNames holds canonical (upper-case, Touchstone-style) unit spellings.
var unitNames = [...]string{"HZ", "KHZ", "MHZ", "GHZ", "THZ"}

// Multiplier returns the Hz multiplier of the unit (e.g. GHz -> 1e9).
func (u Unit) Multiplier() float64 {
	if u < Hz || u > THz {
		return 1
	}
	return unitMultipliers[u]
}

// String returns the canonical upper-case spelling (e.g. "GHZ").
func (u Unit) String() string {
	if u < Hz || u > THz {
		return "HZ"
	}
	return unitNames[u]
}

// ParseUnit resolves a unit string (case-insensitive). Returns ErrUnknownUnit
// for anything outside {hz, khz, mhz, ghz, thz}.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HZ":
		return Hz, nil
	case "KHZ":
		return KHz, nil
	case "MHZ":
		return MHz, nil
	case "GHZ":
		return GHz, nil
	case "THZ":
		return THz, nil
	default:
		return Hz, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Frequency is an immutable frequency axis: strictly increasing points in Hz
// plus a display unit. The zero value is not usable; construct via NewLinear
// or FromPoints.
type Frequency struct {
	points []float64 // Hz, strictly increasing
	unit   Unit
}

// NewLinear builds an inclusive linspace of npoints values from start to stop,
// both expressed in the given unit.
//
// Errors:
//   - ErrNoPoints: npoints < 1.
//   - ErrBadSpan: stop < start or a non-finite endpoint. A single-point axis
//     (npoints == 1) uses start and ignores stop.
func NewLinear(start, stop float64, npoints int, unit Unit) (*Frequency, error) {
	if npoints < 1 {
		return nil, ErrNoPoints
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) || stop < start {
		return nil, ErrBadSpan
	}
	mult := unit.Multiplier()
	pts := make([]float64, npoints)
	if npoints == 1 {
		pts[0] = start * mult
	} else {
		step := (stop - start) / float64(npoints-1)
		for k := 0; k < npoints; k++ {
			pts[k] = (start + float64(k)*step) * mult
		}
		// Pin the last point exactly to avoid accumulated rounding.
		pts[npoints-1] = stop * mult
	}
	return &Frequency{points: pts, unit: unit}, nil
}

// FromPoints builds a Frequency from explicit values expressed in the given
// unit. The slice is copied; the input is never retained.
//
// Errors:
//   - ErrNoPoints: empty input.
//   - ErrUnsortedPoints: values not strictly increasing.
//   - ErrBadSpan: non-finite value encountered.
func FromPoints(points []float64, unit Unit) (*Frequency, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	mult := unit.Multiplier()
	pts := make([]float64, len(points))
	for k, v := range points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadSpan
		}
		if k > 0 && v <= points[k-1] {
			return nil, ErrUnsortedPoints
		}
		pts[k] = v * mult
	}
	return &Frequency{points: pts, unit: unit}, nil
}

// Len returns the number of frequency points.
func (f *Frequency) Len() int { return len(f.points) }

// Unit returns the display unit.
func (f *Frequency) Unit() Unit { return f.unit }

// Points returns a copy of the axis in Hz.
func (f *Frequency) Points() []float64 {
	out := make([]float64, len(f.points))
	copy(out, f.points)
	return out
}

// Scaled returns a copy of the axis expressed in the display unit.
func (f *Frequency) Scaled() []float64 {
	mult := f.unit.Multiplier()
	out := make([]float64, len(f.points))
	for k, v := range f.points {
		out[k] = v / mult
	}
	return out
}

// Point returns the k-th axis value in Hz. Panics on out-of-range k, as slice
// indexing would; callers iterate via Len.
func (f *Frequency) Point(k int) float64 { return f.points[k] }

// Equal reports pointwise equality in Hz. The display unit is ignored: a
// 1-2 GHz axis equals the same axis spelled in MHz. nil receivers/arguments
// compare equal only to each other.
func (f *Frequency) Equal(other *Frequency) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.points) != len(other.points) {
		return false
	}
	for k := range f.points {
		if f.points[k] != other.points[k] {
			return false
		}
	}
	return true
}

// WithUnit returns a copy of the axis with a different display unit. Points
// are unchanged (they are stored in Hz).
func (f *Frequency) WithUnit(unit Unit) *Frequency {
	return &Frequency{points: f.points, unit: unit}
}

// String renders a short human-readable description, e.g.
// "1-10 GHZ, 101 pts".
func (f *Frequency) String() string {
	if f == nil || len(f.points) == 0 {
		return "empty frequency axis"
	}
	s := f.Scaled()
	return fmt.Sprintf("%g-%g %s, %d pts", s[0], s[len(s)-1], f.unit, len(s))
}
