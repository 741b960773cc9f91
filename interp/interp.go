package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors for axis construction and evaluation.
var (
	// ErrNoPoints indicates an empty coordinate array.
	ErrNoPoints = errors.New("interp: no sample coordinates")

	// ErrTooFewPoints indicates fewer samples than the kind's minimum
	// (nearest: 1, previous/linear: 2, quadratic: 3, cubic: 4).
	ErrTooFewPoints = errors.New("interp: too few samples for interpolation kind")

	// ErrDuplicateCoordinate indicates two samples share the same coordinate;
	// the interpolant would be ill-defined.
	ErrDuplicateCoordinate = errors.New("interp: duplicate sample coordinate")

	// ErrNaNCoordinate indicates a NaN or ±Inf coordinate or query point.
	ErrNaNCoordinate = errors.New("interp: non-finite coordinate")

	// ErrLengthMismatch indicates len(ys) differs from the axis length.
	ErrLengthMismatch = errors.New("interp: sample value count mismatch")

	// ErrUnknownKind indicates an unrecognized interpolation kind name.
	ErrUnknownKind = errors.New("interp: unknown interpolation kind")
)

// Kind selects the interpolation rule.
type Kind int

const (
	// Nearest evaluates to the sample whose coordinate is closest to x.
	Nearest Kind = iota

	// Previous evaluates to the last sample at or before x (zero-order hold).
	Previous

	// Linear connects bracketing samples with a straight line.
	Linear

	// Quadratic fits a local 3-point Lagrange polynomial around x.
	Quadratic

	// Cubic evaluates a natural cubic spline through all samples.
	Cubic
)

// kindNames holds canonical spellings, index-aligned with the Kind constants.
var kindNames = [...]string{"nearest", "previous", "linear", "quadratic", "cubic"}

// String returns the canonical kind name.
func (k Kind) String() string {
	if k < Nearest || k > Cubic {
		return "invalid"
	}
	return kindNames[k]
}

// minSamples returns the smallest axis length the kind supports.
func (k Kind) minSamples() int {
	switch k {
	case Nearest:
		return 1
	case Quadratic:
		return 3
	case Cubic:
		return 4
	default: // Previous, Linear
		return 2
	}
}

// ParseKind resolves a kind name. The scipy spellings "zero" (Previous) and
// "slinear" (Linear) are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return Nearest, nil
	case "previous", "zero":
		return Previous, nil
	case "linear", "slinear":
		return Linear, nil
	case "quadratic":
		return Quadratic, nil
	case "cubic":
		return Cubic, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Axis is an immutable, sorted coordinate axis prepared for repeated
// evaluation. Sample-value vectors passed to Eval follow the ORIGINAL input
// order of the coordinates, not the sorted order; the axis keeps the sorting
// permutation internally.
type Axis struct {
	kind Kind
	xs   []float64 // sorted ascending
	perm []int     // xs[i] == original coordinate perm[i]
}

// NewAxis validates and prepares a coordinate axis for the given kind.
//
// Errors:
//   - ErrNoPoints, ErrTooFewPoints, ErrNaNCoordinate, ErrDuplicateCoordinate.
//   - ErrUnknownKind for an out-of-range Kind value.
func NewAxis(xs []float64, kind Kind) (*Axis, error) {
	if kind < Nearest || kind > Cubic {
		return nil, ErrUnknownKind
	}
	n := len(xs)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if n < kind.minSamples() {
		return nil, fmt.Errorf("%w: %s needs >= %d, got %d", ErrTooFewPoints, kind, kind.minSamples(), n)
	}
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNCoordinate
		}
	}

	// Sort a copy, remembering where each sorted coordinate came from.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return xs[perm[a]] < xs[perm[b]] })

	sorted := make([]float64, n)
	for i, p := range perm {
		sorted[i] = xs[p]
		if i > 0 && sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateCoordinate, sorted[i])
		}
	}

	return &Axis{kind: kind, xs: sorted, perm: perm}, nil
}

// Len returns the number of samples on the axis.
func (a *Axis) Len() int { return len(a.xs) }

// Kind returns the interpolation rule the axis was built for.
func (a *Axis) Kind() Kind { return a.kind }

// Min returns the smallest coordinate.
func (a *Axis) Min() float64 { return a.xs[0] }

// Max returns the largest coordinate.
func (a *Axis) Max() float64 { return a.xs[len(a.xs)-1] }

// Eval interpolates the sampled function at x. ys is parallel to the
// coordinate array originally passed to NewAxis.
//
// Queries outside [Min, Max] extrapolate with the boundary segment
// (Nearest/Previous clamp; Linear extends the end segment; Quadratic/Cubic
// evaluate the boundary polynomial).
func (a *Axis) Eval(ys []float64, x float64) (float64, error) {
	if len(ys) != len(a.xs) {
		return 0, ErrLengthMismatch
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNaNCoordinate
	}

	// Reorder samples into sorted-axis order once per call.
	sy := make([]float64, len(ys))
	for i, p := range a.perm {
		sy[i] = ys[p]
	}

	switch a.kind {
	case Nearest:
		return sy[a.nearestIndex(x)], nil
	case Previous:
		return sy[a.previousIndex(x)], nil
	case Linear:
		return a.evalLinear(sy, x), nil
	case Quadratic:
		return a.evalQuadratic(sy, x), nil
	default: // Cubic; kind range was validated at construction
		return a.evalCubic(sy, x), nil
	}
}

// Interp1D is a one-shot convenience over NewAxis + Eval.
func Interp1D(xs, ys []float64, x float64, kind Kind) (float64, error) {
	ax, err := NewAxis(xs, kind)
	if err != nil {
		return 0, err
	}
	return ax.Eval(ys, x)
}

// segment returns i such that xs[i] <= x < xs[i+1], clamped to the
// outermost segments for out-of-range x. Requires len(xs) >= 2.
func (a *Axis) segment(x float64) int {
	// sort.SearchFloat64s returns the insertion point of x.
	i := sort.SearchFloat64s(a.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(a.xs)-2 {
		i = len(a.xs) - 2
	}
	return i
}

// nearestIndex picks the sample closest to x; exact midpoints resolve to the
// left sample for determinism.
func (a *Axis) nearestIndex(x float64) int {
	if len(a.xs) == 1 {
		return 0
	}
	i := a.segment(x)
	if x-a.xs[i] <= a.xs[i+1]-x {
		return i
	}
	return i + 1
}

// previousIndex picks the last sample at or before x (clamped to the ends).
func (a *Axis) previousIndex(x float64) int {
	i := sort.SearchFloat64s(a.xs, x)
	if i < len(a.xs) && a.xs[i] == x {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// evalLinear interpolates on the bracketing segment; outside the span the end
// segment is extended.
func (a *Axis) evalLinear(sy []float64, x float64) float64 {
	i := a.segment(x)
	x0, x1 := a.xs[i], a.xs[i+1]
	t := (x - x0) / (x1 - x0)
	return sy[i] + t*(sy[i+1]-sy[i])
}

// evalQuadratic evaluates the Lagrange polynomial through the three samples
// nearest to the bracketing segment.
func (a *Axis) evalQuadratic(sy []float64, x float64) float64 {
	i := a.segment(x)
	// Center the 3-point stencil on the segment, clamped to the axis.
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	if lo > len(a.xs)-3 {
		lo = len(a.xs) - 3
	}

	x0, x1, x2 := a.xs[lo], a.xs[lo+1], a.xs[lo+2]
	y0, y1, y2 := sy[lo], sy[lo+1], sy[lo+2]

	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))

	return y0*l0 + y1*l1 + y2*l2
}

// evalCubic evaluates the natural cubic spline through all samples.
//
// Second derivatives are obtained from the standard tridiagonal system with
// natural boundary conditions (m[0] = m[n-1] = 0), solved by the Thomas
// algorithm. O(n) time per evaluation.
func (a *Axis) evalCubic(sy []float64, x float64) float64 {
	n := len(a.xs)
	xs := a.xs

	// Tridiagonal solve for second derivatives m[1..n-2].
	m := make([]float64, n)      // second derivatives; m[0] = m[n-1] = 0
	cPrime := make([]float64, n) // forward-sweep scratch
	dPrime := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		rhs := 6 * ((sy[i+1]-sy[i])/h1 - (sy[i]-sy[i-1])/h0)
		diag := 2 * (h0 + h1)
		if i == 1 {
			cPrime[i] = h1 / diag
			dPrime[i] = rhs / diag
			continue
		}
		denom := diag - h0*cPrime[i-1]
		cPrime[i] = h1 / denom
		dPrime[i] = (rhs - h0*dPrime[i-1]) / denom
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = dPrime[i] - cPrime[i]*m[i+1]
	}

	// Evaluate the spline piece covering x (boundary piece extrapolates).
	i := a.segment(x)
	h := xs[i+1] - xs[i]
	t0 := xs[i+1] - x
	t1 := x - xs[i]

	return (m[i]*t0*t0*t0+m[i+1]*t1*t1*t1)/(6*h) +
		(sy[i]/h-m[i]*h/6)*t0 +
		(sy[i+1]/h-m[i+1]*h/6)*t1
}
