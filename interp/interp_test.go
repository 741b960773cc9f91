package interp_test

import (
	"testing"

	"github.com/katalvlaran/rfset/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewAxis_Validation covers the construction sentinels.
func TestNewAxis_Validation(t *testing.T) {
	_, err := interp.NewAxis(nil, interp.Linear)
	assert.ErrorIs(t, err, interp.ErrNoPoints, "empty axis must error")

	_, err = interp.NewAxis([]float64{1}, interp.Linear)
	assert.ErrorIs(t, err, interp.ErrTooFewPoints, "linear needs two samples")

	_, err = interp.NewAxis([]float64{1, 2}, interp.Quadratic)
	assert.ErrorIs(t, err, interp.ErrTooFewPoints, "quadratic needs three samples")

	_, err = interp.NewAxis([]float64{1, 2, 3}, interp.Cubic)
	assert.ErrorIs(t, err, interp.ErrTooFewPoints, "cubic needs four samples")

	_, err = interp.NewAxis([]float64{1, 2, 2, 3}, interp.Linear)
	assert.ErrorIs(t, err, interp.ErrDuplicateCoordinate, "duplicate coordinates must error")

	_, err = interp.NewAxis([]float64{1}, interp.Nearest)
	assert.NoError(t, err, "nearest accepts a single sample")
}

// TestEval_ExactAtSamples verifies every kind reproduces its samples exactly.
func TestEval_ExactAtSamples(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{5, -1, 4, 0, 2}

	for _, kind := range []interp.Kind{interp.Nearest, interp.Previous, interp.Linear, interp.Quadratic, interp.Cubic} {
		ax, err := interp.NewAxis(xs, kind)
		require.NoError(t, err, "axis for %s", kind)
		for i, x := range xs {
			got, err := ax.Eval(ys, x)
			require.NoError(t, err)
			assert.InDelta(t, ys[i], got, 1e-12, "%s must be exact at sample %d", kind, i)
		}
	}
}

// TestEval_LinearMidpoint checks the linear rule between samples.
func TestEval_LinearMidpoint(t *testing.T) {
	got, err := interp.Interp1D([]float64{0, 1, 2}, []float64{0, 10, 0}, 0.5, interp.Linear)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12, "linear midpoint must average endpoints")
}

// TestEval_NearestAndPrevious pins tie-breaking and hold semantics.
func TestEval_NearestAndPrevious(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{10, 20, 30}

	got, err := interp.Interp1D(xs, ys, 0.5, interp.Nearest)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got, "exact midpoint resolves to the left sample")

	got, err = interp.Interp1D(xs, ys, 0.51, interp.Nearest)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got, "past the midpoint the right sample wins")

	got, err = interp.Interp1D(xs, ys, 1.99, interp.Previous)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got, "previous holds the last sample at or before x")
}

// TestEval_QuadraticReproducesParabola verifies polynomial exactness on its
// own degree.
func TestEval_QuadraticReproducesParabola(t *testing.T) {
	xs := []float64{-1, 0, 2, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x*x - 2*x + 7
	}

	for _, x := range []float64{-0.5, 1.0, 3.3, 4.9} {
		got, err := interp.Interp1D(xs, ys, x, interp.Quadratic)
		require.NoError(t, err)
		assert.InDelta(t, 3*x*x-2*x+7, got, 1e-9, "quadratic must reproduce a parabola at x=%g", x)
	}
}

// TestEval_CubicSmoothness sanity-checks the natural spline between samples of
// a line: the spline through collinear points is the line itself.
func TestEval_CubicSmoothness(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9} // y = 2x + 1

	for _, x := range []float64{0.5, 1.7, 2.2, 3.9} {
		got, err := interp.Interp1D(xs, ys, x, interp.Cubic)
		require.NoError(t, err)
		assert.InDelta(t, 2*x+1, got, 1e-9, "cubic spline through a line must be linear at x=%g", x)
	}
}

// TestEval_UnsortedInputOrder verifies that sample values follow the original
// coordinate order, not the sorted order.
func TestEval_UnsortedInputOrder(t *testing.T) {
	// Same function as TestEval_LinearMidpoint, coordinates shuffled.
	got, err := interp.Interp1D([]float64{2, 0, 1}, []float64{0, 0, 10}, 0.5, interp.Linear)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12, "ys must be matched to xs by original position")
}

// TestEval_Extrapolation documents the no-guard policy at this layer.
func TestEval_Extrapolation(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 2} // y = x

	got, err := interp.Interp1D(xs, ys, 3, interp.Linear)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12, "linear extends the end segment")

	got, err = interp.Interp1D(xs, ys, 3, interp.Nearest)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "nearest clamps to the end sample")
}

// TestEval_LengthMismatch rejects value vectors of the wrong length.
func TestEval_LengthMismatch(t *testing.T) {
	ax, err := interp.NewAxis([]float64{0, 1, 2}, interp.Linear)
	require.NoError(t, err)

	_, err = ax.Eval([]float64{1, 2}, 0.5)
	assert.ErrorIs(t, err, interp.ErrLengthMismatch, "short value vector must error")
}

// TestParseKind accepts scipy aliases.
func TestParseKind(t *testing.T) {
	k, err := interp.ParseKind("zero")
	require.NoError(t, err)
	assert.Equal(t, interp.Previous, k, "scipy 'zero' maps to Previous")

	k, err = interp.ParseKind("slinear")
	require.NoError(t, err)
	assert.Equal(t, interp.Linear, k, "scipy 'slinear' maps to Linear")

	_, err = interp.ParseKind("septic")
	assert.ErrorIs(t, err, interp.ErrUnknownKind, "unknown kind must error")
}
