// Package interp provides deterministic 1-D piecewise interpolation kernels
// used to evaluate a function known only at scattered sample coordinates.
//
// Supported kinds mirror the common 1-D interpolation taxonomy:
//
//	Nearest   — value of the closest sample (ties resolve to the left sample)
//	Previous  — value of the last sample at or before x (zero-order hold)
//	Linear    — straight line between bracketing samples
//	Quadratic — local 3-point Lagrange polynomial
//	Cubic     — natural cubic spline through all samples
//
// An Axis is built once from the sample coordinates and then evaluated many
// times against different sample-value vectors, which is the access pattern of
// set-wise network interpolation (one coordinate axis, one evaluation per
// matrix cell).
//
// No bounds guard is applied here: evaluation outside the sample span
// extrapolates with the boundary segment or polynomial. Callers that need an
// out-of-range policy enforce it before evaluating.
package interp
