// Package networkset: sentinel error set. Construction and operator errors
// are fatal and surface immediately; selection deliberately has NO error path
// (unknown dimensions and empty matches yield an empty set: a policy, not a
// failure). Tests match all sentinels via errors.Is.
package networkset

import "errors"

var (
	// ErrNilElement indicates a nil element in the input collection.
	ErrNilElement = errors.New("networkset: nil network element")

	// ErrPortsMismatch indicates elements with differing port counts.
	ErrPortsMismatch = errors.New("networkset: all elements must share one port count")

	// ErrFrequencyMismatch indicates an element whose frequency grid differs
	// from the first element's.
	ErrFrequencyMismatch = errors.New("networkset: all elements must share one frequency grid")

	// ErrEmptySet indicates a reduction or interpolation over zero elements.
	ErrEmptySet = errors.New("networkset: empty set")

	// ErrLengthMismatch indicates two sets (or a coordinate array and a set)
	// of different lengths where index alignment is required.
	ErrLengthMismatch = errors.New("networkset: length mismatch")

	// ErrBadOperand indicates an operator received the zero Operand (neither
	// a single network nor a set).
	ErrBadOperand = errors.New("networkset: operand must be a network or a network set")

	// ErrUnknownDimension indicates a parameter name absent from the set's
	// dimensions where a hard failure is specified (interpolation only;
	// Sel soft-fails instead).
	ErrUnknownDimension = errors.New("networkset: unknown parameter dimension")

	// ErrUnknownValue indicates a sub-parameter value never observed on its
	// dimension.
	ErrUnknownValue = errors.New("networkset: parameter value not observed")

	// ErrNonNumericCoordinate indicates interpolation along a dimension whose
	// observed values are not numeric (categorical axes cannot be ordered).
	ErrNonNumericCoordinate = errors.New("networkset: non-numeric parameter coordinate")

	// ErrOutOfBounds indicates an interpolation coordinate outside the
	// observed [min, max] of its dimension.
	ErrOutOfBounds = errors.New("networkset: interpolation coordinate out of observed bounds")

	// ErrDBUncertainty indicates an uncertainty bound requested on a dB
	// attribute; bounds are defined in linear domains (use the _mag sibling).
	ErrDBUncertainty = errors.New("networkset: uncertainty bounds undefined for dB attributes")

	// ErrUnnamedElement indicates ToMap on a set containing unnamed elements.
	ErrUnnamedElement = errors.New("networkset: unnamed element")

	// ErrDuplicateName indicates ToMap on a set with colliding element names.
	ErrDuplicateName = errors.New("networkset: duplicate element name")

	// ErrBadSampleCount indicates a negative sample size passed to Rand.
	ErrBadSampleCount = errors.New("networkset: sample count must be non-negative")

	// ErrTooFewElements indicates a statistic that needs at least two
	// elements (sample covariance).
	ErrTooFewElements = errors.New("networkset: too few elements")

	// ErrUnknownReduction indicates a Reduction value outside the enum.
	ErrUnknownReduction = errors.New("networkset: unknown reduction")
)
