// Package network: sentinel error set. All public operations return these
// sentinels (possibly wrapped with operation context via fmt.Errorf and %w);
// tests and callers match them with errors.Is. User-triggered conditions never
// panic.
package network

import "errors"

var (
	// ErrNilFrequency indicates a nil frequency axis was passed to a constructor.
	ErrNilFrequency = errors.New("network: nil frequency axis")

	// ErrNilNetwork indicates a nil *Network receiver or operand.
	ErrNilNetwork = errors.New("network: nil network")

	// ErrBadPorts indicates a non-positive port count.
	ErrBadPorts = errors.New("network: port count must be > 0")

	// ErrShapeMismatch indicates a data buffer whose length does not match
	// the (F, P, P) shape, or operands with different port counts.
	ErrShapeMismatch = errors.New("network: shape mismatch")

	// ErrFrequencyMismatch indicates operands on different frequency grids.
	ErrFrequencyMismatch = errors.New("network: frequency mismatch")

	// ErrOutOfRange indicates an (f, i, j) index outside the network shape.
	ErrOutOfRange = errors.New("network: index out of range")

	// ErrUnknownAttribute indicates an attribute name outside the catalog
	// (see AttributeNames).
	ErrUnknownAttribute = errors.New("network: unknown attribute")

	// ErrSingular indicates a zero pivot during per-frequency matrix
	// inversion (Inv, z, y views).
	ErrSingular = errors.New("network: singular matrix")
)
