package network

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Elementwise arithmetic. Every operator requires the operand to share the
// receiver's frequency grid and port count, and returns a new Network whose
// metadata (name, params, z0) is inherited from the receiver.

// Operation name constants for uniform error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opPow      = "Pow"
	opFloorDiv = "FloorDiv"
	opInv      = "Inv"
)

// binary applies fn entrywise against other after shape/grid validation.
func (n *Network) binary(other *Network, op string, fn func(a, b complex128) complex128) (*Network, error) {
	if other == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilNetwork)
	}
	if n.nports != other.nports {
		return nil, fmt.Errorf("%s: %w", op, ErrShapeMismatch)
	}
	if !n.freq.Equal(other.freq) {
		return nil, fmt.Errorf("%s: %w", op, ErrFrequencyMismatch)
	}
	out := n.Copy()
	for k := range out.data {
		out.data[k] = fn(n.data[k], other.data[k])
	}
	return out, nil
}

// Add returns the entrywise sum with other.
func (n *Network) Add(other *Network) (*Network, error) {
	return n.binary(other, opAdd, func(a, b complex128) complex128 { return a + b })
}

// Sub returns the entrywise difference with other.
func (n *Network) Sub(other *Network) (*Network, error) {
	return n.binary(other, opSub, func(a, b complex128) complex128 { return a - b })
}

// Mul returns the entrywise product with other.
func (n *Network) Mul(other *Network) (*Network, error) {
	return n.binary(other, opMul, func(a, b complex128) complex128 { return a * b })
}

// Div returns the entrywise quotient with other.
func (n *Network) Div(other *Network) (*Network, error) {
	return n.binary(other, opDiv, func(a, b complex128) complex128 { return a / b })
}

// Pow returns the entrywise complex power a^b.
func (n *Network) Pow(other *Network) (*Network, error) {
	return n.binary(other, opPow, cmplx.Pow)
}

// FloorDiv returns the entrywise floored quotient: the complex quotient a/b
// with both the real and imaginary parts floored. Complex numbers have no
// canonical floor division; this componentwise definition keeps the operator
// total and elementwise.
func (n *Network) FloorDiv(other *Network) (*Network, error) {
	return n.binary(other, opFloorDiv, func(a, b complex128) complex128 {
		q := a / b
		return complex(math.Floor(real(q)), math.Floor(imag(q)))
	})
}

// Scale returns the network with every entry multiplied by the scalar.
func (n *Network) Scale(v complex128) *Network {
	out := n.Copy()
	for k := range out.data {
		out.data[k] *= v
	}
	return out
}

// Inv returns the per-frequency matrix inverse of S.
//
// Errors: ErrSingular when any frequency block has no usable pivot.
func (n *Network) Inv() (*Network, error) {
	inv, err := n.mapBlocks(invertBlock)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	out := n.Copy()
	copy(out.data, inv)
	return out, nil
}
