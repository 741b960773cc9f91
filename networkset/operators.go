package networkset

import (
	"fmt"

	"github.com/katalvlaran/rfset/network"
)

// Operand is the right-hand side of a set arithmetic operation: either one
// network broadcast against every element, or a full slice combined
// index-by-index. Construct one with Single or Elements.
type Operand struct {
	single *network.Network
	set    []*network.Network
	isSet  bool
}

// Single wraps one network for broadcasting across the whole set.
func Single(n *network.Network) Operand { return Operand{single: n} }

// Elements wraps a whole set for index-aligned combination. An empty set is
// a legal operand and fails later with ErrLengthMismatch unless the receiver
// is empty too.
func Elements(ns *NetworkSet) Operand {
	if ns == nil {
		return Operand{}
	}
	return Operand{set: ns.elements, isSet: true}
}

// combine applies fn between each element and the matching operand network.
// Index-aligned operands must match the set length; a broadcast operand is
// reused for every element. fn is one of the network binary operators, which
// already validate ports, frequency grids, and copy their receiver.
func (ns *NetworkSet) combine(op string, other Operand, fn func(a, b *network.Network) (*network.Network, error)) (*NetworkSet, error) {
	if len(ns.elements) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySet)
	}

	var rhs func(i int) *network.Network
	switch {
	case other.single != nil:
		rhs = func(int) *network.Network { return other.single }
	case other.isSet:
		if len(other.set) != len(ns.elements) {
			return nil, fmt.Errorf("%s: %d elements vs %d operands: %w",
				op, len(ns.elements), len(other.set), ErrLengthMismatch)
		}
		rhs = func(i int) *network.Network { return other.set[i] }
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrBadOperand)
	}

	out := make([]*network.Network, len(ns.elements))
	for i, el := range ns.elements {
		res, err := fn(el, rhs(i))
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", op, i, err)
		}
		out[i] = res
	}
	return wrap(out, ns.name), nil
}

// Add returns a set holding element + operand, entrywise.
func (ns *NetworkSet) Add(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.Add", other, (*network.Network).Add)
}

// Sub returns a set holding element - operand, entrywise.
func (ns *NetworkSet) Sub(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.Sub", other, (*network.Network).Sub)
}

// Mul returns a set holding element * operand, entrywise.
func (ns *NetworkSet) Mul(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.Mul", other, (*network.Network).Mul)
}

// Div returns a set holding element / operand, entrywise.
func (ns *NetworkSet) Div(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.Div", other, (*network.Network).Div)
}

// Pow returns a set holding element ** operand, entrywise.
func (ns *NetworkSet) Pow(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.Pow", other, (*network.Network).Pow)
}

// FloorDiv returns a set holding the componentwise floored quotient,
// entrywise.
func (ns *NetworkSet) FloorDiv(other Operand) (*NetworkSet, error) {
	return ns.combine("networkset.FloorDiv", other, (*network.Network).FloorDiv)
}
