package networkset

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/interp"
	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/touchstone"
)

// ElementWise applies op to every element and wraps the results in a new set.
// The receiver is never mutated; op receives the stored element and must not
// modify it (the network operator methods already copy). Element order, the
// set name, and the parameter tagging survive the pass as long as op
// preserves each element's name and parameters.
//
// Errors: ErrEmptySet, or the first op failure wrapped with the element index.
func (ns *NetworkSet) ElementWise(op func(*network.Network) (*network.Network, error)) (*NetworkSet, error) {
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}
	out := make([]*network.Network, len(ns.elements))
	for i, el := range ns.elements {
		res, err := op(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if res == nil {
			return nil, fmt.Errorf("element %d: %w", i, ErrNilElement)
		}
		out[i] = res
	}
	// op may reshape its results; revalidate instead of trusting the caller.
	return New(out, WithName(ns.name))
}

// ResampleFrequency interpolates every element onto the target grid and
// returns the resampled set.
func (ns *NetworkSet) ResampleFrequency(target *frequency.Frequency, kind interp.Kind) (*NetworkSet, error) {
	return ns.ElementWise(func(n *network.Network) (*network.Network, error) {
		return n.ResampleFrequency(target, kind)
	})
}

// WriteTouchstone writes each element as <name>.s<N>p under dir. Unnamed
// elements are rejected so files never collide silently; duplicate names are
// rejected for the same reason.
func (ns *NetworkSet) WriteTouchstone(dir string) error {
	if len(ns.elements) == 0 {
		return ErrEmptySet
	}
	seen := make(map[string]struct{}, len(ns.elements))
	for i, el := range ns.elements {
		if el.Name() == "" {
			return fmt.Errorf("element %d: %w", i, ErrUnnamedElement)
		}
		if _, dup := seen[el.Name()]; dup {
			return fmt.Errorf("element %d (%q): %w", i, el.Name(), ErrDuplicateName)
		}
		seen[el.Name()] = struct{}{}
	}
	for i, el := range ns.elements {
		path := filepath.Join(dir, fmt.Sprintf("%s.s%dp", el.Name(), el.NPorts()))
		if err := touchstone.WriteFile(path, el); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// Plotter is the injection point for external visualization layers. The set
// never renders anything itself.
type Plotter interface {
	// PlotNetwork receives one element (in set order) and the attribute name
	// being plotted.
	PlotNetwork(n *network.Network, attribute string) error
}

// Plot validates the attribute and hands every element to p in order.
// Rendering choices (overlay, bounds shading, axes) belong to the Plotter.
func (ns *NetworkSet) Plot(p Plotter, attribute string) error {
	if p == nil {
		return ErrBadOperand
	}
	if len(ns.elements) == 0 {
		return ErrEmptySet
	}
	if !network.ValidAttribute(attribute) {
		return fmt.Errorf("%q: %w", attribute, network.ErrUnknownAttribute)
	}
	for i, el := range ns.elements {
		if err := p.PlotNetwork(el, attribute); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
