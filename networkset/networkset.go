package networkset

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
)

// Option configures optional NetworkSet metadata at construction time.
type Option func(*NetworkSet)

// WithName attaches a display name; reduction results inherit it.
func WithName(name string) Option {
	return func(ns *NetworkSet) { ns.name = name }
}

// NetworkSet is an order-preserving collection of homogeneous networks:
// identical port count, identical frequency grid. Elements are referenced,
// not copied; callers must not mutate an element while reductions need to
// stay reproducible.
type NetworkSet struct {
	elements []*network.Network
	name     string

	// dims holds the parameter names of element 0, sorted. Empty when the
	// first element is untagged (or the set is empty).
	dims []string

	// coords maps each dimension to its distinct observed values across all
	// elements, in first-seen order. nil (not an empty map) when element 0
	// is untagged; callers branch on this.
	coords map[string][]any
}

// New validates and wraps a collection of networks. The slice is stored
// verbatim: no copy, no reorder.
//
// Errors:
//   - ErrNilElement: any nil element.
//   - ErrPortsMismatch: differing port counts.
//   - ErrFrequencyMismatch: any grid not Equal to element 0's.
//
// An empty input is legal and yields an empty set.
func New(elements []*network.Network, opts ...Option) (*NetworkSet, error) {
	for i, el := range elements {
		if el == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilElement, i)
		}
	}
	if len(elements) > 0 {
		first := elements[0]
		for i, el := range elements[1:] {
			if el.NPorts() != first.NPorts() {
				return nil, fmt.Errorf("%w: element %d has %d ports, element 0 has %d",
					ErrPortsMismatch, i+1, el.NPorts(), first.NPorts())
			}
			if !el.Frequency().Equal(first.Frequency()) {
				return nil, fmt.Errorf("%w: element %d", ErrFrequencyMismatch, i+1)
			}
		}
	}

	ns := wrap(elements, "")
	for _, opt := range opts {
		opt(ns)
	}
	return ns, nil
}

// wrap builds a set without revalidation, for internal use where homogeneity
// is already guaranteed (selection, broadcasting, elementwise results).
// dims/coords are recomputed: derived state is cheap and must track the
// actual members.
func wrap(elements []*network.Network, name string) *NetworkSet {
	ns := &NetworkSet{elements: elements, name: name}
	ns.extractCoordinates()
	return ns
}

// extractCoordinates populates dims and coords from the current members.
func (ns *NetworkSet) extractCoordinates() {
	ns.dims = nil
	ns.coords = nil
	if len(ns.elements) == 0 || ns.elements[0].Params() == nil {
		return
	}

	params0 := ns.elements[0].Params()
	ns.dims = make([]string, 0, len(params0))
	for k := range params0 {
		ns.dims = append(ns.dims, k)
	}
	sort.Strings(ns.dims)

	ns.coords = make(map[string][]any, len(ns.dims))
	for _, dim := range ns.dims {
		var distinct []any
		for _, el := range ns.elements {
			p := el.Params()
			if p == nil {
				continue
			}
			v, ok := p[dim]
			if !ok {
				continue
			}
			seen := false
			for _, d := range distinct {
				if paramEqual(d, v) {
					seen = true
					break
				}
			}
			if !seen {
				distinct = append(distinct, v)
			}
		}
		ns.coords[dim] = distinct
	}
}

// FromMap builds a set from a name→network mapping. Go map iteration is
// randomized, so keys are sorted lexicographically to fix element order. A
// key becomes the element's name when the element is unnamed (the stored
// element is a copy in that case; the caller's network is untouched).
func FromMap(m map[string]*network.Network, opts ...Option) (*NetworkSet, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	elements := make([]*network.Network, 0, len(m))
	for _, k := range keys {
		el := m[k]
		if el != nil && el.Name() == "" {
			el = el.Copy()
			el.SetName(k)
		}
		elements = append(elements, el)
	}
	return New(elements, opts...)
}

// FromSDict builds a set from named flat scattering buffers sharing one grid
// and port count. Keys become element names; order is lexicographic.
func FromSDict(freq *frequency.Frequency, d map[string][]complex128, nports int, opts ...Option) (*NetworkSet, error) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	elements := make([]*network.Network, 0, len(d))
	for _, k := range keys {
		el, err := network.FromS(freq, d[k], nports, network.WithName(k))
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", k, err)
		}
		elements = append(elements, el)
	}
	return New(elements, opts...)
}

// Len returns the number of elements.
func (ns *NetworkSet) Len() int { return len(ns.elements) }

// Name returns the display name ("" when unnamed).
func (ns *NetworkSet) Name() string { return ns.name }

// Element returns the i-th member. Panics on out-of-range i, as slice
// indexing would.
func (ns *NetworkSet) Element(i int) *network.Network { return ns.elements[i] }

// Elements returns a copy of the member slice (the members themselves are
// shared references).
func (ns *NetworkSet) Elements() []*network.Network {
	out := make([]*network.Network, len(ns.elements))
	copy(out, ns.elements)
	return out
}

// Dims returns the sorted parameter names of element 0 (empty when untagged).
func (ns *NetworkSet) Dims() []string {
	out := make([]string, len(ns.dims))
	copy(out, ns.dims)
	return out
}

// Coords returns the distinct observed values per dimension, or nil when
// element 0 carries no params. The distinct-value order is unspecified;
// treat each slice as a set.
func (ns *NetworkSet) Coords() map[string][]any {
	if ns.coords == nil {
		return nil
	}
	out := make(map[string][]any, len(ns.coords))
	for k, v := range ns.coords {
		vs := make([]any, len(v))
		copy(vs, v)
		out[k] = vs
	}
	return out
}

// Copy deep-copies every element into a new set.
func (ns *NetworkSet) Copy() *NetworkSet {
	elements := make([]*network.Network, len(ns.elements))
	for i, el := range ns.elements {
		elements[i] = el.Copy()
	}
	return wrap(elements, ns.name)
}

// Equal reports pairwise, order-sensitive element equality.
func (ns *NetworkSet) Equal(other *NetworkSet) bool {
	if ns == nil || other == nil {
		return ns == other
	}
	if len(ns.elements) != len(other.elements) {
		return false
	}
	for i := range ns.elements {
		if !ns.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// Inv returns the set of per-element matrix inverses.
func (ns *NetworkSet) Inv() (*NetworkSet, error) {
	return ns.ElementWise(func(el *network.Network) (*network.Network, error) { return el.Inv() })
}

// ToMap returns a name→element view of the set.
//
// Errors: ErrUnnamedElement, ErrDuplicateName.
func (ns *NetworkSet) ToMap() (map[string]*network.Network, error) {
	out := make(map[string]*network.Network, len(ns.elements))
	for i, el := range ns.elements {
		name := el.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: index %d", ErrUnnamedElement, i)
		}
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		out[name] = el
	}
	return out, nil
}

// ToSDict returns name→flat scattering buffer, the inverse of FromSDict.
// Buffers are copies; mutating them leaves the set untouched.
//
// Errors: ErrUnnamedElement, ErrDuplicateName.
func (ns *NetworkSet) ToSDict() (map[string][]complex128, error) {
	out := make(map[string][]complex128, len(ns.elements))
	for i, el := range ns.elements {
		name := el.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: index %d", ErrUnnamedElement, i)
		}
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		out[name] = el.S()
	}
	return out, nil
}

// ByName is the default Sort comparator.
func ByName(a, b *network.Network) bool { return a.Name() < b.Name() }

// Sort permutes the backing list in place with a stable sort. This is the
// only mutating operation on a set.
func (ns *NetworkSet) Sort(less func(a, b *network.Network) bool) {
	sort.SliceStable(ns.elements, func(i, j int) bool { return less(ns.elements[i], ns.elements[j]) })
	ns.extractCoordinates()
}

// Sorted returns a new set in sorted order, leaving the receiver untouched.
func (ns *NetworkSet) Sorted(less func(a, b *network.Network) bool) *NetworkSet {
	out := wrap(ns.Elements(), ns.name)
	out.Sort(less)
	return out
}

// Filter retains elements whose name contains substr, preserving order.
func (ns *NetworkSet) Filter(substr string) *NetworkSet {
	var matched []*network.Network
	for _, el := range ns.elements {
		if strings.Contains(el.Name(), substr) {
			matched = append(matched, el)
		}
	}
	return wrap(matched, ns.name)
}

// Rand returns n elements sampled uniformly with replacement. No set
// invariants are involved; the result is a plain slice of shared references.
//
// Errors: ErrBadSampleCount for n < 0, ErrEmptySet when there is nothing to
// sample from.
func (ns *NetworkSet) Rand(n int) ([]*network.Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("%d: %w", n, ErrBadSampleCount)
	}
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}
	out := make([]*network.Network, n)
	for i := range out {
		out[i] = ns.elements[rand.Intn(len(ns.elements))]
	}
	return out, nil
}

// String renders a short description.
func (ns *NetworkSet) String() string {
	name := ns.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("%d-element NetworkSet '%s'", len(ns.elements), name)
}
