package networkset

import "github.com/katalvlaran/rfset/network"

// Parameter indexing and selection.
//
// Every element may carry a params tag map (numeric or categorical values).
// Sel implements the deliberate soft-failure policy: an unknown dimension or
// an empty match yields an empty set, never an error. Interpolation entry
// points (interpolate.go) are the hard-failure counterpart.

// Selector maps a parameter name to its allowed candidate values. A scalar
// match is a single-candidate slice: Selector{"bias": {1.5}}; a range match
// lists every acceptable value: Selector{"bias": {1.0, 1.5}}.
type Selector map[string][]any

// Scalar wraps a single candidate value, for the common exact-match case:
// Selector{"temp": Scalar(77)}.
func Scalar(v any) []any { return []any{v} }

// HasParams reports whether every element carries a params map of identical
// length and key set to element 0's. An empty set has no params.
func (ns *NetworkSet) HasParams() bool {
	if len(ns.elements) == 0 {
		return false
	}
	first := ns.elements[0].Params()
	if first == nil {
		return false
	}
	for _, el := range ns.elements[1:] {
		p := el.Params()
		if p == nil || len(p) != len(first) {
			return false
		}
		for k := range first {
			if _, ok := p[k]; !ok {
				return false
			}
		}
	}
	return true
}

// Sel retains exactly the elements whose params match every indexer key
// (logical AND across keys, membership across candidate values), preserving
// original relative order.
//
// Policy (never an error):
//   - nil or empty indexers: a full deep copy of the set;
//   - elements without uniform params: empty set;
//   - any indexer key absent from the set's dimensions: empty set;
//   - no matching element: empty set.
func (ns *NetworkSet) Sel(indexers Selector) *NetworkSet {
	if len(indexers) == 0 {
		return ns.Copy()
	}
	if !ns.HasParams() {
		return wrap(nil, ns.name)
	}
	for key := range indexers {
		if !ns.hasDim(key) {
			return wrap(nil, ns.name)
		}
	}

	var matched []*network.Network
	for _, el := range ns.elements {
		if selectorMatches(el.Params(), indexers) {
			matched = append(matched, el)
		}
	}
	return wrap(matched, ns.name)
}

// hasDim reports whether key is one of the set's dimensions.
func (ns *NetworkSet) hasDim(key string) bool {
	for _, d := range ns.dims {
		if d == key {
			return true
		}
	}
	return false
}

// hasCoord reports whether value appears among the catalogued coordinates of
// the dimension key.
func (ns *NetworkSet) hasCoord(key string, value any) bool {
	for _, c := range ns.coords[key] {
		if paramEqual(c, value) {
			return true
		}
	}
	return false
}

// selectorMatches reports whether params satisfies every indexer entry.
func selectorMatches(params map[string]any, indexers Selector) bool {
	for key, candidates := range indexers {
		v, ok := params[key]
		if !ok {
			return false
		}
		found := false
		for _, c := range candidates {
			if paramEqual(v, c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// paramEqual compares two tag values. Numeric values compare by magnitude
// across Go types (an int 10 equals a float64 10.0, as callers deserializing
// manifests expect); everything else uses Go equality. Values are documented
// as comparable, so == cannot panic here for catalogued inputs.
func paramEqual(a, b any) bool {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		return fa == fb
	}
	if aok != bok {
		return false
	}
	return a == b
}

// toFloat widens any Go numeric tag value to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
