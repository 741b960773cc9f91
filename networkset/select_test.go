package networkset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
)

// taggedSet builds a 2x2 sweep over temp {77, 300} and bias {0.5, 1.5}.
func taggedSet(t *testing.T) *networkset.NetworkSet {
	t.Helper()
	f := testFreq(t)
	var elements []*network.Network
	v := 1.0
	for _, temp := range []int{77, 300} {
		for _, bias := range []float64{0.5, 1.5} {
			elements = append(elements, uniform(t, f, complex(v, 0),
				network.WithParams(map[string]any{"temp": temp, "bias": bias})))
			v++
		}
	}
	ns, err := networkset.New(elements)
	require.NoError(t, err, "tagged set must build")
	return ns
}

// TestHasParams distinguishes fully tagged sets from partial or untagged ones.
func TestHasParams(t *testing.T) {
	assert.True(t, taggedSet(t).HasParams(), "full sweep is tagged")
	assert.False(t, uniformSet(t, 1, 2).HasParams(), "untagged set has no params")

	empty, err := networkset.New(nil)
	require.NoError(t, err, "empty set is legal")
	assert.False(t, empty.HasParams(), "empty set has no params")

	f := testFreq(t)
	mixed, err := networkset.New([]*network.Network{
		uniform(t, f, 1, network.WithParams(map[string]any{"temp": 77})),
		uniform(t, f, 2),
	})
	require.NoError(t, err, "mixed set must build")
	assert.False(t, mixed.HasParams(), "partial tagging does not count")
}

// TestSel_SingleKey narrows on one dimension, preserving order.
func TestSel_SingleKey(t *testing.T) {
	ns := taggedSet(t)

	cold := ns.Sel(networkset.Selector{"temp": {77}})
	require.Equal(t, 2, cold.Len(), "two cold elements expected")
	assert.Equal(t, complex128(1), at00(t, cold.Element(0)), "sweep order preserved")
	assert.Equal(t, complex128(2), at00(t, cold.Element(1)), "sweep order preserved")
}

// TestSel_MultiValueAndKeys ORs candidate values within a key and ANDs
// across keys.
func TestSel_MultiValueAndKeys(t *testing.T) {
	ns := taggedSet(t)

	both := ns.Sel(networkset.Selector{"temp": {77, 300}})
	assert.Equal(t, 4, both.Len(), "values within a key are alternatives")

	one := ns.Sel(networkset.Selector{"temp": {300}, "bias": {1.5}})
	require.Equal(t, 1, one.Len(), "keys must all match")
	assert.Equal(t, complex128(4), at00(t, one.Element(0)), "hot high-bias element expected")
}

// TestSel_SoftFailure returns empty sets instead of errors for unknown keys,
// unmatched values, and untagged sets.
func TestSel_SoftFailure(t *testing.T) {
	ns := taggedSet(t)

	assert.Equal(t, 0, ns.Sel(networkset.Selector{"humidity": {40}}).Len(),
		"unknown key selects nothing")
	assert.Equal(t, 0, ns.Sel(networkset.Selector{"temp": {42}}).Len(),
		"unmatched value selects nothing")
	assert.Equal(t, 0, uniformSet(t, 1, 2).Sel(networkset.Selector{"temp": {77}}).Len(),
		"untagged set selects nothing")
}

// TestSel_EmptySelector copies the whole set.
func TestSel_EmptySelector(t *testing.T) {
	ns := taggedSet(t)
	all := ns.Sel(networkset.Selector{})
	assert.Equal(t, ns.Len(), all.Len(), "empty selector keeps everything")
	assert.True(t, all.Equal(ns), "selection must preserve the data")
}

// TestSel_NumericCoercion matches int tags against float candidates.
func TestSel_NumericCoercion(t *testing.T) {
	ns := taggedSet(t)

	cold := ns.Sel(networkset.Selector{"temp": {77.0}})
	assert.Equal(t, 2, cold.Len(), "float 77.0 must match int 77")

	low := ns.Sel(networkset.Selector{"bias": {float32(0.5)}})
	assert.Equal(t, 2, low.Len(), "float32 0.5 must match float64 0.5")
}
