package networkset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
)

// testFreq returns the shared 5-point 1-2 GHz axis.
func testFreq(t *testing.T) *frequency.Frequency {
	t.Helper()
	f, err := frequency.NewLinear(1, 2, 5, frequency.GHz)
	require.NoError(t, err, "frequency axis must build")
	return f
}

// uniform builds a 2-port network whose every scattering entry equals v.
func uniform(t *testing.T, f *frequency.Frequency, v complex128, opts ...network.Option) *network.Network {
	t.Helper()
	s := make([]complex128, f.Len()*2*2)
	for k := range s {
		s[k] = v
	}
	n, err := network.FromS(f, s, 2, opts...)
	require.NoError(t, err, "uniform network must build")
	return n
}

// uniformSet builds a set of uniform 2-port networks with the given real
// scattering values.
func uniformSet(t *testing.T, vals ...float64) *networkset.NetworkSet {
	t.Helper()
	f := testFreq(t)
	elements := make([]*network.Network, len(vals))
	for i, v := range vals {
		elements[i] = uniform(t, f, complex(v, 0))
	}
	ns, err := networkset.New(elements)
	require.NoError(t, err, "uniform set must build")
	return ns
}

// TestNew_Validation rejects nil elements and heterogeneous collections.
func TestNew_Validation(t *testing.T) {
	f := testFreq(t)
	a := uniform(t, f, 1)

	_, err := networkset.New([]*network.Network{a, nil})
	assert.ErrorIs(t, err, networkset.ErrNilElement, "nil element must be rejected")

	onePort, perr := network.New(f, 1)
	require.NoError(t, perr, "1-port network must build")
	_, err = networkset.New([]*network.Network{a, onePort})
	assert.ErrorIs(t, err, networkset.ErrPortsMismatch, "port counts must match")

	other, ferr := frequency.NewLinear(1, 3, 5, frequency.GHz)
	require.NoError(t, ferr, "alternate axis must build")
	_, err = networkset.New([]*network.Network{a, uniform(t, other, 1)})
	assert.ErrorIs(t, err, networkset.ErrFrequencyMismatch, "frequency grids must match")
}

// TestNew_EmptyAndOrder accepts empty input and keeps element order.
func TestNew_EmptyAndOrder(t *testing.T) {
	empty, err := networkset.New(nil)
	require.NoError(t, err, "empty set is legal")
	assert.Equal(t, 0, empty.Len(), "empty set has zero elements")

	f := testFreq(t)
	a := uniform(t, f, 1, network.WithName("a"))
	b := uniform(t, f, 2, network.WithName("b"))
	ns, err := networkset.New([]*network.Network{b, a})
	require.NoError(t, err, "set must build")
	assert.Equal(t, "b", ns.Element(0).Name(), "input order must be preserved")
	assert.Equal(t, "a", ns.Element(1).Name(), "input order must be preserved")
}

// TestDimsCoords extracts sorted dimensions and distinct coordinates from
// tagged elements, and leaves them empty for untagged sets.
func TestDimsCoords(t *testing.T) {
	f := testFreq(t)
	mk := func(temp int, bias float64) *network.Network {
		return uniform(t, f, 1, network.WithParams(map[string]any{"temp": temp, "bias": bias}))
	}
	ns, err := networkset.New([]*network.Network{mk(77, 0.5), mk(300, 0.5), mk(77, 1.5)})
	require.NoError(t, err, "tagged set must build")

	assert.Equal(t, []string{"bias", "temp"}, ns.Dims(), "dims must be sorted")
	coords := ns.Coords()
	require.NotNil(t, coords, "tagged set must expose coords")
	assert.ElementsMatch(t, []any{77, 300}, coords["temp"], "distinct temps expected")
	assert.ElementsMatch(t, []any{0.5, 1.5}, coords["bias"], "distinct biases expected")

	plain := uniformSet(t, 1, 2)
	assert.Empty(t, plain.Dims(), "untagged set has no dims")
	assert.Nil(t, plain.Coords(), "untagged set has nil coords")
}

// TestFromMap fixes element order by sorted key and names unnamed elements
// after their keys without touching the caller's networks.
func TestFromMap(t *testing.T) {
	f := testFreq(t)
	anon := uniform(t, f, 1)
	named := uniform(t, f, 2, network.WithName("kept"))

	ns, err := networkset.FromMap(map[string]*network.Network{"zz": named, "aa": anon})
	require.NoError(t, err, "map construction must succeed")
	require.Equal(t, 2, ns.Len(), "both entries expected")

	assert.Equal(t, "aa", ns.Element(0).Name(), "unnamed element takes its key, keys sorted")
	assert.Equal(t, "kept", ns.Element(1).Name(), "existing names win over keys")
	assert.Equal(t, "", anon.Name(), "caller's network must not be renamed")
}

// TestFromSDict builds named elements from flat buffers on a shared grid.
func TestFromSDict(t *testing.T) {
	f := testFreq(t)
	flat := func(v complex128) []complex128 {
		s := make([]complex128, f.Len()*2*2)
		for k := range s {
			s[k] = v
		}
		return s
	}

	ns, err := networkset.FromSDict(f, map[string][]complex128{"lo": flat(1), "hi": flat(2)}, 2)
	require.NoError(t, err, "s-dict construction must succeed")
	require.Equal(t, 2, ns.Len(), "both entries expected")
	assert.Equal(t, "hi", ns.Element(0).Name(), "keys must be sorted")

	_, err = networkset.FromSDict(f, map[string][]complex128{"bad": flat(1)[:3]}, 2)
	assert.ErrorIs(t, err, network.ErrShapeMismatch, "short buffer must be rejected")
}

// TestToSDict inverts FromSDict and copies the scattering buffers out.
func TestToSDict(t *testing.T) {
	f := testFreq(t)
	flat := func(v complex128) []complex128 {
		s := make([]complex128, f.Len()*2*2)
		for k := range s {
			s[k] = v
		}
		return s
	}
	in := map[string][]complex128{"lo": flat(1), "hi": flat(2)}

	ns, err := networkset.FromSDict(f, in, 2)
	require.NoError(t, err, "s-dict construction must succeed")
	d, err := ns.ToSDict()
	require.NoError(t, err, "named set must export")
	require.Len(t, d, 2, "one buffer per element")
	assert.Equal(t, in["lo"], d["lo"], "buffers must round-trip")
	assert.Equal(t, in["hi"], d["hi"], "buffers must round-trip")

	// Keys sort lexicographically, so element 1 is "lo".
	d["lo"][0] = 99
	assert.Equal(t, complex128(1), ns.Element(1).S()[0], "exported buffers must be copies")

	anon, err := networkset.New([]*network.Network{uniform(t, f, 1)})
	require.NoError(t, err, "set must build")
	_, err = anon.ToSDict()
	assert.ErrorIs(t, err, networkset.ErrUnnamedElement, "unnamed elements cannot export")
}

// TestToMap round-trips names and rejects unnamed or colliding elements.
func TestToMap(t *testing.T) {
	f := testFreq(t)
	ns, err := networkset.New([]*network.Network{
		uniform(t, f, 1, network.WithName("a")),
		uniform(t, f, 2, network.WithName("b")),
	})
	require.NoError(t, err, "set must build")

	m, err := ns.ToMap()
	require.NoError(t, err, "named set must map")
	assert.Len(t, m, 2, "one entry per element")
	assert.Same(t, ns.Element(0), m["a"], "map must reference the stored element")

	anon, err := networkset.New([]*network.Network{uniform(t, f, 1)})
	require.NoError(t, err, "set must build")
	_, err = anon.ToMap()
	assert.ErrorIs(t, err, networkset.ErrUnnamedElement, "unnamed elements cannot map")

	dup, err := networkset.New([]*network.Network{
		uniform(t, f, 1, network.WithName("x")),
		uniform(t, f, 2, network.WithName("x")),
	})
	require.NoError(t, err, "set must build")
	_, err = dup.ToMap()
	assert.ErrorIs(t, err, networkset.ErrDuplicateName, "colliding names cannot map")
}

// TestCopy isolates the copy's data from the original.
func TestCopy(t *testing.T) {
	ns := uniformSet(t, 1, 2)
	cp := ns.Copy()
	require.True(t, cp.Equal(ns), "copy must start equal")

	require.NoError(t, cp.Element(0).Set(0, 0, 0, complex(9, 9)), "mutating the copy must work")
	assert.False(t, cp.Equal(ns), "mutation must not reach the original")

	v, err := ns.Element(0).At(0, 0, 0)
	require.NoError(t, err, "original entry must exist")
	assert.Equal(t, complex128(1), v, "original data must be intact")
}

// TestSortFilter sorts by name without touching the receiver in Sorted, and
// filters by substring.
func TestSortFilter(t *testing.T) {
	f := testFreq(t)
	ns, err := networkset.New([]*network.Network{
		uniform(t, f, 1, network.WithName("dut_300K")),
		uniform(t, f, 2, network.WithName("cal_77K")),
		uniform(t, f, 3, network.WithName("dut_77K")),
	})
	require.NoError(t, err, "set must build")

	sorted := ns.Sorted(networkset.ByName)
	assert.Equal(t, "cal_77K", sorted.Element(0).Name(), "sorted order expected")
	assert.Equal(t, "dut_300K", ns.Element(0).Name(), "receiver must be untouched")

	ns.Sort(networkset.ByName)
	assert.Equal(t, "cal_77K", ns.Element(0).Name(), "in-place sort must reorder")

	dut := ns.Filter("dut")
	require.Equal(t, 2, dut.Len(), "two dut elements expected")
	assert.Equal(t, "dut_300K", dut.Element(0).Name(), "filter must preserve order")
}

// TestRand samples with replacement from the set.
func TestRand(t *testing.T) {
	ns := uniformSet(t, 1, 2, 3)
	picks, err := ns.Rand(10)
	require.NoError(t, err, "sampling a populated set must succeed")
	require.Len(t, picks, 10, "requested sample size expected")
	for i, p := range picks {
		assert.NotNil(t, p, "pick %d must reference a member", i)
	}

	none, err := ns.Rand(0)
	require.NoError(t, err, "zero samples are a valid request")
	assert.Empty(t, none, "zero samples yield an empty slice")
}

// TestRand_Errors rejects sampling from an empty set and negative counts.
func TestRand_Errors(t *testing.T) {
	empty, err := networkset.New(nil)
	require.NoError(t, err, "empty set must build")
	_, err = empty.Rand(1)
	assert.ErrorIs(t, err, networkset.ErrEmptySet, "nothing to sample from")

	ns := uniformSet(t, 1, 2)
	_, err = ns.Rand(-1)
	assert.ErrorIs(t, err, networkset.ErrBadSampleCount, "negative count must be rejected")
}

// TestInv inverts every element.
func TestInv(t *testing.T) {
	f := testFreq(t)
	// Diagonal scattering matrices invert entrywise on the diagonal.
	s := make([]complex128, f.Len()*2*2)
	for fi := 0; fi < f.Len(); fi++ {
		s[fi*4+0] = 2
		s[fi*4+3] = 4
	}
	el, err := network.FromS(f, s, 2)
	require.NoError(t, err, "element must build")
	ns, err := networkset.New([]*network.Network{el})
	require.NoError(t, err, "set must build")

	inv, err := ns.Inv()
	require.NoError(t, err, "inversion must succeed")
	v, err := inv.Element(0).At(0, 0, 0)
	require.NoError(t, err, "entry must exist")
	assert.InDelta(t, 0.5, real(v), 1e-12, "diagonal inverse expected")
}
