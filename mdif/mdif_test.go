package mdif_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/mdif"
	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
)

// sweepSet builds a two-element 2-port set with named elements.
func sweepSet(t *testing.T) *networkset.NetworkSet {
	t.Helper()
	f, err := frequency.NewLinear(1, 2, 2, frequency.GHz)
	require.NoError(t, err, "frequency axis must build")

	elements := make([]*network.Network, 2)
	for i := range elements {
		s := make([]complex128, 2*2*2)
		for k := range s {
			s[k] = complex(0.1*float64(i+1), 0)
		}
		el, err := network.FromS(f, s, 2, network.WithName([]string{"cold", "hot"}[i]))
		require.NoError(t, err, "element %d must build", i)
		elements[i] = el
	}

	ns, err := networkset.New(elements)
	require.NoError(t, err, "set must build")
	return ns
}

// TestWrite_DefaultNameVariable checks the default layout: one string VAR per
// element plus an ACDATA block with the 2-port column header.
func TestWrite_DefaultNameVariable(t *testing.T) {
	ns := sweepSet(t)

	var buf bytes.Buffer
	require.NoError(t, mdif.Write(&buf, ns), "write must succeed")
	out := buf.String()

	assert.Contains(t, out, `VAR name(2) = "cold"`, "first element variable expected")
	assert.Contains(t, out, `VAR name(2) = "hot"`, "second element variable expected")
	assert.Contains(t, out, "%F n11x n11y n21x n21y n12x n12y n22x n22y",
		"2-port column header expected")
	assert.Equal(t, 2, strings.Count(out, "BEGIN ACDATA"), "one data block per element")
	assert.Equal(t, 2, strings.Count(out, "END\n"), "each block must be closed")
	assert.Contains(t, out, "! network name: cold", "per-element banner expected")
}

// TestWrite_CustomVariables checks explicit sweep variables, type codes, and
// the double default for untyped variables.
func TestWrite_CustomVariables(t *testing.T) {
	ns := sweepSet(t)

	var buf bytes.Buffer
	err := mdif.Write(&buf, ns,
		mdif.WithValues(map[string][]any{"temp": {77, 300}, "bias": {0.5, 1.5}}),
		mdif.WithTypes(map[string]string{"temp": "int"}),
		mdif.WithComments([]string{"cryo sweep"}),
	)
	require.NoError(t, err, "write must succeed")
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "! cryo sweep\n"), "comment must lead the file")
	assert.Contains(t, out, "VAR temp(0) = 77", "int variable uses code 0")
	assert.Contains(t, out, "VAR bias(1) = 0.5", "untyped variable defaults to double")
}

// TestWrite_ThreePortHeader wraps the column header after each matrix row.
func TestWrite_ThreePortHeader(t *testing.T) {
	f, err := frequency.NewLinear(1, 2, 2, frequency.GHz)
	require.NoError(t, err, "frequency axis must build")
	el, err := network.New(f, 3, network.WithName("tee"))
	require.NoError(t, err, "element must build")
	ns, err := networkset.New([]*network.Network{el})
	require.NoError(t, err, "set must build")

	var buf bytes.Buffer
	require.NoError(t, mdif.Write(&buf, ns), "write must succeed")

	assert.Contains(t, buf.String(), "%F n11x n11y n12x n12y n13x n13y \nn21x",
		"three-port header breaks after each row")
}

// TestWrite_Errors exercises the validation paths.
func TestWrite_Errors(t *testing.T) {
	ns := sweepSet(t)

	var buf bytes.Buffer
	err := mdif.Write(&buf, ns, mdif.WithValues(map[string][]any{"temp": {77}}))
	assert.ErrorIs(t, err, mdif.ErrValueCount, "short value slice must fail")

	err = mdif.Write(&buf, ns,
		mdif.WithValues(map[string][]any{"temp": {77, 300}}),
		mdif.WithTypes(map[string]string{"temp": "float"}),
	)
	assert.ErrorIs(t, err, mdif.ErrBadType, "unknown type must fail")

	empty, nerr := networkset.New(nil)
	require.NoError(t, nerr, "empty set is legal to build")
	assert.ErrorIs(t, mdif.Write(&buf, empty), mdif.ErrEmptySet, "empty set must fail")
}

// TestWrite_UnnamedElement rejects the default name variable when an element
// has no name.
func TestWrite_UnnamedElement(t *testing.T) {
	f, err := frequency.NewLinear(1, 2, 2, frequency.GHz)
	require.NoError(t, err, "frequency axis must build")
	el, err := network.New(f, 1)
	require.NoError(t, err, "element must build")
	ns, err := networkset.New([]*network.Network{el})
	require.NoError(t, err, "set must build")

	var buf bytes.Buffer
	assert.ErrorIs(t, mdif.Write(&buf, ns), mdif.ErrUnnamedElement,
		"unnamed elements cannot use the name variable")
}
