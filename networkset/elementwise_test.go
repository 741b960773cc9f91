package networkset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/interp"
	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
	"github.com/katalvlaran/rfset/touchstone"
)

// TestElementWise applies an arbitrary transform to every element.
func TestElementWise(t *testing.T) {
	ns := uniformSet(t, 1, 2)

	doubled, err := ns.ElementWise(func(n *network.Network) (*network.Network, error) {
		return n.Scale(2), nil
	})
	require.NoError(t, err, "transform must succeed")
	assert.Equal(t, complex128(2), at00(t, doubled.Element(0)), "1*2")
	assert.Equal(t, complex128(4), at00(t, doubled.Element(1)), "2*2")
	assert.Equal(t, complex128(1), at00(t, ns.Element(0)), "receiver must be intact")

	boom := errors.New("boom")
	_, err = ns.ElementWise(func(*network.Network) (*network.Network, error) { return nil, boom })
	assert.ErrorIs(t, err, boom, "the op error must surface")
}

// TestResampleFrequency_Set moves every element onto a new grid.
func TestResampleFrequency_Set(t *testing.T) {
	ns := uniformSet(t, 1, 3)
	target, err := frequency.NewLinear(1.25, 1.75, 3, frequency.GHz)
	require.NoError(t, err, "target axis must build")

	out, err := ns.ResampleFrequency(target, interp.Linear)
	require.NoError(t, err, "resampling must succeed")
	require.Equal(t, 2, out.Len(), "element count is preserved")
	assert.Equal(t, 3, out.Element(0).NFreq(), "elements carry the target grid")
	assert.InDelta(t, 1, real(at00(t, out.Element(0))), 1e-12,
		"uniform data survives any resampling")
}

// TestWriteTouchstone_Dir writes one .sNp file per named element.
func TestWriteTouchstone_Dir(t *testing.T) {
	f := testFreq(t)
	ns, err := networkset.New([]*network.Network{
		uniform(t, f, 0.25, network.WithName("cold")),
		uniform(t, f, 0.75, network.WithName("hot")),
	})
	require.NoError(t, err, "set must build")

	dir := t.TempDir()
	require.NoError(t, ns.WriteTouchstone(dir), "directory write must succeed")

	for _, name := range []string{"cold.s2p", "hot.s2p"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, "%s must exist", name)
	}

	back, err := touchstone.ReadFile(filepath.Join(dir, "cold.s2p"))
	require.NoError(t, err, "written file must read back")
	assert.True(t, back.Equal(ns.Element(0)), "round trip must preserve data")
}

// TestWriteTouchstone_Errors rejects unnamed and colliding elements before
// writing anything.
func TestWriteTouchstone_Errors(t *testing.T) {
	f := testFreq(t)
	dir := t.TempDir()

	anon, err := networkset.New([]*network.Network{uniform(t, f, 1)})
	require.NoError(t, err, "set must build")
	assert.ErrorIs(t, anon.WriteTouchstone(dir), networkset.ErrUnnamedElement,
		"unnamed elements have no file name")

	dup, err := networkset.New([]*network.Network{
		uniform(t, f, 1, network.WithName("x")),
		uniform(t, f, 2, network.WithName("x")),
	})
	require.NoError(t, err, "set must build")
	assert.ErrorIs(t, dup.WriteTouchstone(dir), networkset.ErrDuplicateName,
		"colliding names would overwrite silently")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr, "directory must be listable")
	assert.Empty(t, entries, "failed writes must not leave files behind")
}

// capturePlotter records every network handed to it.
type capturePlotter struct {
	networks   []*network.Network
	attributes []string
}

func (p *capturePlotter) PlotNetwork(n *network.Network, attribute string) error {
	p.networks = append(p.networks, n)
	p.attributes = append(p.attributes, attribute)
	return nil
}

// TestPlot hands every element to the plotter in set order.
func TestPlot(t *testing.T) {
	f := testFreq(t)
	ns, err := networkset.New([]*network.Network{
		uniform(t, f, 0.1),
		uniform(t, f, 0.3),
	}, networkset.WithName("sweep"))
	require.NoError(t, err, "set must build")

	var p capturePlotter
	require.NoError(t, ns.Plot(&p, "s_mag"), "plot must succeed")

	require.Len(t, p.networks, 2, "one callback per element")
	assert.Same(t, ns.Element(0), p.networks[0], "elements arrive in set order")
	assert.Equal(t, "s_mag", p.attributes[0], "the attribute name is forwarded")

	assert.ErrorIs(t, ns.Plot(nil, "s_mag"), networkset.ErrBadOperand, "nil plotter must fail")
	assert.ErrorIs(t, ns.Plot(&p, "bogus"), network.ErrUnknownAttribute,
		"the attribute is validated before any callback")
}
