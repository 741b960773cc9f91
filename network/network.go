package network

import (
	"fmt"

	"github.com/katalvlaran/rfset/frequency"
)

// DefaultZ0 is the reference impedance assumed when WithZ0 is not given.
const DefaultZ0 = complex(50, 0)

// Option configures optional Network metadata at construction time.
type Option func(*Network)

// WithName attaches an identifier to the network.
func WithName(name string) Option {
	return func(n *Network) { n.name = name }
}

// WithParams attaches parameter tags describing where this network sits along
// experiment dimensions (numeric or categorical values). The map is copied.
// Values must be comparable with ==; numeric values additionally enable
// parameter-axis interpolation.
func WithParams(params map[string]any) Option {
	return func(n *Network) {
		if params == nil {
			n.params = nil
			return
		}
		cp := make(map[string]any, len(params))
		for k, v := range params {
			cp[k] = v
		}
		n.params = cp
	}
}

// WithZ0 sets the reference impedance used by the z and y views.
func WithZ0(z0 complex128) Option {
	return func(n *Network) { n.z0 = z0 }
}

// Network is one n-port frequency-domain measurement or model: a complex
// scattering matrix per frequency point, stored as a flat row-major buffer of
// shape (F, P, P).
type Network struct {
	freq   *frequency.Frequency
	nports int
	data   []complex128 // len == F*P*P; (f,i,j) at f*P*P + i*P + j
	z0     complex128
	name   string
	params map[string]any // nil when untagged
}

// New builds a zero-filled network on the given frequency axis.
//
// Errors: ErrNilFrequency, ErrBadPorts.
func New(freq *frequency.Frequency, nports int, opts ...Option) (*Network, error) {
	if freq == nil {
		return nil, ErrNilFrequency
	}
	if nports < 1 {
		return nil, ErrBadPorts
	}
	n := &Network{
		freq:   freq,
		nports: nports,
		data:   make([]complex128, freq.Len()*nports*nports),
		z0:     DefaultZ0,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// FromS builds a network from an existing flat (F, P, P) buffer. The buffer
// is copied; the input is never retained.
//
// Errors: ErrNilFrequency, ErrBadPorts, ErrShapeMismatch.
func FromS(freq *frequency.Frequency, s []complex128, nports int, opts ...Option) (*Network, error) {
	n, err := New(freq, nports, opts...)
	if err != nil {
		return nil, err
	}
	if len(s) != len(n.data) {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(s), len(n.data))
	}
	copy(n.data, s)
	return n, nil
}

// NPorts returns the port count.
func (n *Network) NPorts() int { return n.nports }

// Frequency returns the frequency axis (shared, immutable).
func (n *Network) Frequency() *frequency.Frequency { return n.freq }

// NFreq returns the number of frequency points.
func (n *Network) NFreq() int { return n.freq.Len() }

// Name returns the optional identifier ("" when unnamed).
func (n *Network) Name() string { return n.name }

// SetName replaces the identifier.
func (n *Network) SetName(name string) { n.name = name }

// Z0 returns the reference impedance.
func (n *Network) Z0() complex128 { return n.z0 }

// Params returns the parameter tags, or nil when the network is untagged.
// The returned map is live; callers must not mutate it while the network is
// a member of a set.
func (n *Network) Params() map[string]any { return n.params }

// index maps (f, i, j) to the flat buffer offset without bounds checks.
func (n *Network) index(f, i, j int) int {
	return f*n.nports*n.nports + i*n.nports + j
}

// At returns S(f, i, j).
//
// Errors: ErrOutOfRange.
func (n *Network) At(f, i, j int) (complex128, error) {
	if f < 0 || f >= n.freq.Len() || i < 0 || i >= n.nports || j < 0 || j >= n.nports {
		return 0, ErrOutOfRange
	}
	return n.data[n.index(f, i, j)], nil
}

// Set writes S(f, i, j).
//
// Errors: ErrOutOfRange.
func (n *Network) Set(f, i, j int, v complex128) error {
	if f < 0 || f >= n.freq.Len() || i < 0 || i >= n.nports || j < 0 || j >= n.nports {
		return ErrOutOfRange
	}
	n.data[n.index(f, i, j)] = v
	return nil
}

// S returns a copy of the flat scattering buffer.
func (n *Network) S() []complex128 {
	out := make([]complex128, len(n.data))
	copy(out, n.data)
	return out
}

// SetS replaces the scattering buffer with a shape-checked copy.
//
// Errors: ErrShapeMismatch.
func (n *Network) SetS(s []complex128) error {
	if len(s) != len(n.data) {
		return fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(s), len(n.data))
	}
	copy(n.data, s)
	return nil
}

// Copy returns a deep copy: fresh buffer, fresh params map. The frequency
// axis is shared (it is immutable).
func (n *Network) Copy() *Network {
	cp := &Network{
		freq:   n.freq,
		nports: n.nports,
		data:   make([]complex128, len(n.data)),
		z0:     n.z0,
		name:   n.name,
	}
	copy(cp.data, n.data)
	if n.params != nil {
		cp.params = make(map[string]any, len(n.params))
		for k, v := range n.params {
			cp.params[k] = v
		}
	}
	return cp
}

// Equal reports exact equality of frequency axis, shape and scattering data.
// Metadata (name, params, z0) does not participate.
func (n *Network) Equal(other *Network) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.nports != other.nports || !n.freq.Equal(other.freq) {
		return false
	}
	for k := range n.data {
		if n.data[k] != other.data[k] {
			return false
		}
	}
	return true
}

// String renders a short description, e.g. "2-port network 'dut' (1-10 GHZ, 101 pts)".
func (n *Network) String() string {
	name := n.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("%d-port network '%s' (%s)", n.nports, name, n.freq)
}
