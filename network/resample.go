package network

import (
	"fmt"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/interp"
)

// ResampleFrequency interpolates the network onto a new frequency axis.
// Each (i, j) entry is treated as a 1-D complex function of frequency and
// evaluated at every target point (real and imaginary parts independently).
//
// Target points outside the source span extrapolate per the interp kernel's
// boundary policy; callers who need a guard should compare axes first.
//
// Errors: ErrNilFrequency; interp axis errors (e.g. interp.ErrTooFewPoints
// when the source grid is shorter than the kind's minimum).
func (n *Network) ResampleFrequency(target *frequency.Frequency, kind interp.Kind) (*Network, error) {
	if target == nil {
		return nil, ErrNilFrequency
	}

	axis, err := interp.NewAxis(n.freq.Points(), kind)
	if err != nil {
		return nil, fmt.Errorf("ResampleFrequency: %w", err)
	}

	out := n.Copy()
	out.freq = target
	out.data = make([]complex128, target.Len()*n.nports*n.nports)

	nf := n.freq.Len()
	pp := n.nports * n.nports
	re := make([]float64, nf)
	im := make([]float64, nf)
	targetPts := target.Points()

	for cell := 0; cell < pp; cell++ {
		// Gather this cell's trace across the source axis.
		for f := 0; f < nf; f++ {
			v := n.data[f*pp+cell]
			re[f] = real(v)
			im[f] = imag(v)
		}
		for tf, x := range targetPts {
			vr, err := axis.Eval(re, x)
			if err != nil {
				return nil, fmt.Errorf("ResampleFrequency: %w", err)
			}
			vi, err := axis.Eval(im, x)
			if err != nil {
				return nil, fmt.Errorf("ResampleFrequency: %w", err)
			}
			out.data[tf*pp+cell] = complex(vr, vi)
		}
	}
	return out, nil
}
