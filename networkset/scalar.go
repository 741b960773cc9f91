package networkset

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ScalarMatrix flattens the named attribute into real matrices: one row per
// element, one column pair per port pair. The result has shape
// [nfreq][nelements][2*nports*nports], with real parts in the first
// nports*nports columns and imaginary parts in the second half, both in
// row-major port order. Component views carry zeros in the imaginary half.
//
// Errors: ErrEmptySet plus any attribute materialization error.
func (ns *NetworkSet) ScalarMatrix(attribute string) ([][][]float64, error) {
	if len(ns.elements) == 0 {
		return nil, ErrEmptySet
	}

	n := len(ns.elements)
	stacked := make([][]complex128, n)
	for i, el := range ns.elements {
		vals, err := el.Attribute(attribute)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		stacked[i] = vals
	}

	first := ns.elements[0]
	nf := first.NFreq()
	pp := first.NPorts() * first.NPorts()

	out := make([][][]float64, nf)
	for f := 0; f < nf; f++ {
		rows := make([][]float64, n)
		for i := 0; i < n; i++ {
			row := make([]float64, 2*pp)
			base := f * pp
			for k := 0; k < pp; k++ {
				v := stacked[i][base+k]
				row[k] = real(v)
				row[pp+k] = imag(v)
			}
			rows[i] = row
		}
		out[f] = rows
	}
	return out, nil
}

// Cov returns the sample covariance of the flattened attribute across the
// element axis, one [2*nports*nports][2*nports*nports] matrix per frequency
// point. Covariances use the unbiased (n-1) normalization, so at least two
// elements are required.
func (ns *NetworkSet) Cov(attribute string) ([][][]float64, error) {
	if len(ns.elements) < 2 {
		return nil, fmt.Errorf("covariance needs at least 2 elements, have %d: %w",
			len(ns.elements), ErrTooFewElements)
	}

	mat, err := ns.ScalarMatrix(attribute)
	if err != nil {
		return nil, err
	}

	n := len(ns.elements)
	cols := len(mat[0][0])

	out := make([][][]float64, len(mat))
	colA := make([]float64, n)
	colB := make([]float64, n)
	for f, rows := range mat {
		cov := make([][]float64, cols)
		for a := 0; a < cols; a++ {
			cov[a] = make([]float64, cols)
		}
		for a := 0; a < cols; a++ {
			for b := a; b < cols; b++ {
				for i := 0; i < n; i++ {
					colA[i] = rows[i][a]
					colB[i] = rows[i][b]
				}
				c, err := stats.Covariance(colA, colB)
				if err != nil {
					return nil, err
				}
				cov[a][b] = c
				cov[b][a] = c
			}
		}
		out[f] = cov
	}
	return out, nil
}
