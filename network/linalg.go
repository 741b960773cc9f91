package network

import "math/cmplx"

// Per-frequency linear-algebra kernels over flat p×p complex blocks. These
// back the Inv operation and the z/y attribute views. All loops run in fixed
// row→column order; pivoting selects the largest-magnitude candidate for
// numerical stability and determinism.

// pivotEpsilon is the magnitude below which a pivot is treated as zero.
const pivotEpsilon = 1e-300

// identityBlock returns the p×p identity as a flat block.
func identityBlock(p int) []complex128 {
	out := make([]complex128, p*p)
	for i := 0; i < p; i++ {
		out[i*p+i] = 1
	}
	return out
}

// mulBlock returns a·b for flat p×p blocks.
func mulBlock(a, b []complex128, p int) []complex128 {
	out := make([]complex128, p*p)
	for i := 0; i < p; i++ {
		for k := 0; k < p; k++ {
			aik := a[i*p+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				out[i*p+j] += aik * b[k*p+j]
			}
		}
	}
	return out
}

// addBlock returns a+b (sign=+1) or a−b (sign=−1) for flat p×p blocks.
func addBlock(a, b []complex128, sign complex128) []complex128 {
	out := make([]complex128, len(a))
	for k := range a {
		out[k] = a[k] + sign*b[k]
	}
	return out
}

// scaleBlock returns s·a for a flat block.
func scaleBlock(a []complex128, s complex128) []complex128 {
	out := make([]complex128, len(a))
	for k := range a {
		out[k] = s * a[k]
	}
	return out
}

// conjTransposeBlock returns aᴴ for a flat p×p block.
func conjTransposeBlock(a []complex128, p int) []complex128 {
	out := make([]complex128, p*p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			out[j*p+i] = cmplx.Conj(a[i*p+j])
		}
	}
	return out
}

// invertBlock returns the inverse of a flat p×p block via Gauss–Jordan
// elimination with partial pivoting by magnitude.
//
// Errors: ErrSingular when no usable pivot remains in a column.
func invertBlock(a []complex128, p int) ([]complex128, error) {
	// Work on an augmented copy [A | I].
	work := make([]complex128, len(a))
	copy(work, a)
	inv := identityBlock(p)

	for col := 0; col < p; col++ {
		// Partial pivoting: pick the largest-magnitude entry on or below the
		// diagonal of this column.
		pivotRow := col
		pivotMag := cmplx.Abs(work[col*p+col])
		for r := col + 1; r < p; r++ {
			if m := cmplx.Abs(work[r*p+col]); m > pivotMag {
				pivotRow, pivotMag = r, m
			}
		}
		if pivotMag <= pivotEpsilon {
			return nil, ErrSingular
		}
		if pivotRow != col {
			swapRows(work, p, col, pivotRow)
			swapRows(inv, p, col, pivotRow)
		}

		// Normalize the pivot row.
		pivot := work[col*p+col]
		for j := 0; j < p; j++ {
			work[col*p+j] /= pivot
			inv[col*p+j] /= pivot
		}

		// Eliminate the column from every other row.
		for r := 0; r < p; r++ {
			if r == col {
				continue
			}
			factor := work[r*p+col]
			if factor == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				work[r*p+j] -= factor * work[col*p+j]
				inv[r*p+j] -= factor * inv[col*p+j]
			}
		}
	}
	return inv, nil
}

// swapRows exchanges rows a and b of a flat p-column block.
func swapRows(m []complex128, p, a, b int) {
	for j := 0; j < p; j++ {
		m[a*p+j], m[b*p+j] = m[b*p+j], m[a*p+j]
	}
}
