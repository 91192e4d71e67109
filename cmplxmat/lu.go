// SPDX-License-Identifier: MIT

package cmplxmat

import (
	"fmt"
	"math/cmplx"
)

// pivotEpsilon is the magnitude below which a pivot counts as zero.
const pivotEpsilon = 1e-300

func cabs(z complex128) float64 { return cmplx.Abs(z) }

// LU holds a Doolittle factorisation P·A = L·U with unit-lower L and upper U
// packed into one matrix, plus the row permutation.
type LU struct {
	lu   *Matrix
	perm []int
}

// Factorize computes the LU factorisation of a with partial pivoting.
//
// Implementation:
//
//	Stage 1: copy A, initialise the identity permutation.
//	Stage 2: for each column k pick the row with the largest |a[i,k]|, swap.
//	Stage 3: eliminate below the pivot storing multipliers in place.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *Matrix) (*LU, error) {
	// Stage 1: working copy
	n := a.n
	w := a.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, v    float64
		piv, f     complex128
	)
	for k = 0; k < n; k++ {
		// Stage 2: partial pivoting
		p, best = k, cabs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = cabs(w.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best < pivotEpsilon {
			return nil, fmt.Errorf("Factorize: column %d: %w", k, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Stage 3: elimination
		piv = w.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = w.data[i*n+k] / piv
			w.data[i*n+k] = f // multiplier kept in L's slot
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[i*n+j] -= f * w.data[k*n+j]
			}
		}
	}

	return &LU{lu: w, perm: perm}, nil
}

// Solve returns x with A·x = b.
func (f *LU) Solve(b []complex128) []complex128 {
	n := f.lu.n
	y := make([]complex128, n)
	var (
		i, k int
		sum  complex128
	)
	// forward substitution L·y = P·b
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// backward substitution U·x = y
	x := make([]complex128, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x
}

// Det returns the determinant of the factorised matrix.
func (f *LU) Det() complex128 {
	n := f.lu.n
	d := complex(1, 0)
	for i := 0; i < n; i++ {
		d *= f.lu.data[i*n+i]
	}
	// sign of the permutation
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		l := 0
		for j := i; !seen[j]; j = f.perm[j] {
			seen[j] = true
			l++
		}
		if l%2 == 0 {
			d = -d
		}
	}

	return d
}

// Inverse returns a⁻¹ or ErrSingular.
//
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U.
//	Stage 2 (Execute): for each identity column eᵢ solve A·x = eᵢ.
//	Stage 3 (Finalize): assemble the columns.
//
// Complexity: O(n³).
func Inverse(a *Matrix) (*Matrix, error) {
	// Stage 1
	f, err := Factorize(a)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 2 and 3
	n := a.n
	inv := New(n)
	e := make([]complex128, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x := f.Solve(e)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
