// SPDX-License-Identifier: MIT

package cmplxmat_test

import (
	"testing"

	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestMul_Identity(t *testing.T) {
	a := cmplxmat.FromRows([][]complex128{{1 + 2i, 3}, {-1i, 4 - 1i}})
	got := cmplxmat.Mul(a, cmplxmat.Identity(2))
	assert.Less(t, cmplxmat.MaxAbsDiff(a, got), tol)
	got = cmplxmat.Mul(cmplxmat.Identity(2), a)
	assert.Less(t, cmplxmat.MaxAbsDiff(a, got), tol)
}

func TestMul_Known(t *testing.T) {
	a := cmplxmat.FromRows([][]complex128{{1, 2}, {3, 4}})
	b := cmplxmat.FromRows([][]complex128{{0, 1i}, {1, 0}})
	want := cmplxmat.FromRows([][]complex128{{2, 1i}, {4, 3i}})
	assert.Less(t, cmplxmat.MaxAbsDiff(want, cmplxmat.Mul(a, b)), tol)
}

func TestShapeMismatch_Panics(t *testing.T) {
	assert.Panics(t, func() { cmplxmat.Mul(cmplxmat.Identity(2), cmplxmat.Identity(3)) })
	assert.Panics(t, func() { cmplxmat.New(0) })
	assert.Panics(t, func() { cmplxmat.FromRows([][]complex128{{1, 2}, {3}}) })
}

func TestInverse_RoundTrip(t *testing.T) {
	a := cmplxmat.FromRows([][]complex128{
		{2 + 1i, 1, 0, 0.5},
		{0, 3, 1i, 0},
		{1, 0, 0, 1},
		{0, 0.25, 4, -1i},
	})
	inv, err := cmplxmat.Inverse(a)
	require.NoError(t, err)
	assert.Less(t, cmplxmat.MaxAbsDiff(cmplxmat.Mul(a, inv), cmplxmat.Identity(4)), 1e-12)
	assert.Less(t, cmplxmat.MaxAbsDiff(cmplxmat.Mul(inv, a), cmplxmat.Identity(4)), 1e-12)
}

func TestInverse_Singular(t *testing.T) {
	a := cmplxmat.FromRows([][]complex128{{1, 2}, {2, 4}})
	_, err := cmplxmat.Inverse(a)
	assert.ErrorIs(t, err, cmplxmat.ErrSingular)
}

func TestDet(t *testing.T) {
	a := cmplxmat.FromRows([][]complex128{{0, 1, 0}, {1, 0, 0}, {0, 0, 2i}})
	f, err := cmplxmat.Factorize(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, real(f.Det()), tol)
	assert.InDelta(t, -2.0, imag(f.Det()), tol)
}
