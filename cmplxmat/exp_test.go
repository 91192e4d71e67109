// SPDX-License-Identifier: MIT

package cmplxmat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigen2_Projectors(t *testing.T) {
	m := cmplxmat.FromRows([][]complex128{{1 + 1i, 2}, {0.5, -3}})
	lp, lm, ep, em, err := cmplxmat.Eigen2(m)
	require.NoError(t, err)

	// m = λ+ e+ + λ- e-
	recon := cmplxmat.AddScaled(cmplxmat.Scale(ep, lp), em, lm)
	assert.Less(t, cmplxmat.MaxAbsDiff(recon, m), 1e-12)
	// idempotent and orthogonal
	assert.Less(t, cmplxmat.MaxAbsDiff(cmplxmat.Mul(ep, ep), ep), 1e-12)
	assert.Less(t, cmplxmat.MaxAbsDiff(cmplxmat.Mul(ep, em), cmplxmat.New(2)), 1e-12)
	assert.Less(t, cmplxmat.MaxAbsDiff(cmplxmat.Add(ep, em), cmplxmat.Identity(2)), 1e-12)
}

func TestExp2_Diagonal(t *testing.T) {
	m := cmplxmat.FromRows([][]complex128{{1, 0}, {0, 2i}})
	e := cmplxmat.Exp2(m)
	assert.InDelta(t, math.E, real(e.At(0, 0)), 1e-12)
	assert.Less(t, cmplx.Abs(e.At(1, 1)-cmplx.Exp(2i)), 1e-12)
	assert.Less(t, cmplx.Abs(e.At(0, 1)), 1e-12)
}

func TestExp2_Degenerate(t *testing.T) {
	// Jordan block: exp([[a,1],[0,a]]) = e^a [[1,1],[0,1]]
	m := cmplxmat.FromRows([][]complex128{{0.3, 1}, {0, 0.3}})
	e := cmplxmat.Exp2(m)
	ea := math.Exp(0.3)
	assert.InDelta(t, ea, real(e.At(0, 0)), 1e-12)
	assert.InDelta(t, ea, real(e.At(0, 1)), 1e-12)
	assert.InDelta(t, 0.0, real(e.At(1, 0)), 1e-12)
}

// TestExp_AgreesWithExp2 checks the general scaling-and-squaring path against
// the projector form on a 2×2 embedded in a 3×3 block-diagonal matrix.
func TestExp_AgreesWithExp2(t *testing.T) {
	a, b, c, d := complex(1.5, 0.2), complex(-2, 1), complex(0.7, 0), complex(-4, -0.5)
	small := cmplxmat.FromRows([][]complex128{{a, b}, {c, d}})
	big := cmplxmat.FromRows([][]complex128{{a, b, 0}, {c, d, 0}, {0, 0, 1i}})

	es := cmplxmat.Exp2(small)
	eb := cmplxmat.Exp(big)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Less(t, cmplx.Abs(es.At(i, j)-eb.At(i, j)), 1e-10*math.Max(1, cmplx.Abs(es.At(i, j))))
		}
	}
	assert.Less(t, cmplx.Abs(eb.At(2, 2)-cmplx.Exp(1i)), 1e-12)
}

func TestExp_InverseIsExpOfMinus(t *testing.T) {
	m := cmplxmat.FromRows([][]complex128{
		{0.1, 2, 0, 0},
		{-1, 0.3i, 0.5, 0},
		{0, 1, -0.2, 3},
		{0.4, 0, 0, 1},
	})
	p := cmplxmat.Mul(cmplxmat.Exp(m), cmplxmat.Exp(cmplxmat.Scale(m, -1)))
	assert.Less(t, cmplxmat.MaxAbsDiff(p, cmplxmat.Identity(4)), 1e-10)
}

func BenchmarkExp2(b *testing.B) {
	m := cmplxmat.FromRows([][]complex128{{1 + 1i, 2}, {0.5, -3}})
	var sink *cmplxmat.Matrix
	for i := 0; i < b.N; i++ {
		sink = cmplxmat.Exp2(m)
	}
	_ = sink
}
