// SPDX-License-Identifier: MIT

package msbar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/msbar"
	"github.com/katalvlaran/eko/qcd"
	"github.com/katalvlaran/eko/thresholds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mz2     = 91.1876 * 91.1876
	alphaMZ = 0.118
)

func TestKernel_LO(t *testing.T) {
	a0, a1 := 0.02, 0.012
	want := math.Pow(a1/a0, 4/qcd.Beta0(4))
	for _, exact := range []bool{true, false} {
		got, err := msbar.Kernel(a0, a1, 4, 1, exact)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "exact=%v", exact)
	}
}

func TestKernel_Identity(t *testing.T) {
	for order := 1; order <= msbar.MaxOrder; order++ {
		for _, exact := range []bool{true, false} {
			got, err := msbar.Kernel(0.015, 0.015, 5, order, exact)
			require.NoError(t, err)
			assert.InDelta(t, 1, got, 1e-15)
		}
	}
}

func TestKernel_ExactVersusExpanded(t *testing.T) {
	// the difference is beyond the truncation order
	a0, a1 := 0.025, 0.015
	for order := 2; order <= msbar.MaxOrder; order++ {
		ex, err := msbar.Kernel(a0, a1, 4, order, true)
		require.NoError(t, err)
		tr, err := msbar.Kernel(a0, a1, 4, order, false)
		require.NoError(t, err)
		assert.InDelta(t, ex, tr, 1e-2*ex, "order %d", order)
	}
}

func TestKernel_OrderCapped(t *testing.T) {
	three, err := msbar.Kernel(0.02, 0.01, 5, 3, true)
	require.NoError(t, err)
	four, err := msbar.Kernel(0.02, 0.01, 5, 4, true)
	require.NoError(t, err)
	assert.Equal(t, three, four)
}

func TestGamma(t *testing.T) {
	assert.Equal(t, 4.0, msbar.Gamma(0, 5))
	assert.InDelta(t, 202.0/3-100.0/9, msbar.Gamma(1, 5), 1e-12)
	assert.Panics(t, func() { msbar.Gamma(3, 5) })
}

func problem() msbar.Problem {
	return msbar.Problem{
		Ref:   couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5},
		Order: 3,
		Quarks: [3]msbar.Quark{
			{Mass: 0.986, Q2: 9, NF: 4},
			{Mass: 4.2, Q2: 4.2 * 4.2, NF: 5},
			{Mass: 162.5, Q2: 162.5 * 162.5, NF: 6},
		},
		Ratios: [3]float64{1, 1, 1},
		MaxNF:  6,
	}
}

func TestSolve_FixedPoint(t *testing.T) {
	p := problem()
	m2, err := msbar.Solve(p)
	require.NoError(t, err)

	// references already at m(m) = m are returned unchanged
	assert.InDelta(t, 4.2*4.2, m2[1], 1e-9)
	assert.InDelta(t, 162.5*162.5, m2[2], 1e-6)

	// charm runs up from m(3 GeV)
	assert.Greater(t, m2[0], 1.0)
	assert.Less(t, m2[0], 9.0)

	atlas, err := thresholds.NewFromMasses(m2, p.Ratios, p.MaxNF)
	require.NoError(t, err)
	c, err := couplings.New(p.Ref, p.Order, atlas, couplings.WithScheme(couplings.MSbar))
	require.NoError(t, err)
	back, err := msbar.Running(c, 0.986*0.986, 9, 4, m2[0])
	require.NoError(t, err)
	assert.InDelta(t, m2[0], back, 1e-8*m2[0])
}

func TestSolve_Forward(t *testing.T) {
	p := problem()
	// bottom given below its mass in four flavours
	p.Quarks[1] = msbar.Quark{Mass: 4.6, Q2: 16, NF: 4}
	m2, err := msbar.Solve(p)
	require.NoError(t, err)
	assert.Greater(t, m2[1], 16.0)
	assert.Less(t, m2[1], 4.6*4.6)
}

func TestSolve_Errors(t *testing.T) {
	p := problem()
	p.Quarks[0] = msbar.Quark{Mass: 1.0, Q2: 4, NF: 3}
	_, err := msbar.Solve(p)
	assert.ErrorIs(t, err, msbar.ErrInconsistentReference)
	assert.ErrorIs(t, err, ekoerr.ErrConfiguration)

	p = problem()
	p.Quarks[0] = msbar.Quark{Mass: 5, Q2: 25, NF: 4}
	_, err = msbar.Solve(p)
	assert.ErrorIs(t, err, ekoerr.ErrConfiguration)

	p = problem()
	p.Quarks[2].Mass = 0
	_, err = msbar.Solve(p)
	assert.ErrorIs(t, err, msbar.ErrBadQuark)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { msbar.WithTolerance(0) })
	assert.Panics(t, func() { msbar.WithMaxIterations(0) })
}
