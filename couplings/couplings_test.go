// SPDX-License-Identifier: MIT

package couplings_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/thresholds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mz2     = 91.2 * 91.2
	alphaMZ = 0.118
)

func ffns5(t *testing.T) *thresholds.Atlas {
	t.Helper()
	a, err := thresholds.NewFFNS(5)
	require.NoError(t, err)

	return a
}

func vfns(t *testing.T) *thresholds.Atlas {
	t.Helper()
	a, err := thresholds.New([3]float64{2, 4.5 * 4.5, 173.0 * 173.0})
	require.NoError(t, err)

	return a
}

func TestNew_Validation(t *testing.T) {
	atlas := ffns5(t)
	_, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 0, atlas)
	assert.ErrorIs(t, err, couplings.ErrOrder)
	_, err = couplings.New(couplings.Reference{Alpha: -1, Q2: mz2, NF: 5}, 1, atlas)
	assert.ErrorIs(t, err, couplings.ErrBadReference)
	_, err = couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 4}, 1, atlas)
	assert.ErrorIs(t, err, thresholds.ErrPointOutsidePatch)
	assert.ErrorIs(t, err, ekoerr.ErrConfiguration)
}

func TestReferenceIsFixedPoint(t *testing.T) {
	for order := 1; order <= couplings.MaxOrder; order++ {
		c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, order, vfns(t))
		require.NoError(t, err)
		a, err := c.A(mz2)
		require.NoError(t, err)
		assert.InDelta(t, alphaMZ/(4*math.Pi), a, 1e-16)
	}
}

// TestLO_ExactEqualsExpanded is the closed-form LO identity.
func TestLO_ExactEqualsExpanded(t *testing.T) {
	ref := couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}
	ex, err := couplings.New(ref, 1, vfns(t))
	require.NoError(t, err)
	exp, err := couplings.New(ref, 1, vfns(t), couplings.WithMethod(couplings.Expanded))
	require.NoError(t, err)
	for _, q2 := range []float64{3, 10, 100, 1e4, 1e6} {
		a1, err := ex.A(q2)
		require.NoError(t, err)
		a2, err := exp.A(q2)
		require.NoError(t, err)
		assert.Equal(t, a1, a2, "q2=%g", q2)
	}
}

// TestMethod_SelectsSolver checks that inside the reference patch each
// Method reproduces its solver function from the reference.
func TestMethod_SelectsSolver(t *testing.T) {
	ref := couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}
	a0 := alphaMZ / (4 * math.Pi)
	lnQ := math.Log(1e3 / mz2)
	for _, m := range []couplings.Method{couplings.Exact, couplings.Expanded} {
		c, err := couplings.New(ref, 3, vfns(t), couplings.WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, m, c.Method())
		got, err := c.A(1e3)
		require.NoError(t, err)

		var want float64
		if m == couplings.Expanded {
			want, err = couplings.SolveExpanded(a0, lnQ, 3, 5)
		} else {
			want, err = couplings.SolveExact(a0, lnQ, 3, 5, couplings.DefaultTolerance, couplings.DefaultMaxSteps)
		}
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-15, "method %v", m)
	}
}

// TestExact_AgainstODE compares with a 20000-step RK4 reference evaluated
// independently at μ² = 10⁴ GeV² in five flavours.
func TestExact_AgainstODE(t *testing.T) {
	want := map[int]float64{
		2: 0.00926152903225372,
		3: 0.00926128050170173,
		4: 0.009261218675086542,
	}
	for order, w := range want {
		c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, order, ffns5(t))
		require.NoError(t, err)
		a, err := c.A(1e4)
		require.NoError(t, err)
		assert.InEpsilon(t, w, a, 1e-9, "order %d", order)
	}
}

// TestExpanded_ConvergesToExact checks that the truncation error of the
// expanded solution shrinks with the order at a moderate distance.
func TestExpanded_ConvergesToExact(t *testing.T) {
	a0 := alphaMZ / (4 * math.Pi)
	lnQ := math.Log(1e4 / mz2)
	prev := math.Inf(1)
	for order := 2; order <= couplings.MaxOrder; order++ {
		ex, err := couplings.SolveExact(a0, lnQ, order, 5, 1e-13, 10000)
		require.NoError(t, err)
		ap, err := couplings.SolveExpanded(a0, lnQ, order, 5)
		require.NoError(t, err)
		d := math.Abs(ap-ex) / ex
		assert.Less(t, d, 1e-6)
		assert.Less(t, d, prev)
		prev = d
	}
}

func TestExpanded_Landau(t *testing.T) {
	_, err := couplings.SolveExpanded(0.02, -100, 2, 4)
	assert.ErrorIs(t, err, couplings.ErrLandau)
}

// TestMatching_ContinuityAtLO verifies that the coupling is continuous across
// a wall when no decoupling constants apply.
func TestMatching_ContinuityAtLO(t *testing.T) {
	atlas := vfns(t)
	c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 1, atlas)
	require.NoError(t, err)
	wall := atlas.MatchingScale(4)
	below, err := c.AAt(thresholds.Point{Q2: wall, NF: 4})
	require.NoError(t, err)
	above, err := c.AAt(thresholds.Point{Q2: wall, NF: 5})
	require.NoError(t, err)
	assert.InEpsilon(t, above, below, 1e-14)
}

func TestMatching_NNLOJump(t *testing.T) {
	atlas := vfns(t)
	c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 3, atlas)
	require.NoError(t, err)
	wall := atlas.MatchingScale(4)
	below, err := c.AAt(thresholds.Point{Q2: wall, NF: 4})
	require.NoError(t, err)
	above, err := c.AAt(thresholds.Point{Q2: wall, NF: 5})
	require.NoError(t, err)
	// pole scheme: a4 = a5 (1 - 14/3 a5²)
	assert.InEpsilon(t, above*(1-14.0/3.0*above*above), below, 1e-12)
}

func TestMatch_UpDownRoundTrip(t *testing.T) {
	for _, scheme := range []couplings.MassScheme{couplings.Pole, couplings.MSbar} {
		a := 0.02
		up := couplings.Match(a, 3, scheme, 0, true)
		back := couplings.Match(up, 3, scheme, 0, false)
		assert.InDelta(t, a, back, 10*a*a*a*a, "scheme %v", scheme)
		assert.NotEqual(t, a, up)
	}
}

func TestConcurrentReads(t *testing.T) {
	c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 3, vfns(t))
	require.NoError(t, err)
	scales := []float64{2.5, 10, 50, 1e3, 1e5}
	want := make([]float64, len(scales))
	for i, q2 := range scales {
		want[i], err = c.A(q2)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q2 := range scales {
				a, err := c.A(q2)
				assert.NoError(t, err)
				assert.Equal(t, want[i], a)
			}
		}()
	}
	wg.Wait()
}

func TestAlphaAndAEM(t *testing.T) {
	c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 2, ffns5(t),
		couplings.WithAlphaEM(1.0/137))
	require.NoError(t, err)
	al, err := c.Alpha(mz2)
	require.NoError(t, err)
	assert.InDelta(t, alphaMZ, al, 1e-15)
	assert.InDelta(t, 1.0/137/(4*math.Pi), c.AEM(), 1e-18)
	assert.Panics(t, func() { couplings.WithAlphaEM(2) })
}

func TestAIn_ForcedFlavours(t *testing.T) {
	c, err := couplings.New(couplings.Reference{Alpha: alphaMZ, Q2: mz2, NF: 5}, 2, vfns(t))
	require.NoError(t, err)

	// inside the patch the forced value is the regular one
	want, err := c.AAt(thresholds.Point{Q2: 10, NF: 4})
	require.NoError(t, err)
	got, err := c.AIn(10, 4)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-15)

	// below the charm threshold the four flavour solution keeps running
	inside, err := c.AIn(2, 4)
	require.NoError(t, err)
	below, err := c.AIn(1.5, 4)
	require.NoError(t, err)
	assert.Greater(t, below, inside)

	_, err = c.AAt(thresholds.Point{Q2: 1.5, NF: 4})
	assert.ErrorIs(t, err, thresholds.ErrPointOutsidePatch)
}
