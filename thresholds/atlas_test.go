// SPDX-License-Identifier: MIT

package thresholds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/thresholds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vfns(t *testing.T) *thresholds.Atlas {
	t.Helper()
	a, err := thresholds.New([3]float64{1.96, 20.25, 30625})
	require.NoError(t, err)

	return a
}

func TestNew_Errors(t *testing.T) {
	_, err := thresholds.New([3]float64{1, 0, 3})
	assert.ErrorIs(t, err, thresholds.ErrNonPositiveScale)
	assert.ErrorIs(t, err, ekoerr.ErrConfiguration)

	_, err = thresholds.New([3]float64{2, 1, 3})
	assert.ErrorIs(t, err, thresholds.ErrUnorderedThresholds)

	_, err = thresholds.New([3]float64{1, 2, math.Inf(1)})
	assert.NoError(t, err)

	_, err = thresholds.NewFFNS(7)
	assert.ErrorIs(t, err, thresholds.ErrFlavorRange)
}

func TestNF(t *testing.T) {
	a := vfns(t)
	tests := []struct {
		q2 float64
		nf int
	}{
		{1, 3}, {1.96, 4}, {10, 4}, {20.25, 5}, {100, 5}, {1e5, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nf, a.NF(tt.q2), "q2=%g", tt.q2)
	}
	assert.Equal(t, []float64{1.96, 20.25, 30625}, a.Thresholds())
	assert.Equal(t, 20.25, a.MatchingScale(4))
	assert.True(t, math.IsInf(a.MatchingScale(6), 1))
}

func TestFFNS(t *testing.T) {
	a, err := thresholds.NewFFNS(4)
	require.NoError(t, err)
	assert.True(t, a.IsFixed())
	assert.Equal(t, 4, a.NF(1e-3))
	assert.Equal(t, 4, a.NF(1e8))
	assert.Empty(t, a.Thresholds())

	segs, err := a.Path(a.At(2), a.At(1e4))
	require.NoError(t, err)
	assert.Equal(t, []thresholds.Segment{{NF: 4, Q2From: 2, Q2To: 1e4}}, segs)
}

// TestPath_Contiguity checks the atlas invariants on forward and backward
// paths: endpoints, contiguity and unit flavour steps.
func TestPath_Contiguity(t *testing.T) {
	a := vfns(t)
	cases := [][2]float64{{1.65, 1e4}, {1e4, 1.65}, {1.65, 1.8}, {50, 1e5}, {1e5, 2}}
	for _, c := range cases {
		from, to := a.At(c[0]), a.At(c[1])
		segs, err := a.Path(from, to)
		require.NoError(t, err)
		require.NotEmpty(t, segs)
		assert.Equal(t, c[0], segs[0].Q2From)
		assert.Equal(t, c[1], segs[len(segs)-1].Q2To)
		assert.Equal(t, from.NF, segs[0].NF)
		assert.Equal(t, to.NF, segs[len(segs)-1].NF)
		for i := 1; i < len(segs); i++ {
			assert.Equal(t, segs[i-1].Q2To, segs[i].Q2From)
			d := segs[i].NF - segs[i-1].NF
			assert.True(t, d == 1 || d == -1)
		}
	}
}

func TestPath_Explicit(t *testing.T) {
	a := vfns(t)
	segs, err := a.Path(a.At(1.65), a.At(1e4))
	require.NoError(t, err)
	assert.Equal(t, []thresholds.Segment{
		{NF: 3, Q2From: 1.65, Q2To: 1.96},
		{NF: 4, Q2From: 1.96, Q2To: 20.25},
		{NF: 5, Q2From: 20.25, Q2To: 1e4},
	}, segs)
	assert.False(t, segs[0].IsBackward())
}

// TestPath_OnWall uses an explicit lower flavour number at a threshold.
func TestPath_OnWall(t *testing.T) {
	a := vfns(t)
	segs, err := a.Path(thresholds.Point{Q2: 1.96, NF: 3}, a.At(10))
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.True(t, segs[0].IsTrivial())

	_, err = a.Path(thresholds.Point{Q2: 10, NF: 3}, a.At(10))
	assert.ErrorIs(t, err, thresholds.ErrPointOutsidePatch)

	_, err = a.Path(thresholds.Point{Q2: -1, NF: 3}, a.At(10))
	assert.ErrorIs(t, err, thresholds.ErrNonPositiveScale)
}

func TestNewFromMasses(t *testing.T) {
	a, err := thresholds.NewFromMasses([3]float64{1.96, 20.25, 30625}, [3]float64{1, 2, 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.96, 81}, a.Thresholds())
	assert.Equal(t, 5, a.NF(1e9))
}

func TestForcedPath(t *testing.T) {
	a := vfns(t)
	// charm mass scale below its own threshold, in four flavours
	segs, err := a.ForcedPath(a.At(1e4), thresholds.Point{Q2: 1.5, NF: 4})
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, 5, segs[0].NF)
	assert.Equal(t, 4, segs[1].NF)
	assert.Equal(t, 1.5, segs[1].Q2To)
	assert.True(t, segs[1].IsBackward())

	_, err = a.Path(a.At(1e4), thresholds.Point{Q2: 1.5, NF: 4})
	assert.ErrorIs(t, err, thresholds.ErrPointOutsidePatch)

	ffns, err := thresholds.NewFFNS(4)
	require.NoError(t, err)
	_, err = ffns.ForcedPath(ffns.At(10), thresholds.Point{Q2: 10, NF: 5})
	assert.ErrorIs(t, err, thresholds.ErrPointOutsidePatch)
}
