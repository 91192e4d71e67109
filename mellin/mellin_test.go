// SPDX-License-Identifier: MIT

package mellin_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/mellin"
)

func TestPaths_JacobianIsDerivative(t *testing.T) {
	paths := map[string]mellin.Path{
		"talbot": mellin.NewTalbot(math.Log(0.1)),
		"line":   mellin.Line{M: 10, C: 1.5},
		"edge":   mellin.Edge{M: 20, C: 1.5, Phi: 3 * math.Pi / 4},
	}
	const h = 1e-6
	for name, p := range paths {
		for _, u := range []float64{0.55, 0.7, 0.93} {
			np, _ := p.At(u + h)
			nm, _ := p.At(u - h)
			_, jac := p.At(u)
			fd := (np - nm) / (2 * h)
			assert.InDelta(t, 0, cmplx.Abs(fd-jac), 1e-5*cmplx.Abs(jac), "%s u=%g", name, u)
		}
	}
}

func TestPaths_Symmetric(t *testing.T) {
	tb := mellin.NewTalbot(math.Log(0.3))
	for _, u := range []float64{0.1, 0.3, 0.45} {
		a, ja := tb.At(u)
		b, jb := tb.At(1 - u)
		assert.InDelta(t, 0, cmplx.Abs(a-cmplx.Conj(b)), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(ja+cmplx.Conj(jb)), 1e-10)
	}
	n, jac := tb.At(0.5)
	assert.Equal(t, complex(tb.O+tb.R, 0), n)
	assert.InDelta(t, 2*math.Pi*tb.R, imag(jac), 1e-15)
}

func TestInvert_Talbot(t *testing.T) {
	cases := []struct {
		name string
		f    func(complex128) complex128
		want func(x float64) float64
	}{
		{"x", func(n complex128) complex128 { return 1 / (n + 1) }, func(x float64) float64 { return x }},
		{"one", func(n complex128) complex128 { return 1 / n }, func(float64) float64 { return 1 }},
		{"-ln x", func(n complex128) complex128 { return 1 / (n * n) }, func(x float64) float64 { return -math.Log(x) }},
		{"(1-x)^2", func(n complex128) complex128 { return 2 / (n * (n + 1) * (n + 2)) },
			func(x float64) float64 { return (1 - x) * (1 - x) }},
	}
	for _, tc := range cases {
		for _, x := range []float64{1e-4, 0.1, 0.5, 0.8} {
			v, e, err := mellin.Invert(tc.f, mellin.NewTalbot(math.Log(x)), math.Log(x))
			require.NoError(t, err)
			want := tc.want(x)
			assert.InDelta(t, want, v, 1e-5*math.Abs(want)+1e-10, "%s x=%g", tc.name, x)
			assert.Less(t, e, 1e-4*math.Abs(want)+1e-10)
		}
	}
}

func TestInvert_Edge(t *testing.T) {
	x := 0.1
	v, _, err := mellin.Invert(func(n complex128) complex128 { return 1 / (n + 1) },
		mellin.Edge{M: 100, C: 1.5, Phi: 3 * math.Pi / 4}, math.Log(x))
	require.NoError(t, err)
	assert.InDelta(t, x, v, 1e-6)
}

func TestIntegrate_Vector(t *testing.T) {
	res, err := mellin.Integrate(func(u float64, dst []float64) error {
		dst[0] = 1
		dst[1] = math.Sin(u)
		dst[2] = math.Exp(-u * u)
		return nil
	}, 3, 0, 2)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 2, res.Value[0], 1e-14)
	assert.InDelta(t, 1-math.Cos(2), res.Value[1], 1e-12)
	assert.InDelta(t, math.Sqrt(math.Pi)/2*math.Erf(2), res.Value[2], 1e-12)
}

func TestIntegrate_VanishingComponentMeetsFloor(t *testing.T) {
	res, err := mellin.Integrate(func(u float64, dst []float64) error {
		dst[0] = 1
		dst[1] = 1e4 * math.Sin(8*math.Pi*u)
		return nil
	}, 2, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1, res.Value[0], 1e-12)
	assert.InDelta(t, 0, res.Value[1], 1e-8)
	assert.LessOrEqual(t, res.Error[1], mellin.DefaultFloor)
}

func TestIntegrate_LimitReached(t *testing.T) {
	res, err := mellin.Integrate(func(u float64, dst []float64) error {
		dst[0] = 1 / math.Sqrt(u)
		return nil
	}, 1, 0, 1, mellin.WithLimit(3), mellin.WithTolerances(0, 1e-14))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Intervals)
	assert.Greater(t, res.MaxError(), 0.0)
}

func TestIntegrate_Errors(t *testing.T) {
	_, err := mellin.Integrate(func(u float64, dst []float64) error {
		dst[0] = math.NaN()
		return nil
	}, 1, 0, 1)
	assert.ErrorIs(t, err, mellin.ErrNotFinite)
	assert.ErrorIs(t, err, ekoerr.ErrNumericalConvergence)
	var ce *ekoerr.ConvergenceError
	assert.True(t, errors.As(err, &ce))

	boom := errors.New("boom")
	_, err = mellin.Integrate(func(float64, []float64) error { return boom }, 1, 0, 1)
	assert.ErrorIs(t, err, boom)

	_, err = mellin.Integrate(func(float64, []float64) error { return nil }, 1, 1, 1)
	assert.ErrorIs(t, err, mellin.ErrInterval)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mellin.WithTolerances(0, 0) })
	assert.Panics(t, func() { mellin.WithTolerances(-1, 1e-3) })
	assert.Panics(t, func() { mellin.WithLimit(0) })
	assert.Panics(t, func() { mellin.WithNodes(1) })
	assert.Panics(t, func() { mellin.WithCut(0.5) })
	assert.Panics(t, func() { mellin.WithFloor(-1e-9) })
	assert.Panics(t, func() { mellin.WithFloor(1) })
}

func BenchmarkInvertTalbot(b *testing.B) {
	f := func(n complex128) complex128 { return 1 / (n * (n + 1)) }
	x := math.Log(1e-3)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink, _, _ = mellin.Invert(f, mellin.NewTalbot(x), x)
	}
	_ = sink
}
