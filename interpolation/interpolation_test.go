// SPDX-License-Identifier: MIT

package interpolation_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/interpolation"
)

func TestGrids(t *testing.T) {
	g, err := interpolation.LogGrid(3, 1e-2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1e-2, 1e-1, 1}, g.Nodes(), 1e-15)

	l, err := interpolation.LinearGrid(3, 0.2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.6, 1}, l.Nodes(), 1e-15)
	assert.False(t, g.Equal(l))
}

func TestNewXGrid_Errors(t *testing.T) {
	cases := map[string][]float64{
		"short":      {0.5},
		"zero":       {0, 0.5, 1},
		"above one":  {0.5, 1.1},
		"unordered":  {0.1, 0.5, 0.3},
		"repeated":   {0.1, 0.1, 1},
		"not number": {math.NaN(), 1},
	}
	for name, nodes := range cases {
		_, err := interpolation.NewXGrid(nodes)
		assert.ErrorIs(t, err, ekoerr.ErrConfiguration, name)
	}
	_, err := interpolation.LogGrid(1, 1e-3)
	assert.ErrorIs(t, err, interpolation.ErrGridSize)
	_, err = interpolation.LinearGrid(4, 1)
	assert.ErrorIs(t, err, interpolation.ErrGridNodes)
}

func TestNewDispatcher_Degree(t *testing.T) {
	g, err := interpolation.LogGrid(4, 1e-3)
	require.NoError(t, err)
	for _, deg := range []int{0, 4, 5} {
		_, err := interpolation.NewDispatcher(g, deg, true)
		assert.ErrorIs(t, err, interpolation.ErrDegree, "degree %d", deg)
	}
}

func dispatchers(t *testing.T) map[string]*interpolation.Dispatcher {
	t.Helper()
	grid, err := interpolation.NewXGrid([]float64{1e-3, 1e-2, 1e-1, 5e-1, 1})
	require.NoError(t, err)
	lin, err := interpolation.LinearGrid(7, 0.1)
	require.NoError(t, err)
	out := map[string]*interpolation.Dispatcher{}
	for deg := 1; deg <= 4; deg++ {
		d, err := interpolation.NewDispatcher(grid, deg, true)
		require.NoError(t, err)
		out["log"+string(rune('0'+deg))] = d
		d, err = interpolation.NewDispatcher(lin, deg, false)
		require.NoError(t, err)
		out["lin"+string(rune('0'+deg))] = d
	}

	return out
}

func TestPartitionOfUnity(t *testing.T) {
	for name, d := range dispatchers(t) {
		g := d.Grid()
		for _, x := range []float64{g.At(0), 0.0031, 0.04, 0.2, 0.33, 0.71, 0.999, 1} {
			if x < g.At(0) {
				continue
			}
			var s float64
			for j := 0; j < d.Len(); j++ {
				s += d.EvalX(j, x)
			}
			assert.InDelta(t, 1, s, 1e-12, "%s x=%g", name, x)
		}
		for k := 0; k < g.Len(); k++ {
			for j := 0; j < d.Len(); j++ {
				want := 0.0
				if j == k {
					want = 1
				}
				assert.InDelta(t, want, d.EvalX(j, g.At(k)), 1e-12, "%s p_%d(x_%d)", name, j, k)
			}
		}
	}
}

func TestGrids_EndAtOne(t *testing.T) {
	lin, err := interpolation.LinearGrid(7, 0.1)
	require.NoError(t, err)
	lg, err := interpolation.LogGrid(7, 1e-3)
	require.NoError(t, err)
	for name, g := range map[string]*interpolation.XGrid{"lin": lin, "log": lg} {
		assert.Equal(t, 1.0, g.At(g.Len()-1), name)
		assert.Equal(t, 0.0, g.LogAt(g.Len()-1), name)
	}

	d, err := interpolation.NewDispatcher(lin, 3, false)
	require.NoError(t, err)
	var s float64
	for j := 0; j < d.Len(); j++ {
		s += d.EvalX(j, 1)
	}
	assert.Equal(t, 1.0, d.EvalX(d.Len()-1, 1))
	assert.InDelta(t, 1, s, 1e-15)
}

func TestReproducesPolynomials(t *testing.T) {
	grid, err := interpolation.LogGrid(9, 1e-4)
	require.NoError(t, err)
	d, err := interpolation.NewDispatcher(grid, 3, true)
	require.NoError(t, err)
	f := func(x float64) float64 { l := math.Log(x); return 1 - 2*l + 0.3*l*l*l }
	for _, x := range []float64{2e-4, 3e-3, 0.05, 0.5} {
		var s float64
		for j := 0; j < d.Len(); j++ {
			s += d.EvalX(j, x) * f(grid.At(j))
		}
		assert.InDelta(t, f(x), s, 1e-9*math.Abs(f(x)), "x=%g", x)
	}
}

// numericMellin returns x^{-N} ∫ y^{N-1} p_j(y) dy over the whole grid by
// fixed Gauss–Legendre per area; valid for x below the first node.
func numericMellin(d *interpolation.Dispatcher, j int, n complex128, x float64) complex128 {
	g := d.Grid()
	var re, im float64
	for i := 0; i+1 < g.Len(); i++ {
		lo, hi := g.At(i), g.At(i+1)
		f := func(y float64) complex128 {
			return cmplx.Exp((n-1)*complex(math.Log(y), 0)-n*complex(math.Log(x), 0)) * complex(d.EvalX(j, y), 0)
		}
		re += quad.Fixed(func(y float64) float64 { return real(f(y)) }, lo, hi, 40, quad.Legendre{}, 0)
		im += quad.Fixed(func(y float64) float64 { return imag(f(y)) }, lo, hi, 40, quad.Legendre{}, 0)
	}

	return complex(re, im)
}

func TestMellinN_MatchesQuadrature(t *testing.T) {
	ns := []complex128{1, 1 + 1i, 0.5 - 2i, 3.2 + 0.4i}
	for name, d := range dispatchers(t) {
		g := d.Grid()
		for _, x := range []float64{g.At(0) / 2, g.At(0) / 10} {
			for _, n := range ns {
				for j := 0; j < d.Len(); j++ {
					got := d.MellinN(j, n, math.Log(x))
					want := numericMellin(d, j, n, x)
					assert.InDelta(t, 0, cmplx.Abs(got-want), 1e-9*(1+cmplx.Abs(want)),
						"%s j=%d N=%v x=%g", name, j, n, x)
				}
			}
		}
	}
}

// TestMellinN_SumIsOneOverN uses the partition of unity: the area
// containing x keeps only its upper end, so the transforms telescope to
// x^{-N}/N for any x inside the grid.
func TestMellinN_SumIsOneOverN(t *testing.T) {
	ns := []complex128{1 + 1i, 0.5 - 2i, 3.2 + 0.4i}
	for name, d := range dispatchers(t) {
		g := d.Grid()
		dst := make([]complex128, d.Len())
		for _, x := range []float64{g.At(1), 0.3 * (g.At(1) + g.At(2)), 0.9} {
			logx := math.Log(x)
			for _, n := range ns {
				d.MellinAll(n, logx, dst)
				var sum complex128
				for _, v := range dst {
					sum += v
				}
				want := cmplx.Exp(-n*complex(logx, 0)) / n
				assert.InDelta(t, 0, cmplx.Abs(sum-want), 1e-8*cmplx.Abs(want), "%s N=%v x=%g", name, n, x)
			}
		}
	}
}

func TestMellinN_SkipsAreasBelowX(t *testing.T) {
	grid, err := interpolation.NewXGrid([]float64{1e-3, 1e-2, 1e-1, 5e-1, 1})
	require.NoError(t, err)
	d, err := interpolation.NewDispatcher(grid, 1, true)
	require.NoError(t, err)
	// p_0 lives on [x_0, x_1] only
	assert.Equal(t, complex128(0), d.MellinN(0, 2+1i, math.Log(grid.At(1))))
	assert.NotEqual(t, complex128(0), d.MellinN(0, 2+1i, math.Log(grid.At(0))))

	dst := make([]complex128, d.Len())
	d.MellinAll(2+1i, math.Log(0.2), dst)
	assert.Equal(t, complex128(0), dst[0])
	assert.Equal(t, complex128(0), dst[1])
}

func TestEvalX_Panics(t *testing.T) {
	grid, err := interpolation.LogGrid(3, 1e-2)
	require.NoError(t, err)
	d, err := interpolation.NewDispatcher(grid, 1, true)
	require.NoError(t, err)
	assert.Panics(t, func() { d.EvalX(3, 0.5) })
	assert.Equal(t, 0.0, d.EvalX(0, 1e-3))
}

func BenchmarkMellinAll(b *testing.B) {
	grid, _ := interpolation.LogGrid(50, 1e-7)
	d, _ := interpolation.NewDispatcher(grid, 4, true)
	dst := make([]complex128, d.Len())
	for i := 0; i < b.N; i++ {
		d.MellinAll(complex(1.5, float64(i%10)), math.Log(1e-3), dst)
	}
}
