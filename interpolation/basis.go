// SPDX-License-Identifier: MIT

package interpolation

import (
	"fmt"
	"math"
	"math/cmplx"
)

// area is one polynomial piece of a basis function.
type area struct {
	lo, hi int       // node indices bounding the area
	coefs  []float64 // monomial coefficients in u = ln x or x
}

// BasisFunction is p_j as a list of polynomial pieces.
type BasisFunction struct {
	areas []area
}

// Dispatcher holds the Lagrange basis on a grid.
type Dispatcher struct {
	grid   *XGrid
	degree int
	log    bool
	funcs  []BasisFunction
}

// NewDispatcher builds the basis of the given polynomial degree on grid,
// interpolating in ln x when log is set.
func NewDispatcher(grid *XGrid, degree int, log bool) (*Dispatcher, error) {
	n := grid.Len()
	if degree < 1 || degree >= n {
		return nil, fmt.Errorf("degree %d with %d nodes: %w", degree, n, ErrDegree)
	}
	d := &Dispatcher{grid: grid, degree: degree, log: log, funcs: make([]BasisFunction, n)}
	for i := 0; i < n-1; i++ {
		kmin, kmax := d.block(i)
		for j := kmin; j <= kmax; j++ {
			d.funcs[j].areas = append(d.funcs[j].areas, area{
				lo: i, hi: i + 1, coefs: d.lagrange(j, kmin, kmax),
			})
		}
	}

	return d, nil
}

// block returns the node range serving area i: centred on the area for odd
// degrees, shifted up by one node for even ones, and clamped to the grid.
func (d *Dispatcher) block(i int) (kmin, kmax int) {
	po2 := d.degree / 2
	if d.degree%2 == 1 {
		po2++
	}
	kmin = i - po2 + 1
	if kmin < 0 {
		kmin = 0
	}
	kmax = kmin + d.degree
	if last := d.grid.Len() - 1; kmax > last {
		kmax = last
		kmin = kmax - d.degree
	}

	return kmin, kmax
}

func (d *Dispatcher) coord(i int) float64 {
	if d.log {
		return d.grid.LogAt(i)
	}

	return d.grid.At(i)
}

// lagrange expands Π_{m≠j} (u - u_m)/(u_j - u_m) over nodes kmin..kmax.
func (d *Dispatcher) lagrange(j, kmin, kmax int) []float64 {
	coefs := make([]float64, 1, kmax-kmin+1)
	coefs[0] = 1
	uj := d.coord(j)
	for m := kmin; m <= kmax; m++ {
		if m == j {
			continue
		}
		um := d.coord(m)
		den := uj - um
		next := make([]float64, len(coefs)+1)
		for k, c := range coefs {
			next[k+1] += c / den
			next[k] -= c * um / den
		}
		coefs = next
	}

	return coefs
}

// Grid returns the underlying grid.
func (d *Dispatcher) Grid() *XGrid { return d.grid }

// Degree returns the polynomial degree.
func (d *Dispatcher) Degree() int { return d.degree }

// IsLog reports whether interpolation is in ln x.
func (d *Dispatcher) IsLog() bool { return d.log }

// Len returns the number of basis functions.
func (d *Dispatcher) Len() int { return len(d.funcs) }

func (d *Dispatcher) check(j int) {
	if j < 0 || j >= len(d.funcs) {
		panic(fmt.Errorf("basis function %d of %d: %w", j, len(d.funcs), ErrIndex))
	}
}

// EvalX returns p_j(x); zero outside the grid range. Panics on a bad j.
func (d *Dispatcher) EvalX(j int, x float64) float64 {
	d.check(j)
	if !(x >= d.grid.At(0) && x <= d.grid.At(d.grid.Len()-1)) {
		return 0
	}
	u := x
	if d.log {
		u = math.Log(x)
	}
	for _, a := range d.funcs[j].areas {
		if x >= d.grid.At(a.lo) && x <= d.grid.At(a.hi) {
			return horner(a.coefs, u)
		}
	}

	return 0
}

func horner(c []float64, u float64) float64 {
	var r float64
	for k := len(c) - 1; k >= 0; k-- {
		r = r*u + c[k]
	}

	return r
}

// MellinN returns the transform of p_j entering the inverse Mellin
// integral at x = e^logx. Areas above x contribute x^{-N} ∫ y^{N-1} p_j(y)
// over the area, areas below x nothing, and the area containing x only its
// upper end, its polynomial continued down to y = 0. Panics on a bad j.
func (d *Dispatcher) MellinN(j int, n complex128, logx float64) complex128 {
	d.check(j)
	var sum complex128
	for _, a := range d.funcs[j].areas {
		hi, lo := d.grid.LogAt(a.hi), d.grid.LogAt(a.lo)
		if hi <= logx {
			continue
		}
		if d.log {
			sum += logPiece(a.coefs, n, hi, logx)
			if lo > logx {
				sum -= logPiece(a.coefs, n, lo, logx)
			}
		} else {
			sum += linPiece(a.coefs, n, hi, logx)
			if lo > logx {
				sum -= linPiece(a.coefs, n, lo, logx)
			}
		}
	}

	return sum
}

// MellinAll fills dst[j] = MellinN(j, n, logx) for every basis function.
func (d *Dispatcher) MellinAll(n complex128, logx float64, dst []complex128) {
	for j := range d.funcs {
		dst[j] = d.MellinN(j, n, logx)
	}
}

// logPiece is x^{-N} G(y) at ln y = v for G' = y^{N-1} Σ c_k ln^k y:
// G = y^N Σ_k c_k Σ_{m≤k} (-1)^m k!/(k-m)! ln^{k-m} y / N^{m+1}.
func logPiece(c []float64, n complex128, v, logx float64) complex128 {
	var s complex128
	for k, ck := range c {
		if ck == 0 {
			continue
		}
		fall := 1.0 // k!/(k-m)!
		inv := 1 / n
		for m := 0; m <= k; m++ {
			sign := 1.0
			if m%2 == 1 {
				sign = -1
			}
			s += complex(ck*sign*fall*math.Pow(v, float64(k-m)), 0) * inv
			fall *= float64(k - m)
			inv /= n
		}
	}

	return cmplx.Exp(n*complex(v-logx, 0)) * s
}

// linPiece is x^{-N} G(y) for G' = y^{N-1} Σ c_k y^k: G = Σ c_k y^{N+k}/(N+k).
func linPiece(c []float64, n complex128, v, logx float64) complex128 {
	var s complex128
	y := math.Exp(v)
	for k, ck := range c {
		if ck == 0 {
			continue
		}
		s += complex(ck*math.Pow(y, float64(k)), 0) / (n + complex(float64(k), 0))
	}

	return cmplx.Exp(n*complex(v-logx, 0)) * s
}
