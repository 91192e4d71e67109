// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/qcd"
	"gonum.org/v1/gonum/integrate/quad"
)

// MaxOrder is the highest QCD order (loops of γ) the kernels accept.
const MaxOrder = 3

// Integrals are the evolution integrals j_k of one segment for
// k = -1 … Order-1; k = -1 and k = 0 carry the O(a_em) and O(a_s a_em)
// pieces of QED evolution.
type Integrals struct {
	A0, A1 float64
	NF     int
	Order  int
	Betas  []float64 // β_0 … β_{Order-1}

	exact    []float64 // j_k at index k+1
	expanded []float64 // expanded j_k at index k+1
	series   []float64 // c_m of 1/(1 + b1 a + b2 a² + …)
}

// NewIntegrals evaluates the integrals between a0 and a1 for nf flavours.
//
// Implementation:
//
//	Stage 1: β coefficients and the reciprocal series c_m.
//	Stage 2: exact j_k = ∫ a^k/Σβ_j a^j d ln a by Gauss–Legendre.
//	Stage 3: expanded j_k = Σ_{m ≤ order-1-k} c_m/β₀ ∫ a^{k-1+m} da.
func NewIntegrals(a0, a1 float64, nf, order int, opts ...Option) (*Integrals, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("NewIntegrals: order %d: %w", order, ErrOrder)
	}
	o := gather(opts)

	// Stage 1
	in := &Integrals{A0: a0, A1: a1, NF: nf, Order: order, Betas: qcd.Betas(order, nf)}
	in.series = seriesCoefficients(in.Betas, o.MaxOrder+order+1)

	// Stage 2
	in.exact = make([]float64, order+1)
	for k := -1; k < order; k++ {
		in.exact[k+1] = exactJ(k, a0, a1, in.Betas, o.LegendrePoints)
	}

	// Stage 3
	in.expanded = make([]float64, order+1)
	b0 := in.Betas[0]
	for k := -1; k < order; k++ {
		var s float64
		for m := 0; m <= order-1-k; m++ {
			s += in.series[m] * powIntegral(k-1+m, a0, a1)
		}
		in.expanded[k+1] = s / b0
	}

	return in, nil
}

// J returns j_k (k = -1 … Order-1), exact or expanded.
func (in *Integrals) J(k int, exact bool) float64 {
	if exact {
		return in.exact[k+1]
	}

	return in.expanded[k+1]
}

// Series returns c_m, the coefficients of 1/(1 + Σ b_i a^i).
func (in *Integrals) Series() []float64 { return in.series }

// seriesCoefficients returns c_0 … c_{n-1} with c_0 = 1 and
// c_m = -Σ_{i≥1} b_i c_{m-i}, b_i = β_i/β_0.
func seriesCoefficients(betas []float64, n int) []float64 {
	c := make([]float64, n)
	c[0] = 1
	for m := 1; m < n; m++ {
		for i := 1; i < len(betas) && i <= m; i++ {
			c[m] -= betas[i] / betas[0] * c[m-i]
		}
	}

	return c
}

// exactJ integrates a^k/Σβ_j a^j over ln a from ln a0 to ln a1.
func exactJ(k int, a0, a1 float64, betas []float64, points int) float64 {
	if a0 == a1 {
		return 0
	}
	f := func(la float64) float64 {
		a := math.Exp(la)
		var den float64
		p := 1.0
		for _, b := range betas {
			den += b * p
			p *= a
		}

		return math.Pow(a, float64(k)) / den
	}
	lo, hi, sign := math.Log(a0), math.Log(a1), 1.0
	if lo > hi {
		lo, hi, sign = hi, lo, -1
	}

	return sign * quad.Fixed(f, lo, hi, points, quad.Legendre{}, 0)
}

// powIntegral returns ∫_{a0}^{a1} a^p da for integer p.
func powIntegral(p int, a0, a1 float64) float64 {
	if p == -1 {
		return math.Log(a1 / a0)
	}
	q := float64(p + 1)

	return (math.Pow(a1, q) - math.Pow(a0, q)) / q
}

// GeomSpace returns n+1 points from a0 to a1 with constant ratio.
func GeomSpace(a0, a1 float64, n int) []float64 {
	out := make([]float64, n+1)
	r := math.Pow(a1/a0, 1/float64(n))
	out[0] = a0
	for i := 1; i < n; i++ {
		out[i] = out[i-1] * r
	}
	out[n] = a1

	return out
}
