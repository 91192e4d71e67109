// SPDX-License-Identifier: MIT

package kernels

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/eko/cmplxmat"
)

// Singlet returns the 2×2 singlet kernel (q, g) of a segment for anomalous
// dimension matrices gammas = [γ_0 … γ_{order-1}].
func Singlet(method Method, gammas []*cmplxmat.Matrix, in *Integrals, opts ...Option) (*cmplxmat.Matrix, error) {
	if len(gammas) != in.Order {
		return nil, fmt.Errorf("Singlet: %d gammas for order %d: %w", len(gammas), in.Order, ErrOrder)
	}
	o := gather(opts)
	if in.Order == 1 {
		return cmplxmat.Exp(cmplxmat.Scale(gammas[0], complex(in.J(0, true), 0))), nil
	}

	switch method {
	case IterateExact, IterateExpanded:
		return iterate(gammas, nil, nil, 0, in, method == IterateExact, o.Iterations), nil
	case DecomposeExact, DecomposeExpanded:
		ln := cmplxmat.New(gammas[0].N())
		for k, g := range gammas {
			cmplxmat.AddScaled(ln, g, complex(in.J(k, method == DecomposeExact), 0))
		}

		return cmplxmat.Exp(ln), nil
	case PerturbativeExact, PerturbativeExpanded:
		return perturbative(gammas, in, method == PerturbativeExact, o)
	case Truncated, OrderedTruncated:
		return truncated(gammas, in, method == OrderedTruncated, o)
	}

	return nil, fmt.Errorf("Singlet: %v: %w", method, ErrUnknownMethod)
}

// MatrixQED returns the kernel of a QED block (4×4 singlet or 2×2 valence)
// with QCD gammas plus the O(a_em) matrix em and O(a_s a_em) matrix mixed.
// Only the iterate methods are supported.
func MatrixQED(method Method, gammas []*cmplxmat.Matrix, em, mixed *cmplxmat.Matrix, aem float64, in *Integrals, opts ...Option) (*cmplxmat.Matrix, error) {
	if method != IterateExact && method != IterateExpanded {
		return nil, fmt.Errorf("MatrixQED: %v: %w", method, ErrUnsupportedMethod)
	}
	if len(gammas) != in.Order {
		return nil, fmt.Errorf("MatrixQED: %d gammas for order %d: %w", len(gammas), in.Order, ErrOrder)
	}
	o := gather(opts)

	return iterate(gammas, em, mixed, aem, in, method == IterateExact || in.Order == 1, o.Iterations), nil
}

// iterate multiplies exponentials of γ(a_½)/β(a_½)·Δa on a geometric grid,
// later steps to the left.
func iterate(gammas []*cmplxmat.Matrix, em, mixed *cmplxmat.Matrix, aem float64, in *Integrals, exact bool, steps int) *cmplxmat.Matrix {
	n := gammas[0].N()
	grid := GeomSpace(in.A0, in.A1, steps)
	e := cmplxmat.Identity(n)
	for s := 1; s < len(grid); s++ {
		al, ah := grid[s-1], grid[s]
		aHalf := (ah + al) / 2
		delta := ah - al
		ln := cmplxmat.New(n)
		for k, g := range gammas {
			cmplxmat.AddScaled(ln, g, complex(density(k, aHalf, in, exact)*delta, 0))
		}
		if em != nil {
			cmplxmat.AddScaled(ln, em, complex(aem*density(-1, aHalf, in, exact)*delta, 0))
		}
		if mixed != nil {
			cmplxmat.AddScaled(ln, mixed, complex(aem*density(0, aHalf, in, exact)*delta, 0))
		}
		e = cmplxmat.Mul(cmplxmat.Exp(ln), e)
	}

	return e
}

// density is the integrand of j_k at a: a^{k-1}/Σβ_j a^j, or its expansion
// Σ_{m ≤ order-1-k} c_m a^{k-1+m}/β₀.
func density(k int, a float64, in *Integrals, exact bool) float64 {
	if exact {
		var den float64
		p := 1.0
		for _, b := range in.Betas {
			den += b * p
			p *= a
		}

		return math.Pow(a, float64(k-1)) / den
	}
	var s float64
	for m := 0; m <= in.Order-1-k; m++ {
		s += in.series[m] * math.Pow(a, float64(k-1+m))
	}

	return s / in.Betas[0]
}

// matrixR returns r_k for k = 0 … n-1; expanded r vanish from k = order on.
func matrixR(gammas []*cmplxmat.Matrix, in *Integrals, exact bool, n int) []*cmplxmat.Matrix {
	dim := gammas[0].N()
	r := make([]*cmplxmat.Matrix, n)
	for k := range r {
		r[k] = cmplxmat.New(dim)
		if !exact && k >= in.Order {
			continue
		}
		for i := 0; i <= k && i < len(gammas); i++ {
			cmplxmat.AddScaled(r[k], gammas[i], complex(in.series[k-i]/in.Betas[0], 0))
		}
	}

	return r
}

// uSeries returns U_0 … U_{n-1} solving k U_k - [r0, U_k] = Σ_{j<k} r_{k-j} U_j
// through the eigen-projectors of r0.
func uSeries(r []*cmplxmat.Matrix, lp, lm complex128, ep, em *cmplxmat.Matrix, n int) []*cmplxmat.Matrix {
	u := make([]*cmplxmat.Matrix, n)
	u[0] = cmplxmat.Identity(r[0].N())
	for k := 1; k < n; k++ {
		rp := cmplxmat.New(r[0].N())
		for j := 0; j < k; j++ {
			cmplxmat.AddScaled(rp, cmplxmat.Mul(r[k-j], u[j]), 1)
		}
		kk := complex(float64(k), 0)
		uk := cmplxmat.Scale(cmplxmat.Add(cmplxmat.Chain(em, rp, em), cmplxmat.Chain(ep, rp, ep)), 1/kk)
		cmplxmat.AddScaled(uk, cmplxmat.Chain(ep, rp, em), 1/(lm-lp+kk))
		cmplxmat.AddScaled(uk, cmplxmat.Chain(em, rp, ep), 1/(lp-lm+kk))
		u[k] = uk
	}

	return u
}

func sumSeries(u []*cmplxmat.Matrix, a float64) *cmplxmat.Matrix {
	out := cmplxmat.New(u[0].N())
	p := 1.0
	for _, uk := range u {
		cmplxmat.AddScaled(out, uk, complex(p, 0))
		p *= a
	}

	return out
}

// loStep holds the spectral data of r0 for the LO step exp(r0 ln(ah/al)).
type loStep struct {
	lp, lm complex128
	ep, em *cmplxmat.Matrix
}

func newLOStep(r0 *cmplxmat.Matrix) (loStep, error) {
	lp, lm, ep, em, err := cmplxmat.Eigen2(r0)
	if err != nil {
		if errors.Is(err, cmplxmat.ErrSingular) {
			return loStep{}, ErrDegenerate
		}

		return loStep{}, err
	}

	return loStep{lp: lp, lm: lm, ep: ep, em: em}, nil
}

func (s loStep) exp(ah, al float64) *cmplxmat.Matrix {
	l := complex(math.Log(ah/al), 0)
	out := cmplxmat.Scale(s.ep, cmplx.Exp(s.lp*l))

	return cmplxmat.AddScaled(out, s.em, cmplx.Exp(s.lm*l))
}

func perturbative(gammas []*cmplxmat.Matrix, in *Integrals, exact bool, o Options) (*cmplxmat.Matrix, error) {
	terms := in.Order
	if exact {
		terms = o.MaxOrder + 1
	}
	r := matrixR(gammas, in, exact, terms)
	lo, err := newLOStep(r[0])
	if err != nil {
		return nil, fmt.Errorf("perturbative: %w", err)
	}
	u := uSeries(r, lo.lp, lo.lm, lo.ep, lo.em, terms)

	grid := GeomSpace(in.A0, in.A1, o.Iterations)
	e := cmplxmat.Identity(2)
	for s := 1; s < len(grid); s++ {
		al, ah := grid[s-1], grid[s]
		inv, err := cmplxmat.Inverse(sumSeries(u, al))
		if err != nil {
			return nil, fmt.Errorf("perturbative: %w", err)
		}
		step := cmplxmat.Chain(sumSeries(u, ah), lo.exp(ah, al), inv)
		e = cmplxmat.Mul(step, e)
	}

	return e, nil
}

func truncated(gammas []*cmplxmat.Matrix, in *Integrals, ordered bool, o Options) (*cmplxmat.Matrix, error) {
	r := matrixR(gammas, in, false, in.Order)
	lo, err := newLOStep(r[0])
	if err != nil {
		return nil, fmt.Errorf("truncated: %w", err)
	}
	u := uSeries(r, lo.lp, lo.lm, lo.ep, lo.em, in.Order)

	// series of U⁻¹
	v := make([]*cmplxmat.Matrix, len(u))
	v[0] = cmplxmat.Identity(2)
	for k := 1; k < len(u); k++ {
		v[k] = cmplxmat.New(2)
		for i := 1; i <= k; i++ {
			cmplxmat.AddScaled(v[k], cmplxmat.Mul(u[i], v[k-i]), -1)
		}
	}

	grid := GeomSpace(in.A0, in.A1, o.Iterations)
	e := cmplxmat.Identity(2)
	for s := 1; s < len(grid); s++ {
		al, ah := grid[s-1], grid[s]
		e0 := lo.exp(ah, al)
		var step *cmplxmat.Matrix
		if ordered {
			inv, err := cmplxmat.Inverse(sumSeries(u, al))
			if err != nil {
				return nil, fmt.Errorf("truncated: %w", err)
			}
			step = cmplxmat.Chain(sumSeries(u, ah), e0, inv)
		} else {
			step = cmplxmat.New(2)
			for i := range u {
				for j := 0; i+j < len(u); j++ {
					w := math.Pow(ah, float64(i)) * math.Pow(al, float64(j))
					cmplxmat.AddScaled(step, cmplxmat.Chain(u[i], e0, v[j]), complex(w, 0))
				}
			}
		}
		e = cmplxmat.Mul(step, e)
	}

	return e, nil
}
