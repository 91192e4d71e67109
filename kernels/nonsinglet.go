// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NonSinglet returns the non-singlet kernel of a segment for anomalous
// dimensions gammas = [γ_0 … γ_{order-1}].
//
// LO is always solved exactly. Exact variants give exp(Σ γ_k j_k), expanded
// variants the same with expanded j_k. The truncated variants multiply the
// LO exponential with the U series: jointly truncated in (a1, a0) or as the
// ratio U(a1)/U(a0) of separately truncated series.
func NonSinglet(method Method, gammas []complex128, in *Integrals) (complex128, error) {
	if len(gammas) != in.Order {
		return 0, fmt.Errorf("NonSinglet: %d gammas for order %d: %w", len(gammas), in.Order, ErrOrder)
	}
	if in.Order == 1 {
		return cmplx.Exp(gammas[0] * complex(in.J(0, true), 0)), nil
	}

	switch method {
	case IterateExact, DecomposeExact, PerturbativeExact:
		return expSum(gammas, in, true), nil
	case IterateExpanded, DecomposeExpanded, PerturbativeExpanded:
		return expSum(gammas, in, false), nil
	case Truncated, OrderedTruncated:
		e0 := cmplx.Exp(gammas[0] * complex(math.Log(in.A1/in.A0)/in.Betas[0], 0))
		u := scalarU(scalarR(gammas, in))
		a1, a0 := complex(in.A1, 0), complex(in.A0, 0)
		if method == OrderedTruncated {
			return e0 * polyC(u, a1) / polyC(u, a0), nil
		}
		v := scalarInverseSeries(u)
		var s complex128
		for i := range u {
			for j := 0; i+j < len(u); j++ {
				s += u[i] * v[j] * cpowf(a1, i) * cpowf(a0, j)
			}
		}

		return e0 * s, nil
	}

	return 0, fmt.Errorf("NonSinglet: %v: %w", method, ErrUnknownMethod)
}

// NonSingletQED adds the O(a_em) and O(a_s a_em) anomalous dimensions em and
// mixed to a non-singlet solution; only the iterate methods are accepted.
func NonSingletQED(method Method, gammas []complex128, em, mixed complex128, aem float64, in *Integrals) (complex128, error) {
	if method != IterateExact && method != IterateExpanded {
		return 0, fmt.Errorf("NonSingletQED: %v: %w", method, ErrUnsupportedMethod)
	}
	if len(gammas) != in.Order {
		return 0, fmt.Errorf("NonSingletQED: %d gammas for order %d: %w", len(gammas), in.Order, ErrOrder)
	}
	exact := method == IterateExact || in.Order == 1
	ln := logSum(gammas, in, exact)
	ln += complex(aem*in.J(-1, exact), 0) * em
	ln += complex(aem*in.J(0, exact), 0) * mixed

	return cmplx.Exp(ln), nil
}

func logSum(gammas []complex128, in *Integrals, exact bool) complex128 {
	var ln complex128
	for k, g := range gammas {
		ln += g * complex(in.J(k, exact), 0)
	}

	return ln
}

func expSum(gammas []complex128, in *Integrals, exact bool) complex128 {
	return cmplx.Exp(logSum(gammas, in, exact))
}

// scalarR returns r_k = Σ_i c_{k-i} γ_i / β₀ for k < order.
func scalarR(gammas []complex128, in *Integrals) []complex128 {
	r := make([]complex128, in.Order)
	for k := range r {
		for i := 0; i <= k; i++ {
			r[k] += complex(in.series[k-i], 0) * gammas[i]
		}
		r[k] /= complex(in.Betas[0], 0)
	}

	return r
}

// scalarU returns U_0 … U_{n-1} with k U_k = Σ_{j=1..k} r_j U_{k-j}.
func scalarU(r []complex128) []complex128 {
	u := make([]complex128, len(r))
	u[0] = 1
	for k := 1; k < len(r); k++ {
		for j := 1; j <= k; j++ {
			u[k] += r[j] * u[k-j]
		}
		u[k] /= complex(float64(k), 0)
	}

	return u
}

// scalarInverseSeries returns the series of 1/U.
func scalarInverseSeries(u []complex128) []complex128 {
	v := make([]complex128, len(u))
	v[0] = 1
	for k := 1; k < len(u); k++ {
		for i := 1; i <= k; i++ {
			v[k] -= u[i] * v[k-i]
		}
	}

	return v
}

func polyC(c []complex128, x complex128) complex128 {
	var s complex128
	for k := len(c) - 1; k >= 0; k-- {
		s = s*x + c[k]
	}

	return s
}

func cpowf(x complex128, n int) complex128 {
	r := complex(1, 0)
	for i := 0; i < n; i++ {
		r *= x
	}

	return r
}
