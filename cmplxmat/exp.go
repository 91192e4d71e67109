// SPDX-License-Identifier: MIT

package cmplxmat

import (
	"math"
	"math/cmplx"
)

const (
	// degenerateEpsilon bounds |λ+ - λ-| below which the 2×2 exponential
	// switches to the degenerate (Jordan) form.
	degenerateEpsilon = 1e-12

	// taylorTerms is the truncation of the Taylor core of Exp after scaling
	// the argument to norm ≤ 1/2; 1/2^20/20! is far below double precision.
	taylorTerms = 20
)

// Eigen2 returns the eigenvalues λ± and the eigen-projectors e± of a 2×2
// matrix, with m = λ+·e+ + λ-·e-, e±² = e±, e+·e- = 0.
//
// λ± = (tr ± √(tr² - 4 det))/2, e± = (m - λ∓·1)/(λ± - λ∓).
// For |λ+ - λ-| < degenerateEpsilon the projectors are ill-defined and
// ErrSingular is returned.
func Eigen2(m *Matrix) (lp, lm complex128, ep, em *Matrix, err error) {
	if m.n != 2 {
		return 0, 0, nil, nil, ErrNotTwoByTwo
	}
	tr := m.data[0] + m.data[3]
	det := m.data[0]*m.data[3] - m.data[1]*m.data[2]
	disc := cmplx.Sqrt(tr*tr - 4*det)
	lp = (tr + disc) / 2
	lm = (tr - disc) / 2
	if cabs(lp-lm) < degenerateEpsilon*math.Max(1, cabs(lp)) {
		return lp, lm, nil, nil, ErrSingular
	}
	id := Identity(2)
	ep = Scale(Sub(m, Scale(id, lm)), 1/(lp-lm))
	em = Scale(Sub(m, Scale(id, lp)), 1/(lm-lp))

	return lp, lm, ep, em, nil
}

// Exp2 returns exp(m) for a 2×2 matrix through its eigen-projectors; the
// degenerate case uses exp(m) = e^{λ}(1 + (m - λ)).
func Exp2(m *Matrix) *Matrix {
	lp, lm, ep, em, err := Eigen2(m)
	if err != nil {
		l := (m.data[0] + m.data[3]) / 2
		out := Sub(m, Scale(Identity(2), l))
		AddScaled(out, Identity(2), 1)

		return Scale(out, cmplx.Exp(l))
	}
	out := Scale(ep, cmplx.Exp(lp))

	return AddScaled(out, em, cmplx.Exp(lm))
}

// Exp returns exp(m) for any order. 2×2 input is routed to Exp2.
//
// Implementation:
//
//	Stage 1: choose s with ‖m‖₁/2^s ≤ 1/2.
//	Stage 2: Taylor series of exp(m/2^s) up to taylorTerms.
//	Stage 3: square s times.
//
// Complexity: O((taylorTerms + s)·n³).
func Exp(m *Matrix) *Matrix {
	if m.n == 2 {
		return Exp2(m)
	}
	if m.n == 1 {
		return &Matrix{n: 1, data: []complex128{cmplx.Exp(m.data[0])}}
	}

	// Stage 1
	s := 0
	if nrm := m.Norm1(); nrm > 0.5 {
		s = int(math.Ceil(math.Log2(nrm / 0.5)))
	}
	a := Scale(m, complex(math.Ldexp(1, -s), 0))

	// Stage 2
	out := Identity(m.n)
	term := Identity(m.n)
	for k := 1; k <= taylorTerms; k++ {
		term = Scale(Mul(term, a), complex(1/float64(k), 0))
		AddScaled(out, term, 1)
	}

	// Stage 3
	for ; s > 0; s-- {
		out = Mul(out, out)
	}

	return out
}
