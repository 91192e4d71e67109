// SPDX-License-Identifier: MIT

package couplings

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/qcd"
)

// betaFn returns da/dt = -Σ β_k a^{k+2}.
func betaFn(betas []float64, a float64) float64 {
	var s float64
	p := a * a
	for _, b := range betas {
		s += b * p
		p *= a
	}

	return -s
}

// SolveExpanded returns a_s at ln(μ²/μ²₀) = lnQ from a0 in the expanded
// approximation at the given order (number of loops) for nf flavours.
//
// With X = 1 + β₀a₀L, ℓ = ln X, u = a₀/X, b_k = β_k/β₀, K = b₂ - b₁²:
//
//	a = u + u²f₁ + u³f₂ + u⁴f₃
//	f₁ = -b₁ℓ
//	f₂ = b₁²ℓ² - b₁²ℓ + K(1 - X)
//	f₃ = -b₁³ℓ³ + 5/2 b₁³ℓ² + (2b₁³ - 3b₁b₂)ℓ + (b₃ - b₁³)/2
//	     + X(2b₁Kℓ - b₁K) + X²(b₁K - (b₃ - b₁³)/2)
func SolveExpanded(a0, lnQ float64, order, nf int) (float64, error) {
	beta0 := qcd.Beta0(nf)
	x := 1 + beta0*a0*lnQ
	if x <= 0 {
		return 0, fmt.Errorf("SolveExpanded: a0=%g L=%g: %w", a0, lnQ, ErrLandau)
	}
	u := a0 / x
	res := u
	if order < 2 {
		return res, nil
	}

	l := math.Log(x)
	b1 := qcd.ReducedBeta(1, nf)
	res += u * u * (-b1 * l)
	if order < 3 {
		return res, nil
	}

	b2 := qcd.ReducedBeta(2, nf)
	k := b2 - b1*b1
	res += u * u * u * (b1*b1*l*l - b1*b1*l + k*(1-x))
	if order < 4 {
		return res, nil
	}

	b3 := qcd.ReducedBeta(3, nf)
	b13 := b1 * b1 * b1
	f3 := -b13*l*l*l + 2.5*b13*l*l + (2*b13-3*b1*b2)*l + (b3-b13)/2 +
		x*(2*b1*k*l-b1*k) + x*x*(b1*k-(b3-b13)/2)

	return res + u*u*u*u*f3, nil
}

// Cash–Karp tableau.
var (
	ckA = [6]float64{0, 1.0 / 5, 3.0 / 10, 3.0 / 5, 1, 7.0 / 8}
	ckB = [6][5]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{3.0 / 10, -9.0 / 10, 6.0 / 5},
		{-11.0 / 54, 5.0 / 2, -70.0 / 27, 35.0 / 27},
		{1631.0 / 55296, 175.0 / 512, 575.0 / 13824, 44275.0 / 110592, 253.0 / 4096},
	}
	ckC  = [6]float64{37.0 / 378, 0, 250.0 / 621, 125.0 / 594, 0, 512.0 / 1771}
	ckDC = [6]float64{
		37.0/378 - 2825.0/27648, 0, 250.0/621 - 18575.0/48384,
		125.0/594 - 13525.0/55296, -277.0 / 14336, 512.0/1771 - 1.0/4,
	}
)

// SolveExact integrates the truncated β function from a0 over ln(μ²/μ²₀) = lnQ.
// LO is returned in closed form, so SolveExact and SolveExpanded agree there exactly.
//
// Implementation:
//
//	Stage 1: LO shortcut.
//	Stage 2: adaptive embedded RK4(5) on t ∈ [0, lnQ] with relative
//	         tolerance tol; step grows by at most 5× and shrinks by at
//	         most 10×.
//	Stage 3: fail with ErrStepBudget after maxSteps attempts.
func SolveExact(a0, lnQ float64, order, nf int, tol float64, maxSteps int) (float64, error) {
	// Stage 1
	if order == 1 {
		return SolveExpanded(a0, lnQ, 1, nf)
	}
	if lnQ == 0 {
		return a0, nil
	}

	// Stage 2
	betas := qcd.Betas(order, nf)
	var (
		t, a = 0.0, a0
		h    = lnQ / 16
		k    [6]float64
	)
	for step := 0; step < maxSteps; step++ {
		last := false
		if (lnQ > 0 && t+h >= lnQ) || (lnQ < 0 && t+h <= lnQ) {
			h = lnQ - t
			last = true
		}
		for i := 0; i < 6; i++ {
			ai := a
			for j := 0; j < i; j++ {
				ai += h * ckB[i][j] * k[j]
			}
			k[i] = betaFn(betas, ai)
		}
		var next, errEst float64 = a, 0
		for i := 0; i < 6; i++ {
			next += h * ckC[i] * k[i]
			errEst += h * ckDC[i] * k[i]
		}
		if math.IsNaN(next) || next <= 0 {
			h /= 10
			continue
		}
		scale := tol * math.Max(math.Abs(a), math.Abs(next))
		ratio := math.Abs(errEst) / scale
		if ratio <= 1 {
			t += h
			a = next
			if last {
				return a, nil
			}
		}
		// standard step controller
		f := 0.9 * math.Pow(math.Max(ratio, 1e-10), -0.2)
		h *= math.Min(5, math.Max(0.1, f))
	}

	// Stage 3
	return 0, &ekoerr.ConvergenceError{
		Op:     "couplings.SolveExact",
		Detail: fmt.Sprintf("nf=%d a0=%g L=%g", nf, a0, lnQ),
		Err:    ErrStepBudget,
		Value:  lnQ - t,
	}
}
