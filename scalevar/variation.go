// SPDX-License-Identifier: MIT

package scalevar

import (
	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/katalvlaran/eko/qcd"
)

// shiftCoefficients returns s[k][j], the coefficient of γ_j in the
// exponentiated shift of γ_k (j < k), for up to four loops.
func shiftCoefficients(nf int, l float64) [4][3]float64 {
	b0, b1, b2 := qcd.Beta0(nf), qcd.Beta1(nf), qcd.Beta2(nf)
	var s [4][3]float64
	s[1][0] = b0 * l
	s[2][1] = 2 * b0 * l
	s[2][0] = b1*l - b0*b0*l*l
	s[3][2] = 3 * b0 * l
	s[3][1] = 2*b1*l - 3*b0*b0*l*l
	s[3][0] = b2*l - 2.5*b1*b0*l*l + b0*b0*b0*l*l*l

	return s
}

// Exponentiate returns the shifted non-singlet anomalous dimensions.
func Exponentiate(gammas []complex128, nf int, l float64) []complex128 {
	out := append([]complex128(nil), gammas...)
	if l == 0 {
		return out
	}
	s := shiftCoefficients(nf, l)
	for k := 1; k < len(gammas) && k < len(s); k++ {
		for j := 0; j < k; j++ {
			out[k] -= complex(s[k][j], 0) * gammas[j]
		}
	}

	return out
}

// ExponentiateMatrix is Exponentiate for matrix sectors.
func ExponentiateMatrix(gammas []*cmplxmat.Matrix, nf int, l float64) []*cmplxmat.Matrix {
	out := make([]*cmplxmat.Matrix, len(gammas))
	for k, g := range gammas {
		out[k] = g.Clone()
	}
	if l == 0 {
		return out
	}
	s := shiftCoefficients(nf, l)
	for k := 1; k < len(gammas) && k < len(s); k++ {
		for j := 0; j < k; j++ {
			cmplxmat.AddScaled(out[k], gammas[j], complex(-s[k][j], 0))
		}
	}

	return out
}

// Variation returns the expanded non-singlet factor K(a, L).
func Variation(gammas []complex128, a float64, nf int, l float64) complex128 {
	k := complex(1, 0)
	if l == 0 || len(gammas) < 2 {
		return k
	}
	b0 := complex(qcd.Beta0(nf), 0)
	lc, ac := complex(l, 0), complex(a, 0)
	g0 := gammas[0]
	k += ac * (-g0 * lc)
	if len(gammas) >= 3 {
		g1 := gammas[1]
		k += ac * ac * (-g1*lc + (b0*g0+g0*g0)*lc*lc/2)
		if len(gammas) >= 4 {
			b1 := complex(qcd.Beta1(nf), 0)
			g2 := gammas[2]
			k3 := -g2*lc + (b1*g0+2*b0*g1+2*g1*g0)*lc*lc/2 -
				(2*b0*b0*g0+3*b0*g0*g0+g0*g0*g0)*lc*lc*lc/6
			k += ac * ac * ac * k3
		}
	}

	return k
}

// VariationMatrix is Variation for matrix sectors, keeping products
// ordered.
func VariationMatrix(gammas []*cmplxmat.Matrix, a float64, nf int, l float64) *cmplxmat.Matrix {
	n := gammas[0].N()
	k := cmplxmat.Identity(n)
	if l == 0 || len(gammas) < 2 {
		return k
	}
	b0 := complex(qcd.Beta0(nf), 0)
	lc, ac := complex(l, 0), complex(a, 0)
	g0 := gammas[0]
	cmplxmat.AddScaled(k, g0, -ac*lc)
	if len(gammas) >= 3 {
		g1 := gammas[1]
		g00 := cmplxmat.Mul(g0, g0)
		a2 := ac * ac
		cmplxmat.AddScaled(k, g1, -a2*lc)
		cmplxmat.AddScaled(k, g0, a2*b0*lc*lc/2)
		cmplxmat.AddScaled(k, g00, a2*lc*lc/2)
		if len(gammas) >= 4 {
			b1 := complex(qcd.Beta1(nf), 0)
			g2 := gammas[2]
			a3 := a2 * ac
			l2, l3 := lc*lc, lc*lc*lc
			cmplxmat.AddScaled(k, g2, -a3*lc)
			cmplxmat.AddScaled(k, g0, a3*(b1*l2/2-2*b0*b0*l3/6))
			cmplxmat.AddScaled(k, g1, a3*b0*l2)
			cmplxmat.AddScaled(k, cmplxmat.Add(cmplxmat.Mul(g1, g0), cmplxmat.Mul(g0, g1)), a3*l2/2)
			cmplxmat.AddScaled(k, g00, -a3*3*b0*l3/6)
			cmplxmat.AddScaled(k, cmplxmat.Mul(g00, g0), -a3*l3/6)
		}
	}

	return k
}
