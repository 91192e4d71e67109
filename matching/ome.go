// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

// MaxOrder is the highest matching order (NNLO).
const MaxOrder = 3

// Elements are the OME entries at one power of a_s.
type Elements struct {
	NS complex128 // light quark to itself
	HQ complex128 // pure singlet, Σ to h+
	HG complex128 // g to h+
	GQ complex128 // Σ to g
	GG complex128 // g to g
}

// OME holds the expansion coefficients A^(1) and A^(2) at one N.
type OME struct {
	N     complex128
	Order int
	L     float64
	A1    Elements // zero below NLO
	A2    Elements // zero below NNLO
}

// New evaluates the operator matrix elements for order loops (1..3) and
// L = ln(μ²_h/m²_h).
func New(n complex128, l float64, order int) (OME, error) {
	if order < 1 || order > MaxOrder {
		return OME{}, fmt.Errorf("order %d: %w", order, ErrOrder)
	}
	if order == 3 && l != 0 {
		return OME{}, fmt.Errorf("L=%g: %w", l, ErrScaleNNLO)
	}
	o := OME{N: n, Order: order, L: l}
	if order >= 2 {
		o.A1 = nlo(n, l)
	}
	if order >= 3 {
		o.A2 = nnlo(harmonics.NewSums(n))
	}

	return o, nil
}

func nlo(n complex128, l float64) Elements {
	lc := complex(l, 0)

	return Elements{
		HG: 2 * (n*n + n + 2) / (n * (n + 1) * (n + 2)) * lc,
		GG: -2.0 / 3.0 * lc,
	}
}

const (
	z2 = complex(harmonics.Zeta2, 0)
	z3 = complex(harmonics.Zeta3, 0)
)

func nnlo(s harmonics.Sums) Elements {
	return Elements{
		NS: qcd.CF * qcd.TR * nsNNLO(s),
		HQ: qcd.CF * qcd.TR * hqNNLO(s),
		HG: hgNNLO(s),
		GQ: qcd.CF * qcd.TR * gqNNLO(s),
		GG: qcd.TR * (qcd.CF*ggNNLOF(s) + qcd.CA*ggNNLOA(s)),
	}
}

func nsNNLO(s harmonics.Sums) complex128 {
	n := s.N
	n1 := n + 1

	return -224.0/27.0*(s.S1-1/n) - 8.0/3.0*z3 + 40.0/9.0*z2 + 73.0/18.0 +
		44.0/27.0/n - 268.0/27.0/n1 +
		8.0/3.0*(-1/(n*n)+1/(n1*n1)) +
		20.0/9.0*(2*s.S2-1/(n*n)+1/(n1*n1)-2*z2) -
		4.0/3.0*(2*s.S3-1/(n*n*n)+1/(n1*n1*n1)-2*z3)
}

// hqNNLO is A_Hq^{PS,(2)}/(C_F T_R) at L = 0.
func hqNNLO(s harmonics.Sums) complex128 {
	n := s.N
	nm, n1, n2 := n-1, n+1, n+2
	d := z2 - s.S2
	f1m := (d + 1/(n*n)) / nm
	f11 := (d - 1/(n1*n1)) / n1
	f12 := (d - 1/(n1*n1) - 1/(n2*n2)) / n2
	f21 := -(d - 1/(n1*n1)) / (n1 * n1)

	return -(32.0/3.0/nm+8*(1/n-1/n1)-32.0/3.0/n2)*z2 -
		448.0/27.0/nm - 4.0/3.0/n - 124.0/3.0/n1 + 1600.0/27.0/n2 +
		8*(1/(n*n*n*n)+1/(n1*n1*n1*n1)) +
		4/(n*n*n) + 20/(n1*n1*n1) + 32.0/3.0/(n2*n2*n2) +
		16*z2*(1/(n*n)+1/(n1*n1)) +
		56.0/3.0/(n*n) + 88.0/3.0/(n1*n1) + 448.0/9.0/(n2*n2) +
		32.0/3.0*f1m + 8*(d/n-f11) - 32.0/3.0*f12 + 16*(-d/(n*n)+f21)
}

// hgNNLO is the x-space fit of A_Hg^{S,(2)} at L = 0.
func hgNNLO(s harmonics.Sums) complex128 {
	n := s.N
	e2 := 2 / n * (z3 - s.S3 + (z2-s.S2-s.S1/n)/n)

	return -0.006 +
		1.111*(s.S1*s.S1*s.S1+3*s.S1*s.S2+2*s.S3)/n -
		0.400*(s.S1*s.S1+s.S2)/n +
		2.770*s.S1/n -
		24.89/(n-1) - 187.8/n + 249.6/(n+1) +
		1.556*6/(n*n*n*n) - 3.292*2/(n*n*n) + 93.68/(n*n) -
		146.8*e2
}

func gqNNLO(s harmonics.Sums) complex128 {
	n := s.N
	nm, n1 := n-1, n+1
	s1m := s.S1 - 1/n
	s11 := s.S1 + 1/n1
	b2m := (s1m*s1m + s.S2 - 1/(n*n)) / nm
	b21 := (s11*s11 + s.S2 + 1/(n1*n1)) / n1

	return 4.0/3.0*(2*b2m-2*(s.S1*s.S1+s.S2)/n+b21) +
		8.0/9.0*(-10*s1m/nm+10*s.S1/n-8*s11/n1) +
		(448*(1/nm-1/n)+344/n1)/27
}

func ggNNLOF(s harmonics.Sums) complex128 {
	n := s.N
	n1 := n + 1

	return -15 - 8/(n-1) + 80/n - 48/n1 - 24/(n+2) -
		8*(1/(n*n*n*n)+1/(n1*n1*n1*n1)) +
		12/(n*n*n) + 20/(n1*n1*n1) -
		32/(n*n) - 48/(n1*n1)
}

func ggNNLOA(s harmonics.Sums) complex128 {
	n := s.N
	n1 := n + 1

	return -224.0/27.0*(s.S1-1/n) + 10.0/9.0 +
		4.0/3.0*(s.S1+1/n1)/n1 +
		(556/(n-1)-628/n+548/n1-700/(n+2))/27 +
		8.0/3.0*(1/(n*n*n)+1/(n1*n1*n1)) -
		(52/(n*n)+88/(n1*n1))/9
}
