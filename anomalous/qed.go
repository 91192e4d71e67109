// SPDX-License-Identifier: MIT

package anomalous

import (
	"math"

	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

// O(a_em) kernels without charge factors; they follow from LO QCD by
// replacing colour factors.

func nsEM(n, s1 complex128) complex128 { return nsLO(n, s1) / qcd.CF }

func phqEM(n complex128) complex128 { return gqLO(n) / qcd.CF }

func qphEM(n complex128, nf int) complex128 { return qgLO(n, nf) / qcd.TR * qcd.NC }

func phphEM(nf int) complex128 { return complex(4.0/3*qcd.NC*qcd.Charges(nf).E2Sum, 0) }

// O(a_s a_em) kernels (de Florian, Sborlini, Rodrigo), charge factors
// stripped.

type mixedSums struct {
	n, s1, s2, s3 complex128
	s1h, s2h, s3h complex128 // S_k(N/2)
	s1p, s2p, s3p complex128 // S_k((N+1)/2)
	g3            complex128 // g3(N) + g3(N+2)
}

func newMixedSums(n complex128) mixedSums {
	h, p := n/2, (n+1)/2

	return mixedSums{
		n: n, s1: harmonics.S1(n), s2: harmonics.S2(n), s3: harmonics.S3(n),
		s1h: harmonics.S1(h), s2h: harmonics.S2(h), s3h: harmonics.S3(h),
		s1p: harmonics.S1(p), s2p: harmonics.S2(p), s3p: harmonics.S3(p),
		g3: harmonics.G3(n) + harmonics.G3(n+2),
	}
}

const pi2 = math.Pi * math.Pi

func phqMixed(s mixedSums) complex128 {
	n := s.n
	c := 2 * (-4 - 12*n - n*n + 28*pow(n, 3) + 43*pow(n, 4) + 30*pow(n, 5) + 12*pow(n, 6)) /
		((n - 1) * pow(n, 3) * pow(n+1, 3))
	a := -4 * (10 + 27*n + 25*n*n + 13*pow(n, 3) + 5*pow(n, 4)) / ((n - 1) * n * pow(n+1, 3))
	b := 4 * (2 + n + n*n) / ((n - 1) * n * (n + 1))

	return qcd.CF * (c + a*s.s1 + b*s.s1*s.s1 + b*s.s2)
}

func qphMixed(s mixedSums) complex128 {
	n := s.n
	c := -2 * (4 + 8*n + 25*n*n + 51*pow(n, 3) + 36*pow(n, 4) + 15*pow(n, 5) + 5*pow(n, 6)) /
		(pow(n, 3) * pow(n+1, 3) * (n + 2))
	b := 4 * (2 + n + n*n) / (n * (n + 1) * (n + 2))

	return qcd.CA * qcd.CF * (c + 8/(n*n)*s.s1 - b*s.s1*s.s1 + b*s.s2)
}

func gphMixed(n complex128) complex128 {
	return qcd.CF * qcd.CA * 8 * (-4 + n*(-4+n*(-5+n*(-10+n+2*n*n*(2+n))))) /
		(pow(n, 3) * pow(n+1, 3) * (n*n + n - 2))
}

func phgMixed(n complex128) complex128 { return qcd.TR / (qcd.CF * qcd.CA) * gphMixed(n) }

func qgMixed(s mixedSums) complex128 { return qcd.TR / (qcd.CF * qcd.CA) * qphMixed(s) }

func nsPlusMixed(s mixedSums) complex128 {
	n := s.n
	nn := n + n*n
	n13 := pow(n, 3) * pow(n+1, 3)
	r := 16.0/3*pi2*s.s1h - 16.0/3*pi2*s.s1p + 8/nn*s.s2h - 4*s.s3h + (24+16/nn)*s.s2 - 32*s.s3 - 8/nn*s.s2p +
		s.s1*(16*(9/(n*n)-9/((n+1)*(n+1))+pi2)/3-16*s.s2h-32*s.s2+16*s.s2p) +
		(-8+n*(-32+n*(-8-3*n*(3+n)*(3+n*n)-8*(1+n)*(1+n)*pi2))+32*n13*s.g3)/n13 +
		4*s.s3p - 16*harmonics.Zeta3

	return qcd.CF * r
}

func nsMinusMixed(s mixedSums) complex128 {
	n := s.n
	nn := n + n*n
	n13 := pow(n, 3) * pow(n+1, 3)
	r := -16.0/3*pi2*s.s1h - 8/nn*s.s2h + (24+16/nn)*s.s2 + 8/nn*s.s2p +
		s.s1*(16*(-3/(n*n)+3/((n+1)*(n+1))+pi2)/3+16*s.s2h-32*s.s2-16*s.s2p) +
		(72+n*(96-3*n*(8+3*n*(3+n)*(3+n*n))+8*n*(1+n)*(1+n)*pi2)-96*n13*s.g3)/(3*n13) +
		16.0/3*pi2*s.s1p + 4*s.s3h - 32*s.s3 - 4*s.s3p - 16*harmonics.Zeta3

	return qcd.CF * r
}
