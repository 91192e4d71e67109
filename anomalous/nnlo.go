// SPDX-License-Identifier: MIT

package anomalous

import (
	"math/cmplx"

	"github.com/katalvlaran/eko/harmonics"
)

// NNLO splitting functions in the parametrisation of Moch, Vermaseren and
// Vogt (hep-ph/0403192, hep-ph/0404111). The helpers below return P^(2);
// the exported assembly flips the sign.

type nnloSums struct {
	harmonics.Sums
	e1, e2, e11, b21 complex128
}

func newNNLOSums(n complex128) nnloSums {
	s := harmonics.NewSums(n)
	n1 := n + 1
	s1p := s.S1 + 1/n1
	s2p := s.S2 + 1/(n1*n1)

	return nnloSums{
		Sums: s,
		e1:   s.S1/(n*n) + (s.S2-harmonics.Zeta2)/n,
		e2:   2 * (-s.S1/(n*n*n) + (harmonics.Zeta2-s.S2)/(n*n) - (s.S3-harmonics.Zeta3)/n),
		e11:  s1p/(n1*n1) + (s2p-harmonics.Zeta2)/n1,
		b21:  (s1p*s1p + s2p) / n1,
	}
}

func (s nnloSums) b3() complex128 {
	return -(s.S1*s.S1*s.S1 + 3*s.S1*s.S2 + 2*s.S3) / s.N
}

func (s nnloSums) b4() complex128 {
	s1 := s.S1

	return (s1*s1*s1*s1 + 6*s1*s1*s.S2 + 8*s1*s.S3 + 3*s.S2*s.S2 + 6*s.S4) / s.N
}

func pow(z complex128, k int) complex128 {
	r := complex(1, 0)
	for i := 0; i < k; i++ {
		r *= z
	}

	return r
}

// pNSnf2 is the exact n_f² part shared by every non-singlet sector.
func pNSnf2(s nnloSums) complex128 {
	n := s.N

	return -(17.0/72 - 2.0/27*s.S1 - 10.0/27*s.S2 + 2.0/9*s.S3 -
		(12*pow(n, 4)+2*pow(n, 3)-12*n*n-2*n+3)/(27*pow(n, 3)*pow(n+1, 3))) * 32 / 3
}

func pNSMinus(s nnloSums, nf int) complex128 {
	n, s1 := s.N, s.S1
	p := -1174.898*(s1-1/n) + 1295.470 - 714.1*s1/n - 433.2/(n+3) + 297/(n+2) - 3505/(n+1) +
		1860.2/n - 1465.2/(n*n) + 399.2*2/pow(n, 3) - 320.0/9*6/pow(n, 4) + 116.0/81*24/pow(n, 5) +
		684*s.e1 + 251.2*s.e2
	pnf := 183.187*(s1-1/n) - 173.933 + 5120.0/81*s1/n + 34.76/(n+3) + 77.89/(n+2) + 406.5/(n+1) -
		216.62/n + 172.69/(n*n) - 3216.0/81*2/pow(n, 3) + 256.0/81*6/pow(n, 4) - 65.43*s.e1 +
		1.136*6/pow(n+1, 4)
	f := cf(nf)

	return p + f*pnf + f*f*pNSnf2(s)
}

func pNSPlus(s nnloSums, nf int) complex128 {
	n, s1 := s.N, s.S1
	p := -1174.898*(s1-1/n) + 1295.384 - 714.1*s1/n - 522.1/(n+3) + 243.6/(n+2) - 3135/(n+1) +
		1641.1/n - 1258/(n*n) + 294.9*2/pow(n, 3) - 800.0/27*6/pow(n, 4) + 128.0/81*24/pow(n, 5) +
		563.9*s.e1 + 256.8*s.e2
	pnf := 183.187*(s1-1/n) - 173.924 + 5120.0/81*s1/n + 44.79/(n+3) + 72.94/(n+2) + 381.1/(n+1) -
		197/n + 152.6/(n*n) - 2608.0/81*2/pow(n, 3) + 192.0/81*6/pow(n, 4) - 56.66*s.e1 +
		1.497*6/pow(n+1, 4)
	f := cf(nf)

	return p + f*pnf + f*f*pNSnf2(s)
}

func pNSValence(s nnloSums, nf int) complex128 {
	n, s1 := s.N, s.S1
	b11 := -(s1 + 1/(n+1)) / (n + 1)
	b12 := -(s1 + 1/(n+1) + 1/(n+2)) / (n + 2)
	var b1m complex128
	if cmplx.Abs(n-1) < 1e-5 {
		b1m = -harmonics.Zeta2
	} else {
		b1m = -(s1 - 1/n) / (n - 1)
	}
	ps := -163.9*(b1m+s1/n) - 7.208*(b11-b12) + 4.82*(1/(n+3)-1/(n+4)) - 43.12*(1/(n+2)-1/(n+3)) +
		44.51*(1/(n+1)-1/(n+2)) + 151.49*(1/n-1/(n+1)) - 178.04/(n*n) + 6.892*2/pow(n, 3) -
		40.0/27*(-2*6/pow(n, 4)-24/pow(n, 5)) - 173.1*s.e1 + 46.18*s.e2

	return pNSMinus(s, nf) + cf(nf)*ps
}

func pPureSinglet(s nnloSums, nf int) complex128 {
	n, s1, s2, s3 := s.N, s.S1, s.S2, s.S3
	n1 := n + 1
	s1p, s2p, s3p := s1+1/n1, s2+1/(n1*n1), s3+1/pow(n1, 3)
	b31 := -(s1p*s1p*s1p + 3*s1p*s2p + 2*s3p) / n1
	ps1 := -3584.0/27*(-1/((n-1)*(n-1))+1/(n*n)) - 506*(1/(n-1)-1/n) + 160.0/27*(24/pow(n, 5)-24/pow(n1, 5)) -
		400.0/9*(-6/pow(n, 4)+6/pow(n1, 4)) + 131.4*(2/pow(n, 3)-2/pow(n1, 3)) - 661.6*(-1/(n*n)+1/(n1*n1)) -
		5.926*(s.b3()-b31) - 9.751*((s1*s1+s2)/n-s.b21) - 72.11*(-s1/n+s1p/n1) + 177.4*(1/n-1/n1) +
		392.9*(1/n1-1/(n+2)) - 101.4*(1/(n+2)-1/(n+3)) - 57.04*(s.e1-s.e11)
	ps2 := 256.0/81*(1/(n-1)-1/n) + 32.0/27*(-6/pow(n, 4)+6/pow(n1, 4)) + 17.89*(2/pow(n, 3)-2/pow(n1, 3)) +
		61.75*(-1/(n*n)+1/(n1*n1)) + 1.778*((s1*s1+s2)/n-s.b21) + 5.944*(-s1/n+s1p/n1) + 100.1*(1/n-1/n1) -
		125.2*(1/n1-1/(n+2)) + 49.26*(1/(n+2)-1/(n+3)) - 12.59*(1/(n+3)-1/(n+4)) - 1.889*(s.e1-s.e11)
	f := cf(nf)

	return f*ps1 + f*f*ps2
}

func pQG(s nnloSums, nf int) complex128 {
	n, s1, s2 := s.N, s.S1, s.S2
	b3 := s.b3()
	qg1 := 896.0/3/((n-1)*(n-1)) - 1268.3/(n-1) + 536.0/27*24/pow(n, 5) + 44.0/3*6/pow(n, 4) +
		881.5*2/pow(n, 3) - 424.9/(n*n) + 100.0/27*s.b4() - 70.0/9*b3 - 120.5*(s1*s1+s2)/n -
		104.42*s1/n + 2522/n - 3316/(n+1) + 2126/(n+2) + 1823*s.e1 - 25.22*s.e2 + 252.5*6/pow(n+1, 4)
	qg2 := 1112.0/243/(n-1) - 16.0/9*24/pow(n, 5) + 376.0/27*6/pow(n, 4) - 90.8*2/pow(n, 3) + 254/(n*n) +
		20.0/27*b3 + 200.0/27*(s1*s1+s2)/n + 5.496*s1/n - 252/n + 158/(n+1) + 145.4/(n+2) -
		139.28/(n+3) - 53.09*s.e1 - 80.616*s.e2 - 98.07*2/pow(n+1, 3) - 11.70*6/pow(n+1, 4)
	f := cf(nf)

	return f*qg1 + f*f*qg2
}

func pGQ(s nnloSums, nf int) complex128 {
	n, s1, s2 := s.N, s.S1, s.S2
	b3 := s.b3()
	gq0 := -1189.3/((n-1)*(n-1)) + 6163.1/(n-1) - 4288.0/81*24/pow(n, 5) - 1568.0/9*6/pow(n, 4) -
		1794*2/pow(n, 3) - 4033/(n*n) + 400.0/81*s.b4() + 2200.0/27*b3 + 606.3*(s1*s1+s2)/n -
		2193*s1/n - 4307/n + 489.3/(n+1) + 1452/(n+2) + 146/(n+3) - 447.3*s.e2 - 972.9*2/pow(n+1, 3)
	gq1 := -71.082/((n-1)*(n-1)) - 46.41/(n-1) + 128.0/27*24/pow(n, 5) - 704.0/81*6/pow(n, 4) +
		20.39*2/pow(n, 3) - 174.8/(n*n) - 400.0/81*b3 - 68.069*(s1*s1+s2)/n + 296.7*s1/n - 183.8/n +
		33.35/(n+1) - 277.9/(n+2) + 108.6*2/pow(n+1, 3) - 49.68*s.e1
	s1m := s1 - 1/n
	gq2 := (64*(-1/(n-1)+1/n+2/(n+1)) +
		320*(-s1m/(n-1)+s1/n-0.8*(s1+1/(n+1))/(n+1)) +
		96*((s1m*s1m+s2-1/(n*n))/(n-1)-(s1*s1+s2)/n+0.5*s.b21)) / 27
	f := cf(nf)

	return gq0 + f*gq1 + f*f*gq2
}

func pGG(s nnloSums, nf int) complex128 {
	n, s1 := s.N, s.S1
	gg0 := -2675.8/((n-1)*(n-1)) + 14214/(n-1) - 144*24/pow(n, 5) - 72*6/pow(n, 4) - 7471*2/pow(n, 3) -
		274.4/(n*n) - 20852/n + 3968/(n+1) - 3363/(n+2) + 4848/(n+3) + 7305*s.e1 + 8757*s.e2 -
		3589*s1/n + 4425.894 - 2643.521*(s1-1/n)
	gg1 := -157.27/((n-1)*(n-1)) + 182.96/(n-1) + 512.0/27*24/pow(n, 5) - 832.0/9*6/pow(n, 4) +
		491.3*2/pow(n, 3) - 1541/(n*n) - 350.2/n + 755.7/(n+1) - 713.8/(n+2) + 559.3/(n+3) +
		26.15*s.e1 - 808.7*s.e2 + 320*s1/n - 528.723 + 412.172*(s1-1/n)
	gg2 := -680.0/243/(n-1) + 32.0/27*6/pow(n, 4) + 9.680*2/pow(n, 3) + 3.422/(n*n) - 13.878/n +
		153.41/(n+1) - 187.7/(n+2) + 52.75/(n+3) - 115.6*s.e1 + 85.25*s.e11 - 63.23*s.e2 +
		6.4630 + 16.0/9*(s1-1/n)
	f := cf(nf)

	return gg0 + f*gg1 + f*f*gg2
}

// singletNNLO returns γ^(2) in (Σ, g).
func singletNNLO(s nnloSums, nf int) [2][2]complex128 {
	return [2][2]complex128{
		{-(pNSPlus(s, nf) + pPureSinglet(s, nf)), -pQG(s, nf)},
		{-pGQ(s, nf), -pGG(s, nf)},
	}
}
