// SPDX-License-Identifier: MIT

package anomalous

import (
	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

// nloSums are the harmonic, half-argument and alternating sums entering the
// NLO kernels, evaluated once per N.
type nloSums struct {
	n, s1, s2           complex128
	schlM, str2M, str3M complex128
	schlP, str2P, str3P complex128
}

func newNLOSums(n complex128) nloSums {
	n1 := n + 1
	s1 := harmonics.S1(n)
	slc := complex(-5.0/8*harmonics.Zeta3, 0)
	slv := -harmonics.Zeta2/2*(harmonics.Digamma(n1/2)-harmonics.Digamma(n/2)) + s1/(n*n) + harmonics.G3(n)

	return nloSums{
		n:     n,
		s1:    s1,
		s2:    harmonics.S2(n),
		schlM: slc - slv,
		str2M: harmonics.Zeta2 - harmonics.Polygamma(1, n1/2),
		str3M: harmonics.Polygamma(2, n1/2)/2 + harmonics.Zeta3,
		schlP: slc + slv,
		str2P: harmonics.Zeta2 - harmonics.Polygamma(1, (n+2)/2),
		str3P: harmonics.Polygamma(2, (n+2)/2)/2 + harmonics.Zeta3,
	}
}

// nsNLO returns γ_ns,±^(1) for sign +1 (plus) or -1 (minus).
func nsNLO(s nloSums, nf, sign int) complex128 {
	n := s.n
	nn1 := n * (n + 1)
	nn13 := nn1 * nn1 * nn1
	common := 16*s.s1*(2*n+1)/(nn1*nn1) + 24*s.s2 - 3 - 8*(3*n*n*n+n*n-1)/nn13
	var a complex128
	if sign > 0 {
		a = common + 16*(2*s.s1-1/nn1)*(s.s2-s.str2P) + 64*s.schlP - 8*s.str3P - 16*(2*n*n+2*n+1)/nn13
	} else {
		a = common + 16*(2*s.s1-1/nn1)*(s.s2-s.str2M) + 64*s.schlM - 8*s.str3M + 16*(2*n*n+2*n+1)/nn13
	}
	b := s.s1*(536.0/9+8*(2*n+1)/(nn1*nn1)) - (16*s.s1+52.0/3-8/nn1)*s.s2 - 43.0/6 -
		(151*n*n*n*n+263*n*n*n+97*n*n+3*n+9)*4/(9*nn13)
	c := -160.0/9*s.s1 + 32.0/3*s.s2 + 4.0/3 + 16*(11*n*n+5*n-3)/(9*nn1*nn1)

	return qcd.CF / 2 * ((qcd.CF-qcd.CA/2)*a + qcd.CA*b + qcd.TR*cf(nf)*c)
}

// singletNLO returns the NLO singlet matrix in (Σ, g).
func singletNLO(s nloSums, nf int) [2][2]complex128 {
	n, s1, s2 := s.n, s.s1, s.s2
	ns := n * n
	nt := ns * n
	nfo := nt * n
	nfi := nfo * n
	nsx := nfi * n
	nm, n1, n2 := n-1, n+1, n+2
	nms, n1s, n2s := nm*nm, n1*n1, n2*n2
	n1t, n2t := n1s*n1, n2s*n2
	n7, n8, n9 := nsx*n, nsx*n*n, nsx*n*n*n
	f := cf(nf)

	ppsa := (5*nfi + 32*nfo + 49*nt + 38*ns + 28*n + 8) / (nm * nt * n1t * n2s) * 2
	pqga := (-2*s1*s1+2*s2-2*s.str2P)*(ns+n+2)/(n*n1*n2) + 8*s1*(2*n+3)/(n1s*n2s) +
		2*(n9+6*n8+15*n7+25*nsx+36*nfi+85*nfo+128*nt+104*ns+64*n+16)/(nm*nt*n1t*n2t)
	pqgb := (2*s1*s1-2*s2+5)*(ns+n+2)/(n*n1*n2) - 4*s1/ns + (11*nfo+26*nt+15*ns+8*n+4)/(nt*n1t*n2)
	pgqa := (-s1*s1+5*s1-s2)*(ns+n+2)/(nm*n*n1) - 2*s1/n1s - (12*nsx+30*nfi+43*nfo+28*nt-ns-12*n-4)/(2*nm*nt*n1t)
	pgqc := 4.0 / 3 * ((-s1+8.0/3)*(ns+n+2)/(nm*n*n1) - 1/n1s)
	pgga := -(2*nfi+5*nfo+8*nt+7*ns-2*n-2)*8*s1/(nms*ns*n1s*n2s) - 67.0/9*s1 + 8.0/3 -
		4*s.str2P*(ns+n+1)/(nm*n*n1*n2) + 2*s1*s.str2P - 4*s.schlP + s.str3P/2 +
		(457*n9+2742*n8+6040*n7+6098*nsx+1567*nfi-2344*nfo-1632*nt+560*ns+1488*n+576)/(18*nms*nt*n1t*n2t)
	pggb := (38*nfo+76*nt+94*ns+56*n+12)*(-2)/(9*nm*ns*n1s*n2) + 20.0/9*s1 - 4.0/3
	pggc := (2*nsx+4*nfi+nfo-10*nt-5*ns-4*n-4)*(-2)/(nm*nt*n1t*n2) - 1

	qq := nsNLO(s, nf, +1) - 4*qcd.CF*qcd.TR*f*ppsa
	qg := -4 * qcd.TR * f * (qcd.CA*pqga + qcd.CF*pqgb)
	gq := -4*qcd.CF*qcd.CF*pgqa + qcd.CF*qcd.CA*gqCFCA(n) + 4*qcd.CF*qcd.TR*f*pgqc
	gg := -4 * (qcd.CA*qcd.CA*pgga + qcd.TR*f*qcd.CA*pggb + qcd.TR*f*qcd.CF*pggc)

	return [2][2]complex128{{qq, qg}, {gq, gg}}
}

// gqCFCA is the C_F C_A part of γ_gq^(1) in closed form.
func gqCFCA(n complex128) complex128 {
	g := func(m complex128) complex128 {
		return -(1 / m) * (1/(m*m) + (harmonics.Polygamma(1, (m+1)/2)-harmonics.Polygamma(1, m/2))/2)
	}
	r := 28.0/9/n + 65.0/18/(n+1) + 44.0/9/(n+2)
	r += 12/(n*n) + 5/((n+1)*(n+1)) + 8.0/3/((n+2)*(n+2))
	r += 8/(n*n*n) + 2/((n+1)*(n+1)*(n+1))
	r -= 2 * harmonics.S1(n+1) / (n + 1)
	r -= 2*g(n-1) + 2*g(n) + g(n+1)
	for _, t := range [...]struct {
		c complex128
		m complex128
	}{{2, n - 1}, {-2, n}, {1, n + 1}} {
		m := t.m
		s1, s2 := harmonics.S1(m), harmonics.S2(m)
		r += t.c * (0.5/m - 2*(s1/(m*m)-(harmonics.Zeta2-s2)/m) + 1/(m*m*m) - 11.0/3*s1/m + (s1*s1+s2)/m - harmonics.Zeta2/m)
	}

	return -4 * r
}
