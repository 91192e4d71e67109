// SPDX-License-Identifier: MIT

package anomalous

import (
	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

// nsLO returns γ_ns^(0) = C_F(-3 - 2/(N(N+1)) + 4 S1).
func nsLO(n, s1 complex128) complex128 {
	return qcd.CF * (-3 - 2/(n*(n+1)) + 4*s1)
}

// qgLO returns γ_qg^(0) = -4 T_R n_f (N²+N+2)/(N(N+1)(N+2)).
func qgLO(n complex128, nf int) complex128 {
	return -4 * qcd.TR * cf(nf) * (n*n + n + 2) / (n * (n + 1) * (n + 2))
}

// gqLO returns γ_gq^(0) = -2 C_F (N²+N+2)/((N-1)N(N+1)).
func gqLO(n complex128) complex128 {
	return -2 * qcd.CF * (n*n + n + 2) / ((n - 1) * n * (n + 1))
}

// ggLO returns γ_gg^(0).
func ggLO(n, s1 complex128, nf int) complex128 {
	return qcd.CA*(4*s1-11.0/3-4/(n*(n-1))-4/((n+1)*(n+2))) + 4.0/3*qcd.TR*cf(nf)
}

// NonSingletLO returns γ_ns^(0)(N), identical for every non-singlet sector.
func NonSingletLO(n complex128) complex128 { return nsLO(n, harmonics.S1(n)) }

// SingletLO returns the LO singlet matrix in (Σ, g).
func SingletLO(n complex128, nf int) [2][2]complex128 {
	s1 := harmonics.S1(n)

	return [2][2]complex128{
		{nsLO(n, s1), qgLO(n, nf)},
		{gqLO(n), ggLO(n, s1, nf)},
	}
}

func cf(nf int) complex128 { return complex(float64(nf), 0) }
