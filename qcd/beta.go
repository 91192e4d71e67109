// SPDX-License-Identifier: MIT

package qcd

// Beta0 returns β₀(n_f) = 11/3 C_A - 4/3 T_R n_f.
func Beta0(nf int) float64 {
	return 11.0/3.0*CA - 4.0/3.0*TR*float64(nf)
}

// Beta1 returns β₁(n_f) = 34/3 C_A² - 20/3 C_A T_R n_f - 4 C_F T_R n_f.
func Beta1(nf int) float64 {
	f := float64(nf)

	return 34.0/3.0*CA*CA - 20.0/3.0*CA*TR*f - 4*CF*TR*f
}

// Beta2 returns β₂(n_f).
func Beta2(nf int) float64 {
	f := float64(nf)

	return 2857.0/54.0*CA*CA*CA +
		2*CF*CF*TR*f -
		205.0/9.0*CF*CA*TR*f -
		1415.0/27.0*CA*CA*TR*f +
		44.0/9.0*CF*TR*TR*f*f +
		158.0/27.0*CA*TR*TR*f*f
}

// Beta3 returns β₃(n_f) for SU(3).
func Beta3(nf int) float64 {
	f := float64(nf)

	return 149753.0/6.0 + 3564*zeta3 -
		(1078361.0/162.0+6508.0/27.0*zeta3)*f +
		(50065.0/162.0+6472.0/81.0*zeta3)*f*f +
		1093.0/729.0*f*f*f
}

// Beta returns β_k(n_f) for k = 0..3; other k yield 0.
func Beta(k, nf int) float64 {
	switch k {
	case 0:
		return Beta0(nf)
	case 1:
		return Beta1(nf)
	case 2:
		return Beta2(nf)
	case 3:
		return Beta3(nf)
	}

	return 0
}

// Betas returns [β₀ … β_{order-1}].
func Betas(order, nf int) []float64 {
	out := make([]float64, order)
	for k := range out {
		out[k] = Beta(k, nf)
	}

	return out
}

// ReducedBeta returns b_k = β_k/β₀.
func ReducedBeta(k, nf int) float64 {
	return Beta(k, nf) / Beta0(nf)
}
