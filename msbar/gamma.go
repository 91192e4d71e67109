// SPDX-License-Identifier: MIT

package msbar

import (
	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

// MaxOrder is the highest number of loops of γ_m.
const MaxOrder = 3

// Gamma returns γ_m,k(nf) in a_s = α_s/(4π) normalisation for k = 0, 1, 2.
func Gamma(k, nf int) float64 {
	f := float64(nf)
	switch k {
	case 0:
		return 4
	case 1:
		return 202.0/3 - 20.0/9*f
	case 2:
		return 1249 - (2216.0/27+160.0/3*harmonics.Zeta3)*f - 140.0/81*f*f
	}
	panic("msbar: Gamma: order out of range")
}

// coefficients returns c_k = γ_k/β0 and b_k = β_k/β0 up to order loops.
func coefficients(order, nf int) (c, b []float64) {
	b0 := qcd.Beta0(nf)
	for k := 0; k < order; k++ {
		c = append(c, Gamma(k, nf)/b0)
		b = append(b, qcd.Beta(k, nf)/b0)
	}

	return c, b
}
