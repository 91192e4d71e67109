// SPDX-License-Identifier: MIT

package msbar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/kernels"
)

// Kernel returns m(a1)/m(a0) at fixed nf. order counts loops of γ_m and is
// capped at MaxOrder.
func Kernel(a0, a1 float64, nf, order int, exact bool) (float64, error) {
	if order > MaxOrder {
		order = MaxOrder
	}
	if exact {
		in, err := kernels.NewIntegrals(a0, a1, nf, order)
		if err != nil {
			return 0, fmt.Errorf("Kernel: %w", err)
		}
		var ln float64
		for k := 0; k < order; k++ {
			ln += Gamma(k, nf) * in.J(k, true)
		}

		return math.Exp(ln), nil
	}
	if order < 1 {
		return 0, fmt.Errorf("Kernel: order %d: %w", order, kernels.ErrOrder)
	}

	c, b := coefficients(order, nf)
	num, den := 1.0, 1.0
	var u1 float64
	if order >= 2 {
		u1 = c[1] - b[1]*c[0]
		num += a1 * u1
		den += a0 * u1
	}
	if order >= 3 {
		u2 := (c[2] - c[1]*b[1] - b[2]*c[0] + b[1]*b[1]*c[0] + u1*u1) / 2
		num += a1 * a1 * u2
		den += a0 * a0 * u2
	}

	return math.Pow(a1/a0, c[0]) * num / den, nil
}

// Running returns m²(q2To) from m²(q2Ref) = m2Ref in nfRef flavours, with
// a_s taken from c in nfRef flavours and the method of c.
func Running(c *couplings.Couplings, m2Ref, q2Ref float64, nfRef int, q2To float64) (float64, error) {
	a0, err := c.AIn(q2Ref, nfRef)
	if err != nil {
		return 0, fmt.Errorf("Running: %w", err)
	}
	a1, err := c.AIn(q2To, nfRef)
	if err != nil {
		return 0, fmt.Errorf("Running: %w", err)
	}
	k, err := Kernel(a0, a1, nfRef, c.Order(), c.Method() == couplings.Exact)
	if err != nil {
		return 0, fmt.Errorf("Running: %w", err)
	}

	return m2Ref * k * k, nil
}
