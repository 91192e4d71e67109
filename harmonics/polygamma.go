// SPDX-License-Identifier: MIT

package harmonics

import (
	"math/cmplx"
)

const (
	digammaShift   = 10.0 // recurrence target for ψ
	polygammaShift = 15.0 // recurrence target for ψ^{(k)}
)

// Digamma returns ψ(z) for complex z.
func Digamma(z complex128) complex128 {
	var r complex128
	for cmplx.Abs(z) < digammaShift || real(z) < digammaShift {
		r -= 1 / z
		z++
	}
	r += cmplx.Log(z) - 1/(2*z)
	zz := z * z
	p := zz
	for k, b := range bernoulli {
		r -= complex(b/float64(2*(k+1)), 0) / p
		p *= zz
	}

	return r
}

// Polygamma returns ψ^{(m)}(z); m = 0 is the digamma function.
//
// Implementation:
//
//	Stage 1: ψ^{(m)}(z) = ψ^{(m)}(z+1) + (-1)^{m+1} m!/z^{m+1}, shifting z
//	         until Re z and |z| exceed polygammaShift.
//	Stage 2: asymptotic series
//	         (-1)^{m+1}[(m-1)!/z^m + m!/(2z^{m+1}) + Σ B_{2k}(2k+m-1)!/((2k)! z^{2k+m})].
func Polygamma(m int, z complex128) complex128 {
	if m == 0 {
		return Digamma(z)
	}
	sign := complex(1, 0)
	if m%2 == 0 {
		sign = -1
	}
	f := complex(factorial[m], 0)

	// Stage 1
	var r complex128
	for real(z) < polygammaShift || cmplx.Abs(z) < polygammaShift {
		r += sign * f / cpow(z, m+1)
		z++
	}

	// Stage 2
	a := complex(factorial[m-1], 0)/cpow(z, m) + f/(2*cpow(z, m+1))
	for k, b := range bernoulli {
		kk := k + 1
		c := b * factorial[2*kk+m-1] / factorial[2*kk]
		a += complex(c, 0) / cpow(z, 2*kk+m)
	}

	return r + sign*a
}

// cpow returns z^n for n ≥ 0 by repeated squaring.
func cpow(z complex128, n int) complex128 {
	r := complex(1, 0)
	for n > 0 {
		if n&1 == 1 {
			r *= z
		}
		z *= z
		n >>= 1
	}

	return r
}
