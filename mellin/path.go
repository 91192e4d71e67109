// SPDX-License-Identifier: MIT

package mellin

import (
	"math"
	"math/cmplx"
)

// Path is a contour N(u), u ∈ [0, 1], symmetric about u = 1/2.
type Path interface {
	// At returns N(u) and the jacobian dN/du.
	At(u float64) (n, jac complex128)
}

// Talbot is the contour N = o + r(θ cot θ + iθ), θ = π(2u-1).
type Talbot struct {
	R, O float64
}

// NewTalbot returns the contour used for an output point ln x, with
// r = 0.4·16/(1 - ln x) and o = 1 so that the pole at N = 1 is enclosed.
func NewTalbot(logx float64) Talbot {
	return Talbot{R: 0.4 * 16 / (1 - logx), O: 1}
}

// At implements Path.
func (t Talbot) At(u float64) (n, jac complex128) {
	theta := math.Pi * (2*u - 1)
	if u == 0.5 {
		return complex(t.O+t.R, 0), complex(0, 2*math.Pi*t.R)
	}
	cot := 1 / math.Tan(theta)
	sin := math.Sin(theta)
	n = complex(t.O+t.R*theta*cot, t.R*theta)
	jac = complex(t.R*2*math.Pi*(cot-theta/(sin*sin)), t.R*2*math.Pi)

	return n, jac
}

// Line is the vertical contour N = C + iM(2u-1).
type Line struct {
	M, C float64
}

// At implements Path.
func (l Line) At(u float64) (n, jac complex128) {
	return complex(l.C, l.M*(2*u-1)), complex(0, 2*l.M)
}

// Edge is the wedge N = C + |u-1/2|·M·e^{±iφ} opening to the left for
// φ > π/2.
type Edge struct {
	M, C, Phi float64
}

// At implements Path.
func (e Edge) At(u float64) (n, jac complex128) {
	if u < 0.5 {
		dir := cmplx.Exp(complex(0, -e.Phi))
		return complex(e.C, 0) + complex((0.5-u)*e.M, 0)*dir, complex(-e.M, 0) * dir
	}
	dir := cmplx.Exp(complex(0, e.Phi))

	return complex(e.C, 0) + complex((u-0.5)*e.M, 0)*dir, complex(e.M, 0) * dir
}

// Prefactor multiplies the upper-half integrand: f = Re(Prefactor ∫ ...).
const Prefactor = complex(0, -1/math.Pi)
