// SPDX-License-Identifier: MIT

// Package mellin inverts Mellin transforms numerically.
//
// For a real function f(x), x ∈ (0, 1], with transform F(N) analytic to the
// right of its singularities,
//
//	f(x) = 1/(2πi) ∫_C dN x^{-N} F(N).
//
// C is parametrised by u ∈ [0, 1] (Path). All paths here are symmetric
// under complex conjugation about u = 1/2, so only the upper half is
// integrated:
//
//	f(x) = Re[ -i/π ∫_{1/2}^{1} du x^{-N(u)} F(N(u)) N'(u) ].
//
// The default contour is Talbot's (Talbot), which runs to Re N → -∞ and
// encloses every singularity on the real axis to the left of o + r.
// Integrate performs a vector adaptive Gauss–Legendre quadrature so that
// all components of an operator are inverted with the same subdivision.
package mellin
