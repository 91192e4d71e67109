// SPDX-License-Identifier: MIT

// Package kernels solves the DGLAP equation in N space for one fixed-flavour
// segment a_s: a0 → a1.
//
// With γ(a) = Σ_k a^{k+1} γ_k and da/d ln μ² = -a² Σ_j β_j a^j the evolution
// kernel obeys
//
//	dE/da = Σ_k γ_k a^{k-1} / (Σ_j β_j a^j) · E.
//
// For commuting (non-singlet) anomalous dimensions the solution is
// E = exp(Σ_k γ_k j_k) with the real evolution integrals
//
//	j_k = ∫_{a0}^{a1} a^{k-1} / Σ_j β_j a^j da,
//
// evaluated by Gauss–Legendre quadrature in ln a (exact) or by expanding the
// integrand in a up to the perturbative order (expanded). Integrals holds them
// for one segment so that every Mellin moment reuses the same reals.
//
// Methods (Method):
//
//	iterate-exact / iterate-expanded       ordered product of exponentials on a
//	                                       geometric grid of ev_op_iterations
//	                                       a_s steps (singlet)
//	decompose-exact / decompose-expanded   exp(Σ γ_k j_k) ignoring commutators
//	perturbative-exact / -expanded         U(a1)·exp(r0 ln a1/a0)·U(a0)⁻¹ with
//	                                       the U_k recursion up to ev_op_max_order
//	truncated / ordered-truncated          U series truncated at the order,
//	                                       jointly or per end point
//
// The non-singlet sector maps every exact variant to the exact solution and
// every expanded variant to the expanded one. QED blocks (4×4 singlet, 2×2
// valence) support only the iterate methods.
package kernels
