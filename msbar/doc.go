// SPDX-License-Identifier: MIT

// Package msbar runs MSbar heavy-quark masses and solves m(m) = m.
//
// With γ_m(a_s) = Σ_k γ_k a_s^{k+1} and dm/d ln μ² = -γ_m m, the mass at
// fixed n_f evolves as
//
//	m(a1)/m(a0) = exp(Σ_k γ_k j_k),
//
// with the evolution integrals j_k of package kernels (exact), or the
// expanded ratio
//
//	(a1/a0)^{c0} · (1 + u1 a1 + u2 a1²) / (1 + u1 a0 + u2 a0²),
//	c_k = γ_k/β0, u1 = c1 - b1 c0, u2 = ½(c2 - c1 b1 - b2 c0 + b1² c0 + u1²).
//
// Solve finds the scale-invariant masses of charm, bottom and top from
// references m_h(μ_h) given in n_f,h flavours. Quarks are solved closest to
// the α_s reference first; each solution rebuilds the coupling used for the
// next one.
package msbar
