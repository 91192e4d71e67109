// SPDX-License-Identifier: MIT

// Package couplings evolves the strong coupling a_s = α_s/(4π) through the
// flavour patches of a thresholds.Atlas.
//
// Within a patch a_s solves
//
//	da_s/d ln μ² = -Σ_{n<order} β_n(n_f) a_s^{n+2}
//
// either exactly (adaptive Runge–Kutta with Cash–Karp coefficients on
// t = ln μ²; the LO case is solved in closed form) or in the expanded
// approximation, a truncated series in a_LO = a_0/(1 + β₀ a_0 ln(μ²/μ²_0))
// through N3LO. At every wall the coupling is matched to the neighbouring
// flavour number with the decoupling constants of the chosen heavy-mass
// scheme (pole or MS-bar), including ln k_h² terms for matching scales
// μ_h = k_h m_h.
//
// Values are memoised per (μ², n_f). Couplings is safe for concurrent use;
// Warm populates the cache for a set of scales up front so parallel readers
// never contend for the write lock.
//
// The electromagnetic coupling is held fixed at the reference value
// a_em = α_em/(4π).
package couplings
