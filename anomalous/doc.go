// SPDX-License-Identifier: MIT

// Package anomalous provides the Mellin-space anomalous dimensions of the
// DGLAP kernels for complex N.
//
// Conventions: γ = -P with the expansion
//
//	γ(N, a_s, a_em) = Σ_k a_s^{k+1} γ_k(N) + a_em γ^{(0,1)}(N) + a_s a_em γ^{(1,1)}(N),
//
// where a_s = α_s/(4π) and a_em = α_em/(4π). With this sign γ is positive at
// large real N and the non-singlet minus sector vanishes at N = 1.
//
// QCD orders available: LO and NLO in closed form, NNLO in the
// Moch–Vermaseren–Vogt parametrisation (accurate to about 1e-3 relative).
// QED corrections are available at O(a_em) and O(a_s a_em).
//
// Sectors are tagged with Sector. Scalar sectors return Scalar, matrix
// sectors return Matrix:
//
//	Singlet      2×2 in (Σ, g)
//	SingletQED   4×4 in (g, γ, Σ, Σ_Δ)
//	ValenceQED   2×2 in (V, V_Δ)
//
// with Σ_Δ = (n_d/n_u) Σ_u - Σ_d and V_Δ defined alike.
package anomalous
