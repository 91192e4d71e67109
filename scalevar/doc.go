// SPDX-License-Identifier: MIT

// Package scalevar implements factorisation scale variations with
// L = ln(μ_F²/μ_R²).
//
// Exponentiated mode re-expresses the anomalous dimensions through
// a_s(μ_R²) and evolves with the shifted γ_k:
//
//	γ_1 → γ_1 - β0 L γ_0
//	γ_2 → γ_2 - 2β0 L γ_1 - (β1 L - β0² L²) γ_0
//	γ_3 → γ_3 - 3β0 L γ_2 - (2β1 L - 3β0² L²) γ_1 - (β2 L - 5/2 β1β0 L² + β0³ L³) γ_0
//
// Expanded mode keeps γ and multiplies the final kernel by
//
//	K = 1 + a_s K_1 + a_s² K_2 + a_s³ K_3,
//	K_1 = -γ_0 L
//	K_2 = -γ_1 L + ½(β0 γ_0 + γ_0²) L²
//	K_3 = -γ_2 L + ½(β1 γ_0 + 2β0 γ_1 + γ_1γ_0 + γ_0γ_1) L²
//	      - ⅙(2β0² γ_0 + 3β0 γ_0² + γ_0³) L³
//
// truncated one power below the number of loops. Matrix products keep
// their order. Both modes reduce to the unvaried kernels at L = 0; away from
// it they differ by terms beyond the perturbative order.
package scalevar
