// SPDX-License-Identifier: MIT

// Package qcd holds the group constants of SU(3), the QCD β-function
// coefficients and the electric-charge bookkeeping used by the QED
// corrections.
//
// Normalisation: a_s = α_s/(4π) and
//
//	da_s/d ln μ² = -Σ_n β_n a_s^{n+2}.
package qcd
