// SPDX-License-Identifier: MIT

// Package matching implements the matching conditions of parton
// distributions at a heavy-quark threshold in the variable flavour number
// scheme.
//
// Crossing the wall of quark h = nf+1 upwards maps the nf-flavour
// distributions onto nf+1 flavours through the operator matrix elements
//
//	A(N) = 1 + a_s A^(1)(N, L) + a_s² A^(2)(N),   L = ln(μ²_h/m²_h),
//
// with a_s in the nf+1 scheme at the wall. In flavour space this reads
//
//	q' = A_ns q,  q̄' = A_ns q̄              (light quarks)
//	g' = A_gg g + A_gq Σ
//	h' = h̄' = (A_hg g + A_hq Σ)/2
//
// with the heavy quark itself not intrinsic: its incoming value is dropped.
// The photon is left untouched. A^(2) is only known here at L = 0, so NNLO
// matching away from μ_h = m_h is rejected.
//
// Backward crossings invert the matrix either exactly (LU) or as a
// truncated series; in both cases the heavy quark is then dropped.
package matching
