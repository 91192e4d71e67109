// SPDX-License-Identifier: MIT

// Package basis defines the flavour basis of parton distributions and the
// evolution bases in which the DGLAP kernels are block diagonal.
//
// The flavour basis has Size = 14 entries ordered by particle id
//
//	22, -6, -5, -4, -3, -2, -1, 21, 1, 2, 3, 4, 5, 6
//
// (photon, antiquarks, gluon, quarks). For every number of active flavours
// nf there is an evolution basis, QCD or QED, obtained from the flavour
// basis by a fixed real rotation R. With q± = q ± q̄:
//
//	QCD: γ, Σ, g, V, V_k, T_k (k = 3, 8, …, nf²-1)
//	QED: γ, g, Σ, Σ_Δ, V, V_Δ, Td_k, Vd_k, Tu_k, Vu_k
//
// and the q± of every inactive heavy quark, which are carried unevolved.
// Evolution operators are composed in the flavour basis as R⁻¹·D·R where D
// is block diagonal; Blocks lists which anomalous-dimension sector drives
// each block.
//
// Bases are immutable and cached per (nf, QED); For is safe for concurrent
// use.
package basis
