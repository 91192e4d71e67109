// SPDX-License-Identifier: MIT

// Package cmplxmat provides small dense complex matrices for the N-space
// kernels of the evolution: products, LU inversion and matrix exponentials.
//
// The evolution operators of the singlet sector are 2×2 (QCD) or 4×4 (QED)
// complex matrices evaluated at a single Mellin moment N; the full flavour
// operator is 14×14. Sizes are tiny, so every routine is a plain O(n³)
// loop over a row-major []complex128 without BLAS.
//
// What is provided:
//   - Matrix: n×n row-major storage, Identity, FromRows, Clone, At/Set.
//   - Mul, Add, Sub, Scale, AddScaled and the in-place MulTo.
//   - LU with partial pivoting and Inverse (forward/backward substitution).
//   - Exp for any n (scaling and squaring with a Taylor core) and
//     Eigen2 / Exp2 for 2×2 matrices via eigen-projectors
//     exp(M) = e^{λ+}·e+ + e^{λ-}·e-.
//
// Conventions:
//   - Indices are the caller's responsibility; At/Set panic on out of range
//     like slice indexing does.
//   - Shape mismatches in arithmetic are programmer errors and panic with a
//     "cmplxmat: ..." message. Numerical failures (singular pivots) are
//     returned as sentinel errors.
//
// Usage:
//
//	g := cmplxmat.FromRows([][]complex128{{a, b}, {c, d}})
//	e := cmplxmat.Exp(cmplxmat.Scale(g, j00))
//	inv, err := cmplxmat.Inverse(e)
package cmplxmat
