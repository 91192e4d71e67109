// SPDX-License-Identifier: MIT

// Package interpolation provides the x-grid and the piecewise Lagrange
// basis p_j(x) on which evolution operators are tabulated, together with
// the analytic Mellin transforms of the basis functions.
//
// The grid x_0 < … < x_{n-1} ≤ 1 is split into n-1 areas [x_i, x_{i+1}].
// Each area is served by a block of degree+1 consecutive nodes and every
// basis function is, on each area of its support, the Lagrange polynomial
// of its node over that block, in ln x (log interpolation) or in x.
// The basis is a partition of unity and p_j(x_k) = δ_jk.
//
// MellinN returns the transform that enters the inverse Mellin integral at
// output point x: areas below x contribute nothing and the area containing
// x keeps only its upper end, so every exponential decays on contours
// running to Re N → -∞ and the inversion at x reproduces p_j(x).
package interpolation
