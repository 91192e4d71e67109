// SPDX-License-Identifier: MIT

// Package evolution assembles the Mellin-space evolution operator between
// two scales and inverts it onto an interpolation grid.
//
// A Path is built once per (source, target) pair: the threshold atlas
// splits the range into fixed-flavour segments, the couplings fix a_s at
// every segment end, and the evolution integrals j_k of each segment are
// computed (and shared through a Cache). Operator(N) then returns the
// 14×14 flavour-space kernel
//
//	E(N) = S_m(N) · M_{m-1}(N) · … · M_1(N) · S_1(N),
//
// where S_i is the block-diagonal segment kernel rotated from its
// evolution basis and M_i the matching at each crossed wall. Inactive
// heavy quarks are carried unevolved. Row inverts E(N) against the
// Lagrange basis at one output node.
//
// A Path is immutable after construction and safe for concurrent use.
package evolution
