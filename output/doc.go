// SPDX-License-Identifier: MIT

// Package output holds the result of a run: one x-space operator per
// target scale with its integration error, plus the metadata needed to
// apply or reproduce it.
//
// An operator is the 4-index tensor O[fo, xo, fi, xi] stored flat in
// row-major order, i.e. a (14·nx)×(14·nx) matrix with rows (fo, xo) and
// columns (fi, xi). Composition and basis rotation are gonum matrix
// products on that view.
//
// Save writes a plain tar archive:
//
//	metadata.yaml
//	operators/000.value   little-endian float64, 14·nx·14·nx values
//	operators/000.error
//	operators/001.value
//	…
package output
