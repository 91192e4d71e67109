// SPDX-License-Identifier: MIT

// Package eko computes evolution kernel operators: the solutions of the
// DGLAP equations that carry parton distributions from an initial scale
// μ0² to any target scale μ², tabulated on an x-grid.
//
// The engine works in Mellin space, where the DGLAP convolutions become
// products, and inverts numerically back to x at the end.
//
// Packages, bottom up:
//
//	harmonics/      harmonic sums and polygamma functions of complex N
//	qcd/            colour factors, β function, quark charges
//	thresholds/     flavour patches and fixed-flavour segments of a path
//	couplings/      running a_s with threshold matching
//	msbar/          running MSbar masses and m(m) = m
//	anomalous/      QCD and QED anomalous dimensions per sector
//	scalevar/       factorisation scale variations
//	cmplxmat/       small complex matrices, exponentials and inverses
//	kernels/        per-segment evolution kernels for every method
//	matching/       heavy-quark operator matrix elements
//	basis/          flavour and evolution bases
//	evolution/      path composition and per-node Mellin inversion
//	interpolation/  x-grid and Lagrange basis with its Mellin transform
//	mellin/         inversion contours and vector adaptive quadrature
//	card/           theory and operator YAML cards
//	output/         operator bundles, tar archives, rotations
//	runner/         Evolve: cards in, bundle out, on a worker pool
//
// The eko command in cmd/eko drives runner from the command line.
package eko
