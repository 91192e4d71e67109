// SPDX-License-Identifier: MIT

// Package runner turns a theory card and an operator card into a bundle of
// x-space evolution operators.
//
// Evolve validates both cards before any numerical work, solves the MSbar
// masses when requested, builds the threshold atlas and the strong
// coupling, prepares one evolution.Path per target and finally inverts
// every (target, output node) pair on a bounded worker pool:
//
//	cards → masses → atlas → couplings → paths → Mellin inversion → bundle
//
// Everything the workers share (atlas, couplings, segment integrals) is
// populated before the fan-out and only read afterwards. Each work item
// writes a disjoint slice of the result, so the order of completion does
// not matter and a single worker is a valid configuration.
//
// Inversion integrals that reach their subdivision limit are not fatal:
// they are reported as ekoerr.IntegrationWarning in the bundle metadata.
package runner
