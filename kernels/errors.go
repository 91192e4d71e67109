// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrUnknownMethod is returned by ParseMethod for an unknown name.
	ErrUnknownMethod = ekoerr.Configuration("kernels: unknown evolution method")

	// ErrUnsupportedMethod is returned when a method cannot solve a sector,
	// e.g. perturbative solutions of the QED blocks.
	ErrUnsupportedMethod = ekoerr.Configuration("kernels: method not supported for this sector")

	// ErrOrder is returned for an order outside [1, 3] or a gamma slice that
	// does not match it.
	ErrOrder = ekoerr.Configuration("kernels: perturbative order out of range")

	// ErrDegenerate is returned when the LO singlet matrix has degenerate
	// eigenvalues, which the perturbative recursion cannot handle.
	ErrDegenerate = ekoerr.Convergence("kernels: degenerate LO eigenvalues")
)

const (
	panicIterations = "kernels: WithIterations: iterations must be > 0"
	panicMaxOrder   = "kernels: WithMaxOrder: order must be > 0"
	panicPoints     = "kernels: WithLegendrePoints: points must be > 1"
)
