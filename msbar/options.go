// SPDX-License-Identifier: MIT

package msbar

const (
	// DefaultTolerance is the target accuracy on ln m² of Solve.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations bounds the bracketing plus refinement steps.
	DefaultMaxIterations = 200
)

// Options tune the root search.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithTolerance sets the accuracy on ln m².
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(panicTolerance)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations bounds the number of function evaluations.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterations)
	}

	return func(o *Options) { o.MaxIterations = n }
}
