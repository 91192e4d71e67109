// SPDX-License-Identifier: MIT

package mellin

// Defaults of the adaptive quadrature.
const (
	DefaultEpsAbs = 1e-12
	DefaultEpsRel = 1e-5
	DefaultLimit  = 100
	DefaultNodes  = 15
	DefaultCut    = 1e-2
	// DefaultFloor is the round-off floor relative to the largest component.
	DefaultFloor = 1e-8
)

// Options configure Integrate.
type Options struct {
	EpsAbs float64 // absolute tolerance per component
	EpsRel float64 // relative tolerance per component
	Limit  int     // maximum number of subintervals
	Nodes  int     // Gauss–Legendre nodes of the high rule
	Cut    float64 // Talbot range is [1/2, 1-Cut]
	// Floor·max_i |value_i| bounds the tolerance of every component from
	// below, so components that vanish are not held to round-off.
	Floor float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		EpsAbs: DefaultEpsAbs,
		EpsRel: DefaultEpsRel,
		Limit:  DefaultLimit,
		Nodes:  DefaultNodes,
		Cut:    DefaultCut,
		Floor:  DefaultFloor,
	}
}

// WithTolerances sets the absolute and relative tolerances.
func WithTolerances(abs, rel float64) Option {
	if abs < 0 || rel < 0 || (abs == 0 && rel == 0) {
		panic(panicEps)
	}

	return func(o *Options) { o.EpsAbs, o.EpsRel = abs, rel }
}

// WithLimit sets the subinterval budget.
func WithLimit(n int) Option {
	if n < 1 {
		panic(panicLimit)
	}

	return func(o *Options) { o.Limit = n }
}

// WithNodes sets the number of Gauss–Legendre nodes of the high rule; the
// low rule uses half as many.
func WithNodes(n int) Option {
	if n < 2 {
		panic(panicNodes)
	}

	return func(o *Options) { o.Nodes = n }
}

// WithCut sets the distance from u = 1 where the Talbot integration stops.
func WithCut(c float64) Option {
	if !(c >= 0 && c < 0.5) {
		panic(panicCut)
	}

	return func(o *Options) { o.Cut = c }
}

// WithFloor sets the round-off floor relative to the largest component;
// zero disables it.
func WithFloor(f float64) Option {
	if !(f >= 0 && f < 1) {
		panic(panicFloor)
	}

	return func(o *Options) { o.Floor = f }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Bounds returns the Talbot integration range [1/2, 1-Cut] for opts.
func Bounds(opts ...Option) (lo, hi float64) {
	return 0.5, 1 - gather(opts).Cut
}
