// SPDX-License-Identifier: MIT

package couplings

import "math"

// Method selects how a_s is solved inside a patch.
type Method int

const (
	// Exact integrates the truncated β function numerically.
	Exact Method = iota
	// Expanded uses the truncated series in a_LO.
	Expanded
)

func (m Method) String() string {
	if m == Expanded {
		return "expanded"
	}

	return "exact"
}

// MassScheme selects the heavy-quark mass definition of the decoupling
// constants.
type MassScheme int

const (
	// Pole mass scheme.
	Pole MassScheme = iota
	// MSbar running mass scheme.
	MSbar
)

func (s MassScheme) String() string {
	if s == MSbar {
		return "MSBAR"
	}

	return "POLE"
}

// MaxOrder is the highest supported number of loops in the β function.
const MaxOrder = 4

const (
	// DefaultMethod solves the β function exactly.
	DefaultMethod = Exact

	// DefaultScheme is the pole-mass scheme.
	DefaultScheme = Pole

	// DefaultTolerance is the local relative error target of the
	// Runge–Kutta integrator.
	DefaultTolerance = 1e-12

	// DefaultMaxSteps bounds the number of accepted plus rejected steps per
	// patch integration.
	DefaultMaxSteps = 10000

	// DefaultAlphaEM is the fixed electromagnetic coupling at the Z mass.
	DefaultAlphaEM = 0.007496252
)

// Options configures a Couplings instance.
type Options struct {
	Method    Method
	Scheme    MassScheme
	Ratios    [3]float64 // matching scale ratios k_c, k_b, k_t
	Tolerance float64
	MaxSteps  int
	AlphaEM   float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Method:    DefaultMethod,
		Scheme:    DefaultScheme,
		Ratios:    [3]float64{1, 1, 1},
		Tolerance: DefaultTolerance,
		MaxSteps:  DefaultMaxSteps,
		AlphaEM:   DefaultAlphaEM,
	}
}

// WithMethod selects Exact or Expanded.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithScheme selects the mass scheme of the decoupling constants.
func WithScheme(s MassScheme) Option { return func(o *Options) { o.Scheme = s } }

// WithThresholdRatios sets k_h = μ_h/m_h for c, b, t.
func WithThresholdRatios(k [3]float64) Option {
	for _, v := range k {
		if !(v > 0) || math.IsInf(v, 0) {
			panic(panicRatios)
		}
	}

	return func(o *Options) { o.Ratios = k }
}

// WithTolerance sets the Runge–Kutta relative tolerance.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || tol > 1e-3 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxSteps sets the Runge–Kutta step budget.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxSteps)
	}

	return func(o *Options) { o.MaxSteps = n }
}

// WithAlphaEM sets the fixed α_em.
func WithAlphaEM(alpha float64) Option {
	if alpha < 0 || alpha >= 1 || math.IsNaN(alpha) {
		panic(panicAlphaEM)
	}

	return func(o *Options) { o.AlphaEM = alpha }
}
