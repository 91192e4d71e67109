// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"strings"
)

// Method is the solution strategy of a segment.
type Method int

const (
	IterateExact Method = iota
	IterateExpanded
	DecomposeExact
	DecomposeExpanded
	PerturbativeExact
	PerturbativeExpanded
	Truncated
	OrderedTruncated
)

var methodNames = [...]string{
	"iterate-exact",
	"iterate-expanded",
	"decompose-exact",
	"decompose-expanded",
	"perturbative-exact",
	"perturbative-expanded",
	"truncated",
	"ordered-truncated",
}

// legacyNames maps the historical short names.
var legacyNames = map[string]Method{
	"EXA": IterateExact,
	"EXP": IterateExpanded,
	"TRN": Truncated,
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a method name or a legacy alias.
func ParseMethod(s string) (Method, error) {
	if m, ok := legacyNames[strings.ToUpper(s)]; ok {
		return m, nil
	}
	for i, n := range methodNames {
		if n == s {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMethod: %q: %w", s, ErrUnknownMethod)
}

// IsExact reports the exact flavour of a method (exact β function).
func (m Method) IsExact() bool {
	switch m {
	case IterateExact, DecomposeExact, PerturbativeExact:
		return true
	}

	return false
}

const (
	// DefaultIterations is the number of geometric a_s steps (ev_op_iterations).
	DefaultIterations = 10

	// DefaultMaxOrder truncates the U series of perturbative-exact
	// (ev_op_max_order).
	DefaultMaxOrder = 10

	// DefaultLegendrePoints is the rule size of the exact j_k quadrature.
	DefaultLegendrePoints = 32
)

// Options tunes the solvers.
type Options struct {
	Iterations     int
	MaxOrder       int
	LegendrePoints int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Iterations:     DefaultIterations,
		MaxOrder:       DefaultMaxOrder,
		LegendrePoints: DefaultLegendrePoints,
	}
}

// WithIterations sets ev_op_iterations.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterations)
	}

	return func(o *Options) { o.Iterations = n }
}

// WithMaxOrder sets ev_op_max_order.
func WithMaxOrder(n int) Option {
	if n <= 0 {
		panic(panicMaxOrder)
	}

	return func(o *Options) { o.MaxOrder = n }
}

// WithLegendrePoints sets the Gauss–Legendre rule size.
func WithLegendrePoints(n int) Option {
	if n <= 1 {
		panic(panicPoints)
	}

	return func(o *Options) { o.LegendrePoints = n }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
