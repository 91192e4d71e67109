// SPDX-License-Identifier: MIT

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/eko/evolution"
	"github.com/katalvlaran/eko/interpolation"
	"github.com/katalvlaran/eko/mellin"
)

// Options configures Evolve beyond the cards.
type Options struct {
	Logger     *zap.Logger
	Registerer prometheus.Registerer
	// Workers overrides the operator card when positive.
	Workers int

	row rowFunc
}

// rowFunc inverts one output node of a path.
type rowFunc func(p *evolution.Path, d *interpolation.Dispatcher, k int, opts ...mellin.Option) (evolution.Row, error)

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent run without metrics registration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), row: (*evolution.Path).Row}
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithRegisterer registers the run metrics on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = r }
}

// WithWorkers overrides the worker count of the operator card. Panics if
// n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("runner: WithWorkers needs n ≥ 1")
	}

	return func(o *Options) { o.Workers = n }
}
