// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	integrals prometheus.Counter
	warnings  prometheus.Counter
	inversion prometheus.Histogram
	target    prometheus.Histogram
}

// newMetrics builds the collectors and registers them on reg, reusing
// collectors a previous run already registered.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		integrals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eko_inversion_integrals_total",
			Help: "Inverse Mellin integrals computed.",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eko_integration_warnings_total",
			Help: "Inverse Mellin integrals that missed their tolerance.",
		}),
		inversion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eko_inversion_seconds",
			Help:    "Duration of one inverse Mellin integral.",
			Buckets: prometheus.ExponentialBuckets(1e-3, 4, 10),
		}),
		target: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eko_target_seconds",
			Help:    "Wall time until every node of a target is inverted.",
			Buckets: prometheus.ExponentialBuckets(0.1, 4, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.integrals, err = register(reg, m.integrals); err != nil {
		return nil, err
	}
	if m.warnings, err = register(reg, m.warnings); err != nil {
		return nil, err
	}
	if m.inversion, err = register(reg, m.inversion); err != nil {
		return nil, err
	}
	if m.target, err = register(reg, m.target); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if prev, ok := already.ExistingCollector.(C); ok {
			return prev, nil
		}
	}

	return c, fmt.Errorf("metrics: %w", err)
}
