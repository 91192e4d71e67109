// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/evolution"
	"github.com/katalvlaran/eko/output"
)

// Evolve computes the operators μ0² → μ² for every target of op.
//
// Implementation:
//
//	Stage 1: validate both cards, no numerical work before this passes.
//	Stage 2: masses, atlas and couplings; one Path per target sharing a
//	         segment cache.
//	Stage 3: fan out every (target, x node) inversion on an errgroup
//	         limited to the configured workers, writing rows in place.
//	Stage 4: collect integration warnings into the metadata.
//
// A node whose inversion fails numerically (ekoerr.ErrNumericalConvergence)
// does not abort the run: its row is filled with NaN values and +Inf
// errors and a failed IntegrationWarning is recorded. Any other error
// aborts. Cancelling ctx stops scheduling new integrals and returns
// ctx.Err().
func Evolve(ctx context.Context, theory *card.Theory, op *card.Operator, opts ...Option) (*output.Bundle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger
	started := time.Now()

	// Stage 1
	if err := theory.Validate(); err != nil {
		return nil, fmt.Errorf("Evolve: theory: %w", err)
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("Evolve: operator: %w", err)
	}
	cfg, err := config(theory, op)
	if err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	disp, err := dispatcher(op)
	if err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	workers := *op.Workers
	if o.Workers > 0 {
		workers = o.Workers
	}

	// Stage 2
	c, err := Couplings(theory)
	if err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	atlas := c.Atlas()
	from := atlas.At(*theory.Q0 * *theory.Q0)
	log.Info("evolve: start",
		zap.Float64("q02", from.Q2),
		zap.Int("nf0", from.NF),
		zap.Float64s("thresholds", atlas.Thresholds()),
		zap.Int("targets", len(op.Targets)),
		zap.Int("nx", disp.Len()),
		zap.Int("workers", workers),
		zap.Stringer("method", cfg.Method))

	cache := evolution.NewCache()
	paths := make([]*evolution.Path, len(op.Targets))
	for i, q2 := range op.Targets {
		to := atlas.At(q2)
		if paths[i], err = evolution.NewPath(c, from, to, cfg, cache); err != nil {
			return nil, fmt.Errorf("Evolve: target q2=%g: %w", q2, err)
		}
		log.Debug("evolve: path",
			zap.Float64("q2", q2),
			zap.Int("nf", to.NF),
			zap.Int("segments", len(paths[i].Segments)),
			zap.Int("crossings", len(paths[i].Crossings)))
	}

	nx := disp.Len()
	b := &output.Bundle{
		Metadata: output.Metadata{
			ID:       uuid.NewString(),
			Created:  started.UTC(),
			Q02:      from.Q2,
			NF0:      from.NF,
			XGrid:    disp.Grid().Nodes(),
			Degree:   disp.Degree(),
			Log:      disp.IsLog(),
			Basis:    output.Flavor,
			PIDs:     basis.PIDs[:],
			Theory:   theory,
			Operator: op,
		},
		Targets: make([]output.Target, len(paths)),
	}
	for i, p := range paths {
		b.Targets[i] = output.NewTarget(output.TargetInfo{Q2: p.To.Q2, NF: p.To.NF}, nx)
	}

	// Stage 3
	mopts := mellinOptions(op)
	warnings := make([]*ekoerr.IntegrationWarning, len(paths)*nx)
	left := make([]atomic.Int32, len(paths))
	for i := range left {
		left[i].Store(int32(nx))
	}
	fanout := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
schedule:
	for i, p := range paths {
		i, p := i, p
		for k := 0; k < nx; k++ {
			k := k
			if gctx.Err() != nil {
				break schedule
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t0 := time.Now()
				row, err := o.row(p, disp, k, mopts...)
				switch {
				case errors.Is(err, ekoerr.ErrNumericalConvergence):
					w := &ekoerr.IntegrationWarning{Q2: p.To.Q2, XIndex: k, Error: math.Inf(1), Failure: err.Error()}
					warnings[i*nx+k] = w
					m.warnings.Inc()
					log.Warn("evolve: inversion failed", zap.Stringer("warning", w))
					row = failedRow(nx)
				case err != nil:
					return fmt.Errorf("target q2=%g: %w", p.To.Q2, err)
				default:
					m.inversion.Observe(time.Since(t0).Seconds())
					m.integrals.Inc()
				}
				b.Targets[i].SetRow(nx, k, row.Value, row.Error)
				if err == nil && !row.Converged {
					w := &ekoerr.IntegrationWarning{Q2: p.To.Q2, XIndex: k, Error: slices.Max(row.Error), Intervals: row.Intervals}
					warnings[i*nx+k] = w
					m.warnings.Inc()
					log.Warn("evolve: inversion did not converge", zap.Stringer("warning", w))
				}
				if left[i].Add(-1) == 0 {
					d := time.Since(fanout)
					m.target.Observe(d.Seconds())
					log.Info("evolve: target done", zap.Float64("q2", p.To.Q2), zap.Duration("elapsed", d))
				}

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}

	// Stage 4
	for _, w := range warnings {
		if w != nil {
			b.Metadata.Warnings = append(b.Metadata.Warnings, *w)
		}
	}
	log.Info("evolve: done",
		zap.String("id", b.Metadata.ID),
		zap.Int("warnings", len(b.Metadata.Warnings)),
		zap.Int("segments", cache.Len()),
		zap.Int("segment_hits", cache.Hits()),
		zap.Duration("elapsed", time.Since(started)))

	return b, nil
}

// failedRow marks every entry of a node as unusable.
func failedRow(nx int) evolution.Row {
	n := evolution.RowLen(nx)
	r := evolution.Row{Value: make([]float64, n), Error: make([]float64, n)}
	for i := range r.Value {
		r.Value[i] = math.NaN()
		r.Error[i] = math.Inf(1)
	}

	return r
}
