// SPDX-License-Identifier: MIT

package runner_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/evolution"
	"github.com/katalvlaran/eko/interpolation"
	"github.com/katalvlaran/eko/mellin"
	"github.com/katalvlaran/eko/output"
	"github.com/katalvlaran/eko/runner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const theoryYAML = `
order: 1
qed_order: 0
alpha_s: 0.118
alpha_em: 0.007496252
q_ref: 91.2
nf_ref: 5
q0: 1.65
scheme: VFNS
max_nf: 6
coupling_method: exact
heavy:
  mass_scheme: POLE
  masses: [1.51, 4.92, 172.5]
  mass_scales: [1.51, 4.92, 172.5]
  ratios: [1.0, 1.0, 1.0]
scale_variation: unvaried
xif: 1.0
`

const operatorYAML = `
targets: [100.0]
xgrid:
  generate: {kind: log, size: 12, xmin: 1.0e-4}
degree: 3
log_interpolation: true
method: iterate-exact
iterations: 10
max_order: 10
backward_inverse: exact
integration: {eps_abs: 1.0e-12, eps_rel: 1.0e-5, limit: 100, cut: 0.01}
workers: 4
`

func cards(t *testing.T) (*card.Theory, *card.Operator) {
	t.Helper()
	th, err := card.LoadTheory(strings.NewReader(theoryYAML))
	require.NoError(t, err)
	op, err := card.LoadOperator(strings.NewReader(operatorYAML))
	require.NoError(t, err)

	return th, op
}

func TestEvolve_InitialScaleIsIdentity(t *testing.T) {
	th, op := cards(t)
	q02 := *th.Q0 * *th.Q0
	op.Targets = []float64{q02}

	b, err := runner.Evolve(context.Background(), th, op)
	require.NoError(t, err)
	require.Len(t, b.Targets, 1)
	assert.Equal(t, 4, b.Metadata.NF0)
	assert.Equal(t, output.TargetInfo{Q2: q02, NF: 4}, b.Targets[0].TargetInfo)
	assert.Empty(t, b.Metadata.Warnings)

	nx := len(b.Metadata.XGrid)
	tg := &b.Targets[0]
	for _, pid := range []int{21, 1, -2, 5} {
		f := basis.Index(pid)
		for k := 0; k < nx-1; k++ {
			for j := 0; j < nx; j++ {
				want := 0.0
				if j == k {
					want = 1
				}
				assert.InDelta(t, want, tg.At(nx, f, k, f, j), 1e-5, "pid=%d k=%d j=%d", pid, k, j)
			}
		}
	}
}

func TestEvolve_WorkersAgree(t *testing.T) {
	th, op := cards(t)
	seq, err := runner.Evolve(context.Background(), th, op, runner.WithWorkers(1))
	require.NoError(t, err)
	par, err := runner.Evolve(context.Background(), th, op, runner.WithWorkers(8))
	require.NoError(t, err)

	require.Len(t, par.Targets, 1)
	assert.Equal(t, output.TargetInfo{Q2: 100, NF: 5}, par.Targets[0].TargetInfo)
	assert.Equal(t, seq.Targets[0].Value, par.Targets[0].Value)
	assert.Equal(t, seq.Targets[0].Error, par.Targets[0].Error)
	assert.NotEqual(t, seq.Metadata.ID, par.Metadata.ID)
}

// TestEvolve_GluonFeedsQuarks evolves a flat gluon across the bottom
// threshold: light and bottom quarks are generated, the inactive top is
// not.
func TestEvolve_GluonFeedsQuarks(t *testing.T) {
	th, op := cards(t)
	b, err := runner.Evolve(context.Background(), th, op)
	require.NoError(t, err)

	nx := len(b.Metadata.XGrid)
	tg := &b.Targets[0]
	g, u, bq, top := basis.Index(21), basis.Index(2), basis.Index(5), basis.Index(6)
	k := nx / 2
	column := func(f int) float64 {
		var s float64
		for j := 0; j < nx; j++ {
			s += tg.At(nx, f, k, g, j)
		}

		return s
	}
	assert.Greater(t, column(u), 0.0)
	assert.Greater(t, column(bq), 0.0)
	assert.InDelta(t, 0, column(top), 1e-12)
}

func TestEvolve_Cancelled(t *testing.T) {
	th, op := cards(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Evolve(ctx, th, op)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvolve_NodeFailureIsRecorded(t *testing.T) {
	th, op := cards(t)
	const bad = 3
	row := func(p *evolution.Path, d *interpolation.Dispatcher, k int, opts ...mellin.Option) (evolution.Row, error) {
		if k == bad {
			return evolution.Row{}, &ekoerr.ConvergenceError{Op: "mellin.quad", Err: mellin.ErrNotFinite}
		}

		return p.Row(d, k, opts...)
	}

	b, err := runner.Evolve(context.Background(), th, op, runner.WithRow(row))
	require.NoError(t, err)
	require.Len(t, b.Metadata.Warnings, 1)
	w := b.Metadata.Warnings[0]
	assert.True(t, w.Failed())
	assert.Equal(t, bad, w.XIndex)
	assert.Equal(t, 100.0, w.Q2)
	assert.Contains(t, w.Failure, "not finite")

	nx := len(b.Metadata.XGrid)
	tg := b.Targets[0]
	for fo := 0; fo < basis.Size; fo++ {
		for fi := 0; fi < basis.Size; fi++ {
			for xi := 0; xi < nx; xi++ {
				assert.True(t, math.IsNaN(tg.Value[output.Index(nx, fo, bad, fi, xi)]))
				assert.True(t, math.IsInf(tg.Error[output.Index(nx, fo, bad, fi, xi)], 1))
				v := tg.Value[output.Index(nx, fo, bad+1, fi, xi)]
				assert.False(t, math.IsNaN(v), "neighbouring node must be intact")
			}
		}
	}
}

func TestEvolve_GlobalFaultAborts(t *testing.T) {
	th, op := cards(t)
	errBroken := errors.New("broken dispatcher")
	row := func(p *evolution.Path, d *interpolation.Dispatcher, k int, opts ...mellin.Option) (evolution.Row, error) {
		if k == 0 {
			return evolution.Row{}, errBroken
		}

		return p.Row(d, k, opts...)
	}

	_, err := runner.Evolve(context.Background(), th, op, runner.WithRow(row))
	require.ErrorIs(t, err, errBroken)
}

func TestEvolve_InvalidCards(t *testing.T) {
	th, op := cards(t)
	th.Order = nil
	_, err := runner.Evolve(context.Background(), th, op)
	require.ErrorIs(t, err, card.ErrInvalid)
	assert.ErrorIs(t, err, ekoerr.ErrConfiguration)

	th, op = cards(t)
	*op.Degree = 20
	_, err = runner.Evolve(context.Background(), th, op)
	require.ErrorIs(t, err, card.ErrInconsistent)

	th, op = cards(t)
	qed := 1
	th.QEDOrder = &qed
	op.Method = "perturbative-exact"
	_, err = runner.Evolve(context.Background(), th, op)
	require.ErrorIs(t, err, ekoerr.ErrConfiguration)
}

func TestEvolve_MetricsAndLogs(t *testing.T) {
	th, op := cards(t)
	op.XGrid.Generate.Size = 6
	*op.Degree = 2
	reg := prometheus.NewRegistry()
	core, logs := observer.New(zap.DebugLevel)

	for i := 0; i < 2; i++ {
		_, err := runner.Evolve(context.Background(), th, op,
			runner.WithRegisterer(reg), runner.WithLogger(zap.New(core)))
		require.NoError(t, err)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				got[f.GetName()] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				got[f.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 12.0, got["eko_inversion_integrals_total"])
	assert.Equal(t, 12.0, got["eko_inversion_seconds"])
	assert.Equal(t, 2.0, got["eko_target_seconds"])
	assert.Equal(t, 2, logs.FilterMessage("evolve: done").Len())
	assert.Equal(t, 2, logs.FilterMessage("evolve: path").Len())
}

func TestEvolve_SaveLoad(t *testing.T) {
	th, op := cards(t)
	op.XGrid.Generate.Size = 6
	*op.Degree = 2
	b, err := runner.Evolve(context.Background(), th, op)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))
	got, err := output.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, b.Metadata.ID, got.Metadata.ID)
	assert.Equal(t, *th.AlphaS, *got.Metadata.Theory.AlphaS)
	assert.Equal(t, b.Targets[0].Value, got.Targets[0].Value)
}

func TestCouplings_FixedFlavour(t *testing.T) {
	th, _ := cards(t)
	th.Scheme = card.FFNS
	nf := 5
	th.MaxNF = &nf

	c, err := runner.Couplings(th)
	require.NoError(t, err)
	assert.True(t, c.Atlas().IsFixed())
	assert.Equal(t, 5, c.Atlas().NF(1))
	assert.Equal(t, 5, c.Atlas().NF(1e6))
}

func TestCouplings_MSbarMassAtOwnScale(t *testing.T) {
	th, _ := cards(t)
	th.Heavy.MassScheme = card.MSbar
	th.Heavy.Masses = &[3]float64{1.28, 4.18, 162.5}
	th.Heavy.MassScales = &[3]float64{1.28, 4.18, 162.5}
	require.NoError(t, th.Validate())

	c, err := runner.Couplings(th)
	require.NoError(t, err)
	walls := c.Atlas().Thresholds()
	require.Len(t, walls, 3)
	for i, m := range *th.Heavy.Masses {
		assert.InDelta(t, m*m, walls[i], 1e-8*m*m)
	}
	a, err := c.A(*th.QRef * *th.QRef)
	require.NoError(t, err)
	assert.InDelta(t, *th.AlphaS/(4*math.Pi), a, 1e-12)
}
