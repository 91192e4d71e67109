// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"

	"github.com/katalvlaran/eko/anomalous"
	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/evolution"
	"github.com/katalvlaran/eko/interpolation"
	"github.com/katalvlaran/eko/kernels"
	"github.com/katalvlaran/eko/mellin"
	"github.com/katalvlaran/eko/msbar"
	"github.com/katalvlaran/eko/scalevar"
	"github.com/katalvlaran/eko/thresholds"
)

// Reference returns the α_s boundary condition of a theory card.
func Reference(t *card.Theory) couplings.Reference {
	return couplings.Reference{Alpha: *t.AlphaS, Q2: *t.QRef * *t.QRef, NF: *t.NFRef}
}

// couplingOptions maps the coupling fields of a theory card.
func couplingOptions(t *card.Theory) []couplings.Option {
	opts := []couplings.Option{
		couplings.WithThresholdRatios(*t.Heavy.Ratios),
		couplings.WithAlphaEM(*t.AlphaEM),
	}
	if t.CouplingMethod == "expanded" {
		opts = append(opts, couplings.WithMethod(couplings.Expanded))
	}
	if t.Heavy.MassScheme == card.MSbar {
		opts = append(opts, couplings.WithScheme(couplings.MSbar))
	}

	return opts
}

// masses returns m_h² for charm, bottom and top, solving m_h(m_h) = m_h
// for MSBAR cards.
func masses(t *card.Theory) ([3]float64, error) {
	m := *t.Heavy.Masses
	var out [3]float64
	if t.Heavy.MassScheme == card.Pole {
		for i, v := range m {
			out[i] = v * v
		}

		return out, nil
	}

	p := msbar.Problem{
		Ref:       Reference(t),
		Order:     *t.Order,
		Ratios:    *t.Heavy.Ratios,
		MaxNF:     *t.MaxNF,
		Couplings: couplingOptions(t),
	}
	for i, mu := range *t.Heavy.MassScales {
		heavy := i + 4
		q := msbar.Quark{Mass: m[i], Q2: mu * mu, NF: heavy}
		if mu < m[i] {
			q.NF = heavy - 1
		}
		p.Quarks[i] = q
	}

	return msbar.Solve(p)
}

// Couplings builds the atlas and the strong coupling of a validated theory
// card.
func Couplings(t *card.Theory) (*couplings.Couplings, error) {
	var (
		atlas *thresholds.Atlas
		err   error
	)
	if t.Scheme == card.FFNS {
		atlas, err = thresholds.NewFFNS(*t.MaxNF)
	} else {
		var m2 [3]float64
		if m2, err = masses(t); err != nil {
			return nil, fmt.Errorf("masses: %w", err)
		}
		atlas, err = thresholds.NewFromMasses(m2, *t.Heavy.Ratios, *t.MaxNF)
	}
	if err != nil {
		return nil, err
	}

	return couplings.New(Reference(t), *t.Order, atlas, couplingOptions(t)...)
}

// config maps both cards to the perturbative configuration of the paths.
func config(t *card.Theory, o *card.Operator) (evolution.Config, error) {
	method, err := kernels.ParseMethod(o.Method)
	if err != nil {
		return evolution.Config{}, err
	}
	mode, err := scalevar.ParseMode(t.ScaleVariation)
	if err != nil {
		return evolution.Config{}, err
	}
	qcd, qed := t.Orders()

	cfg := evolution.Config{
		Orders:          anomalous.Orders{QCD: qcd, QED: qed},
		Method:          method,
		ScaleVariation:  mode,
		XIF:             *t.XIF,
		ThresholdRatios: *t.Heavy.Ratios,
		ExactInverse:    o.BackwardInverse == "exact",
		Kernel: []kernels.Option{
			kernels.WithIterations(*o.Iterations),
			kernels.WithMaxOrder(*o.MaxOrder),
		},
	}

	return cfg, cfg.Validate()
}

// dispatcher builds the interpolation basis of an operator card.
func dispatcher(o *card.Operator) (*interpolation.Dispatcher, error) {
	var (
		grid *interpolation.XGrid
		err  error
	)
	switch g := o.XGrid.Generate; {
	case g == nil:
		grid, err = interpolation.NewXGrid(o.XGrid.Nodes)
	case g.Kind == card.LinearKind:
		grid, err = interpolation.LinearGrid(g.Size, g.XMin)
	default:
		grid, err = interpolation.LogGrid(g.Size, g.XMin)
	}
	if err != nil {
		return nil, err
	}

	return interpolation.NewDispatcher(grid, *o.Degree, *o.LogInterpolation)
}

func mellinOptions(o *card.Operator) []mellin.Option {
	in := o.Integration

	return []mellin.Option{
		mellin.WithTolerances(*in.EpsAbs, *in.EpsRel),
		mellin.WithLimit(*in.Limit),
		mellin.WithCut(*in.Cut),
	}
}
