// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/anomalous"
	"github.com/katalvlaran/eko/kernels"
	"github.com/katalvlaran/eko/scalevar"
)

// Config fixes the perturbative content of every Path built from it.
type Config struct {
	Orders anomalous.Orders
	Method kernels.Method

	// ScaleVariation and XIF = μ_F/μ_R select the scale variation.
	ScaleVariation scalevar.Mode
	XIF            float64

	// ThresholdRatios are k_h = μ_h/m_h for c, b, t; matching uses
	// L = 2 ln k_h.
	ThresholdRatios [3]float64

	// ExactInverse inverts backward matching exactly instead of as a
	// truncated series.
	ExactInverse bool

	// Kernel tunes the segment solvers.
	Kernel []kernels.Option
}

// Validate checks the configuration before any numerical work.
func (c Config) Validate() error {
	if _, err := anomalous.NonSinglet(anomalous.NSPlus, 2, 4, anomalous.Orders{QCD: c.Orders.QCD}); err != nil {
		return fmt.Errorf("orders %+v: %w", c.Orders, err)
	}
	if c.Orders.QED < 0 || c.Orders.QED > anomalous.MaxQED {
		return fmt.Errorf("orders %+v: %w", c.Orders, anomalous.ErrOrder)
	}
	if c.Orders.QED > 0 && c.Method != kernels.IterateExact && c.Method != kernels.IterateExpanded {
		return fmt.Errorf("method %v: %w", c.Method, ErrMethodQED)
	}
	if !(c.XIF > 0) || math.IsInf(c.XIF, 0) {
		return fmt.Errorf("xif=%g: %w", c.XIF, ErrScaleRatio)
	}
	for i, k := range c.ThresholdRatios {
		if !(k > 0) || math.IsInf(k, 0) {
			return fmt.Errorf("quark %d: k=%g: %w", i+4, k, ErrThresholdRatio)
		}
	}

	return nil
}

func (c Config) qed() bool { return c.Orders.QED > 0 }

// log returns L = ln(μ²_F/μ²_R) when scales are varied, else zero.
func (c Config) log() float64 {
	if c.ScaleVariation == scalevar.Unvaried {
		return 0
	}

	return scalevar.Log(c.XIF)
}

// matchingLog returns L = ln(μ²_h/m²_h) for the wall of quark nf+1.
func (c Config) matchingLog(nf int) float64 {
	return 2 * math.Log(c.ThresholdRatios[nf+1-4])
}
