// SPDX-License-Identifier: MIT

package card

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/eko/kernels"
)

// Grid kinds of a generated x-grid.
const (
	LogKind    = "log"
	LinearKind = "linear"
)

// Operator fixes the numerics and the requested targets of a run.
type Operator struct {
	// Targets are the final scales μ² in GeV².
	Targets []float64 `yaml:"targets" validate:"required,min=1,dive,gt=0"`

	XGrid *XGrid `yaml:"xgrid" validate:"required"`
	// Degree is the interpolation polynomial degree, below the grid size.
	Degree *int `yaml:"degree" validate:"required,min=1"`
	// LogInterpolation interpolates in ln x instead of x.
	LogInterpolation *bool `yaml:"log_interpolation" validate:"required"`

	// Method is a kernels method name or legacy alias.
	Method     string `yaml:"method" validate:"required"`
	Iterations *int   `yaml:"iterations" validate:"required,min=1"`
	MaxOrder   *int   `yaml:"max_order" validate:"required,min=1"`
	// BackwardInverse selects exact or expanded inverse matching.
	BackwardInverse string `yaml:"backward_inverse" validate:"required,oneof=exact expanded"`

	Integration *Integration `yaml:"integration" validate:"required"`
	Workers     *int         `yaml:"workers" validate:"required,min=1"`
}

// XGrid is either explicit nodes or a generated grid, not both.
type XGrid struct {
	Nodes    []float64  `yaml:"nodes,omitempty" validate:"omitempty,min=2,dive,gt=0,lte=1"`
	Generate *Generated `yaml:"generate,omitempty"`
}

// Generated describes a generated x-grid ending at 1.
type Generated struct {
	Kind string  `yaml:"kind" validate:"required,oneof=log linear"`
	Size int     `yaml:"size" validate:"required,min=2"`
	XMin float64 `yaml:"xmin" validate:"required,gt=0,lt=1"`
}

// Integration tunes the inverse Mellin integrals.
type Integration struct {
	EpsAbs *float64 `yaml:"eps_abs" validate:"required,gt=0"`
	EpsRel *float64 `yaml:"eps_rel" validate:"required,gt=0"`
	Limit  *int     `yaml:"limit" validate:"required,min=1"`
	Cut    *float64 `yaml:"cut" validate:"required,gte=0,lt=0.5"`
}

// GridSize returns the number of x nodes.
func (o *Operator) GridSize() int {
	if o.XGrid.Generate != nil {
		return o.XGrid.Generate.Size
	}

	return len(o.XGrid.Nodes)
}

// Validate checks every field and the relations between them.
func (o *Operator) Validate() error {
	if err := check(o); err != nil {
		return err
	}
	if (o.XGrid.Nodes == nil) == (o.XGrid.Generate == nil) {
		return fmt.Errorf("xgrid needs exactly one of nodes and generate: %w", ErrInvalid)
	}
	if _, err := kernels.ParseMethod(o.Method); err != nil {
		return fmt.Errorf("method: %w", err)
	}
	if n := o.GridSize(); *o.Degree >= n {
		return fmt.Errorf("degree %d for %d nodes: %w", *o.Degree, n, ErrInconsistent)
	}
	if nodes := o.XGrid.Nodes; nodes != nil && !sort.Float64sAreSorted(nodes) {
		return fmt.Errorf("xgrid nodes not increasing: %w", ErrInconsistent)
	}

	return nil
}
