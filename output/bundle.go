// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/ekoerr"
)

// Basis names the flavour space of stored operators.
type Basis string

const (
	// Flavor is the PDG basis (22, -6…-1, 21, 1…6).
	Flavor Basis = "flavor"
	// Evolution is the nf = 6 QCD evolution basis (ph, S, g, V, V3…, T3…).
	Evolution Basis = "evolution"
)

// TargetInfo identifies a stored operator.
type TargetInfo struct {
	Q2 float64 `yaml:"q2"`
	NF int     `yaml:"nf"`
}

// Metadata describes a bundle.
type Metadata struct {
	ID      string    `yaml:"id"`
	Created time.Time `yaml:"created"`

	// Q02 and NF0 are the initial scale μ0² and its flavour number.
	Q02 float64 `yaml:"q02"`
	NF0 int     `yaml:"nf0"`

	XGrid  []float64 `yaml:"xgrid"`
	Degree int       `yaml:"degree"`
	Log    bool      `yaml:"log_interpolation"`
	Basis  Basis     `yaml:"basis"`
	PIDs   []int     `yaml:"pids"`

	// Targets mirrors Bundle.Targets in the archive.
	Targets  []TargetInfo                `yaml:"targets"`
	Warnings []ekoerr.IntegrationWarning `yaml:"warnings,omitempty"`

	Theory   *card.Theory   `yaml:"theory,omitempty"`
	Operator *card.Operator `yaml:"operator,omitempty"`
}

// Target is the operator μ0² → Q2.
type Target struct {
	TargetInfo
	Value []float64
	Error []float64
}

// Bundle is the result of a run.
type Bundle struct {
	Metadata Metadata
	Targets  []Target
}

// Dim returns 14·nx, the order of each operator matrix.
func (b *Bundle) Dim() int { return basis.Size * len(b.Metadata.XGrid) }

// Index returns the flat position of O[fo, xo, fi, xi] for nx nodes.
func Index(nx, fo, xo, fi, xi int) int {
	return ((fo*nx+xo)*basis.Size+fi)*nx + xi
}

// NewTarget allocates a zero operator for nx nodes.
func NewTarget(info TargetInfo, nx int) Target {
	n := basis.Size * nx

	return Target{TargetInfo: info, Value: make([]float64, n*n), Error: make([]float64, n*n)}
}

// SetRow stores the operator at output node xo given in (fo, fi, xi)
// layout, as produced per node by the inversion.
func (t *Target) SetRow(nx, xo int, value, errs []float64) {
	for fo := 0; fo < basis.Size; fo++ {
		for fi := 0; fi < basis.Size; fi++ {
			src := (fo*basis.Size + fi) * nx
			dst := Index(nx, fo, xo, fi, 0)
			copy(t.Value[dst:dst+nx], value[src:src+nx])
			copy(t.Error[dst:dst+nx], errs[src:src+nx])
		}
	}
}

// Matrix returns the operator as a (14·nx)×(14·nx) matrix sharing the
// storage of t.
func (t *Target) Matrix(nx int) *mat.Dense {
	n := basis.Size * nx

	return mat.NewDense(n, n, t.Value)
}

// ErrorMatrix is Matrix for the error tensor.
func (t *Target) ErrorMatrix(nx int) *mat.Dense {
	n := basis.Size * nx

	return mat.NewDense(n, n, t.Error)
}

// At returns O[fo, xo, fi, xi].
func (t *Target) At(nx, fo, xo, fi, xi int) float64 {
	return t.Value[Index(nx, fo, xo, fi, xi)]
}

// Lookup returns the target at q2.
func (b *Bundle) Lookup(q2 float64) (*Target, error) {
	for i := range b.Targets {
		if b.Targets[i].Q2 == q2 {
			return &b.Targets[i], nil
		}
	}

	return nil, fmt.Errorf("Lookup: no operator at q2=%g: %w", q2, ErrShape)
}

// check verifies every tensor fits the grid.
func (b *Bundle) check() error {
	n := b.Dim() * b.Dim()
	for i, t := range b.Targets {
		if len(t.Value) != n || len(t.Error) != n {
			return fmt.Errorf("target %d: %d values for %d: %w", i, len(t.Value), n, ErrShape)
		}
	}

	return nil
}
