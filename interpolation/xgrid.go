// SPDX-License-Identifier: MIT

package interpolation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// XGrid is an immutable strictly increasing set of nodes in (0, 1].
type XGrid struct {
	x    []float64
	logx []float64
}

// NewXGrid copies and validates nodes.
func NewXGrid(nodes []float64) (*XGrid, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%d nodes: %w", len(nodes), ErrGridSize)
	}
	g := &XGrid{x: make([]float64, len(nodes)), logx: make([]float64, len(nodes))}
	for i, v := range nodes {
		if !(v > 0 && v <= 1) || (i > 0 && !(v > nodes[i-1])) {
			return nil, fmt.Errorf("node %d = %g: %w", i, v, ErrGridNodes)
		}
		g.x[i] = v
		g.logx[i] = math.Log(v)
	}

	return g, nil
}

// LogGrid returns n nodes evenly spaced in ln x from xmin to 1.
func LogGrid(n int, xmin float64) (*XGrid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%d nodes: %w", n, ErrGridSize)
	}
	if !(xmin > 0 && xmin < 1) {
		return nil, fmt.Errorf("xmin = %g: %w", xmin, ErrGridNodes)
	}
	nodes := floats.LogSpan(make([]float64, n), xmin, 1)
	nodes[n-1] = 1

	return NewXGrid(nodes)
}

// LinearGrid returns n nodes evenly spaced in x from xmin to 1.
func LinearGrid(n int, xmin float64) (*XGrid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%d nodes: %w", n, ErrGridSize)
	}
	if !(xmin > 0 && xmin < 1) {
		return nil, fmt.Errorf("xmin = %g: %w", xmin, ErrGridNodes)
	}

	nodes := floats.Span(make([]float64, n), xmin, 1)
	nodes[n-1] = 1

	return NewXGrid(nodes)
}

// Len returns the number of nodes.
func (g *XGrid) Len() int { return len(g.x) }

// At returns node i.
func (g *XGrid) At(i int) float64 { return g.x[i] }

// LogAt returns ln x_i.
func (g *XGrid) LogAt(i int) float64 { return g.logx[i] }

// Nodes returns a copy of the nodes.
func (g *XGrid) Nodes() []float64 { return append([]float64(nil), g.x...) }

// Equal reports whether both grids have the same nodes.
func (g *XGrid) Equal(o *XGrid) bool { return floats.Equal(g.x, o.x) }
