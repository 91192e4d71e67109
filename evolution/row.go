// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"

	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/interpolation"
	"github.com/katalvlaran/eko/mellin"
)

// Row is the x-space operator at one output node: Value and Error are
// laid out (flavour_out, flavour_in, x_in), flat row-major.
type Row struct {
	Value     []float64
	Error     []float64
	Intervals int
	Converged bool
}

// RowLen returns the length of a Row for nx interpolation nodes.
func RowLen(nx int) int { return basis.Size * basis.Size * nx }

// At returns the element (a, b, j) of a row slice for nx nodes.
func At(row []float64, nx, a, b, j int) float64 {
	return row[(a*basis.Size+b)*nx+j]
}

// Row inverts the operator against every basis function of d at the
// output node k. The node x = 1 yields a zero row.
func (p *Path) Row(d *interpolation.Dispatcher, k int, opts ...mellin.Option) (Row, error) {
	nx := d.Len()
	x, logx := d.Grid().At(k), d.Grid().LogAt(k)
	if x == 1 {
		return Row{Value: make([]float64, RowLen(nx)), Error: make([]float64, RowLen(nx)), Converged: true}, nil
	}

	path := mellin.NewTalbot(logx)
	pj := make([]complex128, nx)
	f := func(u float64, dst []float64) error {
		n, jac := path.At(u)
		op, err := p.Operator(n)
		if err != nil {
			return err
		}
		d.MellinAll(n, logx, pj)
		for a := 0; a < basis.Size; a++ {
			for b := 0; b < basis.Size; b++ {
				w := mellin.Prefactor * op.At(a, b) * jac
				out := dst[(a*basis.Size+b)*nx : (a*basis.Size+b+1)*nx]
				if w == 0 {
					clear(out)
					continue
				}
				for j, v := range pj {
					out[j] = real(w * v)
				}
			}
		}

		return nil
	}

	lo, hi := mellin.Bounds(opts...)
	res, err := mellin.Integrate(f, RowLen(nx), lo, hi, opts...)
	if err != nil {
		return Row{}, fmt.Errorf("Row: x[%d]=%g: %w", k, x, err)
	}

	return Row{Value: res.Value, Error: res.Error, Intervals: res.Intervals, Converged: res.Converged}, nil
}
