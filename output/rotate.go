// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eko/basis"
)

// Rotate expresses every operator in the basis to, on both the output
// and the input side. Errors are propagated with absolute values of the
// rotation.
func (b *Bundle) Rotate(to Basis) error {
	if to != Flavor && to != Evolution {
		return fmt.Errorf("Rotate: %q: %w", to, ErrBasis)
	}
	if b.Metadata.Basis == to {
		return nil
	}
	if err := b.check(); err != nil {
		return fmt.Errorf("Rotate: %w", err)
	}
	ev := basis.Evolution()
	left, right := ev.Rotation(), ev.Inverse()
	if to == Flavor {
		left, right = right, left
	}
	nx := len(b.Metadata.XGrid)
	kl, kr := kron(left, nx), kron(right, nx)
	al, ar := abs(kl), abs(kr)

	for i := range b.Targets {
		t := &b.Targets[i]
		var v, e, tmp mat.Dense
		tmp.Mul(kl, t.Matrix(nx))
		v.Mul(&tmp, kr)
		tmp.Reset()
		tmp.Mul(al, t.ErrorMatrix(nx))
		e.Mul(&tmp, ar)
		t.Value, t.Error = v.RawMatrix().Data, e.RawMatrix().Data
	}
	b.Metadata.Basis = to

	return nil
}

// kron returns m ⊗ 1_nx.
func kron(m mat.Matrix, nx int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r*nx, c*nx, nil)
	for a := 0; a < r; a++ {
		for b := 0; b < c; b++ {
			v := m.At(a, b)
			if v == 0 {
				continue
			}
			for k := 0; k < nx; k++ {
				out.Set(a*nx+k, b*nx+k, v)
			}
		}
	}

	return out
}

func abs(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }, m)

	return &out
}

// Compose returns the operator outer·inner, e.g. μ1² → μ2² after
// μ0² → μ1², labelled with the target of outer. Errors add linearly.
func Compose(outer, inner *Target, nx int) (Target, error) {
	n := basis.Size * nx
	if len(outer.Value) != n*n || len(inner.Value) != n*n {
		return Target{}, fmt.Errorf("Compose: %w", ErrShape)
	}
	a, b := outer.Matrix(nx), inner.Matrix(nx)
	var v, e, tmp mat.Dense
	v.Mul(a, b)
	e.Mul(abs(a), inner.ErrorMatrix(nx))
	tmp.Mul(outer.ErrorMatrix(nx), abs(b))
	e.Add(&e, &tmp)

	return Target{TargetInfo: outer.TargetInfo, Value: v.RawMatrix().Data, Error: e.RawMatrix().Data}, nil
}
