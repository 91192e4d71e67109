// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/cmplxmat"
)

// Forward returns the 14×14 flavour-space matching for the wall of quark
// nf+1 crossed upwards, with a = a_s(μ²_h) in the nf+1 scheme.
func (o OME) Forward(nf int, a float64) (*cmplxmat.Matrix, error) {
	if err := checkFlavors(nf); err != nil {
		return nil, err
	}
	m := o.expansion(nf, a)
	dropHeavy(m, nf, false)

	return m, nil
}

// Backward returns the matching for the wall of quark nf+1 crossed
// downwards: the inverse of the forward matrix, exact or truncated at the
// matching order, after which quark nf+1 is dropped.
func (o OME) Backward(nf int, a float64, exact bool) (*cmplxmat.Matrix, error) {
	if err := checkFlavors(nf); err != nil {
		return nil, err
	}
	var inv *cmplxmat.Matrix
	if exact {
		var err error
		inv, err = cmplxmat.Inverse(o.expansion(nf, a))
		if err != nil {
			return nil, fmt.Errorf("backward matching at N=%v: %w", o.N, err)
		}
	} else {
		inv = o.expandedInverse(nf, a)
	}
	dropHeavy(inv, nf, true)

	return inv, nil
}

// expansion returns 1 + a D1 + a² D2 keeping the heavy diagonal at one so
// the matrix is invertible.
func (o OME) expansion(nf int, a float64) *cmplxmat.Matrix {
	m := cmplxmat.Identity(basis.Size)
	ac := complex(a, 0)
	o.A1.addTo(m, nf, ac)
	o.A2.addTo(m, nf, ac*ac)

	return m
}

// expandedInverse returns 1 - a D1 + a²(D1² - D2) truncated at the order.
func (o OME) expandedInverse(nf int, a float64) *cmplxmat.Matrix {
	ac := complex(a, 0)
	m := cmplxmat.Identity(basis.Size)
	if o.Order < 2 {
		return m
	}
	d1 := cmplxmat.New(basis.Size)
	o.A1.addTo(d1, nf, 1)
	cmplxmat.AddScaled(m, d1, -ac)
	if o.Order < 3 {
		return m
	}
	d2 := cmplxmat.New(basis.Size)
	o.A2.addTo(d2, nf, 1)
	cmplxmat.AddScaled(m, cmplxmat.Sub(cmplxmat.Mul(d1, d1), d2), ac*ac)

	return m
}

// addTo accumulates c·e into flavour space.
func (e Elements) addTo(m *cmplxmat.Matrix, nf int, c complex128) {
	if e == (Elements{}) {
		return
	}
	g := basis.GluonIndex
	h, hb := basis.Index(nf+1), basis.Index(-(nf + 1))
	add := func(i, j int, v complex128) { m.Set(i, j, m.At(i, j)+c*v) }
	for pid := 1; pid <= nf; pid++ {
		for _, q := range []int{basis.Index(pid), basis.Index(-pid)} {
			add(q, q, e.NS)
			add(g, q, e.GQ)
			add(h, q, e.HQ/2)
			add(hb, q, e.HQ/2)
		}
	}
	add(g, g, e.GG)
	add(h, g, e.HG/2)
	add(hb, g, e.HG/2)
}

// dropHeavy zeroes the incoming column (forward) or the outgoing row
// (backward) of quark nf+1 and its antiquark.
func dropHeavy(m *cmplxmat.Matrix, nf int, rows bool) {
	for _, k := range []int{basis.Index(nf + 1), basis.Index(-(nf + 1))} {
		for j := 0; j < basis.Size; j++ {
			if rows {
				m.Set(k, j, 0)
			} else {
				m.Set(j, k, 0)
			}
		}
	}
}

func checkFlavors(nf int) error {
	if nf < 3 || nf > 5 {
		return fmt.Errorf("nf=%d: %w", nf, ErrFlavors)
	}

	return nil
}
