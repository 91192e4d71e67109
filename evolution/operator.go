// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"

	"github.com/katalvlaran/eko/anomalous"
	"github.com/katalvlaran/eko/basis"
	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/katalvlaran/eko/kernels"
	"github.com/katalvlaran/eko/matching"
	"github.com/katalvlaran/eko/scalevar"
)

// Operator returns the 14×14 flavour-space evolution kernel at N, later
// steps multiplied from the left.
func (p *Path) Operator(n complex128) (*cmplxmat.Matrix, error) {
	var op *cmplxmat.Matrix
	last := len(p.Segments) - 1
	for i, s := range p.Segments {
		if i > 0 {
			m, err := p.match(p.Crossings[i-1], n)
			if err != nil {
				return nil, err
			}
			op = cmplxmat.Mul(m, op)
		}
		k, err := p.segment(s, n, i == last)
		if err != nil {
			return nil, err
		}
		if op == nil {
			op = k
		} else {
			op = cmplxmat.Mul(k, op)
		}
	}

	return op, nil
}

// match returns the flavour-space matching of one crossing.
func (p *Path) match(x Crossing, n complex128) (*cmplxmat.Matrix, error) {
	ome, err := matching.New(n, x.L, p.cfg.Orders.QCD)
	if err != nil {
		return nil, fmt.Errorf("Operator: wall of quark %d: %w", x.NF+1, err)
	}
	if x.Up {
		return ome.Forward(x.NF, x.A)
	}

	return ome.Backward(x.NF, x.A, p.cfg.ExactInverse)
}

// segment returns R⁻¹·D·R for one segment, evaluating each sector once.
func (p *Path) segment(s Segment, n complex128, last bool) (*cmplxmat.Matrix, error) {
	b, err := basis.For(s.NF, p.cfg.qed())
	if err != nil {
		return nil, fmt.Errorf("Operator: %w", err)
	}
	memo := make(map[anomalous.Sector]*cmplxmat.Matrix, 4)
	ops := make([]*cmplxmat.Matrix, len(b.Blocks))
	for i, blk := range b.Blocks {
		if blk.Identity {
			continue
		}
		k, ok := memo[blk.Sector]
		if !ok {
			if blk.Sector.IsMatrix() {
				k, err = p.matrixKernel(blk.Sector, s, n, last)
			} else {
				k, err = p.scalarKernel(blk.Sector, s, n, last)
			}
			if err != nil {
				return nil, fmt.Errorf("Operator: nf=%d %v: %w", s.NF, blk.Sector, err)
			}
			memo[blk.Sector] = k
		}
		ops[i] = k
	}

	return b.Compose(ops), nil
}

// expanded reports whether the segment carries the expanded scale
// variation factor.
func (p *Path) expanded(last bool) bool {
	return last && p.cfg.ScaleVariation == scalevar.Expanded && p.cfg.XIF != 1
}

func (p *Path) scalarKernel(sector anomalous.Sector, s Segment, n complex128, last bool) (*cmplxmat.Matrix, error) {
	g, err := anomalous.NonSinglet(sector, n, s.NF, p.cfg.Orders)
	if err != nil {
		return nil, err
	}
	gammas := g.QCD
	l := p.cfg.log()
	if p.cfg.ScaleVariation == scalevar.Exponentiated {
		gammas = scalevar.Exponentiate(gammas, s.NF, l)
	}

	e := complex(1, 0)
	if !s.IsTrivial() {
		if sector.IsQED() {
			e, err = kernels.NonSingletQED(p.cfg.Method, gammas, g.EM, g.Mixed, p.aem, s.integrals)
		} else {
			e, err = kernels.NonSinglet(p.cfg.Method, gammas, s.integrals)
		}
		if err != nil {
			return nil, err
		}
	}
	if p.expanded(last) {
		e *= scalevar.Variation(g.QCD, s.A1, s.NF, l)
	}

	return cmplxmat.FromRows([][]complex128{{e}}), nil
}

func (p *Path) matrixKernel(sector anomalous.Sector, s Segment, n complex128, last bool) (*cmplxmat.Matrix, error) {
	g, err := anomalous.Block(sector, n, s.NF, p.cfg.Orders)
	if err != nil {
		return nil, err
	}
	gammas := g.QCD
	l := p.cfg.log()
	if p.cfg.ScaleVariation == scalevar.Exponentiated {
		gammas = scalevar.ExponentiateMatrix(gammas, s.NF, l)
	}

	var e *cmplxmat.Matrix
	switch {
	case s.IsTrivial():
		e = cmplxmat.Identity(gammas[0].N())
	case sector == anomalous.Singlet:
		e, err = kernels.Singlet(p.cfg.Method, gammas, s.integrals, p.cfg.Kernel...)
	default:
		e, err = kernels.MatrixQED(p.cfg.Method, gammas, g.EM, g.Mixed, p.aem, s.integrals, p.cfg.Kernel...)
	}
	if err != nil {
		return nil, err
	}
	if p.expanded(last) {
		e = cmplxmat.Mul(scalevar.VariationMatrix(g.QCD, s.A1, s.NF, l), e)
	}

	return e, nil
}
