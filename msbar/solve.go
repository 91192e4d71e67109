// SPDX-License-Identifier: MIT

package msbar

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/thresholds"
)

// Quark is the MSbar mass reference m_h(μ_h) of one heavy quark.
type Quark struct {
	Mass float64 // m_h(μ_h) in GeV
	Q2   float64 // μ_h²
	NF   int     // active flavours at μ_h
}

// Problem collects the inputs of Solve.
type Problem struct {
	Ref       couplings.Reference
	Order     int
	Quarks    [3]Quark   // charm, bottom, top
	Ratios    [3]float64 // matching ratios k_h, μ²_h = k_h² m_h²
	MaxNF     int
	Couplings []couplings.Option
}

// Solve returns the squared masses m_h² with m_h(m_h) = m_h for charm,
// bottom and top. Quarks above MaxNF keep their reference value.
//
// Implementation:
//
//	Stage 1: order quarks by |ln(μ_h²/μ²_ref)|.
//	Stage 2: per quark rebuild atlas and coupling from the current masses,
//	         then bracket and refine the root of ln m²(μ²) - ln μ².
//	Stage 3: check m_c < m_b < m_t.
func Solve(p Problem, opts ...Option) ([3]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var masses2 [3]float64
	for i, q := range p.Quarks {
		if !(q.Mass > 0) || !(q.Q2 > 0) {
			return masses2, fmt.Errorf("Solve: quark %d: %w", i+4, ErrBadQuark)
		}
		masses2[i] = q.Mass * q.Mass
	}

	// Stage 1
	idx := []int{0, 1, 2}
	sort.SliceStable(idx, func(i, j int) bool {
		return math.Abs(math.Log(p.Quarks[idx[i]].Q2/p.Ref.Q2)) < math.Abs(math.Log(p.Quarks[idx[j]].Q2/p.Ref.Q2))
	})

	// Stage 2
	for _, i := range idx {
		heavy := i + 4
		if heavy > p.MaxNF {
			continue
		}
		atlas, err := thresholds.NewFromMasses(masses2, p.Ratios, p.MaxNF)
		if err != nil {
			return masses2, fmt.Errorf("Solve: quark %d: %w", heavy, err)
		}
		copts := append(append([]couplings.Option{}, p.Couplings...),
			couplings.WithThresholdRatios(p.Ratios), couplings.WithScheme(couplings.MSbar))
		c, err := couplings.New(p.Ref, p.Order, atlas, copts...)
		if err != nil {
			return masses2, fmt.Errorf("Solve: quark %d: %w", heavy, err)
		}
		m2, err := solveQuark(c, p.Quarks[i], heavy, o)
		if err != nil {
			return masses2, fmt.Errorf("Solve: quark %d: %w", heavy, err)
		}
		masses2[i] = m2
	}

	// Stage 3
	for i := 1; i < len(masses2); i++ {
		if i+4 > p.MaxNF {
			break
		}
		if !(masses2[i] > masses2[i-1]) {
			return masses2, fmt.Errorf("Solve: m²=%v: %w", masses2, ErrUnorderedMasses)
		}
	}

	return masses2, nil
}

// solveQuark finds t = ln μ² with g(t) = ln m²(e^t) - t = 0. g decreases
// monotonically, so the root lies above μ_h when the reference is given
// below the quark's threshold (n_f,h < heavy) and below it otherwise.
func solveQuark(c *couplings.Couplings, q Quark, heavy int, o Options) (float64, error) {
	g := func(t float64) (float64, error) {
		m2, err := Running(c, q.Mass*q.Mass, q.Q2, q.NF, math.Exp(t))
		if err != nil {
			return 0, err
		}

		return math.Log(m2) - t, nil
	}

	t0 := math.Log(q.Q2)
	g0 := math.Log(q.Mass * q.Mass / q.Q2)
	if math.Abs(g0) < o.Tolerance {
		return q.Q2, nil
	}
	forward := q.NF < heavy
	if forward != (g0 > 0) {
		return 0, fmt.Errorf("m=%g at μ²=%g with nf=%d: %w", q.Mass, q.Q2, q.NF, ErrInconsistentReference)
	}

	// bracket with steps growing from |g0|
	lo, glo, hi, ghi := t0, g0, t0, g0
	step := math.Max(math.Abs(g0), 0.1)
	budget := o.MaxIterations
	for (glo > 0) == (ghi > 0) {
		if budget == 0 {
			return 0, &ekoerr.ConvergenceError{Op: "msbar.bracket", Detail: fmt.Sprintf("quark %d", heavy), Err: ErrNoBracket, Value: ghi}
		}
		budget--
		var err error
		if forward {
			lo, glo = hi, ghi
			hi += step
			if ghi, err = g(hi); err != nil {
				return 0, err
			}
		} else {
			hi, ghi = lo, glo
			lo -= step
			if glo, err = g(lo); err != nil {
				return 0, err
			}
		}
		step *= 2
	}

	// Illinois regula falsi
	side := 0
	for ; budget > 0; budget-- {
		t := (lo*ghi - hi*glo) / (ghi - glo)
		gt, err := g(t)
		if err != nil {
			return 0, err
		}
		if math.Abs(gt) < o.Tolerance || hi-lo < o.Tolerance {
			return math.Exp(t), nil
		}
		if (gt > 0) == (glo > 0) {
			lo, glo = t, gt
			if side == -1 {
				ghi /= 2
			}
			side = -1
		} else {
			hi, ghi = t, gt
			if side == +1 {
				glo /= 2
			}
			side = +1
		}
	}

	return 0, &ekoerr.ConvergenceError{Op: "msbar.solve", Detail: fmt.Sprintf("quark %d", heavy), Err: ErrNoConvergence, Value: hi - lo}
}
