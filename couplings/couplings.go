// SPDX-License-Identifier: MIT

package couplings

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/eko/thresholds"
)

// Reference fixes the boundary condition α_s(μ²_ref) in n_f,ref flavours.
type Reference struct {
	Alpha float64 // α_s, not a_s
	Q2    float64
	NF    int
}

type cacheKey struct {
	q2 float64
	nf int
}

// Couplings evolves a_s from its reference through an atlas.
type Couplings struct {
	ref   Reference
	a0    float64 // a_s at the reference
	order int
	atlas *thresholds.Atlas
	opts  Options

	mu    sync.RWMutex
	cache map[cacheKey]float64
}

// New validates the reference against the atlas and returns a solver.
// order counts loops of the β function: 1 (LO) … MaxOrder (N3LO).
func New(ref Reference, order int, atlas *thresholds.Atlas, opts ...Option) (*Couplings, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("New: order %d: %w", order, ErrOrder)
	}
	if !(ref.Alpha > 0) || math.IsInf(ref.Alpha, 0) {
		return nil, fmt.Errorf("New: alpha_s=%g: %w", ref.Alpha, ErrBadReference)
	}
	if err := atlas.Validate(thresholds.Point{Q2: ref.Q2, NF: ref.NF}); err != nil {
		return nil, fmt.Errorf("New: reference: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Couplings{
		ref:   ref,
		a0:    ref.Alpha / (4 * math.Pi),
		order: order,
		atlas: atlas,
		opts:  o,
		cache: make(map[cacheKey]float64),
	}, nil
}

// Order returns the number of loops of the β function.
func (c *Couplings) Order() int { return c.order }

// Method returns the configured solution method.
func (c *Couplings) Method() Method { return c.opts.Method }

// Atlas returns the underlying threshold atlas.
func (c *Couplings) Atlas() *thresholds.Atlas { return c.atlas }

// AEM returns the fixed a_em = α_em/(4π).
func (c *Couplings) AEM() float64 { return c.opts.AlphaEM / (4 * math.Pi) }

// A returns a_s(q2) with the default flavour number of the atlas.
func (c *Couplings) A(q2 float64) (float64, error) {
	return c.AAt(c.atlas.At(q2))
}

// Alpha returns α_s(q2) = 4π a_s(q2).
func (c *Couplings) Alpha(q2 float64) (float64, error) {
	a, err := c.A(q2)

	return 4 * math.Pi * a, err
}

// AAt returns a_s at the point p, memoised.
func (c *Couplings) AAt(p thresholds.Point) (float64, error) {
	key := cacheKey{p.Q2, p.NF}
	c.mu.RLock()
	v, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.compute(p)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.cache[key] = v
	c.mu.Unlock()

	return v, nil
}

// Warm computes and caches a_s at every point before concurrent use.
func (c *Couplings) Warm(points ...thresholds.Point) error {
	for _, p := range points {
		if _, err := c.AAt(p); err != nil {
			return err
		}
	}

	return nil
}

// AIn returns a_s(q2) in exactly nf flavours, extrapolating the nf
// solution outside its patch when q2 lies beyond a matching scale. Values
// are not cached.
func (c *Couplings) AIn(q2 float64, nf int) (float64, error) {
	segs, err := c.atlas.ForcedPath(thresholds.Point{Q2: c.ref.Q2, NF: c.ref.NF}, thresholds.Point{Q2: q2, NF: nf})
	if err != nil {
		return 0, fmt.Errorf("AIn: %w", err)
	}

	return c.along(segs)
}

// compute walks the atlas path from the reference to p.
func (c *Couplings) compute(p thresholds.Point) (float64, error) {
	segs, err := c.atlas.Path(thresholds.Point{Q2: c.ref.Q2, NF: c.ref.NF}, p)
	if err != nil {
		return 0, fmt.Errorf("AAt: %w", err)
	}

	return c.along(segs)
}

// along evolves the reference value through segs, matching at every wall.
func (c *Couplings) along(segs []thresholds.Segment) (float64, error) {
	var err error
	a := c.a0
	for i, s := range segs {
		if a, err = c.evolve(a, s); err != nil {
			return 0, fmt.Errorf("segment %v: %w", s, err)
		}
		if i == len(segs)-1 {
			break
		}
		up := segs[i+1].NF > s.NF
		heavy := s.NF // index of the heavy quark nf+1 in Ratios (0 = charm)
		if !up {
			heavy = s.NF - 1
		}
		k := c.opts.Ratios[heavy-3]
		a = Match(a, c.order, c.opts.Scheme, math.Log(k*k), up)
	}

	return a, nil
}

func (c *Couplings) evolve(a0 float64, s thresholds.Segment) (float64, error) {
	if s.IsTrivial() {
		return a0, nil
	}
	lnQ := math.Log(s.Q2To / s.Q2From)
	if c.opts.Method == Expanded {
		return SolveExpanded(a0, lnQ, c.order, s.NF)
	}

	return SolveExact(a0, lnQ, c.order, s.NF, c.opts.Tolerance, c.opts.MaxSteps)
}
