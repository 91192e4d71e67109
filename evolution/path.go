// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"

	"github.com/katalvlaran/eko/couplings"
	"github.com/katalvlaran/eko/kernels"
	"github.com/katalvlaran/eko/matching"
	"github.com/katalvlaran/eko/thresholds"
)

// Segment is a fixed-flavour stretch of the path with the couplings at
// its ends.
type Segment struct {
	thresholds.Segment
	A0, A1 float64

	integrals *kernels.Integrals
}

// Integrals returns the evolution integrals of the segment.
func (s Segment) Integrals() *kernels.Integrals { return s.integrals }

// Crossing is the matching at a threshold wall between two segments.
type Crossing struct {
	NF int     // flavour number below the wall
	Up bool    // crossed towards higher scales
	A  float64 // a_s(μ²_h) in NF+1 flavours
	L  float64 // ln(μ²_h/m²_h)
}

// Path is the evolution from one scale to another: Segments[i] is followed
// by Crossings[i], then Segments[i+1].
type Path struct {
	From, To  thresholds.Point
	Segments  []Segment
	Crossings []Crossing

	cfg Config
	aem float64
}

// NewPath splits from → to along the atlas of c and prepares every
// segment. The configuration is validated first and NNLO matching away
// from the quark mass is rejected before any N is evaluated.
func NewPath(c *couplings.Couplings, from, to thresholds.Point, cfg Config, cache *Cache) (*Path, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewPath: %w", err)
	}
	segs, err := c.Atlas().Path(from, to)
	if err != nil {
		return nil, fmt.Errorf("NewPath: %w", err)
	}

	p := &Path{
		From:     from,
		To:       to,
		Segments: make([]Segment, len(segs)),
		cfg:      cfg,
	}
	if cfg.qed() {
		p.aem = c.AEM()
	}
	for i, s := range segs {
		seg := Segment{Segment: s}
		if seg.A0, err = coupling(c, cfg, s.Q2From, s.NF); err != nil {
			return nil, fmt.Errorf("NewPath: %v: %w", s, err)
		}
		if seg.A1, err = coupling(c, cfg, s.Q2To, s.NF); err != nil {
			return nil, fmt.Errorf("NewPath: %v: %w", s, err)
		}
		key := fingerprint{nf: s.NF, a0: seg.A0, a1: seg.A1, order: cfg.Orders.QCD}
		if seg.integrals, err = cache.integrals(key, cfg.Kernel); err != nil {
			return nil, fmt.Errorf("NewPath: %v: %w", s, err)
		}
		p.Segments[i] = seg

		if i == 0 {
			continue
		}
		x, err := crossing(c, cfg, segs[i-1], s)
		if err != nil {
			return nil, fmt.Errorf("NewPath: %w", err)
		}
		p.Crossings = append(p.Crossings, x)
	}

	return p, nil
}

// coupling returns a_s at the renormalisation scale belonging to q2 in nf
// flavours.
func coupling(c *couplings.Couplings, cfg Config, q2 float64, nf int) (float64, error) {
	q2r := cfg.ScaleVariation.RenormalisationScale(q2, cfg.XIF)
	if q2r == q2 {
		return c.AAt(thresholds.Point{Q2: q2, NF: nf})
	}

	return c.AIn(q2r, nf)
}

// crossing prepares the matching between consecutive segments.
func crossing(c *couplings.Couplings, cfg Config, prev, next thresholds.Segment) (Crossing, error) {
	x := Crossing{NF: prev.NF, Up: next.NF > prev.NF}
	if !x.Up {
		x.NF = next.NF
	}
	x.L = cfg.matchingLog(x.NF)
	if _, err := matching.New(2, x.L, cfg.Orders.QCD); err != nil {
		return Crossing{}, fmt.Errorf("wall of quark %d: %w", x.NF+1, err)
	}
	a, err := c.AAt(thresholds.Point{Q2: prev.Q2To, NF: x.NF + 1})
	if err != nil {
		return Crossing{}, fmt.Errorf("wall of quark %d: %w", x.NF+1, err)
	}
	x.A = a

	return x, nil
}

// IsTrivial reports a path without evolution or matching.
func (p *Path) IsTrivial() bool {
	return len(p.Crossings) == 0 && p.Segments[0].IsTrivial()
}

// Config returns the configuration the path was built with.
func (p *Path) Config() Config { return p.cfg }
