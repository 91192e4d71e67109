// SPDX-License-Identifier: MIT

package thresholds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/qcd"
)

// heavyQuarks is the number of heavy flavours with a matching scale (c, b, t).
const heavyQuarks = 3

// Atlas is the immutable partition of μ² into flavour patches.
type Atlas struct {
	// walls[k] is the lower edge of the nf = 3+k patch; walls[0] = 0 and
	// walls[4] = +Inf.
	walls [heavyQuarks + 2]float64
	fixed bool // fixed flavour scheme
}

// New builds a variable flavour atlas from the squared matching scales of
// charm, bottom and top. A scale of +Inf disables that flavour and every
// heavier one.
func New(matching [heavyQuarks]float64) (*Atlas, error) {
	a := &Atlas{}
	a.walls[0] = 0
	for i, q2 := range matching {
		if math.IsNaN(q2) || q2 <= 0 {
			return nil, fmt.Errorf("New: heavy quark %d: %w", i+4, ErrNonPositiveScale)
		}
		if i > 0 && !(q2 > matching[i-1]) && !math.IsInf(q2, 1) {
			return nil, fmt.Errorf("New: %g after %g: %w", q2, matching[i-1], ErrUnorderedThresholds)
		}
		a.walls[i+1] = q2
	}
	a.walls[heavyQuarks+1] = math.Inf(1)

	return a, nil
}

// NewFromMasses builds the atlas from squared heavy-quark masses and
// matching ratios k_h, with μ²_h = k_h² m²_h. Flavours above maxNF never
// become active.
func NewFromMasses(masses2, ratios [heavyQuarks]float64, maxNF int) (*Atlas, error) {
	if maxNF < qcd.MinFlavors || maxNF > qcd.MaxFlavors {
		return nil, fmt.Errorf("NewFromMasses: max nf %d: %w", maxNF, ErrFlavorRange)
	}
	var walls [heavyQuarks]float64
	for i := range walls {
		if ratios[i] <= 0 || math.IsNaN(ratios[i]) {
			return nil, fmt.Errorf("NewFromMasses: ratio of quark %d: %w", i+4, ErrNonPositiveScale)
		}
		walls[i] = ratios[i] * ratios[i] * masses2[i]
		if i+4 > maxNF {
			walls[i] = math.Inf(1)
		}
	}

	return New(walls)
}

// NewFFNS returns a fixed flavour atlas with nf active flavours everywhere.
func NewFFNS(nf int) (*Atlas, error) {
	if nf < qcd.MinFlavors || nf > qcd.MaxFlavors {
		return nil, fmt.Errorf("NewFFNS: nf=%d: %w", nf, ErrFlavorRange)
	}
	a := &Atlas{fixed: true}
	for k := range a.walls {
		switch {
		case k <= nf-qcd.MinFlavors:
			a.walls[k] = 0
		default:
			a.walls[k] = math.Inf(1)
		}
	}

	return a, nil
}

// IsFixed reports a fixed flavour scheme.
func (a *Atlas) IsFixed() bool { return a.fixed }

// MatchingScale returns μ² of the threshold between nf and nf+1 flavours
// (+Inf when that flavour never becomes active).
func (a *Atlas) MatchingScale(nf int) float64 {
	if nf < qcd.MinFlavors || nf >= qcd.MaxFlavors {
		return math.Inf(1)
	}

	return a.walls[nf-qcd.MinFlavors+1]
}

// Thresholds returns the finite, positive matching scales in increasing order.
func (a *Atlas) Thresholds() []float64 {
	var out []float64
	for _, w := range a.walls[1 : heavyQuarks+1] {
		if w > 0 && !math.IsInf(w, 1) {
			out = append(out, w)
		}
	}

	return out
}

// NF returns the flavour number at q2; a scale on a wall belongs to the
// upper patch.
func (a *Atlas) NF(q2 float64) int {
	nf := qcd.MinFlavors
	for k := 1; k <= heavyQuarks; k++ {
		if q2 >= a.walls[k] {
			nf = qcd.MinFlavors + k
		}
	}

	return nf
}

// At returns the Point of q2 with its default flavour number.
func (a *Atlas) At(q2 float64) Point { return Point{Q2: q2, NF: a.NF(q2)} }

// Contains reports whether p lies inside (or on the edge of) the patch of
// p.NF.
func (a *Atlas) Contains(p Point) bool {
	if p.NF < qcd.MinFlavors || p.NF > qcd.MaxFlavors {
		return false
	}
	lo, hi := a.patch(p.NF)

	return p.Q2 >= lo && p.Q2 <= hi && lo < hi
}

// patch returns the edges of the nf patch.
func (a *Atlas) patch(nf int) (lo, hi float64) {
	k := nf - qcd.MinFlavors

	return a.walls[k], a.walls[k+1]
}

// Validate checks p for positivity and patch membership.
func (a *Atlas) Validate(p Point) error {
	if math.IsNaN(p.Q2) || p.Q2 <= 0 || math.IsInf(p.Q2, 0) {
		return fmt.Errorf("Validate: q2=%g: %w", p.Q2, ErrNonPositiveScale)
	}
	if p.NF < qcd.MinFlavors || p.NF > qcd.MaxFlavors {
		return fmt.Errorf("Validate: nf=%d: %w", p.NF, ErrFlavorRange)
	}
	if !a.Contains(p) {
		lo, hi := a.patch(p.NF)
		return fmt.Errorf("Validate: q2=%g not in [%g, %g] for nf=%d: %w", p.Q2, lo, hi, p.NF, ErrPointOutsidePatch)
	}

	return nil
}

// Path decomposes the evolution from → to into contiguous segments.
//
// Invariants of the result:
//   - segs[0].Q2From = from.Q2 and segs[len-1].Q2To = to.Q2;
//   - segs[i].Q2To = segs[i+1].Q2From is the matching scale between them;
//   - |segs[i+1].NF - segs[i].NF| = 1.
//
// Complexity: O(|Δnf|).
func (a *Atlas) Path(from, to Point) ([]Segment, error) {
	if err := a.Validate(from); err != nil {
		return nil, fmt.Errorf("Path: from: %w", err)
	}
	if err := a.Validate(to); err != nil {
		return nil, fmt.Errorf("Path: to: %w", err)
	}

	return a.walk(from, to), nil
}

// ForcedPath is Path for a target whose scale may lie outside the patch of
// its flavour number: the last segment then extrapolates beyond the
// matching scale. It serves quantities defined in a fixed flavour number
// away from their natural patch, e.g. running masses near their own
// threshold.
func (a *Atlas) ForcedPath(from, to Point) ([]Segment, error) {
	if err := a.Validate(from); err != nil {
		return nil, fmt.Errorf("ForcedPath: from: %w", err)
	}
	if math.IsNaN(to.Q2) || to.Q2 <= 0 || math.IsInf(to.Q2, 0) {
		return nil, fmt.Errorf("ForcedPath: q2=%g: %w", to.Q2, ErrNonPositiveScale)
	}
	if to.NF < qcd.MinFlavors || to.NF > qcd.MaxFlavors {
		return nil, fmt.Errorf("ForcedPath: nf=%d: %w", to.NF, ErrFlavorRange)
	}
	if lo, hi := a.patch(to.NF); !(lo < hi) || math.IsInf(lo, 1) {
		return nil, fmt.Errorf("ForcedPath: nf=%d never active: %w", to.NF, ErrPointOutsidePatch)
	}

	return a.walk(from, to), nil
}

func (a *Atlas) walk(from, to Point) []Segment {
	segs := make([]Segment, 0, 1+abs(to.NF-from.NF))
	q2, nf := from.Q2, from.NF
	for nf != to.NF {
		var wall float64
		next := nf + 1
		if to.NF > nf {
			_, wall = a.patch(nf) // upper edge
		} else {
			wall, _ = a.patch(nf) // lower edge
			next = nf - 1
		}
		segs = append(segs, Segment{NF: nf, Q2From: q2, Q2To: wall})
		q2, nf = wall, next
	}

	return append(segs, Segment{NF: nf, Q2From: q2, Q2To: to.Q2})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
