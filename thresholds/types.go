// SPDX-License-Identifier: MIT

package thresholds

import "fmt"

// Point is a scale with its flavour number, which disambiguates scales that
// sit on a threshold wall.
type Point struct {
	Q2 float64
	NF int
}

// Segment is an evolution at fixed flavour number from Q2From to Q2To.
type Segment struct {
	NF     int
	Q2From float64
	Q2To   float64
}

// IsBackward reports an evolution towards lower scales.
func (s Segment) IsBackward() bool { return s.Q2To < s.Q2From }

// IsTrivial reports a zero-length segment.
func (s Segment) IsTrivial() bool { return s.Q2To == s.Q2From }

func (s Segment) String() string {
	return fmt.Sprintf("{nf=%d %g→%g}", s.NF, s.Q2From, s.Q2To)
}
