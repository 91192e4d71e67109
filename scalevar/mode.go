// SPDX-License-Identifier: MIT

package scalevar

import (
	"fmt"
	"math"
)

// Mode selects how μ_F ≠ μ_R is treated.
type Mode int

const (
	Unvaried Mode = iota
	Exponentiated
	Expanded
)

var modeNames = [...]string{"unvaried", "exponentiated", "expanded"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMode: %q: %w", s, ErrUnknownMode)
}

// Log returns L = ln(xif²) for the ratio xif = μ_F/μ_R.
func Log(xif float64) float64 { return 2 * math.Log(xif) }

// RenormalisationScale returns μ_R² = μ_F²/xif² where a_s is evaluated;
// unvaried runs keep μ_F².
func (m Mode) RenormalisationScale(q2, xif float64) float64 {
	if m == Unvaried {
		return q2
	}

	return q2 / (xif * xif)
}
