// SPDX-License-Identifier: MIT

package msbar

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrUnorderedMasses is returned when the solved masses are not
	// strictly increasing (m_c < m_b < m_t).
	ErrUnorderedMasses = ekoerr.Configuration("msbar: solved masses are not ordered")

	// ErrInconsistentReference is returned when a mass reference lies on
	// the wrong side of m(m) = m for its flavour number.
	ErrInconsistentReference = ekoerr.Configuration("msbar: mass reference inconsistent with its flavour number")

	// ErrBadQuark is returned for a non-positive mass or scale.
	ErrBadQuark = ekoerr.Configuration("msbar: mass and scale must be positive")

	// ErrNoBracket is returned when no sign change of m(μ) - μ is found.
	ErrNoBracket = ekoerr.Convergence("msbar: root not bracketed")

	// ErrNoConvergence is returned when the root search exceeds its
	// iteration budget.
	ErrNoConvergence = ekoerr.Convergence("msbar: root search did not converge")
)

const (
	panicTolerance  = "msbar: WithTolerance: tolerance must be > 0"
	panicIterations = "msbar: WithMaxIterations: iterations must be > 0"
)
