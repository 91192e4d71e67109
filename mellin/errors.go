// SPDX-License-Identifier: MIT

package mellin

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrNotFinite is returned when the integrand produced NaN or Inf.
	ErrNotFinite = ekoerr.Convergence("mellin: integrand is not finite")

	// ErrInterval is returned for an empty or reversed integration range.
	ErrInterval = ekoerr.Configuration("mellin: invalid integration interval")
)

const (
	panicEps   = "mellin: tolerances must be >= 0 and not both zero"
	panicLimit = "mellin: interval limit must be >= 1"
	panicNodes = "mellin: quadrature nodes must be >= 2"
	panicCut   = "mellin: cut must be in [0, 0.5)"
	panicFloor = "mellin: floor must be in [0, 1)"
)
