// SPDX-License-Identifier: MIT

package evolution

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrMethodQED is returned when QED evolution is requested with a
	// method other than iterate-exact or iterate-expanded.
	ErrMethodQED = ekoerr.Configuration("evolution: QED evolution requires an iterate method")

	// ErrScaleRatio is returned for a non-positive or non-finite μ_F/μ_R.
	ErrScaleRatio = ekoerr.Configuration("evolution: scale ratio must be positive")

	// ErrThresholdRatio is returned for a non-positive matching ratio.
	ErrThresholdRatio = ekoerr.Configuration("evolution: threshold ratio must be positive")
)
