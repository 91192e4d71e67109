// SPDX-License-Identifier: MIT

package thresholds

import "github.com/katalvlaran/eko/ekoerr"

// Sentinel errors; all are classified as ekoerr.ErrConfiguration.
var (
	// ErrNonPositiveScale is returned for μ² ≤ 0 or NaN.
	ErrNonPositiveScale = ekoerr.Configuration("thresholds: scale must be positive")

	// ErrUnorderedThresholds is returned when matching scales are not
	// strictly increasing.
	ErrUnorderedThresholds = ekoerr.Configuration("thresholds: matching scales must be strictly increasing")

	// ErrFlavorRange is returned for a flavour number outside [3, 6].
	ErrFlavorRange = ekoerr.Configuration("thresholds: flavour number out of range")

	// ErrPointOutsidePatch is returned when a (μ², nf) point is not inside
	// the patch of its flavour number.
	ErrPointOutsidePatch = ekoerr.Configuration("thresholds: scale outside the patch of its flavour number")
)
