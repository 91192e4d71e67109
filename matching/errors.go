// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrOrder is returned for an order outside [1, 3].
	ErrOrder = ekoerr.Configuration("matching: order out of range")

	// ErrScaleNNLO is returned for NNLO matching with μ_h ≠ m_h.
	ErrScaleNNLO = ekoerr.Configuration("matching: NNLO matching requires the threshold at the quark mass")

	// ErrFlavors is returned when nf+1 is not a heavy quark (nf outside [3, 5]).
	ErrFlavors = ekoerr.Configuration("matching: flavour number out of range")
)
