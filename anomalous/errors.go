// SPDX-License-Identifier: MIT

package anomalous

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrOrder is returned for a QCD order outside [1, 3] or a QED order
	// outside [0, 1].
	ErrOrder = ekoerr.Configuration("anomalous: perturbative order out of range")

	// ErrSector is returned when a scalar sector is requested as a matrix or
	// vice versa, or a QED sector without QED.
	ErrSector = ekoerr.Configuration("anomalous: sector does not match request")

	// ErrFlavors is returned for nf outside [3, 6].
	ErrFlavors = ekoerr.Configuration("anomalous: flavour number out of range")
)
