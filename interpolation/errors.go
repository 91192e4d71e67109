// SPDX-License-Identifier: MIT

package interpolation

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrGridSize is returned for grids with fewer than two nodes.
	ErrGridSize = ekoerr.Configuration("interpolation: grid needs at least two nodes")

	// ErrGridNodes is returned for nodes outside (0, 1] or not strictly
	// increasing.
	ErrGridNodes = ekoerr.Configuration("interpolation: nodes must be strictly increasing in (0, 1]")

	// ErrDegree is returned for a polynomial degree < 1 or ≥ grid size.
	ErrDegree = ekoerr.Configuration("interpolation: polynomial degree out of range")

	// ErrIndex is returned for a basis index outside the grid.
	ErrIndex = ekoerr.Configuration("interpolation: basis index out of range")
)
