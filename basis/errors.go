// SPDX-License-Identifier: MIT

package basis

import (
	"errors"

	"github.com/katalvlaran/eko/ekoerr"
)

var (
	// ErrFlavors is returned for nf outside [3, 6].
	ErrFlavors = ekoerr.Configuration("basis: flavour number out of range")

	// ErrUnknownLabel is returned by Lookup for a label not in the basis.
	ErrUnknownLabel = ekoerr.Configuration("basis: unknown basis element")

	// errNotInvertible guards construction; the rotations are integral
	// and never singular.
	errNotInvertible = errors.New("basis: rotation is singular")
)
