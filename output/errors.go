// SPDX-License-Identifier: MIT

package output

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrFormat is returned by Load for an archive that is not a bundle.
	ErrFormat = ekoerr.Configuration("output: malformed bundle")

	// ErrShape is returned when operators do not fit the bundle grid.
	ErrShape = ekoerr.Configuration("output: operator shape mismatch")

	// ErrBasis is returned for an unknown basis name.
	ErrBasis = ekoerr.Configuration("output: unknown basis")
)
