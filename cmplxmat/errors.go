// SPDX-License-Identifier: MIT

package cmplxmat

import "errors"

// Every message is prefixed with "cmplxmat: ..." so it can be grepped in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers match
// with errors.Is.
var (
	// ErrSingular is returned when LU meets a pivot that is zero within
	// pivotEpsilon even after row exchange.
	ErrSingular = errors.New("cmplxmat: singular matrix")

	// ErrNotTwoByTwo is returned by the 2×2 eigen routines for other shapes.
	ErrNotTwoByTwo = errors.New("cmplxmat: matrix is not 2x2")
)

const (
	panicBadSize       = "cmplxmat: size must be > 0"
	panicShapeMismatch = "cmplxmat: shape mismatch"
	panicRaggedRows    = "cmplxmat: rows must all have length n"
)
