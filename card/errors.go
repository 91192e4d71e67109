// SPDX-License-Identifier: MIT

package card

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrDecode is returned for malformed YAML, unknown keys or more than
	// one document.
	ErrDecode = ekoerr.Configuration("card: cannot decode card")

	// ErrInvalid is returned when a field is missing or out of range.
	ErrInvalid = ekoerr.Configuration("card: invalid card")

	// ErrInconsistent is returned when fields contradict each other.
	ErrInconsistent = ekoerr.Configuration("card: inconsistent card")
)
