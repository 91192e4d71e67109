// SPDX-License-Identifier: MIT

package scalevar

import "github.com/katalvlaran/eko/ekoerr"

// ErrUnknownMode is returned by ParseMode for an unknown name.
var ErrUnknownMode = ekoerr.Configuration("scalevar: unknown scale variation mode")
