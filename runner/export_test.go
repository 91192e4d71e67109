// SPDX-License-Identifier: MIT

package runner

import (
	"github.com/katalvlaran/eko/evolution"
	"github.com/katalvlaran/eko/interpolation"
	"github.com/katalvlaran/eko/mellin"
)

// WithRow replaces the per-node inversion.
func WithRow(f func(p *evolution.Path, d *interpolation.Dispatcher, k int, opts ...mellin.Option) (evolution.Row, error)) Option {
	return func(o *Options) { o.row = f }
}
