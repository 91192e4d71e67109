// SPDX-License-Identifier: MIT

package interpolation_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eko/interpolation"
)

// ExampleDispatcher_EvalX shows the Kronecker property of the basis on a
// logarithmic grid.
func ExampleDispatcher_EvalX() {
	grid, err := interpolation.LogGrid(5, 1e-4)
	if err != nil {
		panic(err)
	}
	d, err := interpolation.NewDispatcher(grid, 2, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4g\n", grid.Nodes())
	for j := 0; j < d.Len(); j++ {
		fmt.Printf("%.1f ", math.Abs(d.EvalX(j, grid.At(2))))
	}
	fmt.Println()
	// Output:
	// [0.0001 0.001 0.01 0.1 1]
	// 0.0 0.0 1.0 0.0 0.0
}
