// SPDX-License-Identifier: MIT

package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
)

// ExampleAddEx adds two 2-vectors packed inside larger buffers.
func ExampleAddEx() {
	positions := []float64{0, 0, 1, 2, 3, 4} // three packed 2-d points
	offset := []float64{10, 20}

	out, err := array.AddEx(positions, 2, 2, offset, 0, positions, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// [0 0 11 22 3 4]
}

// ExampleAddPattern broadcasts one offset over every packed point.
func ExampleAddPattern() {
	out, _ := array.AddPattern([]float64{1, 2, 3, 4, 5, 6}, []float64{10, 20})
	fmt.Println(out)
	// Output:
	// [11 22 13 24 15 26]
}

// ExampleReshape builds a 3x2 nesting and flattens it back.
func ExampleReshape() {
	n, _ := array.Reshape([]float64{1, 2, 3, 4, 5, 6}, []int{3, 2})
	fmt.Println(n.Shape(), array.Flatten(n))
	// Output:
	// [3 2] [1 2 3 4 5 6]
}
