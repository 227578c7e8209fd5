// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/linalg"
)

// ExampleMulVec4x3 translates a 3-d point by a column-major 4x4 transform.
func ExampleMulVec4x3() {
	m := []float64{
		1, 0, 0, 0,    // column 0
		0, 1, 0, 0,    // column 1
		0, 0, 1, 0,    // column 2
		10, 20, 30, 1, // column 3: translation
	}
	p, err := linalg.MulVec4x3(m, 0, []float64{1, 2, 3}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output:
	// [11 22 33]
}

// ExampleCross packs two vectors in one buffer and crosses them.
func ExampleCross() {
	buf := []float64{1, 0, 0, 0, 1, 0}
	z, _ := linalg.Cross(buf, 0, buf, 3)
	fmt.Println(z)
	// Output:
	// [0 0 1]
}
