// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/vector"
)

func ExampleVector3_Cross() {
	x := vector.New3(1, 0, 0)
	y := vector.New3(0, 1, 0)
	fmt.Println(x.Cross(y))
	// Output:
	// (0, 0, 1)
}

// ExampleLoad2 reads packed points out of a shared buffer.
func ExampleLoad2() {
	buf := []float64{1, 2, 3, 4}
	for off := 0; off < len(buf); off += 2 {
		p, _ := vector.Load2(buf, off)
		fmt.Println(p.YX())
	}
	// Output:
	// (2, 1)
	// (4, 3)
}
