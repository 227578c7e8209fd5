// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
)

// checkValues validates a variadic element list against want.
// Too few values is array.ErrMissingValue, too many array.ErrInvalidArgument.
func checkValues(tag string, vals []float64, want int) error {
	switch {
	case len(vals) < want:
		return fmt.Errorf("matrix: %s: got %d of %d elements: %w",
			tag, len(vals), want, array.ErrMissingValue)
	case len(vals) > want:
		return fmt.Errorf("matrix: %s: got %d elements, want %d: %w",
			tag, len(vals), want, array.ErrInvalidArgument)
	}

	return nil
}

// must unwraps kernel results whose shapes are fixed by the MatrixN types.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
