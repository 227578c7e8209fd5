// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
)

// checkValues validates a variadic component list against want.
// Too few values is array.ErrMissingValue, too many array.ErrInvalidArgument.
func checkValues(tag string, vals []float64, want int) error {
	switch {
	case len(vals) < want:
		return fmt.Errorf("vector: %s: got %d of %d components: %w",
			tag, len(vals), want, array.ErrMissingValue)
	case len(vals) > want:
		return fmt.Errorf("vector: %s: got %d components, want %d: %w",
			tag, len(vals), want, array.ErrInvalidArgument)
	}

	return nil
}

// must unwraps kernel results whose shapes are fixed by the wrapper types.
// A non-nil error here is a bug in this package, not a caller mistake.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
