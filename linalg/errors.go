// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
)

// MaxDim is the largest vector length and matrix dimension accepted.
const MaxDim = 4

// Operation tags for error wrapping.
const (
	opLength    = "Length"
	opNormalize = "Normalize"
	opDot       = "Dot"
	opCross     = "Cross"
	opTranspose = "Transpose"
	opMatmul    = "Matmul"
	opMulVec    = "MulVec"
	opIdentity  = "Identity"
)

// linalgErrorf wraps err with a "linalg: op" tag; errors.Is still matches the
// array sentinels underneath.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("linalg: %s: %w", tag, err)
}

// checkDims rejects dimensions outside 1..MaxDim with array.ErrInvalidArgument.
func checkDims(tag string, dims ...int) error {
	for _, d := range dims {
		if d < 1 || d > MaxDim {
			return fmt.Errorf("linalg: %s: dimension %d not in [1, %d]: %w",
				tag, d, MaxDim, array.ErrInvalidArgument)
		}
	}

	return nil
}
