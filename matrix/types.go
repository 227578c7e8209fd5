// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/linalg"

// MaxDim is the largest row or column count supported by this package.
const MaxDim = linalg.MaxDim

// Matrix represents a small two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if the index is outside the matrix.
	At(row, col int) (float64, error)

	// Set assigns v at (row, col).
	// Returns ErrOutOfRange if the index is outside the matrix.
	Set(row, col int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// colMajor is implemented by the concrete types of this package to expose
// their backing storage for the flat-slice fast path.
type colMajor interface {
	colMajor() []float64
}

// indexOf validates (row, col) against rows×cols and returns the
// column-major offset.
func indexOf(rows, cols, row, col int) (int, error) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, ErrOutOfRange
	}

	return col*rows + row, nil
}
