// SPDX-License-Identifier: MIT
// Dense is a concrete, column-major implementation of the Matrix interface,
// storing elements in a flat slice that the linalg kernels consume directly.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/array"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a column-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements with element
// (row, col) at col*r + row.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure 1 ≤ rows, cols ≤ MaxDim.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c Dense matrix holding a copy of data, which must
// be in column-major order and hold exactly rows*cols elements.
//
// Errors: ErrBadShape for an unsupported shape; ErrDimensionMismatch when
// len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: got %d elements for %dx%d: %w",
			opNewDense, len(data), rows, cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: array.Copy(data)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col).
// Returns ErrOutOfRange if the index is invalid.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := indexOf(m.r, m.c, row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange if the index is invalid.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := indexOf(m.r, m.c, row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix as a Matrix interface.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: array.Copy(m.data)}
}

// Data returns the column-major backing slice. Writes through it are
// visible to m.
func (m *Dense) Data() []float64 { return m.data }

func (m *Dense) colMajor() []float64 { return m.data }

// String renders the matrix one row per line, e.g. "[1 2]\n[3 4]".
func (m *Dense) String() string {
	return formatRows(m.data, m.r, m.c)
}

// formatRows renders a column-major rows×cols slice row by row.
func formatRows(data []float64, rows, cols int) string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", data[c*rows+r])
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
