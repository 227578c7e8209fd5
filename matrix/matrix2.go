// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/vector"
)

// Matrix2 is a column-major 2x2 matrix: element (row r, col c) is at c*2 + r.
type Matrix2 [4]float64

// New2 builds a Matrix2 from all 4 elements in column-major order;
// mCR is column C, row R.
func New2(m00, m01, m10, m11 float64) Matrix2 {
	return Matrix2{m00, m01, m10, m11}
}

// Identity2 returns the 2x2 identity.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1}
}

// FromValues2 builds a Matrix2 from exactly 4 column-major values.
func FromValues2(vals ...float64) (Matrix2, error) {
	if err := checkValues("FromValues2", vals, 4); err != nil {
		return Matrix2{}, err
	}

	return Matrix2(vals), nil
}

// Load2 reads a Matrix2 from src[off:off+4].
func Load2(src []float64, off int) (Matrix2, error) {
	var m Matrix2
	if _, err := array.CopyEx(src, off, 4, m[:], 0); err != nil {
		return Matrix2{}, err
	}

	return m, nil
}

// Store writes m into dst at off and returns dst; a nil dst allocates.
func (m Matrix2) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, m[:])
}

// The Matrix interface methods use pointer receivers because Set mutates
// in place; the arithmetic below works on values.

// Rows returns 2.
func (m *Matrix2) Rows() int { return 2 }

// Cols returns 2.
func (m *Matrix2) Cols() int { return 2 }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix2) At(row, col int) (float64, error) {
	idx, err := indexOf(2, 2, row, col)
	if err != nil {
		return 0, err
	}

	return m[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (m *Matrix2) Set(row, col int, v float64) error {
	idx, err := indexOf(2, 2, row, col)
	if err != nil {
		return err
	}
	m[idx] = v

	return nil
}

// Clone returns a copy of m as a Matrix.
func (m *Matrix2) Clone() Matrix {
	c := *m
	return &c
}

func (m *Matrix2) colMajor() []float64 { return m[:] }

// Col returns column c.
func (m Matrix2) Col(c int) (vector.Vector2, error) {
	if c < 0 || c >= 2 {
		return vector.Vector2{}, ErrOutOfRange
	}
	return vector.Vector2(m[c*2 : c*2+2]), nil
}

// Row returns row r.
func (m Matrix2) Row(r int) (vector.Vector2, error) {
	if r < 0 || r >= 2 {
		return vector.Vector2{}, ErrOutOfRange
	}
	return vector.Vector2{m[r], m[1*2+r]}, nil
}

// Transpose returns mᵀ.
func (m Matrix2) Transpose() (t Matrix2) {
	must(linalg.Transpose2x2Into(t[:], 0, m[:], 0))
	return t
}

// Mul returns the product m·o.
func (m Matrix2) Mul(o Matrix2) (p Matrix2) {
	m.MulInto(&p, o)
	return p
}

// MulInto stores m·o in dst. Both operands are copies, so dst may point
// at the matrix either of them came from.
func (m Matrix2) MulInto(dst *Matrix2, o Matrix2) {
	var p Matrix2
	must(linalg.Matmul2x2x2Into(p[:], 0, m[:], 0, o[:], 0))
	*dst = p
}

// MulVec returns m·v.
func (m Matrix2) MulVec(v vector.Vector2) (u vector.Vector2) {
	must(linalg.MulVec2Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// Add returns m + o.
func (m Matrix2) Add(o Matrix2) (u Matrix2) {
	must(array.AddInto(u[:], 0, m[:], o[:]))
	return u
}

// Sub returns m - o.
func (m Matrix2) Sub(o Matrix2) (u Matrix2) {
	must(array.SubInto(u[:], 0, m[:], o[:]))
	return u
}

// Scale returns s·m.
func (m Matrix2) Scale(s float64) (u Matrix2) {
	must(array.MulConstantInto(u[:], 0, m[:], s))
	return u
}

// Neg returns -m.
func (m Matrix2) Neg() (u Matrix2) {
	must(array.NegateInto(u[:], 0, m[:], 0, 4))
	return u
}

// AlmostEqual reports whether every element of m is within the
// configured epsilon of o.
func (m Matrix2) AlmostEqual(o Matrix2, opts ...array.Option) bool {
	return array.AlmostEqual(m[:], o[:], opts...)
}

// String renders m one row per line.
func (m Matrix2) String() string { return formatRows(m[:], 2, 2) }
