// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/vector"
)

// Matrix3 is a column-major 3x3 matrix: element (row r, col c) is at c*3 + r.
type Matrix3 [9]float64

// New3 builds a Matrix3 from all 9 elements in column-major order;
// mCR is column C, row R.
func New3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3 {
	return Matrix3{m00, m01, m02, m10, m11, m12, m20, m21, m22}
}

// Identity3 returns the 3x3 identity.
func Identity3() Matrix3 {
	return Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// FromValues3 builds a Matrix3 from exactly 9 column-major values.
func FromValues3(vals ...float64) (Matrix3, error) {
	if err := checkValues("FromValues3", vals, 9); err != nil {
		return Matrix3{}, err
	}

	return Matrix3(vals), nil
}

// Load3 reads a Matrix3 from src[off:off+9].
func Load3(src []float64, off int) (Matrix3, error) {
	var m Matrix3
	if _, err := array.CopyEx(src, off, 9, m[:], 0); err != nil {
		return Matrix3{}, err
	}

	return m, nil
}

// Store writes m into dst at off and returns dst; a nil dst allocates.
func (m Matrix3) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, m[:])
}

// The Matrix interface methods use pointer receivers because Set mutates
// in place; the arithmetic below works on values.

// Rows returns 3.
func (m *Matrix3) Rows() int { return 3 }

// Cols returns 3.
func (m *Matrix3) Cols() int { return 3 }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix3) At(row, col int) (float64, error) {
	idx, err := indexOf(3, 3, row, col)
	if err != nil {
		return 0, err
	}

	return m[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (m *Matrix3) Set(row, col int, v float64) error {
	idx, err := indexOf(3, 3, row, col)
	if err != nil {
		return err
	}
	m[idx] = v

	return nil
}

// Clone returns a copy of m as a Matrix.
func (m *Matrix3) Clone() Matrix {
	c := *m
	return &c
}

func (m *Matrix3) colMajor() []float64 { return m[:] }

// Col returns column c.
func (m Matrix3) Col(c int) (vector.Vector3, error) {
	if c < 0 || c >= 3 {
		return vector.Vector3{}, ErrOutOfRange
	}
	return vector.Vector3(m[c*3 : c*3+3]), nil
}

// Row returns row r.
func (m Matrix3) Row(r int) (vector.Vector3, error) {
	if r < 0 || r >= 3 {
		return vector.Vector3{}, ErrOutOfRange
	}
	return vector.Vector3{m[r], m[1*3+r], m[2*3+r]}, nil
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() (t Matrix3) {
	must(linalg.Transpose3x3Into(t[:], 0, m[:], 0))
	return t
}

// Mul returns the product m·o.
func (m Matrix3) Mul(o Matrix3) (p Matrix3) {
	m.MulInto(&p, o)
	return p
}

// MulInto stores m·o in dst. Both operands are copies, so dst may point
// at the matrix either of them came from.
func (m Matrix3) MulInto(dst *Matrix3, o Matrix3) {
	var p Matrix3
	must(linalg.Matmul3x3x3Into(p[:], 0, m[:], 0, o[:], 0))
	*dst = p
}

// MulVec returns m·v.
func (m Matrix3) MulVec(v vector.Vector3) (u vector.Vector3) {
	must(linalg.MulVec3Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// MulPoint transforms the 2-d point v as (x, y, 1); the third column
// acts as a translation. No perspective divide is applied.
func (m Matrix3) MulPoint(v vector.Vector2) (u vector.Vector2) {
	must(linalg.MulVec3x2Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// Add returns m + o.
func (m Matrix3) Add(o Matrix3) (u Matrix3) {
	must(array.AddInto(u[:], 0, m[:], o[:]))
	return u
}

// Sub returns m - o.
func (m Matrix3) Sub(o Matrix3) (u Matrix3) {
	must(array.SubInto(u[:], 0, m[:], o[:]))
	return u
}

// Scale returns s·m.
func (m Matrix3) Scale(s float64) (u Matrix3) {
	must(array.MulConstantInto(u[:], 0, m[:], s))
	return u
}

// Neg returns -m.
func (m Matrix3) Neg() (u Matrix3) {
	must(array.NegateInto(u[:], 0, m[:], 0, 9))
	return u
}

// AlmostEqual reports whether every element of m is within the
// configured epsilon of o.
func (m Matrix3) AlmostEqual(o Matrix3, opts ...array.Option) bool {
	return array.AlmostEqual(m[:], o[:], opts...)
}

// String renders m one row per line.
func (m Matrix3) String() string { return formatRows(m[:], 3, 3) }
