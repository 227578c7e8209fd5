// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/vector"
)

// Matrix4 is a column-major 4x4 matrix: element (row r, col c) is at c*4 + r.
type Matrix4 [16]float64

// New4 builds a Matrix4 from all 16 elements in column-major order;
// mCR is column C, row R.
func New4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23, m30, m31, m32, m33 float64) Matrix4 {
	return Matrix4{m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23, m30, m31, m32, m33}
}

// Identity4 returns the 4x4 identity.
func Identity4() Matrix4 {
	return Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// FromValues4 builds a Matrix4 from exactly 16 column-major values.
func FromValues4(vals ...float64) (Matrix4, error) {
	if err := checkValues("FromValues4", vals, 16); err != nil {
		return Matrix4{}, err
	}

	return Matrix4(vals), nil
}

// Load4 reads a Matrix4 from src[off:off+16].
func Load4(src []float64, off int) (Matrix4, error) {
	var m Matrix4
	if _, err := array.CopyEx(src, off, 16, m[:], 0); err != nil {
		return Matrix4{}, err
	}

	return m, nil
}

// Store writes m into dst at off and returns dst; a nil dst allocates.
func (m Matrix4) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, m[:])
}

// The Matrix interface methods use pointer receivers because Set mutates
// in place; the arithmetic below works on values.

// Rows returns 4.
func (m *Matrix4) Rows() int { return 4 }

// Cols returns 4.
func (m *Matrix4) Cols() int { return 4 }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix4) At(row, col int) (float64, error) {
	idx, err := indexOf(4, 4, row, col)
	if err != nil {
		return 0, err
	}

	return m[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
func (m *Matrix4) Set(row, col int, v float64) error {
	idx, err := indexOf(4, 4, row, col)
	if err != nil {
		return err
	}
	m[idx] = v

	return nil
}

// Clone returns a copy of m as a Matrix.
func (m *Matrix4) Clone() Matrix {
	c := *m
	return &c
}

func (m *Matrix4) colMajor() []float64 { return m[:] }

// Col returns column c.
func (m Matrix4) Col(c int) (vector.Vector4, error) {
	if c < 0 || c >= 4 {
		return vector.Vector4{}, ErrOutOfRange
	}
	return vector.Vector4(m[c*4 : c*4+4]), nil
}

// Row returns row r.
func (m Matrix4) Row(r int) (vector.Vector4, error) {
	if r < 0 || r >= 4 {
		return vector.Vector4{}, ErrOutOfRange
	}
	return vector.Vector4{m[r], m[1*4+r], m[2*4+r], m[3*4+r]}, nil
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() (t Matrix4) {
	must(linalg.Transpose4x4Into(t[:], 0, m[:], 0))
	return t
}

// Mul returns the product m·o.
func (m Matrix4) Mul(o Matrix4) (p Matrix4) {
	m.MulInto(&p, o)
	return p
}

// MulInto stores m·o in dst. Both operands are copies, so dst may point
// at the matrix either of them came from.
func (m Matrix4) MulInto(dst *Matrix4, o Matrix4) {
	var p Matrix4
	must(linalg.Matmul4x4x4Into(p[:], 0, m[:], 0, o[:], 0))
	*dst = p
}

// MulVec returns m·v.
func (m Matrix4) MulVec(v vector.Vector4) (u vector.Vector4) {
	must(linalg.MulVec4Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// MulPoint transforms the 3-d point v as (x, y, z, 1). No perspective
// divide is applied.
func (m Matrix4) MulPoint(v vector.Vector3) (u vector.Vector3) {
	must(linalg.MulVec4x3Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// MulPoint2 transforms the 2-d point v as (x, y, 1, 1).
func (m Matrix4) MulPoint2(v vector.Vector2) (u vector.Vector2) {
	must(linalg.MulVec4x2Into(u[:], 0, m[:], 0, v[:], 0))
	return u
}

// Add returns m + o.
func (m Matrix4) Add(o Matrix4) (u Matrix4) {
	must(array.AddInto(u[:], 0, m[:], o[:]))
	return u
}

// Sub returns m - o.
func (m Matrix4) Sub(o Matrix4) (u Matrix4) {
	must(array.SubInto(u[:], 0, m[:], o[:]))
	return u
}

// Scale returns s·m.
func (m Matrix4) Scale(s float64) (u Matrix4) {
	must(array.MulConstantInto(u[:], 0, m[:], s))
	return u
}

// Neg returns -m.
func (m Matrix4) Neg() (u Matrix4) {
	must(array.NegateInto(u[:], 0, m[:], 0, 16))
	return u
}

// AlmostEqual reports whether every element of m is within the
// configured epsilon of o.
func (m Matrix4) AlmostEqual(o Matrix4, opts ...array.Option) bool {
	return array.AlmostEqual(m[:], o[:], opts...)
}

// String renders m one row per line.
func (m Matrix4) String() string { return formatRows(m[:], 4, 4) }
