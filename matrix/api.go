// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points over any Matrix implementation.
//   - Each facade validates, flattens its operands to column-major slices and
//     delegates to the array/linalg kernels; results are fresh *Dense values.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - NaN and ±Inf propagate per IEEE-754; nothing is rejected on value.
//
// Hints:
//   - Prefer passing *Dense or the fixed MatrixN types to skip the At-based
//     gather and feed the backing slices straight to the kernels.

package matrix

import (
	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if _, err = linalg.IdentityInto(I.data, 0, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// flatten returns the column-major elements of m. The fast path returns the
// backing slice of this package's types, so callers must treat it as read-only.
// Other implementations are gathered through At.
func flatten(m Matrix) ([]float64, error) {
	if cm, ok := m.(colMajor); ok {
		return cm.colMajor(), nil
	}
	if err := ValidateShape(m.Rows(), m.Cols()); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v, err := m.At(r, c)
			if err != nil {
				return nil, err
			}
			out[c*rows+r] = v
		}
	}

	return out, nil
}

// ---------- Arithmetic ----------

// Add returns a + b as a new *Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return addSub(opAdd, a, b, array.AddInto[float64])
}

// Sub returns a - b as a new *Dense.
func Sub(a, b Matrix) (*Dense, error) {
	return addSub(opSub, a, b, array.SubInto[float64])
}

// addSub is the shared body of Add and Sub.
func addSub(tag string, a, b Matrix, kernel func(dst []float64, dstOff int, a, b []float64) ([]float64, error)) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if _, err = kernel(out.data, 0, da, db); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// Scale returns alpha·m as a new *Dense.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &Dense{r: m.Rows(), c: m.Cols(), data: array.MulConstant(data, alpha)}, nil
}

// Mul returns the product a·b as a new a.Rows()×b.Cols() *Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows), ErrBadShape.
// Complexity: O(m*k*n).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// out is fresh, so it never aliases da or db.
	if _, err = linalg.MatmulInto(out.data, 0, da, 0, db, 0, m, k, n); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Transpose returns mᵀ as a new *Dense.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if _, err = linalg.TransposeInto(out.data, 0, data, 0, m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return out, nil
}

// MatVec returns y = m·x where len(x) must equal m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// x is an n×1 matrix; the general kernel covers non-square m.
	y, err := linalg.Matmul(data, 0, x, 0, m.Rows(), m.Cols(), 1)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// AllClose reports whether a and b have the same shape and every element
// pair is within the configured epsilon (array.DefaultEpsilon by default).
// NaN never compares equal unless array.WithNaNEqual is passed.
func AllClose(a, b Matrix, opts ...array.Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return array.AlmostEqual(da, db, opts...), nil
}
