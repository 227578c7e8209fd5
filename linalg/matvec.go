// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvlalg/array"

// mulVecInto computes the first vecLen rows of M·x, where M is dim×dim at
// m[mOff:] and x is the vecLen-vector at v[vOff:] extended to dim lanes
// with 1s (homogeneous coordinates). With vecLen == dim this is the plain
// matrix-vector product.
//
// The vector is copied to the stack before writing, so dst may alias v;
// dst must not overlap m.
func mulVecInto[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff, dim, vecLen int) ([]T, error) {
	if err := array.CheckSlice(opMulVec, "m", m, mOff, dim*dim); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	if err := array.CheckSlice(opMulVec, "v", v, vOff, vecLen); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	out, err := array.PrepareDst(opMulVec, dst, dstOff, vecLen)
	if err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	var x [MaxDim]T
	for j := 0; j < dim; j++ {
		if j < vecLen {
			x[j] = v[vOff+j]
		} else {
			x[j] = 1
		}
	}
	for i := 0; i < vecLen; i++ {
		var s T
		for j := 0; j < dim; j++ {
			s += m[mOff+j*dim+i] * x[j]
		}
		out[dstOff+i] = s
	}

	return out, nil
}

// MulVec2 returns M·v for the 2x2 matrix at m[mOff:] and the 2-vector at v[vOff:].
func MulVec2[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 2, 2)
}

// MulVec2Into writes the 2x2 product M·v into dst at dstOff.
func MulVec2Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 2, 2)
}

// MulVec3 returns M·v for the 3x3 matrix at m[mOff:] and the 3-vector at v[vOff:].
func MulVec3[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 3, 3)
}

// MulVec3Into writes the 3x3 product M·v into dst at dstOff.
func MulVec3Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 3, 3)
}

// MulVec4 returns M·v for the 4x4 matrix at m[mOff:] and the 4-vector at v[vOff:].
func MulVec4[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 4, 4)
}

// MulVec4Into writes the 4x4 product M·v into dst at dstOff.
func MulVec4Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 4, 4)
}

// MulVec3x2 transforms the 2-d point at v[vOff:] by the 3x3 matrix at m[mOff:]
// treating it as (x, y, 1), so the third column acts as a translation.
// The result holds the first two rows; no perspective divide is applied.
func MulVec3x2[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 3, 2)
}

// MulVec3x2Into is MulVec3x2 writing into dst at dstOff.
func MulVec3x2Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 3, 2)
}

// MulVec4x3 transforms the 3-d point at v[vOff:] by the 4x4 matrix at m[mOff:]
// as (x, y, z, 1) and returns the first three rows.
func MulVec4x3[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 4, 3)
}

// MulVec4x3Into is MulVec4x3 writing into dst at dstOff.
func MulVec4x3Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 4, 3)
}

// MulVec4x2 transforms the 2-d point at v[vOff:] by the 4x4 matrix at m[mOff:]
// as (x, y, 1, 1): every missing component defaults to 1. It returns the
// first two rows.
func MulVec4x2[T array.Float](m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(nil, 0, m, mOff, v, vOff, 4, 2)
}

// MulVec4x2Into is MulVec4x2 writing into dst at dstOff.
func MulVec4x2Into[T array.Float](dst []T, dstOff int, m []T, mOff int, v []T, vOff int) ([]T, error) {
	return mulVecInto(dst, dstOff, m, mOff, v, vOff, 4, 2)
}
