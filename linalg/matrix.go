// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Generic column-major matrix kernels (Transpose, Matmul, Identity) for
//     dimensions 1..MaxDim. The generated per-shape wrappers in shapes_gen.go
//     bind the dimensions as constants.
//
// Layout:
//   - An R×C matrix at off stores (row r, col c) at off + c*R + r.
//
// Aliasing:
//   - MatmulInto and TransposeInto read their inputs while writing dst.
//     dst must not overlap a, b or src; no temporary buffer is used.

package linalg

import "github.com/katalvlaran/lvlalg/array"

// Transpose returns the cols×rows transpose of the column-major rows×cols
// matrix at src[srcOff:].
func Transpose[T array.Float](src []T, srcOff, rows, cols int) ([]T, error) {
	return TransposeInto(nil, 0, src, srcOff, rows, cols)
}

// TransposeInto writes the cols×rows transpose of src[srcOff:] into dst at
// dstOff: dst(c, r) = src(r, c).
//
// Errors:
//   - array.ErrInvalidArgument for a dimension outside 1..MaxDim.
//   - *array.ShapeError when src or dst is too short.
//
// Complexity: O(rows*cols).
func TransposeInto[T array.Float](dst []T, dstOff int, src []T, srcOff, rows, cols int) ([]T, error) {
	if err := checkDims(opTranspose, rows, cols); err != nil {
		return nil, err
	}
	n := rows * cols
	if err := array.CheckSlice(opTranspose, "src", src, srcOff, n); err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	out, err := array.PrepareDst(opTranspose, dst, dstOff, n)
	if err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			// src (r,c) at c*rows+r; dst is cols×rows so (c,r) lands at r*cols+c.
			out[dstOff+r*cols+c] = src[srcOff+c*rows+r]
		}
	}

	return out, nil
}

// Matmul returns the m×n product of the m×k matrix at a[aOff:] and the k×n
// matrix at b[bOff:].
func Matmul[T array.Float](a []T, aOff int, b []T, bOff int, m, k, n int) ([]T, error) {
	return MatmulInto(nil, 0, a, aOff, b, bOff, m, k, n)
}

// MatmulInto writes a·b into dst at dstOff:
// dst(i, j) = Σ_p a(i, p)·b(p, j) for i < m, j < n, p < k.
//
// Warning: dst must not overlap a or b. The product is accumulated directly
// into dst without a temporary.
//
// Errors:
//   - array.ErrInvalidArgument for a dimension outside 1..MaxDim.
//   - *array.ShapeError when a, b or dst is too short.
//
// Complexity: O(m*k*n).
func MatmulInto[T array.Float](dst []T, dstOff int, a []T, aOff int, b []T, bOff int, m, k, n int) ([]T, error) {
	if err := checkDims(opMatmul, m, k, n); err != nil {
		return nil, err
	}
	if err := array.CheckSlice(opMatmul, "a", a, aOff, m*k); err != nil {
		return nil, linalgErrorf(opMatmul, err)
	}
	if err := array.CheckSlice(opMatmul, "b", b, bOff, k*n); err != nil {
		return nil, linalgErrorf(opMatmul, err)
	}
	out, err := array.PrepareDst(opMatmul, dst, dstOff, m*n)
	if err != nil {
		return nil, linalgErrorf(opMatmul, err)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var s T
			for p := 0; p < k; p++ {
				s += a[aOff+p*m+i] * b[bOff+j*k+p]
			}
			out[dstOff+j*m+i] = s
		}
	}

	return out, nil
}

// Identity returns the n×n identity matrix.
func Identity[T array.Float](n int) ([]T, error) {
	return IdentityInto[T](nil, 0, n)
}

// IdentityInto writes the n×n identity into dst at dstOff, clearing the
// off-diagonal elements.
func IdentityInto[T array.Float](dst []T, dstOff, n int) ([]T, error) {
	if err := checkDims(opIdentity, n); err != nil {
		return nil, err
	}
	out, err := array.PrepareDst(opIdentity, dst, dstOff, n*n)
	if err != nil {
		return nil, linalgErrorf(opIdentity, err)
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			v := T(0)
			if r == c {
				v = 1
			}
			out[dstOff+c*n+r] = v
		}
	}

	return out, nil
}
