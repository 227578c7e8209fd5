// SPDX-License-Identifier: MIT

// Package linalg implements fixed-size vector and matrix kernels over flat
// slices.
//
// Vectors are 2, 3 or 4 contiguous elements. Matrices are at most 4x4 and
// stored column-major: element (row r, column c) of an R×C matrix lives at
// off + c*R + r, so consecutive elements run down a column.
//
// Every kernel takes (slice, offset) pairs, so many vectors or matrices can
// share one backing buffer. Into variants write to a caller-supplied
// destination; a nil destination allocates.
//
// Matmul and MulVec never use a temporary buffer: dst must not overlap
// either input. Length and Normalize do not guard against zero vectors;
// normalising a zero vector yields NaN components.
//
// Per-shape entry points (Transpose3x2, Matmul4x4x4, ...) are generated by
// cmd/flatgen on top of the generic TransposeInto and MatmulInto.
package linalg

//go:generate go run ../cmd/flatgen shapes --package linalg --output shapes_gen.go
