// Package lvlalg is a small numeric toolkit for vectors and matrices stored
// in flat float slices: the layout used by GPU buffers, mesh data and
// interleaved vertex streams.
//
// What is in the box?
//
//	array/    bounds-checked kernels over []T with offsets: accessors
//	          (Get3, Set16, Push2, Pop4), element-wise operators with slice,
//	          constant and cyclic-pattern operands, Range, Reshape, Lerp
//	linalg/   fixed-size kernels: Dot, Length, Normalize, Cross, Transpose,
//	          Matmul up to 4x4, homogeneous MulVec
//	vector/   Vector2, Vector3, Vector4 value types with swizzles
//	matrix/   Matrix2..Matrix4 value types, a column-major Dense and
//	          facades (Add, Mul, Transpose, MatVec, AllClose)
//	cmd/flatgen  generator for the fixed-arity and fixed-shape wrappers
//
// Conventions:
//
//   - Offsets are 0-based; every kernel reads or writes exactly
//     [off, off+count) of the slices it is given.
//   - Matrices are column-major: (row r, col c) of an R×C matrix is at
//     off + c*R + r.
//   - Into variants write to a caller-supplied destination; nil allocates,
//     a short destination is a *array.ShapeError and is never grown.
//   - IEEE-754 semantics throughout: Inf and NaN propagate, nothing traps.
//
// Quick example:
//
//	buf := []float64{1, 0, 0, 0, 1, 0}      // two packed 3-vectors
//	z, _ := linalg.Cross(buf, 0, buf, 3)    // [0 0 1]
//	v := vector.New3(1, 2, 3).ZYX()         // (3, 2, 1)
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
