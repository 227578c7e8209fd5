// Package matrix offers small matrix types on top of the linalg kernels.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) for code that
//     works on any shape.
//   - Dense, a column-major R×C matrix with 1 ≤ R, C ≤ 4.
//   - Matrix2, Matrix3 and Matrix4, fixed square value types with
//     transform helpers (MulVec, MulPoint, homogeneous coordinates).
//   - Facades (Add, Sub, Scale, Mul, Transpose, MatVec, AllClose) that accept
//     any Matrix and return a fresh *Dense.
//
// All storage is column-major: element (row r, column c) of an R×C matrix is
// stored at index c*R + r. Constructors that take individual elements name
// them mCR (column C, row R) and expect them in storage order.
//
// See the examples in this package for usage patterns.
package matrix
