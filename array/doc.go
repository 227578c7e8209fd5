// SPDX-License-Identifier: MIT

// Package array provides numeric kernels over flat slices.
//
// A flat sequence is a plain []T that backs one or more logical vectors or
// matrices. Kernels never capture the slices they are given: callers pass a
// base offset and a count to address a sub-range of a larger buffer, and the
// kernel reads or writes exactly that range.
//
// Most operations come in several flavours:
//
//	Add(a, b)                           // whole-slice, allocates the result
//	AddInto(dst, dstOff, a, b)          // writes into dst at dstOff
//	AddEx(a, aOff, n, b, bOff, dst, o)  // explicit sub-ranges of every operand
//	AddConstant(a, c)                   // a[i] + c
//	AddPattern(a, p)                    // a[i] + p[i%len(p)] (cyclic broadcast)
//
// Every "Into"/"Ex" variant accepts a nil destination, in which case a new
// slice sized to fit is allocated. A non-nil destination that is too short is
// rejected with a *ShapeError before anything is written.
//
// Offsets are 0-based. Shape checks can be compiled out with the
// lvlalg_nocheck build tag; ParamChecks reports which mode is active.
//
// Fixed-arity accessors (Get1..Get16, Set1..Set16, Push1..Push16,
// Pop1..Pop16) and the named element-wise operators are generated by
// cmd/flatgen; do not edit the *_gen.go files by hand.
//
// Numeric policy: division by zero and sqrt of negatives are not trapped,
// IEEE-754 Inf/NaN propagate. Only NearNaN and the Near/AlmostEqual
// families called with WithNaNEqual() treat NaN as equal to NaN.
package array

//go:generate go run ../cmd/flatgen accessors --package array --output accessors_gen.go
//go:generate go run ../cmd/flatgen elementwise --package array --output elementwise_gen.go
