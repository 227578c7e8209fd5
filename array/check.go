// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Single source of truth for slice/offset/count validation.
//   - Kernels call CheckSlice for every operand before touching memory, so a
//     failing call never leaves a partially written destination behind.
//
// Notes:
//   - With the lvlalg_nocheck build tag, ParamChecks is false and CheckSlice
//     is a no-op. Out-of-range access then panics in the Go runtime instead.

package array

import "math"

// CheckSlice confirms that s supports indices [off, off+count).
//
// Inputs:
//   - op, param: labels copied into the *ShapeError on failure.
//   - s: slice under test (nil is a valid, empty slice).
//   - off, count: requested window; both must be non-negative.
//
// Returns:
//   - nil, or a *ShapeError (errors.Is(err, ErrShape) holds).
//
// Complexity: O(1), no allocation on success.
func CheckSlice[T any](op, param string, s []T, off, count int) error {
	if !ParamChecks {
		return nil
	}
	if off < 0 || count < 0 || count > len(s) || off > len(s)-count {
		return &ShapeError{Op: op, Param: param, Offset: off, Count: count, Len: len(s)}
	}

	return nil
}

// PrepareDst returns dst if it already holds [off, off+count), or a freshly
// allocated slice of off+count elements when dst is nil.
// A non-nil dst that is too short is a *ShapeError; destinations never grow.
// Kernels in sibling packages use it to share the Into contract.
func PrepareDst[T any](op string, dst []T, off, count int) ([]T, error) {
	if dst == nil {
		if off < 0 || count < 0 || off > math.MaxInt-count {
			return nil, &ShapeError{Op: op, Param: "dst", Offset: off, Count: count}
		}
		return make([]T, off+count), nil
	}
	if err := CheckSlice(op, "dst", dst, off, count); err != nil {
		return nil, err
	}

	return dst, nil
}
