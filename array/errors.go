// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
//
// All kernels return these sentinels (directly, wrapped with arrayErrorf, or
// behind *ShapeError) and tests match them via errors.Is / errors.As.
// No kernel panics on user-triggered error conditions.

package array

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape is returned when a slice, offset and count combination would
	// read or write outside the slice. Every *ShapeError unwraps to it.
	ErrShape = errors.New("array: shape error")

	// ErrInvalidArgument marks a malformed scalar parameter, e.g. a zero or
	// wrong-signed step in Range or a negative dimension in Reshape.
	ErrInvalidArgument = errors.New("array: invalid argument")

	// ErrMissingValue marks a constructor or setter that did not receive
	// every required component.
	ErrMissingValue = errors.New("array: missing value")
)

// ShapeError describes an out-of-range access detected by CheckSlice.
// It is always returned before any element is written.
type ShapeError struct {
	Op     string // exported function that failed, e.g. "Get3"
	Param  string // offending parameter name, e.g. "dst"
	Offset int    // requested start offset
	Count  int    // requested element count
	Len    int    // actual slice length
}

// Error renders "array: Op: param needs [off, off+count) but has len N".
func (e *ShapeError) Error() string {
	if e.Count > 0 && e.Offset > math.MaxInt-e.Count {
		return fmt.Sprintf("array: %s: %s needs %d elements from offset %d but has len %d",
			e.Op, e.Param, e.Count, e.Offset, e.Len)
	}
	return fmt.Sprintf("array: %s: %s needs [%d, %d) but has len %d",
		e.Op, e.Param, e.Offset, e.Offset+e.Count, e.Len)
}

// Unwrap lets errors.Is(err, ErrShape) match any *ShapeError.
func (e *ShapeError) Unwrap() error { return ErrShape }

// arrayErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// invalidf builds an ErrInvalidArgument with a formatted detail.
func invalidf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
