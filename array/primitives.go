// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Construction and structural transforms over flat sequences:
//     New, Fill, Range, Copy, Reverse, Equal, AlmostEqual.
//   - Every writer has an Into variant with a destination offset.
//
// Determinism & Performance:
//   - Single forward pass per call; Into variants allocate only when dst is nil.

package array

import "math"

// New returns a zero-initialised slice of length n.
// A negative n is ErrInvalidArgument.
func New[T Float](n int) ([]T, error) {
	if n < 0 {
		return nil, invalidf(opNew, "length %d < 0", n)
	}

	return make([]T, n), nil
}

// Fill returns a new slice of n copies of c.
func Fill[T Float](c T, n int) ([]T, error) {
	return FillInto(nil, 0, c, n)
}

// FillInto writes c into dst[off:off+n] and returns dst.
// With dst == nil a slice of off+n elements is allocated.
func FillInto[T Float](dst []T, off int, c T, n int) ([]T, error) {
	if n < 0 {
		return nil, invalidf(opFill, "count %d < 0", n)
	}
	out, err := PrepareDst(opFill, dst, off, n)
	if err != nil {
		return nil, err
	}
	window := out[off : off+n]
	for i := range window {
		window[i] = c
	}

	return out, nil
}

// Range returns the inclusive progression from..to with a unit step whose
// sign follows the direction: Range(1, 4) = [1 2 3 4], Range(3, 1) = [3 2 1].
func Range[T Float](from, to T) ([]T, error) {
	step := T(1)
	if from > to {
		step = -1
	}

	return RangeInto(nil, 0, from, to, step)
}

// RangeStep returns from, from+step, ... up to and including to when it is
// hit exactly.
//
// Errors:
//   - ErrInvalidArgument when step is zero, NaN, or points away from to
//     (step < 0 with from < to, or step > 0 with from > to).
//   - ErrInvalidArgument when the progression would exceed math.MaxInt32
//     elements, e.g. RangeStep(0, 1, 1e-300).
func RangeStep[T Float](from, to, step T) ([]T, error) {
	return RangeInto(nil, 0, from, to, step)
}

// RangeInto writes the progression described by RangeStep into dst at off.
// Values are computed as from + i*step, so no error accumulates across the run.
func RangeInto[T Float](dst []T, off int, from, to, step T) ([]T, error) {
	n, err := rangeCount(from, to, step)
	if err != nil {
		return nil, err
	}
	out, err := PrepareDst(opRange, dst, off, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		out[off+i] = from + T(i)*step
	}

	return out, nil
}

// maxRangeLen caps the element count of a single progression.
const maxRangeLen = math.MaxInt32

// rangeCount validates the progression and returns its element count.
func rangeCount[T Float](from, to, step T) (int, error) {
	f, t, s := float64(from), float64(to), float64(step)
	if math.IsNaN(f) || math.IsNaN(t) || math.IsInf(f, 0) || math.IsInf(t, 0) {
		return 0, invalidf(opRange, "bounds must be finite, got [%v, %v]", from, to)
	}
	if s == 0 || math.IsNaN(s) {
		return 0, invalidf(opRange, "step must be non-zero, got %v", step)
	}
	if (f < t && s < 0) || (f > t && s > 0) {
		return 0, invalidf(opRange, "step %v moves away from %v towards %v", step, from, to)
	}

	q := math.Floor((t - f) / s)
	if math.IsInf(q, 0) || q >= maxRangeLen {
		return 0, invalidf(opRange, "step %v over [%v, %v] exceeds %d elements", step, from, to, maxRangeLen)
	}

	return int(q) + 1, nil
}

// Copy returns a fresh copy of src.
func Copy[T Float](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)

	return out
}

// CopyInto copies the whole of src into dst at off and returns dst.
func CopyInto[T Float](dst []T, off int, src []T) ([]T, error) {
	return CopyEx(src, 0, len(src), dst, off)
}

// CopyEx copies src[srcOff:srcOff+n] into dst[dstOff:dstOff+n].
// Overlapping windows of the same backing array are handled like the
// built-in copy (memmove semantics).
func CopyEx[T Float](src []T, srcOff, n int, dst []T, dstOff int) ([]T, error) {
	if err := CheckSlice(opCopy, "src", src, srcOff, n); err != nil {
		return nil, err
	}
	out, err := PrepareDst(opCopy, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	copy(out[dstOff:dstOff+n], src[srcOff:srcOff+n])

	return out, nil
}

// Reverse returns a new slice holding src in reverse order.
func Reverse[T Float](src []T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}

	return out
}

// ReverseInto writes src reversed into dst at off.
// dst may alias src exactly (same first element): the swap then runs in
// place. A window that partially overlaps src is reversed from a snapshot
// of src. Overlap is detected through the shared tail of the backing array,
// so windows cut with a full slice expression (s[i:j:k]) on the same
// array are treated as disjoint.
func ReverseInto[T Float](dst []T, off int, src []T) ([]T, error) {
	n := len(src)
	out, err := PrepareDst(opReverse, dst, off, n)
	if err != nil {
		return nil, err
	}
	window := out[off : off+n]
	if n > 0 && &window[0] == &src[0] {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			window[i], window[j] = window[j], window[i]
		}
		return out, nil
	}
	if overlaps(window, src) {
		src = Copy(src)
	}
	for i, v := range src {
		window[n-1-i] = v
	}

	return out, nil
}

// overlaps reports whether a and b share elements of one backing array.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	ca, cb := cap(a), cap(b)
	if &a[:ca][ca-1] != &b[:cb][cb-1] {
		return false
	}

	// ca and cb count from each start to the common array end
	return cb-ca < len(b) && ca-cb < len(a)
}

// Sum returns the sum of src[off:off+n].
func Sum[T Float](src []T, off, n int) (T, error) {
	if err := CheckSlice(opSum, "src", src, off, n); err != nil {
		return 0, err
	}
	var s T
	for _, v := range src[off : off+n] {
		s += v
	}

	return s, nil
}

// Equal reports whether a and b have the same length and identical
// elements under ==. NaN is never equal here; use AlmostEqual with
// WithNaNEqual for snapshot-style checks.
func Equal[T Float](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// AlmostEqual reports whether a and b have the same length and every pair
// differs by at most the configured epsilon (DefaultEpsilon unless
// WithEpsilon is given). WithNaNEqual makes NaN match NaN.
func AlmostEqual[T Float](a, b []T, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !near(float64(a[i]), float64(b[i]), o.eps, o.nanEqual) {
			return false
		}
	}

	return true
}
