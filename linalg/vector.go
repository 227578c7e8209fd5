// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Vector kernels for 2/3/4-d vectors stored in flat slices:
//     Length, Normalize, Dot, Cross.
//
// Numeric policy:
//   - No zero-length guard: Normalize of a zero vector divides by zero and
//     returns NaN components. Callers that need a guard check Length first.

package linalg

import (
	"math"

	"github.com/katalvlaran/lvlalg/array"
)

// dot is the shared n-lane dot product; operands are validated here.
func dot[T array.Float](tag string, a []T, aOff int, b []T, bOff, n int) (T, error) {
	if err := array.CheckSlice(tag, "a", a, aOff, n); err != nil {
		return 0, linalgErrorf(tag, err)
	}
	if err := array.CheckSlice(tag, "b", b, bOff, n); err != nil {
		return 0, linalgErrorf(tag, err)
	}
	var s T
	for i := 0; i < n; i++ {
		s += a[aOff+i] * b[bOff+i]
	}

	return s, nil
}

// length returns sqrt(v·v) over n lanes.
func length[T array.Float](tag string, v []T, off, n int) (T, error) {
	sq, err := dot(tag, v, off, v, off, n)
	if err != nil {
		return 0, err
	}

	return T(math.Sqrt(float64(sq))), nil
}

// normalizeInto writes v / |v| into dst at dstOff.
func normalizeInto[T array.Float](tag string, dst []T, dstOff int, v []T, off, n int) ([]T, error) {
	l, err := length(tag, v, off, n)
	if err != nil {
		return nil, err
	}
	out, err := array.PrepareDst(tag, dst, dstOff, n)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}
	for i := 0; i < n; i++ {
		out[dstOff+i] = v[off+i] / l
	}

	return out, nil
}

// Dot2 returns a·b for the 2-vectors at a[aOff:] and b[bOff:].
func Dot2[T array.Float](a []T, aOff int, b []T, bOff int) (T, error) {
	return dot(opDot, a, aOff, b, bOff, 2)
}

// Dot3 returns a·b for the 3-vectors at a[aOff:] and b[bOff:].
func Dot3[T array.Float](a []T, aOff int, b []T, bOff int) (T, error) {
	return dot(opDot, a, aOff, b, bOff, 3)
}

// Dot4 returns a·b for the 4-vectors at a[aOff:] and b[bOff:].
func Dot4[T array.Float](a []T, aOff int, b []T, bOff int) (T, error) {
	return dot(opDot, a, aOff, b, bOff, 4)
}

// Length2 returns the Euclidean length of the 2-vector at v[off:].
func Length2[T array.Float](v []T, off int) (T, error) { return length(opLength, v, off, 2) }

// Length3 returns the Euclidean length of the 3-vector at v[off:].
func Length3[T array.Float](v []T, off int) (T, error) { return length(opLength, v, off, 3) }

// Length4 returns the Euclidean length of the 4-vector at v[off:].
func Length4[T array.Float](v []T, off int) (T, error) { return length(opLength, v, off, 4) }

// Normalize2 returns the 2-vector at v[off:] scaled to unit length.
func Normalize2[T array.Float](v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, nil, 0, v, off, 2)
}

// Normalize2Into writes the unit 2-vector of v[off:] into dst at dstOff.
// dst may alias v in place.
func Normalize2Into[T array.Float](dst []T, dstOff int, v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, dst, dstOff, v, off, 2)
}

// Normalize3 returns the 3-vector at v[off:] scaled to unit length.
func Normalize3[T array.Float](v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, nil, 0, v, off, 3)
}

// Normalize3Into writes the unit 3-vector of v[off:] into dst at dstOff.
func Normalize3Into[T array.Float](dst []T, dstOff int, v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, dst, dstOff, v, off, 3)
}

// Normalize4 returns the 4-vector at v[off:] scaled to unit length.
func Normalize4[T array.Float](v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, nil, 0, v, off, 4)
}

// Normalize4Into writes the unit 4-vector of v[off:] into dst at dstOff.
func Normalize4Into[T array.Float](dst []T, dstOff int, v []T, off int) ([]T, error) {
	return normalizeInto(opNormalize, dst, dstOff, v, off, 4)
}

// Cross returns a × b for the 3-vectors at a[aOff:] and b[bOff:]:
// (a1*b2 - a2*b1, a2*b0 - a0*b2, a0*b1 - a1*b0).
func Cross[T array.Float](a []T, aOff int, b []T, bOff int) ([]T, error) {
	return CrossInto(nil, 0, a, aOff, b, bOff)
}

// CrossInto writes a × b into dst at dstOff. All inputs are read before the
// first write, so dst may alias a or b.
func CrossInto[T array.Float](dst []T, dstOff int, a []T, aOff int, b []T, bOff int) ([]T, error) {
	a0, a1, a2, err := array.Get3(a, aOff)
	if err != nil {
		return nil, linalgErrorf(opCross, err)
	}
	b0, b1, b2, err := array.Get3(b, bOff)
	if err != nil {
		return nil, linalgErrorf(opCross, err)
	}
	out, err := array.PrepareDst(opCross, dst, dstOff, 3)
	if err != nil {
		return nil, linalgErrorf(opCross, err)
	}
	out[dstOff] = a1*b2 - a2*b1
	out[dstOff+1] = a2*b0 - a0*b2
	out[dstOff+2] = a0*b1 - a1*b0

	return out, nil
}
