// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Fused three-operand kernels (MulAdd, Lerp) and unary Negate.
//   - Same validation contract as the binary drivers: all operands checked
//     up front, nil dst allocates.

package array

// MulAdd returns a[i] + b[i]*c[i] over len(a) elements.
func MulAdd[T Float](a, b, c []T) ([]T, error) {
	return MulAddEx(a, 0, len(a), b, 0, c, 0, nil, 0)
}

// MulAddInto writes a[i] + b[i]*c[i] into dst at dstOff.
func MulAddInto[T Float](dst []T, dstOff int, a, b, c []T) ([]T, error) {
	return MulAddEx(a, 0, len(a), b, 0, c, 0, dst, dstOff)
}

// MulAddConstant returns a[i] + b[i]*c for a scalar c.
func MulAddConstant[T Float](a, b []T, c T) ([]T, error) {
	n := len(a)
	if err := CheckSlice(opMulAdd, "b", b, 0, n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		out[i] = a[i] + b[i]*c
	}

	return out, nil
}

// MulAddEx computes dst[dstOff+i] = a[aOff+i] + b[bOff+i]*c[cOff+i] for i < n.
// dst may alias a exactly (accumulate in place).
func MulAddEx[T Float](a []T, aOff, n int, b []T, bOff int, c []T, cOff int, dst []T, dstOff int) ([]T, error) {
	if err := CheckSlice(opMulAdd, "a", a, aOff, n); err != nil {
		return nil, err
	}
	if err := CheckSlice(opMulAdd, "b", b, bOff, n); err != nil {
		return nil, err
	}
	if err := CheckSlice(opMulAdd, "c", c, cOff, n); err != nil {
		return nil, err
	}
	out, err := PrepareDst(opMulAdd, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		out[dstOff+i] = a[aOff+i] + b[bOff+i]*c[cOff+i]
	}

	return out, nil
}

// Lerp returns a[i]*(1-t) + b[i]*t over len(a) elements.
// t is not clamped; values outside [0, 1] extrapolate.
func Lerp[T Float](a, b []T, t T) ([]T, error) {
	return LerpEx(a, 0, len(a), b, 0, t, nil, 0)
}

// LerpInto writes the interpolation of a and b at t into dst at dstOff.
func LerpInto[T Float](dst []T, dstOff int, a, b []T, t T) ([]T, error) {
	return LerpEx(a, 0, len(a), b, 0, t, dst, dstOff)
}

// LerpEx interpolates a[aOff:aOff+n] towards b[bOff:bOff+n] by t.
func LerpEx[T Float](a []T, aOff, n int, b []T, bOff int, t T, dst []T, dstOff int) ([]T, error) {
	s := 1 - t
	out, err := zipInto(opLerp, dst, dstOff, a, aOff, b, bOff, n, func(x, y T) T {
		return x*s + y*t
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Negate returns -src[i].
func Negate[T Float](src []T) []T {
	return Map(src, func(v T) T { return -v })
}

// NegateInto writes -src[srcOff+i] into dst at dstOff for i < n.
func NegateInto[T Float](dst []T, dstOff int, src []T, srcOff, n int) ([]T, error) {
	out, err := MapInto(dst, dstOff, src, srcOff, n, func(v T) T { return -v })
	if err != nil {
		return nil, arrayErrorf(opNegate, err)
	}

	return out, nil
}
