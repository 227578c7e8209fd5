// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Generic drivers shared by every element-wise operator: one binary
//     driver per operand form (slice/slice, slice/constant, slice/pattern).
//   - The generated operators in elementwise_gen.go are thin bindings of a
//     scalar function to these drivers.
//
// Design:
//   - Every operand is validated before the first write, so a failing call
//     never leaves a partially written destination.
//   - Loops are flat 0..n-1 over pre-sliced windows.

package array

import "math"

// Map applies f to every element of src and returns a new slice.
func Map[T Float, R any](src []T, f func(T) R) []R {
	out := make([]R, len(src))
	for i, v := range src {
		out[i] = f(v)
	}

	return out
}

// MapInto applies f to src[srcOff:srcOff+n] and writes the results into dst
// at dstOff (allocating when dst is nil).
func MapInto[T Float, R any](dst []R, dstOff int, src []T, srcOff, n int, f func(T) R) ([]R, error) {
	if err := CheckSlice(opMap, "src", src, srcOff, n); err != nil {
		return nil, err
	}
	out, err := PrepareDst(opMap, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		out[dstOff+i] = f(src[srcOff+i])
	}

	return out, nil
}

// Zip combines a and b pairwise over len(a) elements. b must hold at least
// len(a) elements.
func Zip[T Float, R any](a, b []T, f func(T, T) R) ([]R, error) {
	return zipInto(opZip, nil, 0, a, 0, b, 0, len(a), f)
}

// ZipEx combines a[aOff:aOff+n] with b[bOff:bOff+n] into dst at dstOff.
func ZipEx[T Float, R any](a []T, aOff, n int, b []T, bOff int, dst []R, dstOff int, f func(T, T) R) ([]R, error) {
	return zipInto(opZip, dst, dstOff, a, aOff, b, bOff, n, f)
}

// zipInto is the slice/slice driver: dst[dstOff+i] = f(a[aOff+i], b[bOff+i]).
func zipInto[T Float, R any](op string, dst []R, dstOff int, a []T, aOff int, b []T, bOff int, n int, f func(T, T) R) ([]R, error) {
	if err := CheckSlice(op, "a", a, aOff, n); err != nil {
		return nil, err
	}
	if err := CheckSlice(op, "b", b, bOff, n); err != nil {
		return nil, err
	}
	out, err := PrepareDst(op, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	av, bv, ov := a[aOff:aOff+n], b[bOff:bOff+n], out[dstOff:dstOff+n]
	for i := range ov {
		ov[i] = f(av[i], bv[i])
	}

	return out, nil
}

// constantInto is the slice/scalar driver: dst[dstOff+i] = f(a[i], c).
func constantInto[T Float, R any](op string, dst []R, dstOff int, a []T, c T, f func(T, T) R) ([]R, error) {
	n := len(a)
	out, err := PrepareDst(op, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	ov := out[dstOff : dstOff+n]
	for i, v := range a {
		ov[i] = f(v, c)
	}

	return out, nil
}

// patternInto is the slice/pattern driver: dst[dstOff+i] = f(a[i], p[i%len(p)]).
// The pattern is broadcast cyclically in blocks of len(p); a trailing partial
// block uses the head of p. An empty pattern is ErrInvalidArgument.
func patternInto[T Float, R any](op string, dst []R, dstOff int, a, p []T, f func(T, T) R) ([]R, error) {
	if len(p) == 0 {
		return nil, invalidf(op, "empty broadcast pattern")
	}
	n := len(a)
	out, err := PrepareDst(op, dst, dstOff, n)
	if err != nil {
		return nil, err
	}
	ov := out[dstOff : dstOff+n]
	for base := 0; base < n; base += len(p) {
		block := min(len(p), n-base)
		for j := 0; j < block; j++ {
			ov[base+j] = f(a[base+j], p[j])
		}
	}

	return out, nil
}

// ---------- scalar kernels bound by the generated operators ----------

func addFn[T Float](a, b T) T { return a + b }
func subFn[T Float](a, b T) T { return a - b }
func mulFn[T Float](a, b T) T { return a * b }
func divFn[T Float](a, b T) T { return a / b }

// modFn is floored modulo: the result takes the sign of b.
// A zero divisor yields NaN.
func modFn[T Float](a, b T) T {
	fa, fb := float64(a), float64(b)

	return T(fa - math.Floor(fa/fb)*fb)
}

func powFn[T Float](a, b T) T { return T(math.Pow(float64(a), float64(b))) }
func minFn[T Float](a, b T) T { return min(a, b) }
func maxFn[T Float](a, b T) T { return max(a, b) }

func eqFn[T Float](a, b T) bool { return a == b }
func neFn[T Float](a, b T) bool { return a != b }
func ltFn[T Float](a, b T) bool { return a < b }
func leFn[T Float](a, b T) bool { return a <= b }
func gtFn[T Float](a, b T) bool { return a > b }
func geFn[T Float](a, b T) bool { return a >= b }

// nearWith resolves opts once and returns the scalar almost-equal kernel.
// With forceNaN set, NaN matches NaN regardless of opts.
func nearWith[T Float](forceNaN bool, opts []Option) func(a, b T) bool {
	o := gatherOptions(opts...)
	eps, nanEqual := o.eps, o.nanEqual || forceNaN

	return func(a, b T) bool {
		return near(float64(a), float64(b), eps, nanEqual)
	}
}
