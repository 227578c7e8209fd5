// SPDX-License-Identifier: MIT

// Package vector provides small value types over 2, 3 and 4 float64 lanes.
//
// Vector2, Vector3 and Vector4 are plain arrays: they copy on assignment and
// compare with ==. Every arithmetic method forwards to the flat-slice kernels
// in packages array and linalg on v[:], so the wrappers add no numeric logic
// of their own. Load/Store move a vector in and out of a shared flat buffer.
//
// Swizzles (v.XY(), v.ZYX(), ...) are generated by cmd/flatgen.
package vector

//go:generate go run ../cmd/flatgen swizzles --package vector --output swizzle_gen.go
