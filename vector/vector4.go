// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

// Vector4 is a 4-component vector.
type Vector4 [4]float64

// New4 builds a Vector4 from all 4 components.
func New4(x, y, z, w float64) Vector4 { return Vector4{x, y, z, w} }

// FromValues4 builds a Vector4 from exactly 4 values.
// Fewer values is array.ErrMissingValue; more is array.ErrInvalidArgument.
func FromValues4(vals ...float64) (Vector4, error) {
	if err := checkValues("FromValues4", vals, 4); err != nil {
		return Vector4{}, err
	}

	return Vector4(vals), nil
}

// Load4 reads a Vector4 from src[off:off+4].
func Load4(src []float64, off int) (Vector4, error) {
	x, y, z, w, err := array.Get4(src, off)
	if err != nil {
		return Vector4{}, err
	}

	return Vector4{x, y, z, w}, nil
}

// Store writes v into dst at off and returns dst; a nil dst allocates.
func (v Vector4) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, v[:])
}

// Get returns the components of v.
func (v Vector4) Get() (float64, float64, float64, float64) { return v[0], v[1], v[2], v[3] }

// Set overwrites every component of v.
func (v *Vector4) Set(x, y, z, w float64) { *v = Vector4{x, y, z, w} }

// X returns component 0.
func (v Vector4) X() float64 { return v[0] }

// Y returns component 1.
func (v Vector4) Y() float64 { return v[1] }

// Z returns component 2.
func (v Vector4) Z() float64 { return v[2] }

// W returns component 3.
func (v Vector4) W() float64 { return v[3] }

// Add returns v + w.
func (v Vector4) Add(w Vector4) (u Vector4) {
	must(array.AddInto(u[:], 0, v[:], w[:]))
	return u
}

// Sub returns v - w.
func (v Vector4) Sub(w Vector4) (u Vector4) {
	must(array.SubInto(u[:], 0, v[:], w[:]))
	return u
}

// Mul returns the component-wise product of v and w.
func (v Vector4) Mul(w Vector4) (u Vector4) {
	must(array.MulInto(u[:], 0, v[:], w[:]))
	return u
}

// Div returns the component-wise quotient v / w. Zero components of w
// produce ±Inf or NaN.
func (v Vector4) Div(w Vector4) (u Vector4) {
	must(array.DivInto(u[:], 0, v[:], w[:]))
	return u
}

// Scale returns s·v.
func (v Vector4) Scale(s float64) (u Vector4) {
	must(array.MulConstantInto(u[:], 0, v[:], s))
	return u
}

// Neg returns -v.
func (v Vector4) Neg() (u Vector4) {
	must(array.NegateInto(u[:], 0, v[:], 0, 4))
	return u
}

// Lerp returns v*(1-t) + w*t.
func (v Vector4) Lerp(w Vector4, t float64) (u Vector4) {
	must(array.LerpInto(u[:], 0, v[:], w[:], t))
	return u
}

// Dot returns v·w.
func (v Vector4) Dot(w Vector4) float64 { return must(linalg.Dot4(v[:], 0, w[:], 0)) }

// Length returns the Euclidean length of v.
func (v Vector4) Length() float64 { return must(linalg.Length4(v[:], 0)) }

// Normalize returns v scaled to unit length. A zero vector yields NaN lanes.
func (v Vector4) Normalize() (u Vector4) {
	must(linalg.Normalize4Into(u[:], 0, v[:], 0))
	return u
}

// AlmostEqual reports whether every component of v is within the
// configured epsilon of w (array.DefaultEpsilon unless overridden).
func (v Vector4) AlmostEqual(w Vector4, opts ...array.Option) bool {
	return array.AlmostEqual(v[:], w[:], opts...)
}

// String renders v as "(%g, %g, %g, %g)".
func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
