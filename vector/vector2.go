// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

// Vector2 is a 2-component vector.
type Vector2 [2]float64

// New2 builds a Vector2 from all 2 components.
func New2(x, y float64) Vector2 { return Vector2{x, y} }

// FromValues2 builds a Vector2 from exactly 2 values.
// Fewer values is array.ErrMissingValue; more is array.ErrInvalidArgument.
func FromValues2(vals ...float64) (Vector2, error) {
	if err := checkValues("FromValues2", vals, 2); err != nil {
		return Vector2{}, err
	}

	return Vector2(vals), nil
}

// Load2 reads a Vector2 from src[off:off+2].
func Load2(src []float64, off int) (Vector2, error) {
	x, y, err := array.Get2(src, off)
	if err != nil {
		return Vector2{}, err
	}

	return Vector2{x, y}, nil
}

// Store writes v into dst at off and returns dst; a nil dst allocates.
func (v Vector2) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, v[:])
}

// Get returns the components of v.
func (v Vector2) Get() (float64, float64) { return v[0], v[1] }

// Set overwrites every component of v.
func (v *Vector2) Set(x, y float64) { *v = Vector2{x, y} }

// X returns component 0.
func (v Vector2) X() float64 { return v[0] }

// Y returns component 1.
func (v Vector2) Y() float64 { return v[1] }

// Add returns v + w.
func (v Vector2) Add(w Vector2) (u Vector2) {
	must(array.AddInto(u[:], 0, v[:], w[:]))
	return u
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) (u Vector2) {
	must(array.SubInto(u[:], 0, v[:], w[:]))
	return u
}

// Mul returns the component-wise product of v and w.
func (v Vector2) Mul(w Vector2) (u Vector2) {
	must(array.MulInto(u[:], 0, v[:], w[:]))
	return u
}

// Div returns the component-wise quotient v / w. Zero components of w
// produce ±Inf or NaN.
func (v Vector2) Div(w Vector2) (u Vector2) {
	must(array.DivInto(u[:], 0, v[:], w[:]))
	return u
}

// Scale returns s·v.
func (v Vector2) Scale(s float64) (u Vector2) {
	must(array.MulConstantInto(u[:], 0, v[:], s))
	return u
}

// Neg returns -v.
func (v Vector2) Neg() (u Vector2) {
	must(array.NegateInto(u[:], 0, v[:], 0, 2))
	return u
}

// Lerp returns v*(1-t) + w*t.
func (v Vector2) Lerp(w Vector2, t float64) (u Vector2) {
	must(array.LerpInto(u[:], 0, v[:], w[:], t))
	return u
}

// Dot returns v·w.
func (v Vector2) Dot(w Vector2) float64 { return must(linalg.Dot2(v[:], 0, w[:], 0)) }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 { return must(linalg.Length2(v[:], 0)) }

// Normalize returns v scaled to unit length. A zero vector yields NaN lanes.
func (v Vector2) Normalize() (u Vector2) {
	must(linalg.Normalize2Into(u[:], 0, v[:], 0))
	return u
}

// AlmostEqual reports whether every component of v is within the
// configured epsilon of w (array.DefaultEpsilon unless overridden).
func (v Vector2) AlmostEqual(w Vector2, opts ...array.Option) bool {
	return array.AlmostEqual(v[:], w[:], opts...)
}

// String renders v as "(%g, %g)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v[0], v[1])
}
