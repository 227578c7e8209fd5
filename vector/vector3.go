// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

// Vector3 is a 3-component vector.
type Vector3 [3]float64

// New3 builds a Vector3 from all 3 components.
func New3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

// FromValues3 builds a Vector3 from exactly 3 values.
// Fewer values is array.ErrMissingValue; more is array.ErrInvalidArgument.
func FromValues3(vals ...float64) (Vector3, error) {
	if err := checkValues("FromValues3", vals, 3); err != nil {
		return Vector3{}, err
	}

	return Vector3(vals), nil
}

// Load3 reads a Vector3 from src[off:off+3].
func Load3(src []float64, off int) (Vector3, error) {
	x, y, z, err := array.Get3(src, off)
	if err != nil {
		return Vector3{}, err
	}

	return Vector3{x, y, z}, nil
}

// Store writes v into dst at off and returns dst; a nil dst allocates.
func (v Vector3) Store(dst []float64, off int) ([]float64, error) {
	return array.CopyInto(dst, off, v[:])
}

// Get returns the components of v.
func (v Vector3) Get() (float64, float64, float64) { return v[0], v[1], v[2] }

// Set overwrites every component of v.
func (v *Vector3) Set(x, y, z float64) { *v = Vector3{x, y, z} }

// X returns component 0.
func (v Vector3) X() float64 { return v[0] }

// Y returns component 1.
func (v Vector3) Y() float64 { return v[1] }

// Z returns component 2.
func (v Vector3) Z() float64 { return v[2] }

// Add returns v + w.
func (v Vector3) Add(w Vector3) (u Vector3) {
	must(array.AddInto(u[:], 0, v[:], w[:]))
	return u
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) (u Vector3) {
	must(array.SubInto(u[:], 0, v[:], w[:]))
	return u
}

// Mul returns the component-wise product of v and w.
func (v Vector3) Mul(w Vector3) (u Vector3) {
	must(array.MulInto(u[:], 0, v[:], w[:]))
	return u
}

// Div returns the component-wise quotient v / w. Zero components of w
// produce ±Inf or NaN.
func (v Vector3) Div(w Vector3) (u Vector3) {
	must(array.DivInto(u[:], 0, v[:], w[:]))
	return u
}

// Scale returns s·v.
func (v Vector3) Scale(s float64) (u Vector3) {
	must(array.MulConstantInto(u[:], 0, v[:], s))
	return u
}

// Neg returns -v.
func (v Vector3) Neg() (u Vector3) {
	must(array.NegateInto(u[:], 0, v[:], 0, 3))
	return u
}

// Lerp returns v*(1-t) + w*t.
func (v Vector3) Lerp(w Vector3, t float64) (u Vector3) {
	must(array.LerpInto(u[:], 0, v[:], w[:], t))
	return u
}

// Dot returns v·w.
func (v Vector3) Dot(w Vector3) float64 { return must(linalg.Dot3(v[:], 0, w[:], 0)) }

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 { return must(linalg.Length3(v[:], 0)) }

// Normalize returns v scaled to unit length. A zero vector yields NaN lanes.
func (v Vector3) Normalize() (u Vector3) {
	must(linalg.Normalize3Into(u[:], 0, v[:], 0))
	return u
}

// Cross returns v × w.
func (v Vector3) Cross(w Vector3) (u Vector3) {
	must(linalg.CrossInto(u[:], 0, v[:], 0, w[:], 0))
	return u
}

// AlmostEqual reports whether every component of v is within the
// configured epsilon of w (array.DefaultEpsilon unless overridden).
func (v Vector3) AlmostEqual(w Vector3, opts ...array.Option) bool {
	return array.AlmostEqual(v[:], w[:], opts...)
}

// String renders v as "(%g, %g, %g)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
