package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Zero2 is the canonical 2D zero vector.
var Zero2 = Vec2{}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// AddInPlace adds delta to v, mutating and returning v.
// Callers must not alias a vector they still need unmodified.
func (v *Vec2) AddInPlace(delta Vec2) *Vec2 {
	v.X += delta.X
	v.Y += delta.Y
	return v
}

// SubInPlace subtracts delta from v, mutating and returning v.
func (v *Vec2) SubInPlace(delta Vec2) *Vec2 {
	v.X -= delta.X
	v.Y -= delta.Y
	return v
}

// ScaleInPlace multiplies every component by s, mutating and returning v.
func (v *Vec2) ScaleInPlace(s float32) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a new vector scaled by 1/Length.
// A zero-length vector yields NaN components; the division is deliberately
// unguarded and the caller owns the result.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / v.Length())
}

// CoeffOn returns the coefficient of v's orthogonal projection along axis:
// dot(v,axis)/dot(axis,axis).
func (v Vec2) CoeffOn(axis Vec2) float32 {
	return v.Dot(axis) / axis.Dot(axis)
}

// DistanceAlong returns the signed length of v's projection along axis.
func (v Vec2) DistanceAlong(axis Vec2) float32 {
	return v.Dot(axis) / axis.Length()
}

// IsZero reports whether every component is exactly 0. No epsilon.
func (v Vec2) IsZero() bool {
	return v == Zero2
}

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// Components returns the components in x, y order.
func (v Vec2) Components() []float32 {
	return []float32{v.X, v.Y}
}

// Clone returns a copy of v.
func (v Vec2) Clone() Vector { return v }

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
