package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Zero3 is the canonical 3D zero vector.
var Zero3 = Vec3{}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// AddInPlace adds delta to v, mutating and returning v.
// Callers must not alias a vector they still need unmodified.
func (v *Vec3) AddInPlace(delta Vec3) *Vec3 {
	v.X += delta.X
	v.Y += delta.Y
	v.Z += delta.Z
	return v
}

// SubInPlace subtracts delta from v, mutating and returning v.
func (v *Vec3) SubInPlace(delta Vec3) *Vec3 {
	v.X -= delta.X
	v.Y -= delta.Y
	v.Z -= delta.Z
	return v
}

// ScaleInPlace multiplies every component by s, mutating and returning v.
func (v *Vec3) ScaleInPlace(s float32) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - other.Y*v.Z,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a new vector scaled by 1/Length.
// A zero-length vector yields NaN components; the division is deliberately
// unguarded and the caller owns the result.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Length())
}

// CoeffOn returns the coefficient of v's orthogonal projection along axis:
// dot(v,axis)/dot(axis,axis). Valid for non-unit axes; a zero axis divides
// by zero and the Inf/NaN propagates.
func (v Vec3) CoeffOn(axis Vec3) float32 {
	return v.Dot(axis) / axis.Dot(axis)
}

// DistanceAlong returns the signed length of v's projection along axis:
// dot(v,axis)/|axis|. Independent of the axis's own magnitude.
func (v Vec3) DistanceAlong(axis Vec3) float32 {
	return v.Dot(axis) / axis.Length()
}

// IsZero reports whether every component is exactly 0. No epsilon.
func (v Vec3) IsZero() bool {
	return v == Zero3
}

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// Components returns the components in x, y, z order.
func (v Vec3) Components() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Clone returns a copy of v.
func (v Vec3) Clone() Vector { return v }

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
