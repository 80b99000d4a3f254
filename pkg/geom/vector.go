// Package geom provides the fixed-size vector, basis and matrix types used by
// the projection pipeline. All values are plain float32 aggregates with value
// semantics; the only shared state in the package is the pair of read-only
// zero constants.
package geom

import "errors"

// ErrDimensionMismatch is returned when an operation receives vectors of
// different dimensionality.
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")

// Vector is the dimension-agnostic view of Vec2 and Vec3.
type Vector interface {
	// Dim returns the number of components, 2 or 3.
	Dim() int
	// Components returns the components in x, y[, z] order.
	Components() []float32
	// IsZero reports whether every component is exactly 0.
	IsZero() bool
	// Clone returns a copy with the same dimensionality.
	Clone() Vector
	String() string
}

// Dot computes the dot product of two vectors of equal dimensionality.
// Mixing a Vec2 with a Vec3 is a caller bug and is reported as
// ErrDimensionMismatch rather than silently dropping the z term.
func Dot(a, b Vector) (float32, error) {
	if a.Dim() != b.Dim() {
		return 0, ErrDimensionMismatch
	}
	ac, bc := a.Components(), b.Components()
	var sum float32
	for i := range ac {
		sum += ac[i] * bc[i]
	}
	return sum, nil
}
