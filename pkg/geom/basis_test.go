package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

// obliqueBasis returns an orthonormal but axis-skewed basis, the same one the
// viewer starts with.
func obliqueBasis() Basis3 {
	s2 := math32.Sqrt(2)
	s3 := math32.Sqrt(3)
	s6 := math32.Sqrt(6)
	return Basis3{
		X: Vec3{1 / s2, -1 / s6, -1 / s3},
		Y: Vec3{-1 / s2, -1 / s6, -1 / s3},
		Z: Vec3{0, s2 / s3, -1 / s3},
	}
}

func vecNear(a, b Vec3, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

func TestMatrixBasisRoundTrip(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	if got := Mat3FromBasis(m.Basis()); got != m {
		t.Errorf("Mat3FromBasis(m.Basis()) = %v, want %v", got, m)
	}
}

func TestRotateByIdentity(t *testing.T) {
	b := obliqueBasis()
	got := b.Rotate(StandardBasis3())
	if !vecNear(got.X, b.X, 1e-6) || !vecNear(got.Y, b.Y, 1e-6) || !vecNear(got.Z, b.Z, 1e-6) {
		t.Errorf("Rotate(identity) = %+v, want %+v", got, b)
	}
}

func TestDecomposeReconstructRoundTrip(t *testing.T) {
	b := obliqueBasis()
	v := Vec3{12.5, -3, 7}
	got := b.Reconstruct(b.Decompose(v))
	if !vecNear(got, v, 1e-4) {
		t.Errorf("Reconstruct(Decompose(v)) = %v, want %v", got, v)
	}
}

func TestDecomposeStandardBasis(t *testing.T) {
	v := Vec3{4, -5, 6}
	if got := StandardBasis3().Decompose(v); got != v {
		t.Errorf("Decompose in standard basis = %v, want %v", got, v)
	}
}

func TestDecomposeScaledAxes(t *testing.T) {
	// Orthogonal but non-unit axes: coefficients shrink by the axis length
	// squared over the axis length, i.e. doubling an axis halves its coord.
	b := Basis3{
		X: Vec3{2, 0, 0},
		Y: Vec3{0, 4, 0},
		Z: Vec3{0, 0, 1},
	}
	got := b.Decompose(Vec3{2, 4, 5})
	want := Vec3{1, 1, 5}
	if got != want {
		t.Errorf("Decompose = %v, want %v", got, want)
	}
	if back := b.Reconstruct(got); back != (Vec3{2, 4, 5}) {
		t.Errorf("Reconstruct = %v", back)
	}
}

func TestBasis2DecomposeReconstruct(t *testing.T) {
	b := Basis2{X: Vec2{0, 2}, Y: Vec2{-3, 0}}
	v := Vec2{6, 8}
	got := b.Reconstruct(b.Decompose(v))
	if math32.Abs(got.X-v.X) > 1e-5 || math32.Abs(got.Y-v.Y) > 1e-5 {
		t.Errorf("2D round trip = %v, want %v", got, v)
	}
}

func TestDecomposeZeroAxisPropagates(t *testing.T) {
	b := Basis3{X: Vec3{1, 0, 0}, Y: Vec3{}, Z: Vec3{0, 0, 1}}
	got := b.Decompose(Vec3{1, 2, 3})
	if !math32.IsNaN(got.Y) {
		t.Errorf("zero-axis coefficient = %v, want NaN", got.Y)
	}
	if got.X != 1 || got.Z != 3 {
		t.Errorf("healthy axes disturbed: %v", got)
	}
}
