package geom

// Basis3 is an ordered triple of 3D vectors used as the axes for expressing
// other vectors' coordinates. No orthogonality or unit-length invariant is
// enforced; Decompose is only correct for orthogonal bases (see its doc).
type Basis3 struct {
	X, Y, Z Vec3
}

// Basis2 is an ordered pair of 2D axis vectors.
type Basis2 struct {
	X, Y Vec2
}

// StandardBasis3 returns the identity basis (1,0,0), (0,1,0), (0,0,1).
func StandardBasis3() Basis3 {
	return Basis3{
		X: Vec3{X: 1},
		Y: Vec3{Y: 1},
		Z: Vec3{Z: 1},
	}
}

// Decompose returns the coordinates of v expressed in b: component i is the
// projection coefficient of v along basis vector i.
//
// This is a per-axis projection, not a general change-of-basis solve, so the
// result is only correct when b's vectors are mutually orthogonal. That is a
// deliberate simplification; callers hold the orthogonality invariant.
func (b Basis3) Decompose(v Vec3) Vec3 {
	return Vec3{
		X: v.CoeffOn(b.X),
		Y: v.CoeffOn(b.Y),
		Z: v.CoeffOn(b.Z),
	}
}

// Reconstruct is the inverse of Decompose: the linear combination
// c.X*b.X + c.Y*b.Y + c.Z*b.Z. Valid for any basis, orthogonal or not.
func (b Basis3) Reconstruct(c Vec3) Vec3 {
	return b.X.Scale(c.X).Add(b.Y.Scale(c.Y)).Add(b.Z.Scale(c.Z))
}

// Rotate composes b with a rotation basis by multiplying their matrix forms
// (b × rotation). Incremental camera deltas accumulate through here frame
// over frame.
func (b Basis3) Rotate(rotation Basis3) Basis3 {
	return Mat3FromBasis(b).Mul(Mat3FromBasis(rotation)).Basis()
}

// Decompose returns the coordinates of v expressed in b. Orthogonal bases
// only, as with Basis3.Decompose.
func (b Basis2) Decompose(v Vec2) Vec2 {
	return Vec2{
		X: v.CoeffOn(b.X),
		Y: v.CoeffOn(b.Y),
	}
}

// Reconstruct returns the linear combination c.X*b.X + c.Y*b.Y.
func (b Basis2) Reconstruct(c Vec2) Vec2 {
	return b.X.Scale(c.X).Add(b.Y.Scale(c.Y))
}
