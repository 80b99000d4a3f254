package geom

// Segment3 is a 3D line segment. Style is a display-only tag that projection
// passes through untouched.
type Segment3 struct {
	Start, End Vec3
	Style      string
}

// Segment2 is a 2D line segment in screen coordinates.
type Segment2 struct {
	Start, End Vec2
	Style      string
}
