// Package projection maps between an absolute 3D frame and the 2D screen
// plane it implies. Everything here is a pure function over caller-owned
// values; the package never retains or mutates a Frame.
package projection

import (
	"github.com/Faultbox/wirebox/pkg/geom"
)

// Frame is a camera frame: an origin plus a basis describing its orientation
// relative to the fixed absolute frame (x right, y down, z outward). The
// caller owns and mutates it, typically once per pointer-move.
type Frame struct {
	Origin geom.Vec3
	Basis  geom.Basis3
}

// Plane is the screen plane expressed in absolute coordinates: where the
// absolute origin sits on-screen and how the absolute x/y unit axes appear in
// the camera frame.
type Plane struct {
	Origin geom.Vec3
	XAxis  geom.Vec3
	YAxis  geom.Vec3
}

// PlaneOf derives the screen plane from f. It is recomputed fresh on every
// call; callers must not cache it across frame mutations.
func PlaneOf(f Frame) Plane {
	return Plane{
		Origin: f.Basis.Decompose(f.Origin.Scale(-1)),
		XAxis:  f.Basis.Decompose(geom.Vec3{X: 1}),
		YAxis:  f.Basis.Decompose(geom.Vec3{Y: 1}),
	}
}

// Point maps an absolute 3D point to 2D screen coordinates: the signed
// distances of (p - plane origin) along the plane's axes.
func (pl Plane) Point(p geom.Vec3) geom.Vec2 {
	rel := p.Sub(pl.Origin)
	return geom.Vec2{
		X: rel.DistanceAlong(pl.XAxis),
		Y: rel.DistanceAlong(pl.YAxis),
	}
}

// Segment projects both endpoints of s onto the plane. The style tag passes
// through unchanged.
func (pl Plane) Segment(s geom.Segment3) geom.Segment2 {
	return geom.Segment2{
		Start: pl.Point(s.Start),
		End:   pl.Point(s.End),
		Style: s.Style,
	}
}

// Segments projects a whole edge list, preserving order.
func (pl Plane) Segments(in []geom.Segment3) []geom.Segment2 {
	out := make([]geom.Segment2, len(in))
	for i, s := range in {
		out[i] = pl.Segment(s)
	}
	return out
}

// ScreenToWorld maps a screen pixel offset back to the 3D point on the screen
// plane: origin + x along the unit x axis + y along the unit y axis. Used to
// turn a pointer position into a 3D point for interactive re-orientation.
func ScreenToWorld(f Frame, px geom.Vec2) geom.Vec3 {
	pl := PlaneOf(f)
	return pl.XAxis.Normalize().Scale(px.X).
		Add(pl.YAxis.Normalize().Scale(px.Y)).
		Add(pl.Origin)
}
