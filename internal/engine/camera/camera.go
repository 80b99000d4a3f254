// Package camera owns the mutable viewing frame and regenerates it from
// pointer input.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wirebox/internal/engine/projection"
	"github.com/Faultbox/wirebox/pkg/geom"
)

// Config holds camera tuning.
type Config struct {
	Origin          geom.Vec3
	DragSensitivity float32
	ZoomSensitivity float32
	MinScale        float32
	MaxScale        float32
}

// DefaultConfig returns camera settings that read well for a few hundred
// pixels of cuboid.
func DefaultConfig() Config {
	return Config{
		Origin:          geom.Vec3{X: 200, Y: 150, Z: 0},
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		MinScale:        0.2,
		MaxScale:        5.0,
	}
}

// Camera accumulates mouse-driven orientation into a projection.Frame. The
// frame is regenerated incrementally: each drag delta becomes a small
// rotation basis composed onto the current one.
type Camera struct {
	config Config
	frame  projection.Frame
	scale  float32
}

// New creates a camera at cfg.Origin with an oblique starting orientation so
// the box reads as 3D before the first drag.
func New(cfg Config) *Camera {
	return &Camera{
		config: cfg,
		frame: projection.Frame{
			Origin: cfg.Origin,
			Basis:  startBasis(),
		},
		scale: 1,
	}
}

// startBasis returns an orthonormal basis tilted off every absolute axis.
func startBasis() geom.Basis3 {
	s2 := math32.Sqrt(2)
	s3 := math32.Sqrt(3)
	s6 := math32.Sqrt(6)
	return geom.Basis3{
		X: geom.Vec3{X: 1 / s2, Y: -1 / s6, Z: -1 / s3},
		Y: geom.Vec3{X: -1 / s2, Y: -1 / s6, Z: -1 / s3},
		Z: geom.Vec3{X: 0, Y: s2 / s3, Z: -1 / s3},
	}
}

// Frame returns a copy of the current frame. The camera keeps ownership of
// the mutable value.
func (c *Camera) Frame() projection.Frame {
	return c.frame
}

// HandleDrag folds a pointer-move delta (pixels) into the orientation: yaw
// around the frame's y for horizontal motion, pitch around x for vertical.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	yaw := rotationY(deltaX * c.config.DragSensitivity)
	pitch := rotationX(deltaY * c.config.DragSensitivity)
	c.frame.Basis = c.frame.Basis.Rotate(yaw).Rotate(pitch)
}

// HandleZoom scales the basis from scroll-wheel delta. Longer basis vectors
// shrink decomposed coordinates, so zooming out is scaling up. Clamped to the
// configured range.
func (c *Camera) HandleZoom(delta float32) {
	factor := 1 - delta*c.config.ZoomSensitivity
	if factor <= 0 {
		return
	}
	next := c.scale * factor
	if next < c.config.MinScale {
		factor = c.config.MinScale / c.scale
		next = c.config.MinScale
	}
	if next > c.config.MaxScale {
		factor = c.config.MaxScale / c.scale
		next = c.config.MaxScale
	}
	c.scale = next
	c.frame.Basis = geom.Basis3{
		X: c.frame.Basis.X.Scale(factor),
		Y: c.frame.Basis.Y.Scale(factor),
		Z: c.frame.Basis.Z.Scale(factor),
	}
}

// PickWorld maps a pointer pixel offset to the 3D point on the current
// screen plane.
func (c *Camera) PickWorld(px geom.Vec2) geom.Vec3 {
	return projection.ScreenToWorld(c.frame, px)
}

// rotationX returns the basis of a rotation about the x axis by angle radians.
func rotationX(angle float32) geom.Basis3 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return geom.Basis3{
		X: geom.Vec3{X: 1},
		Y: geom.Vec3{Y: cos, Z: sin},
		Z: geom.Vec3{Y: -sin, Z: cos},
	}
}

// rotationY returns the basis of a rotation about the y axis by angle radians.
func rotationY(angle float32) geom.Basis3 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return geom.Basis3{
		X: geom.Vec3{X: cos, Z: -sin},
		Y: geom.Vec3{Y: 1},
		Z: geom.Vec3{X: sin, Z: cos},
	}
}
