// Package scene enumerates the demo geometry: the wireframe cuboid.
package scene

import (
	"github.com/Faultbox/wirebox/pkg/geom"
)

// CuboidEdgeCount is the number of edges of a cuboid.
const CuboidEdgeCount = 12

// AxisStyle tags the optional axis-indicator segment.
const AxisStyle = "axis"

// CuboidEdges returns the 12 edges of the axis-aligned box with half-extents
// (a, b, c), centered on the absolute origin. Deterministic order: bottom
// face, top face, then the four vertical edges.
func CuboidEdges(a, b, c float32) []geom.Segment3 {
	corner := func(sx, sy, sz float32) geom.Vec3 {
		return geom.Vec3{X: sx * a, Y: sy * b, Z: sz * c}
	}

	// 8 corners: bit 0 = +x, bit 1 = +y, bit 2 = +z.
	var v [8]geom.Vec3
	for i := range v {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		v[i] = corner(sx, sy, sz)
	}

	pairs := [CuboidEdgeCount][2]int{
		// Bottom face (y = -b)
		{0, 1}, {1, 5}, {5, 4}, {4, 0},
		// Top face (y = +b)
		{2, 3}, {3, 7}, {7, 6}, {6, 2},
		// Vertical edges
		{0, 2}, {1, 3}, {5, 7}, {4, 6},
	}

	edges := make([]geom.Segment3, 0, CuboidEdgeCount)
	for _, p := range pairs {
		edges = append(edges, geom.Segment3{Start: v[p[0]], End: v[p[1]]})
	}
	return edges
}

// CuboidEdgesWithAxis returns CuboidEdges plus one indicator segment from the
// origin to (a, 0, 0), tagged with AxisStyle.
func CuboidEdgesWithAxis(a, b, c float32) []geom.Segment3 {
	return append(CuboidEdges(a, b, c), geom.Segment3{
		End:   geom.Vec3{X: a},
		Style: AxisStyle,
	})
}
