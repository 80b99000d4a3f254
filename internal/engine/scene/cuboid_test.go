package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/wirebox/pkg/geom"
)

func TestCuboidEdgeCount(t *testing.T) {
	edges := CuboidEdges(50, 100, 100)
	require.Len(t, edges, CuboidEdgeCount)
}

func TestCuboidCornersOnBox(t *testing.T) {
	a, b, c := float32(1), float32(2), float32(3)
	edges := CuboidEdges(a, b, c)

	abs := func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	}
	seen := map[geom.Vec3]bool{}
	for _, e := range edges {
		for _, p := range []geom.Vec3{e.Start, e.End} {
			assert.Equal(t, a, abs(p.X), "corner %v off the ±a face", p)
			assert.Equal(t, b, abs(p.Y), "corner %v off the ±b face", p)
			assert.Equal(t, c, abs(p.Z), "corner %v off the ±c face", p)
			seen[p] = true
		}
	}
	assert.Len(t, seen, 8, "a cuboid has exactly 8 distinct corners")
}

func TestEachCornerTouchesThreeEdges(t *testing.T) {
	edges := CuboidEdges(5, 5, 5)
	degree := map[geom.Vec3]int{}
	for _, e := range edges {
		degree[e.Start]++
		degree[e.End]++
	}
	for corner, d := range degree {
		assert.Equal(t, 3, d, "corner %v", corner)
	}
}

func TestEdgesAxisAligned(t *testing.T) {
	for _, e := range CuboidEdges(2, 3, 4) {
		d := e.End.Sub(e.Start)
		axes := 0
		if d.X != 0 {
			axes++
		}
		if d.Y != 0 {
			axes++
		}
		if d.Z != 0 {
			axes++
		}
		assert.Equal(t, 1, axes, "edge %v -> %v not axis-aligned", e.Start, e.End)
	}
}

func TestCuboidEdgesWithAxis(t *testing.T) {
	edges := CuboidEdgesWithAxis(7, 1, 1)
	require.Len(t, edges, CuboidEdgeCount+1)

	marker := edges[CuboidEdgeCount]
	assert.Equal(t, geom.Vec3{}, marker.Start)
	assert.Equal(t, geom.Vec3{X: 7}, marker.End)
	assert.Equal(t, AxisStyle, marker.Style)

	for _, e := range edges[:CuboidEdgeCount] {
		assert.Empty(t, e.Style)
	}
}
