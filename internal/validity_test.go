package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is a valid Delaunay triangulation of
// its input. The rules are:
// 1. Every triangle vertex is one of the input vertices (no super-triangle leakage).
// 2. No triangle is degenerate.
// 3. No triangle's circumcircle strictly contains any input vertex.
// 4. Every edge in the edge list is unique.
// 5. Every triangle edge is in the edge list.
// 6. No edge is used by more than two triangles, and a shared edge has the two
// triangles on opposite sides.
// 7. The triangles don't overlap: their areas sum to at most the hull area.
func AssertValidDelaunay(t *testing.T, result *Triangulation) {
	t.Helper()
	inputs := NewVertexSet(result.Vertices)

	for _, tri := range result.Triangles {
		for _, v := range tri.Vertices() {
			require.True(t, inputs.Contains(v), "triangle %s has a vertex that is not an input", tri)
			require.NotEqual(t, NoIndex, v.Index)
		}
		require.False(t, tri.Degenerate, "degenerate triangle in output: %s", tri)

		// Allow for points on the circle, which pass or fail based on rounding.
		slack := tri.RadiusSquared * 1e-9
		for _, v := range result.Vertices {
			// Skipped near-duplicates sit right on the circle.
			corners := tri.Vertices()
			if tri.HasVertex(v) || findApproxVertex(corners[:], v) != nil {
				continue
			}
			require.GreaterOrEqual(t, tri.Center.SquaredDistance(v.Point), tri.RadiusSquared-slack,
				"circumcircle of %s contains %s", tri, v)
		}
	}

	for i, e := range result.Edges {
		for j := i + 1; j < len(result.Edges); j++ {
			require.False(t, e.ApproxEqual(result.Edges[j]), "duplicate edge %s-%s", e.U, e.V)
		}
	}

	for _, tri := range result.Triangles {
		for _, e := range tri.Edges() {
			assert.True(t, containsEdge(result.Edges, e), "edge %s-%s of %s missing from edge list", e.U, e.V, tri)
		}
	}

	for _, e := range result.Edges {
		var opposite []*Vertex
		for _, tri := range result.Triangles {
			for _, v := range tri.Vertices() {
				if !e.U.ApproxEqual(v) && !e.V.ApproxEqual(v) && tri.HasVertex(e.U) && tri.HasVertex(e.V) {
					opposite = append(opposite, v)
				}
			}
		}
		require.LessOrEqual(t, len(opposite), 2, "edge %s-%s is used by %d triangles", e.U, e.V, len(opposite))
		if len(opposite) == 2 {
			direction := e.V.Sub(e.U.Point)
			side0 := direction.Cross(opposite[0].Sub(e.U.Point))
			side1 := direction.Cross(opposite[1].Sub(e.U.Point))
			require.True(t, side0*side1 < 0, "triangles on edge %s-%s overlap", e.U, e.V)
		}
	}

	area := 0.0
	for _, tri := range result.Triangles {
		area += tri.Area()
	}
	hullArea := convexHullArea(result.Vertices)
	require.LessOrEqual(t, area, hullArea*(1+1e-9), "triangle areas exceed the convex hull")
}

// Area of the convex hull of the vertices, by Andrew's monotone chain.
func convexHullArea(vertices []*Vertex) float64 {
	points := make([]Point, len(vertices))
	for i, v := range vertices {
		points[i] = v.Point
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	if len(points) < 3 {
		return 0
	}

	turn := func(o, a, b Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}
	hull := make([]Point, 0, 2*len(points))
	for _, p := range points {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(points) - 2; i >= 0; i-- {
		p := points[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	area := 0.0
	for i := 1; i+1 < len(hull); i++ {
		area += hull[i].Sub(hull[0]).Cross(hull[i+1].Sub(hull[0]))
	}
	return math.Abs(area) / 2
}

// A canonical, order-independent description of the triangles by vertex
// index, for comparing triangulations.
func triangleKeys(triangles []*Triangle) []string {
	keys := make([]string, len(triangles))
	for i, tri := range triangles {
		indexes := []int{tri.A.Index, tri.B.Index, tri.C.Index}
		sort.Ints(indexes)
		keys[i] = fmt.Sprint(indexes)
	}
	sort.Strings(keys)
	return keys
}
