package internal

import "math"

// Incremental Bowyer-Watson construction.
//
// We seed the triangulation with a single super-triangle that encloses every
// input point, then insert the points one at a time. Each insertion removes
// the "cavity" (every triangle whose circumcircle strictly contains the new
// point) and fans the cavity's boundary to the new point. At the end, every
// triangle touching a super-triangle corner is thrown away.
//
// This is O(n²) because every insertion scans the whole triangle list. That's
// fine for the tens to hundreds of points this is meant for.

// The super-triangle's corners sit this many times the larger bounding box
// dimension away from the box center. Anything much smaller lets the corners
// influence the hull of the result.
const SuperTriangleScale = 20

func Triangulate(vertices []*Vertex) *Triangulation {
	result := &Triangulation{Vertices: vertices}
	if len(vertices) == 0 {
		return result
	}

	for _, v := range vertices {
		if !v.IsFinite() {
			fatalf("cannot triangulate non-finite vertex %v", v.Point)
		}
	}

	super := NewSuperTriangle(vertices)
	triangles := []*Triangle{super}

	// Vertices approximately equal to one already inserted are skipped, or
	// they cut overlapping slivers into the mesh.
	inserted := make([]*Vertex, 0, len(vertices))
	for _, vertex := range vertices {
		if findApproxVertex(inserted, vertex) != nil {
			continue
		}
		inserted = append(inserted, vertex)
		triangles = insertVertex(triangles, vertex)
	}

	// Strip the super-triangle, along with degenerate leftovers. Corners are
	// matched by position, so an input vertex sitting on a corner goes too.
	corners := super.Vertices()
	for _, t := range triangles {
		if t.Degenerate {
			continue
		}
		if t.ContainsVertex(corners[0].Point) || t.ContainsVertex(corners[1].Point) || t.ContainsVertex(corners[2].Point) {
			continue
		}
		result.Triangles = append(result.Triangles, t)
	}

	result.Edges = uniqueEdges(result.Triangles)
	return result
}

// Build a triangle centered on the bounding box of the vertices, with corners
// far enough out that every vertex is strictly inside it (and therefore inside
// its circumcircle).
func NewSuperTriangle(vertices []*Vertex) *Triangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	// A single point (or a stack of duplicates) has a zero size box, so fall
	// back to a unit extent.
	deltaMax := math.Max(1, math.Max(maxX-minX, maxY-minY))
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	offset := SuperTriangleScale * deltaMax

	return NewTriangle(
		NewVertex(midX-offset, midY-deltaMax, NoIndex),
		NewVertex(midX+offset, midY-deltaMax, NoIndex),
		NewVertex(midX, midY+offset, NoIndex),
	)
}

// Insert a single vertex, returning the new triangle list. The input list is
// not reused.
func insertVertex(triangles []*Triangle, vertex *Vertex) []*Triangle {
	var polygon []Edge
	kept := make([]*Triangle, 0, len(triangles)+2)
	for _, t := range triangles {
		if t.CircumcircleContains(vertex.Point) {
			edges := t.Edges()
			polygon = append(polygon, edges[:]...)
		} else {
			kept = append(kept, t)
		}
	}

	if len(polygon) == 0 {
		// No circumcircle contains the vertex. Only a vertex sitting on an
		// existing one can do this, and those are skipped before we get here.
		return kept
	}

	boundary := cavityBoundary(polygon)
	if len(boundary) == 0 {
		fatalf("cavity around %v has no boundary edges", vertex)
	}

	for _, edge := range boundary {
		kept = append(kept, NewTriangle(edge.U, edge.V, vertex))
	}
	return kept
}

// Edges shared by two cavity triangles are interior to the cavity. Cancel
// every such pair so only the edges that appear once survive.
func cavityBoundary(polygon []Edge) []Edge {
	shared := make([]bool, len(polygon))
	for i := range polygon {
		for j := i + 1; j < len(polygon); j++ {
			if polygon[i].ApproxEqual(polygon[j]) {
				shared[i] = true
				shared[j] = true
			}
		}
	}

	boundary := make([]Edge, 0, len(polygon))
	for i, edge := range polygon {
		if !shared[i] {
			boundary = append(boundary, edge)
		}
	}
	return boundary
}

// Collect every triangle edge, keeping only the first occurrence of each. An
// interior edge is shared by two triangles and collapses to one entry.
func uniqueEdges(triangles []*Triangle) []Edge {
	var edges []Edge
	for _, t := range triangles {
		for _, edge := range t.Edges() {
			if !containsEdge(edges, edge) {
				edges = append(edges, edge)
			}
		}
	}
	return edges
}

func findApproxVertex(vertices []*Vertex, vertex *Vertex) *Vertex {
	for _, v := range vertices {
		if v.ApproxEqual(vertex) {
			return v
		}
	}
	return nil
}

func containsEdge(edges []Edge, edge Edge) bool {
	for _, e := range edges {
		if e.ApproxEqual(edge) {
			return true
		}
	}
	return false
}

func (tr *Triangulation) Empty() bool {
	return len(tr.Triangles) == 0
}

// Hull returns the edges used by exactly one triangle. For a Delaunay
// triangulation these form the convex hull of the input.
func (tr *Triangulation) Hull() []Edge {
	var hull []Edge
	for _, edge := range tr.Edges {
		count := 0
		for _, t := range tr.Triangles {
			for _, e := range t.Edges() {
				if e.ApproxEqual(edge) {
					count++
				}
			}
		}
		if count == 1 {
			hull = append(hull, edge)
		}
	}
	return hull
}
