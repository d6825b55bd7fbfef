package internal

// A position in the working plane. Everything in this package is 2D; callers
// are responsible for projecting into the plane first.
type Point struct {
	X float64
	Y float64
}

// A vertex is created fresh for every triangulation run and never modified
// afterward. Triangles and edges hold pointers to vertices, so the same vertex
// is shared by every triangle that touches it.
//
// Index is a handle into whatever table the caller built the vertices from
// (for the interpolation mesh, the locator list). The triangulator never
// interprets it, except that super-triangle corners always carry NoIndex.
type Vertex struct {
	Point
	Index int
}

// Index carried by the synthetic super-triangle corners
const NoIndex = -1

// Edges are unordered. Equality ignores the direction of U and V.
type Edge struct {
	U, V *Vertex
}

// Triangle caches its circumcircle at construction. If the three corners are
// (nearly) collinear, Degenerate is set and the circle fields are zero.
type Triangle struct {
	A, B, C *Vertex

	Center        Point
	Radius        float64
	RadiusSquared float64
	Degenerate    bool
}

// The output of a single triangulation run.
type Triangulation struct {
	Vertices  []*Vertex
	Triangles []*Triangle
	Edges     []Edge
}

type VertexSet map[*Vertex]struct{}
