// Delaunay triangle meshes for interpolating sparse samples.
//
// This package builds a 2D Delaunay triangulation over a set of points using
// incremental Bowyer-Watson construction. The mesh package builds on it to
// interpolate attribute data carried by "locators" at arbitrary query points.
package interpmesh

import "github.com/osuushi/interpmesh/internal"

type Point = internal.Point
type Vertex = internal.Vertex
type Edge = internal.Edge
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation

var ErrDegenerateGeometry = internal.ErrDegenerateGeometry

// Triangulate a set of points. Each resulting vertex's Index is the position
// of its point in the argument list.
//
// Empty input gives an empty triangulation. Duplicate and collinear points are
// tolerated; they simply don't produce triangles. Points with NaN or infinite
// coordinates are an error.
func Triangulate(points ...Point) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(internal.VerticesFromPoints(points)), nil
}

// Barycentric coordinates of p with respect to triangle abc. See
// internal.Barycentric.
func Barycentric(p, a, b, c Point) (u, v, w float64, err error) {
	return internal.Barycentric(p, a, b, c)
}

func ClosestPointOnTriangle(p, a, b, c Point) (Point, float64) {
	return internal.ClosestPointOnTriangle(p, a, b, c)
}
