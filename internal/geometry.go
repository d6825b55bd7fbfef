package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/interpmesh/dbg"
	"github.com/pkg/errors"
)

// Returned when three points don't span a triangle, so there is no
// circumcircle and no barycentric decomposition. The triangulator absorbs this
// condition; query code may surface it.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// A triangle is degenerate when twice its area is this small relative to the
// square of its longest edge. Being relative makes the check independent of
// the scale of the input (the super-triangle is enormous compared to the
// input points, for example).
const DegenerateArea = 1e-10

// Returns twice the signed area of abc, and whether that is too close to zero
// to divide by.
func doubleArea(a, b, c Point) (float64, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.Cross(ac)
	longest := math.Max(ab.Dot(ab), math.Max(ac.Dot(ac), c.SquaredDistance(b)))
	return cross, math.Abs(cross) <= DegenerateArea*longest
}

// Find the unique circle passing through three points. The computation is done
// relative to a, which keeps the intermediate values small when the triangle
// is far from the origin.
func Circumcircle(a, b, c Point) (center Point, radius float64, err error) {
	cross, degenerate := doubleArea(a, b, c)
	if degenerate {
		return Point{}, 0, errors.Wrapf(ErrDegenerateGeometry, "no circumcircle through %v, %v, %v", a, b, c)
	}

	ab := b.Sub(a)
	ac := c.Sub(a)
	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)
	d := 2 * cross

	offset := Point{
		X: (ac.Y*abSq - ab.Y*acSq) / d,
		Y: (ab.X*acSq - ac.X*abSq) / d,
	}
	return a.Add(offset), math.Sqrt(offset.Dot(offset)), nil
}

func NewTriangle(a, b, c *Vertex) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	center, _, err := Circumcircle(a.Point, b.Point, c.Point)
	if err != nil {
		t.Degenerate = true
		return t
	}
	t.Center = center
	// Measure the radius to a corner directly so that a point sitting exactly
	// on the circle compares equal rather than slightly inside.
	t.RadiusSquared = center.SquaredDistance(a.Point)
	t.Radius = math.Sqrt(t.RadiusSquared)
	return t
}

// The Delaunay in-circle test. Strict: points on the circle are outside.
// Degenerate triangles have no circle, so they never contain anything.
func (t *Triangle) CircumcircleContains(p Point) bool {
	if t.Degenerate {
		return false
	}
	return t.Center.SquaredDistance(p) < t.RadiusSquared
}

// Does any corner of the triangle sit (approximately) at p?
func (t *Triangle) ContainsVertex(p Point) bool {
	return t.A.Point.ApproxEqual(p) || t.B.Point.ApproxEqual(p) || t.C.Point.ApproxEqual(p)
}

func (t *Triangle) HasVertex(v *Vertex) bool {
	return t.A == v || t.B == v || t.C == v
}

func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t *Triangle) Vertices() [3]*Vertex {
	return [3]*Vertex{t.A, t.B, t.C}
}

// Positive for counterclockwise triangles, negative for clockwise.
func (t *Triangle) SignedArea() float64 {
	cross, _ := doubleArea(t.A.Point, t.B.Point, t.C.Point)
	return cross / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) Barycentric(p Point) (u, v, w float64, err error) {
	return Barycentric(p, t.A.Point, t.B.Point, t.C.Point)
}

func (t *Triangle) ClosestPoint(p Point) (Point, float64) {
	return ClosestPointOnTriangle(p, t.A.Point, t.B.Point, t.C.Point)
}

// Express p as an affine combination u*a + v*b + w*c with u+v+w = 1. Points
// outside the triangle get negative weights rather than an error, since the
// interpolation mesh extrapolates from the nearest triangle.
//
// The weights at the corners themselves come out exact.
func Barycentric(p, a, b, c Point) (u, v, w float64, err error) {
	cross, degenerate := doubleArea(a, b, c)
	if degenerate {
		return 0, 0, 0, errors.Wrapf(ErrDegenerateGeometry, "no barycentric coordinates in %v, %v, %v", a, b, c)
	}
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	v = ap.Cross(ac) / cross
	w = ab.Cross(ap) / cross
	u = 1 - v - w
	return u, v, w, nil
}

// Find the point on (or in) triangle abc closest to p, and the distance to it.
// This is the usual Voronoi region walk: try each vertex region, then each
// edge region, and otherwise p projects onto the face. In the plane the face
// case means p is inside, so it is its own closest point.
func ClosestPointOnTriangle(p, a, b, c Point) (Point, float64) {
	closest := closestPointOnTriangle(p, a, b, c)
	return closest, closest.Distance(p)
}

func closestPointOnTriangle(p, a, b, c Point) Point {
	ab := b.Sub(a)
	ac := c.Sub(a)

	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Scale(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Scale(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Scale((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	// Face region
	denom := 1 / (va + vb + vc)
	return a.Add(ab.Scale(vb * denom)).Add(ac.Scale(vc * denom))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (v *Vertex) String() string {
	if v == nil {
		return "Ø"
	}
	return fmt.Sprintf("%s%s", dbg.Name(v), v.Point)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s { %s, %s, %s }", t.DbgName(), t.A, t.B, t.C)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.Degenerate {
		return aurora.Red(name).String()
	}
	if t.A.Index == NoIndex || t.B.Index == NoIndex || t.C.Index == NoIndex {
		// Touches the super-triangle
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}
