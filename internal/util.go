package internal

import "math"

// Tolerance for coordinate comparisons. This is on the scale of single
// precision floats, so positions that came through a float32 transform still
// compare equal to their float64 originals.
const Epsilon = 1e-5

// To compensate for imprecision in floats, equality is tolerance based. The
// tolerance is relative once the magnitudes exceed 1, and absolute below that,
// so values near zero don't require impossible precision.
func ApproxEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// Both coordinates must match independently.
func (p Point) ApproxEqual(other Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y)
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// The z component of the 3D cross product. Positive when other is
// counterclockwise from p.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) SquaredDistance(other Point) float64 {
	d := p.Sub(other)
	return d.Dot(d)
}

func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.SquaredDistance(other))
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func NewVertex(x, y float64, index int) *Vertex {
	return &Vertex{Point: Point{x, y}, Index: index}
}

func (v *Vertex) ApproxEqual(other *Vertex) bool {
	return v.Point.ApproxEqual(other.Point)
}

func (e Edge) ApproxEqual(other Edge) bool {
	return e.U.ApproxEqual(other.U) && e.V.ApproxEqual(other.V) ||
		e.U.ApproxEqual(other.V) && e.V.ApproxEqual(other.U)
}

func (e Edge) Length() float64 {
	return e.U.Distance(e.V.Point)
}

func (s VertexSet) Add(v *Vertex) {
	s[v] = struct{}{}
}

func (s VertexSet) Contains(v *Vertex) bool {
	_, ok := s[v]
	return ok
}

func NewVertexSet(vertices []*Vertex) VertexSet {
	set := make(VertexSet, len(vertices))
	for _, v := range vertices {
		set.Add(v)
	}
	return set
}
