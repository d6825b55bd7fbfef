// Interpolation over a Delaunay mesh of locators.
//
// A Mesh projects a set of locators onto a working plane, triangulates them,
// and answers two kinds of queries for arbitrary world points: the closest
// point on the mesh, and a barycentric blend of the attribute values carried
// by the locators around the point.
//
// Every Compute builds a complete new mesh and publishes it at once. Queries
// always see either the old mesh or the new one, never a partial rebuild, so
// queries may run concurrently with each other and with Compute.
package mesh

import (
	"sync"
	"sync/atomic"

	"github.com/osuushi/interpmesh/attribute"
	"github.com/osuushi/interpmesh/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Returned by queries against a mesh with no triangles, such as one computed
// from fewer than three locators, or never computed at all.
var ErrEmptyMesh = errors.New("mesh has no triangles")

type Mesh struct {
	projection Projection
	logger     *zap.Logger

	rebuildMu sync.Mutex
	current   atomic.Pointer[snapshot]
}

// One immutable result of Compute.
type snapshot struct {
	locators      []Locator
	triangulation *internal.Triangulation
	triangles     []*Triangle
}

// A mesh triangle, annotated with the locators at its corners. Locators holds
// indexes into the list given to Compute, in A, B, C order.
type Triangle struct {
	*internal.Triangle
	Locators [3]int

	table []Locator
}

// The locator at corner i (0, 1 or 2).
func (t *Triangle) Locator(i int) Locator {
	return t.table[t.Locators[i]]
}

type Option func(*Mesh)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Mesh) {
		m.logger = logger
	}
}

// Create an empty mesh. A nil projection means IdentityProjection.
func New(projection Projection, opts ...Option) *Mesh {
	if projection == nil {
		projection = IdentityProjection{}
	}
	m := &Mesh{projection: projection, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.current.Store(&snapshot{})
	return m
}

func (m *Mesh) Projection() Projection {
	return m.projection
}

// Rebuild the mesh from scratch. The previous mesh is discarded once the new
// one is published. On error, the previous mesh stays in place.
func (m *Mesh) Compute(locators []Locator) (err error) {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	// Own copy, so the caller can reuse their slice
	table := make([]Locator, len(locators))
	copy(table, locators)

	vertices := make([]*internal.Vertex, len(table))
	for i, locator := range table {
		if locator == nil {
			return errors.Errorf("locator %d is nil", i)
		}
		p := m.projection.WorldToLocal(locator.Position())
		vertices[i] = &internal.Vertex{Point: p, Index: i}
	}

	triangulation, err := triangulate(vertices)
	if err != nil {
		return errors.Wrap(err, "could not triangulate locators")
	}

	snap := &snapshot{
		locators:      table,
		triangulation: triangulation,
		triangles:     make([]*Triangle, len(triangulation.Triangles)),
	}
	used := make(internal.VertexSet, len(vertices))
	for i, t := range triangulation.Triangles {
		snap.triangles[i] = &Triangle{
			Triangle: t,
			Locators: [3]int{t.A.Index, t.B.Index, t.C.Index},
			table:    table,
		}
		used.Add(t.A)
		used.Add(t.B)
		used.Add(t.C)
	}
	m.current.Store(snap)

	m.logger.Debug("computed mesh",
		zap.Int("locators", len(table)),
		zap.Int("triangles", len(snap.triangles)),
		zap.Int("edges", len(triangulation.Edges)),
	)
	if len(table) >= 3 && len(snap.triangles) == 0 {
		m.logger.Warn("no triangles formed; locators may be collinear on the working plane",
			zap.Int("locators", len(table)))
	}
	for _, v := range vertices {
		if !used.Contains(v) {
			m.logger.Debug("locator not part of any triangle",
				zap.String("locator", describeLocator(table, v.Index)),
				zap.Float64("x", v.X),
				zap.Float64("y", v.Y),
			)
		}
	}
	return nil
}

func triangulate(vertices []*internal.Vertex) (result *internal.Triangulation, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(vertices), nil
}

// Find the triangle whose circumcenter is nearest to the projection of p.
//
// This is a cheap stand-in for point location, not a containment test. Near
// the hull or in thin regions it can pick a triangle that doesn't contain p
// even when another one does. Interpolation extrapolates from whatever
// triangle this picks.
func (m *Mesh) ClosestTriangle(p Vec3) (*Triangle, error) {
	tri, _, err := m.closestTriangle(m.current.Load(), p)
	return tri, err
}

func (m *Mesh) closestTriangle(snap *snapshot, p Vec3) (*Triangle, internal.Point, error) {
	q := m.projection.WorldToLocal(p)
	if len(snap.triangles) == 0 {
		return nil, q, ErrEmptyMesh
	}

	best := snap.triangles[0]
	bestDistance := best.Center.SquaredDistance(q)
	for _, t := range snap.triangles[1:] {
		if d := t.Center.SquaredDistance(q); d < bestDistance {
			best = t
			bestDistance = d
		}
	}
	return best, q, nil
}

// The point on the closest triangle nearest to p, in world space, along with
// its distance from p measured in the working plane. The result always lies
// on the plane.
func (m *Mesh) ClosestPoint(p Vec3) (Vec3, float64, error) {
	tri, q, err := m.closestTriangle(m.current.Load(), p)
	if err != nil {
		return Vec3{}, 0, err
	}
	closest, distance := tri.ClosestPoint(q)
	return m.projection.LocalToWorld(closest), distance, nil
}

// Blend the attribute registered under tag at the corners of the closest
// triangle, weighted by the barycentric coordinates of p. Outside the
// triangle, the weights go negative and the value is extrapolated.
//
// Fails with attribute.ErrUnknownAttributeType if any corner lacks the tag,
// and attribute.ErrKindMismatch if the corners disagree on its kind.
func (m *Mesh) InterpolatedAttribute(p Vec3, tag int) (attribute.Value, error) {
	snap := m.current.Load()
	tri, q, err := m.closestTriangle(snap, p)
	if err != nil {
		return nil, err
	}

	u, v, w, err := tri.Barycentric(q)
	if err != nil {
		return nil, err
	}

	var values [3]attribute.Value
	for i := range values {
		value, ok := tri.Locator(i).Attribute(tag)
		if !ok {
			return nil, errors.Wrapf(attribute.ErrUnknownAttributeType,
				"tag %d at locator %s", tag, describeLocator(snap.locators, tri.Locators[i]))
		}
		values[i] = value
	}

	result, err := attribute.Interpolate(attribute.Weights{U: u, V: v, W: w}, values[0], values[1], values[2])
	return result, errors.Wrapf(err, "tag %d", tag)
}

func (m *Mesh) InterpolatedColor(p Vec3, tag int) (attribute.Color, error) {
	value, err := m.InterpolatedAttribute(p, tag)
	if err != nil {
		return attribute.Color{}, err
	}
	result, ok := value.(attribute.Color)
	if !ok {
		return attribute.Color{}, kindMismatch(tag, attribute.KindColor, value)
	}
	return result, nil
}

func (m *Mesh) InterpolatedFloat(p Vec3, tag int) (float64, error) {
	value, err := m.InterpolatedAttribute(p, tag)
	if err != nil {
		return 0, err
	}
	result, ok := value.(attribute.Float)
	if !ok {
		return 0, kindMismatch(tag, attribute.KindFloat, value)
	}
	return float64(result), nil
}

func (m *Mesh) InterpolatedVector2(p Vec3, tag int) (attribute.Vector2, error) {
	value, err := m.InterpolatedAttribute(p, tag)
	if err != nil {
		return attribute.Vector2{}, err
	}
	result, ok := value.(attribute.Vector2)
	if !ok {
		return attribute.Vector2{}, kindMismatch(tag, attribute.KindVector2, value)
	}
	return result, nil
}

func (m *Mesh) InterpolatedVector3(p Vec3, tag int) (attribute.Vector3, error) {
	value, err := m.InterpolatedAttribute(p, tag)
	if err != nil {
		return attribute.Vector3{}, err
	}
	result, ok := value.(attribute.Vector3)
	if !ok {
		return attribute.Vector3{}, kindMismatch(tag, attribute.KindVector3, value)
	}
	return result, nil
}

func kindMismatch(tag int, want attribute.Kind, got attribute.Value) error {
	return errors.Wrapf(attribute.ErrKindMismatch, "tag %d is %s, not %s", tag, got.Kind(), want)
}

// Accessors. Everything returned belongs to the current snapshot and must not
// be modified.

func (m *Mesh) Triangles() []*Triangle {
	return m.current.Load().triangles
}

func (m *Mesh) Vertices() []*internal.Vertex {
	if tr := m.current.Load().triangulation; tr != nil {
		return tr.Vertices
	}
	return nil
}

func (m *Mesh) Edges() []internal.Edge {
	if tr := m.current.Load().triangulation; tr != nil {
		return tr.Edges
	}
	return nil
}

func (m *Mesh) Locators() []Locator {
	return m.current.Load().locators
}

func (m *Mesh) Len() int {
	return len(m.current.Load().triangles)
}

func (m *Mesh) Empty() bool {
	return m.Len() == 0
}
