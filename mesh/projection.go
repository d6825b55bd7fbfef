package mesh

import (
	"github.com/osuushi/interpmesh/internal"
	"github.com/pkg/errors"
)

var ErrParallelAxes = errors.New("plane axes are parallel")

// Maps world positions into the 2D working plane and back. Points off the
// plane are dropped onto it, so LocalToWorld(WorldToLocal(p)) is p only for
// points on the plane.
type Projection interface {
	WorldToLocal(p Vec3) internal.Point
	LocalToWorld(p internal.Point) Vec3
}

// The XY plane. Z is discarded on the way in and zero on the way out.
type IdentityProjection struct{}

func (IdentityProjection) WorldToLocal(p Vec3) internal.Point {
	return internal.Point{X: p.X, Y: p.Y}
}

func (IdentityProjection) LocalToWorld(p internal.Point) Vec3 {
	return Vec3{X: p.X, Y: p.Y}
}

// An arbitrary plane through Origin, with orthonormal in-plane axes U and V.
// Construct it with NewPlaneProjection, which takes care of orthonormalizing.
type PlaneProjection struct {
	Origin Vec3
	U, V   Vec3
}

// Build a plane from any two non-parallel axes. U keeps its direction; V is
// replaced by the component of v perpendicular to U.
func NewPlaneProjection(origin, u, v Vec3) (*PlaneProjection, error) {
	if u.Cross(v).Length() <= internal.Epsilon*u.Length()*v.Length() {
		return nil, errors.Wrapf(ErrParallelAxes, "u = %v, v = %v", u, v)
	}
	u = u.Normalize()
	v = v.Sub(u.Scale(v.Dot(u))).Normalize()
	return &PlaneProjection{Origin: origin, U: u, V: v}, nil
}

func (pp *PlaneProjection) WorldToLocal(p Vec3) internal.Point {
	d := p.Sub(pp.Origin)
	return internal.Point{X: d.Dot(pp.U), Y: d.Dot(pp.V)}
}

func (pp *PlaneProjection) LocalToWorld(p internal.Point) Vec3 {
	return pp.Origin.Add(pp.U.Scale(p.X)).Add(pp.V.Scale(p.Y))
}

// The plane's unit normal, following the right hand rule from U to V.
func (pp *PlaneProjection) Normal() Vec3 {
	return pp.U.Cross(pp.V)
}

// Drop a world point onto the plane, keeping it in world space.
func ProjectOntoPlane(projection Projection, p Vec3) Vec3 {
	return projection.LocalToWorld(projection.WorldToLocal(p))
}
