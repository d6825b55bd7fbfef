// Typed attribute values carried by locators, and their interpolation.
//
// Value is a closed sum type: Color, Float, Vector2 and Vector3 are the only
// variants. Each variant knows how to blend three of itself with barycentric
// weights.
package attribute

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// No attribute is registered under the requested tag
	ErrUnknownAttributeType = errors.New("unknown attribute type")
	// Values of different kinds can't be blended
	ErrKindMismatch = errors.New("attribute kind mismatch")
)

type Kind int

const (
	KindColor Kind = iota
	KindFloat
	KindVector2
	KindVector3
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindFloat:
		return "float"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Barycentric weights. They sum to 1 for any point, inside the triangle or not.
type Weights struct {
	U, V, W float64
}

type Value interface {
	Kind() Kind
	isValue()
}

type Float float64

type Vector2 struct {
	X, Y float64
}

type Vector3 struct {
	X, Y, Z float64
}

func (Float) Kind() Kind   { return KindFloat }
func (Vector2) Kind() Kind { return KindVector2 }
func (Vector3) Kind() Kind { return KindVector3 }

func (Float) isValue()   {}
func (Vector2) isValue() {}
func (Vector3) isValue() {}

func (a Float) Interpolate(w Weights, b, c Float) Float {
	return Float(w.U*float64(a) + w.V*float64(b) + w.W*float64(c))
}

func (a Vector2) Interpolate(w Weights, b, c Vector2) Vector2 {
	return Vector2{
		X: w.U*a.X + w.V*b.X + w.W*c.X,
		Y: w.U*a.Y + w.V*b.Y + w.W*c.Y,
	}
}

func (a Vector3) Interpolate(w Weights, b, c Vector3) Vector3 {
	return Vector3{
		X: w.U*a.X + w.V*b.X + w.W*c.X,
		Y: w.U*a.Y + w.V*b.Y + w.W*c.Y,
		Z: w.U*a.Z + w.V*b.Z + w.W*c.Z,
	}
}

// Blend three values of the same kind. Weights outside [0, 1] extrapolate, and
// no clamping is done, even for colors.
func Interpolate(w Weights, a, b, c Value) (Value, error) {
	if a == nil || b == nil || c == nil {
		return nil, errors.Wrap(ErrUnknownAttributeType, "cannot interpolate a missing value")
	}
	if a.Kind() != b.Kind() || a.Kind() != c.Kind() {
		return nil, errors.Wrapf(ErrKindMismatch, "cannot interpolate %s, %s and %s", a.Kind(), b.Kind(), c.Kind())
	}

	switch a := a.(type) {
	case Color:
		return a.Interpolate(w, b.(Color), c.(Color)), nil
	case Float:
		return a.Interpolate(w, b.(Float), c.(Float)), nil
	case Vector2:
		return a.Interpolate(w, b.(Vector2), c.(Vector2)), nil
	case Vector3:
		return a.Interpolate(w, b.(Vector3), c.(Vector3)), nil
	}
	// The interface is sealed, so this is unreachable
	panic(fmt.Sprintf("unhandled attribute kind %s", a.Kind()))
}

func (a Float) String() string {
	return fmt.Sprintf("%g", float64(a))
}

func (a Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", a.X, a.Y)
}

func (a Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}
