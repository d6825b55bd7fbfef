package mesh

import (
	"fmt"

	"github.com/osuushi/interpmesh/attribute"
)

// Anything with a position that carries tagged attribute values. The mesh
// refers to locators by their index in the list given to Compute, and never
// modifies them.
type Locator interface {
	Position() Vec3
	Attribute(tag int) (attribute.Value, bool)
}

// A plain Locator with a fixed attribute set.
type BasicLocator struct {
	Name string
	Pos  Vec3
	Data *attribute.Set
}

func NewLocator(name string, pos Vec3, entries ...attribute.Entry) (*BasicLocator, error) {
	data, err := attribute.NewSet(entries...)
	if err != nil {
		return nil, err
	}
	return &BasicLocator{Name: name, Pos: pos, Data: data}, nil
}

func (l *BasicLocator) Position() Vec3 {
	return l.Pos
}

func (l *BasicLocator) Attribute(tag int) (attribute.Value, bool) {
	return l.Data.Get(tag)
}

func (l *BasicLocator) String() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("locator at %v", l.Pos)
}

func describeLocator(locators []Locator, index int) string {
	if s, ok := locators[index].(fmt.Stringer); ok {
		return fmt.Sprintf("%q", s.String())
	}
	return fmt.Sprintf("#%d", index)
}
