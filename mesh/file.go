package mesh

import (
	"io"
	"os"

	"github.com/osuushi/interpmesh/attribute"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A locator file describes a working plane and a set of locators:
//
//	plane:
//	  origin: [0, 0, 0]
//	  u: [1, 0, 0]
//	  v: [0, 1, 0]
//	locators:
//	  - name: north
//	    position: [0, 4, 0]
//	    attributes:
//	      - {tag: 1, color: "#ff8800"}
//	      - {tag: 2, float: 0.5}
//
// The plane is optional and defaults to the XY plane. Each attribute gives
// exactly one of color, float, vector2 or vector3.
type File struct {
	Plane    *PlaneConfig    `yaml:"plane"`
	Locators []LocatorConfig `yaml:"locators"`
}

type PlaneConfig struct {
	Origin [3]float64 `yaml:"origin"`
	U      [3]float64 `yaml:"u"`
	V      [3]float64 `yaml:"v"`
}

type LocatorConfig struct {
	Name       string            `yaml:"name"`
	Position   [3]float64        `yaml:"position"`
	Attributes []AttributeConfig `yaml:"attributes"`
}

type AttributeConfig struct {
	Tag     int         `yaml:"tag"`
	Color   *string     `yaml:"color"`
	Float   *float64    `yaml:"float"`
	Vector2 *[2]float64 `yaml:"vector2"`
	Vector3 *[3]float64 `yaml:"vector3"`
}

func LoadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open locator file")
	}
	defer file.Close()
	f, err := Load(file)
	return f, errors.Wrapf(err, "in %q", path)
}

// Decode a locator file. Unknown keys are an error, so typos don't silently
// drop data.
func Load(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var f File
	if err := decoder.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, errors.Wrap(err, "invalid locator file")
	}
	return &f, nil
}

func (f *File) Projection() (Projection, error) {
	if f.Plane == nil {
		return IdentityProjection{}, nil
	}
	plane, err := NewPlaneProjection(vec(f.Plane.Origin), vec(f.Plane.U), vec(f.Plane.V))
	if err != nil {
		return nil, err
	}
	return plane, nil
}

func (f *File) BuildLocators() ([]Locator, error) {
	locators := make([]Locator, 0, len(f.Locators))
	for i, config := range f.Locators {
		entries := make([]attribute.Entry, 0, len(config.Attributes))
		for _, a := range config.Attributes {
			value, err := a.Value()
			if err != nil {
				return nil, errors.Wrapf(err, "locator %d (%s)", i, config.Name)
			}
			entries = append(entries, attribute.Entry{Tag: a.Tag, Value: value})
		}
		locator, err := NewLocator(config.Name, vec(config.Position), entries...)
		if err != nil {
			return nil, errors.Wrapf(err, "locator %d (%s)", i, config.Name)
		}
		locators = append(locators, locator)
	}
	return locators, nil
}

// Build a mesh from the file and compute it.
func (f *File) Mesh(opts ...Option) (*Mesh, error) {
	projection, err := f.Projection()
	if err != nil {
		return nil, err
	}
	locators, err := f.BuildLocators()
	if err != nil {
		return nil, err
	}
	m := New(projection, opts...)
	if err := m.Compute(locators); err != nil {
		return nil, err
	}
	return m, nil
}

func (a AttributeConfig) Value() (attribute.Value, error) {
	var values []attribute.Value
	if a.Color != nil {
		c, err := attribute.ParseColor(*a.Color)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %d", a.Tag)
		}
		values = append(values, c)
	}
	if a.Float != nil {
		values = append(values, attribute.Float(*a.Float))
	}
	if a.Vector2 != nil {
		values = append(values, attribute.Vector2{X: a.Vector2[0], Y: a.Vector2[1]})
	}
	if a.Vector3 != nil {
		values = append(values, attribute.Vector3{X: a.Vector3[0], Y: a.Vector3[1], Z: a.Vector3[2]})
	}
	if len(values) != 1 {
		return nil, errors.Errorf("tag %d must have exactly one value, found %d", a.Tag, len(values))
	}
	return values[0], nil
}

func vec(v [3]float64) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
