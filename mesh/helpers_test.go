package mesh

import (
	"math/rand"
	"testing"

	"github.com/osuushi/interpmesh/attribute"
	"github.com/stretchr/testify/require"
)

const (
	tagColor   = 1
	tagFloat   = 2
	tagVector2 = 3
	tagVector3 = 4
	delta      = 1e-9
)

func newLocator(t *testing.T, name string, x, y, z float64, entries ...attribute.Entry) Locator {
	t.Helper()
	locator, err := NewLocator(name, Vec3{x, y, z}, entries...)
	require.NoError(t, err)
	return locator
}

func floatLocator(t *testing.T, x, y float64, value float64) Locator {
	return newLocator(t, "", x, y, 0, attribute.Entry{Tag: tagFloat, Value: attribute.Float(value)})
}

func computed(t *testing.T, locators ...Locator) *Mesh {
	t.Helper()
	m := New(nil)
	require.NoError(t, m.Compute(locators))
	return m
}

// Locators carrying an affine field f(x, y) = 2x - 3y + 1 in every attribute
// kind. Barycentric interpolation reproduces affine fields exactly, whichever
// triangle is chosen.
func affineField(x, y float64) float64 {
	return 2*x - 3*y + 1
}

func affineLocators(t *testing.T, n int, seed int64) []Locator {
	rng := rand.New(rand.NewSource(seed))
	locators := make([]Locator, n)
	for i := range locators {
		x := rng.Float64() * 20
		y := rng.Float64() * 20
		f := affineField(x, y)
		locators[i] = newLocator(t, "", x, y, 0,
			attribute.Entry{Tag: tagFloat, Value: attribute.Float(f)},
			attribute.Entry{Tag: tagVector2, Value: attribute.Vector2{X: f, Y: -f}},
			attribute.Entry{Tag: tagVector3, Value: attribute.Vector3{X: f, Y: 2 * f, Z: x}},
			attribute.Entry{Tag: tagColor, Value: attribute.Color{R: f, G: y, B: x, A: 1}},
		)
	}
	return locators
}
