package mesh

import (
	"image/color"

	"github.com/osuushi/interpmesh/attribute"
	"github.com/osuushi/interpmesh/internal"
)

// Debug rendering of the working plane: edges, circumcircles, and locators.
type DrawOptions struct {
	Scale         float64
	Circumcircles bool
	// When ColorByTag is set, each locator is drawn in its Color attribute
	// under ColorTag, if it has one.
	ColorByTag bool
	ColorTag   int
}

// Render the current mesh to a PNG file.
func (m *Mesh) Draw(path string, opts DrawOptions) error {
	snap := m.current.Load()
	return snap.drawable().SavePNG(path, snap.drawOptions(opts))
}

// Render the current mesh and print it to the terminal (iTerm only).
func (m *Mesh) DrawToTerminal(opts DrawOptions) error {
	snap := m.current.Load()
	return snap.drawable().DbgDraw(snap.drawOptions(opts))
}

func (s *snapshot) drawable() *internal.Triangulation {
	if s.triangulation == nil {
		return &internal.Triangulation{}
	}
	return s.triangulation
}

func (s *snapshot) drawOptions(opts DrawOptions) internal.DrawOptions {
	result := internal.DrawOptions{Scale: opts.Scale, Circumcircles: opts.Circumcircles}
	if opts.ColorByTag {
		fallback := color.RGBA{255, 0, 0, 255}
		result.VertexColor = func(v *internal.Vertex) color.Color {
			if value, ok := s.locators[v.Index].Attribute(opts.ColorTag); ok {
				if c, ok := value.(attribute.Color); ok {
					return c
				}
			}
			return fallback
		}
	}
	return result
}
