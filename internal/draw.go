package internal

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the mesh so circumcircles near the edge are visible
const DrawPadding = 40

// Options for Draw. A nil VertexColor draws every vertex in red.
type DrawOptions struct {
	Scale         float64
	Circumcircles bool
	VertexColor   func(v *Vertex) color.Color
}

// Render the triangulation. The context is flipped so the origin is at the
// bottom left, matching the working plane rather than image coordinates.
func (tr *Triangulation) Draw(opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range tr.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	if len(tr.Vertices) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + DrawPadding*2
	height := int(scale*(maxY-minY)) + DrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(DrawPadding, DrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if opts.Circumcircles {
		c.SetLineWidth(1 / scale)
		c.SetRGBA(1, 1, 1, 0.1)
		for _, t := range tr.Triangles {
			c.DrawCircle(t.Center.X, t.Center.Y, t.Radius)
			c.Stroke()
		}
	}

	c.SetLineWidth(2 / scale)
	c.SetRGB(1, 1, 1)
	for _, e := range tr.Edges {
		c.DrawLine(e.U.X, e.U.Y, e.V.X, e.V.Y)
		c.Stroke()
	}

	for _, v := range tr.Vertices {
		var col color.Color = color.RGBA{255, 0, 0, 255}
		if opts.VertexColor != nil {
			col = opts.VertexColor(v)
		}
		c.SetColor(col)
		c.DrawCircle(v.X, v.Y, 4/scale)
		c.Fill()
	}
	return c
}

// Render to a PNG file.
func (tr *Triangulation) SavePNG(path string, opts DrawOptions) error {
	return errors.Wrapf(tr.Draw(opts).SavePNG(path), "could not save %q", path)
}

// Render and print to the terminal (iTerm only). This goes through a temp
// file because imgcat only reads files.
func (tr *Triangulation) DbgDraw(opts DrawOptions) error {
	file, err := os.CreateTemp("", "triangulation-*.png")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := tr.SavePNG(path, opts); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
