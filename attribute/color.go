package attribute

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// An RGBA color with float channels, nominally in [0, 1]. Channels are not
// premultiplied. A three channel color is simply one with A = 1.
type Color struct {
	R, G, B, A float64
}

func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

func (Color) Kind() Kind { return KindColor }
func (Color) isValue()   {}

// Channel-wise blend, alpha included.
func (a Color) Interpolate(w Weights, b, c Color) Color {
	return Color{
		R: w.U*a.R + w.V*b.R + w.W*c.R,
		G: w.U*a.G + w.V*b.G + w.W*c.G,
		B: w.U*a.B + w.V*b.B + w.W*c.B,
		A: w.U*a.A + w.V*b.A + w.W*c.A,
	}
}

// Extrapolated colors can leave the unit range. This pulls every channel back.
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Implements image/color.Color, so a Color can be drawn directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.Clamped()
	a = uint32(c.A*0xffff + 0.5)
	r = uint32(c.R*c.A*0xffff + 0.5)
	g = uint32(c.G*c.A*0xffff + 0.5)
	b = uint32(c.B*c.A*0xffff + 0.5)
	return
}

func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func FromColorful(c colorful.Color, alpha float64) Color {
	return Color{c.R, c.G, c.B, alpha}
}

// Hex in #rrggbb form, or #rrggbbaa when the color isn't opaque.
func (c Color) Hex() string {
	c = c.Clamped()
	hex := c.Colorful().Hex()
	if c.A < 1 {
		hex += fmt.Sprintf("%02x", uint8(c.A*255+0.5))
	}
	return hex
}

func (c Color) String() string {
	return c.Hex()
}

// Parse #rgb, #rrggbb, or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, "invalid alpha in color %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return FromColorful(parsed, alpha), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
