package attribute

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1, c.R, delta)
	assert.InDelta(t, 128.0/255, c.G, delta)
	assert.InDelta(t, 0, c.B, delta)
	assert.Equal(t, 1.0, c.A)

	c, err = ParseColor("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A, delta)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.InDelta(t, 1, c.R, delta)
	assert.InDelta(t, 1, c.G, delta)
	assert.InDelta(t, 1, c.B, delta)

	_, err = ParseColor("orange")
	assert.Error(t, err)
	_, err = ParseColor("#123456zz")
	assert.Error(t, err)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ff8000", RGB(1, 128.0/255, 0).Hex())
	assert.Equal(t, "#00000080", Color{0, 0, 0, 128.0 / 255}.Hex())
	// Out of range channels are clamped
	assert.Equal(t, "#ff0000", Color{2, -1, 0, 3}.Hex())

	for _, hex := range []string{"#123456", "#abcdef", "#a0b0c0d0"} {
		c, err := ParseColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = RGB(1, 0, 0)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	// Premultiplied
	r, _, _, a = Color{1, 0, 0, 0.5}.RGBA()
	assert.Equal(t, a, r)

	nrgba := color.NRGBAModel.Convert(RGB(0, 0, 1)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, nrgba)
}

func TestColorful(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 0.4}
	back := FromColorful(c.Colorful(), c.A)
	assert.Equal(t, c, back)
}
