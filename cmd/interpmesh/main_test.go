package main

import (
	"strings"
	"testing"

	"github.com/osuushi/interpmesh/internal"
	"github.com/osuushi/interpmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader("0 0\n\n# comment\n4 0\n  0 4.5  \n"))
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4.5}}, points)

	_, err = readPoints(strings.NewReader("0 0\n1\n"))
	assert.Error(t, err)
	_, err = readPoints(strings.NewReader("0 zero\n"))
	assert.Error(t, err)

	points, err = readPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestParseQuery(t *testing.T) {
	p, err := parseQuery("1,2")
	require.NoError(t, err)
	assert.Equal(t, mesh.Vec3{X: 1, Y: 2}, p)

	p, err = parseQuery("1, -2, 3.5")
	require.NoError(t, err)
	assert.Equal(t, mesh.Vec3{X: 1, Y: -2, Z: 3.5}, p)

	for _, bad := range []string{"1", "1,2,3,4", "a,b"} {
		_, err := parseQuery(bad)
		assert.Error(t, err, bad)
	}
}

func TestCheckSources(t *testing.T) {
	assert.NoError(t, checkSources("", ""))
	assert.NoError(t, checkSources("mesh.yaml", ""))
	assert.NoError(t, checkSources("", "points.svg"))
	assert.Error(t, checkSources("mesh.yaml", "points.svg"))
}

func TestParseColorTag(t *testing.T) {
	_, ok, err := parseColorTag("")
	require.NoError(t, err)
	assert.False(t, ok)

	tag, ok, err := parseColorTag("0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, tag)

	tag, ok, err = parseColorTag("-3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -3, tag)

	_, _, err = parseColorTag("red")
	assert.Error(t, err)
}
