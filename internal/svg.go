package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads point sets out of SVG files. It is not a full (or even correct)
// SVG reader. Every <circle> contributes its center, and every <polygon>
// contributes its vertices, in document order. Transforms are ignored.
func LoadSVGPoints(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	var points []Point
	for _, circle := range rootEl.FindAll("circle") {
		x, err := parseSVGFloat(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cx")
		}
		y, err := parseSVGFloat(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "invalid circle cy")
		}
		points = append(points, Point{x, y})
	}

	for _, polygon := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygon.Attributes["points"]) {
			parts := strings.Split(pointString, ",")
			if len(parts) != 2 {
				return nil, errors.Errorf("invalid point string %q", pointString)
			}
			x, err := parseSVGFloat(parts[0])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
			}
			y, err := parseSVGFloat(parts[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
			}
			points = append(points, Point{x, y})
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found in svg")
	}
	return points, nil
}

func parseSVGFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Wrap a list of points as vertices, indexed by their position in the list.
func VerticesFromPoints(points []Point) []*Vertex {
	vertices := make([]*Vertex, len(points))
	for i, p := range points {
		vertices[i] = &Vertex{Point: p, Index: i}
	}
	return vertices
}
