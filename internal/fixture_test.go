package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each one is a point set read by LoadSVGPoints. If anything goes wrong, the
// test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Vertex {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := LoadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return VerticesFromPoints(points)
}

// Some ad hoc point sets

func vertices(coords ...float64) []*Vertex {
	if len(coords)%2 != 0 {
		log.Fatalf("odd number of coordinates: %d", len(coords))
	}
	var result []*Vertex
	for i := 0; i < len(coords); i += 2 {
		result = append(result, NewVertex(coords[i], coords[i+1], i/2))
	}
	return result
}

// Points of a five pointed star, plus its center. Alternating radii keep this
// out of the all-cocircular case.
func StarPoints() []*Vertex {
	const outerRadius = 5
	const innerRadius = 2
	result := []*Vertex{NewVertex(0, 0, 0)}
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2*math.Pi*float64(i)/10 + 0.1
		result = append(result, NewVertex(radius*math.Cos(angle), radius*math.Sin(angle), i+1))
	}
	return result
}

// A jittered grid. The jitter is seeded, so the set is the same every run.
func JitteredGrid(n int) []*Vertex {
	rng := rand.New(rand.NewSource(42))
	var result []*Vertex
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			jx := (rng.Float64() - 0.5) * 0.6
			jy := (rng.Float64() - 0.5) * 0.6
			result = append(result, NewVertex(float64(x)+jx, float64(y)+jy, len(result)))
		}
	}
	return result
}

func RandomPoints(n int, seed int64, scale float64) []*Vertex {
	rng := rand.New(rand.NewSource(seed))
	result := make([]*Vertex, n)
	for i := range result {
		result[i] = NewVertex(rng.Float64()*scale, rng.Float64()*scale, i)
	}
	return result
}
