package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/interpmesh/internal"
	"github.com/osuushi/interpmesh/mesh"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Build an interpolation mesh and query it. Locators come from a YAML locator
// file, the circles and polygons of an SVG, or stdin as newline separated
// points in the form "x y" (the default). Points from an SVG or stdin carry
// no attributes, so only the mesh and closest points are printed for them.
var (
	locatorsPath = kingpin.Flag("locators", "YAML locator file.").Short('l').ExistingFile()
	svgPath      = kingpin.Flag("svg", "Take locators from the circles and polygons of an SVG file.").ExistingFile()
	queries      = kingpin.Flag("query", `Query point as "x,y" or "x,y,z". Repeatable.`).Short('q').Strings()
	tags         = kingpin.Flag("tag", "Attribute tag to interpolate at each query. Repeatable.").Short('t').Ints()
	pngPath      = kingpin.Flag("png", "Render the mesh to a PNG file.").String()
	scale        = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()
	circles      = kingpin.Flag("circumcircles", "Draw circumcircles when rendering.").Bool()
	colorTag     = kingpin.Flag("color-tag", "Draw each locator in its color under this tag.").PlaceHolder("TAG").String()
	showImage    = kingpin.Flag("imgcat", "Print the rendered mesh to the terminal (iTerm only).").Bool()
	verbose      = kingpin.Flag("verbose", "Debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	drawOpts := mesh.DrawOptions{
		Scale:         *scale,
		Circumcircles: *circles,
	}
	var err error
	drawOpts.ColorTag, drawOpts.ColorByTag, err = parseColorTag(*colorTag)
	kingpin.FatalIfError(err, "")
	kingpin.FatalIfError(checkSources(*locatorsPath, *svgPath), "")

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	m, err := loadMesh(logger)
	kingpin.FatalIfError(err, "could not build mesh")

	printMesh(m)
	for _, q := range *queries {
		p, err := parseQuery(q)
		kingpin.FatalIfError(err, "")
		printQuery(m, p)
	}

	if *pngPath != "" {
		kingpin.FatalIfError(m.Draw(*pngPath, drawOpts), "")
	}
	if *showImage {
		kingpin.FatalIfError(m.DrawToTerminal(drawOpts), "")
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadMesh(logger *zap.Logger) (*mesh.Mesh, error) {
	if *locatorsPath != "" {
		f, err := mesh.LoadFile(*locatorsPath)
		if err != nil {
			return nil, err
		}
		return f.Mesh(mesh.WithLogger(logger))
	}

	var points []internal.Point
	if *svgPath != "" {
		file, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.Wrap(err, "could not open svg")
		}
		defer file.Close()
		if points, err = internal.LoadSVGPoints(file); err != nil {
			return nil, err
		}
	} else {
		var err error
		if points, err = readPoints(os.Stdin); err != nil {
			return nil, err
		}
	}

	locators := make([]mesh.Locator, len(points))
	for i, p := range points {
		locators[i] = &mesh.BasicLocator{
			Name: fmt.Sprintf("p%d", i),
			Pos:  mesh.Vec3{X: p.X, Y: p.Y},
		}
	}
	m := mesh.New(nil, mesh.WithLogger(logger))
	return m, m.Compute(locators)
}

// Locators come from exactly one place. Stdin is used when neither file is
// given.
func checkSources(locatorsPath, svgPath string) error {
	if locatorsPath != "" && svgPath != "" {
		return errors.New("--locators and --svg can't be used together")
	}
	return nil
}

// An unset --color-tag turns coloring off. Any int, zero included, is a tag.
func parseColorTag(s string) (tag int, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	tag, err = strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false, errors.Wrapf(err, "invalid --color-tag %q", s)
	}
	return tag, true, nil
}

func readPoints(in io.Reader) ([]internal.Point, error) {
	points := []internal.Point{}
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", line, text)
		}
		coords, err := parseFloats(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, internal.Point{X: coords[0], Y: coords[1]})
	}
	return points, errors.Wrap(scanner.Err(), "could not read points")
}

func parseQuery(q string) (mesh.Vec3, error) {
	fields := strings.Split(q, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return mesh.Vec3{}, errors.Errorf("query %q should be \"x,y\" or \"x,y,z\"", q)
	}
	coords, err := parseFloats(fields)
	if err != nil {
		return mesh.Vec3{}, errors.Wrapf(err, "query %q", q)
	}
	p := mesh.Vec3{X: coords[0], Y: coords[1]}
	if len(coords) == 3 {
		p.Z = coords[2]
	}
	return p, nil
}

func parseFloats(fields []string) ([]float64, error) {
	result := make([]float64, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}

func printMesh(m *mesh.Mesh) {
	fmt.Printf("%d locators, %d triangles, %d edges\n",
		len(m.Locators()), m.Len(), len(m.Edges()))
	for _, t := range m.Triangles() {
		fmt.Printf("  %s %v %v %v  center %v radius %.4g\n",
			aurora.Cyan("triangle"),
			t.Locator(0), t.Locator(1), t.Locator(2),
			t.Center, t.Radius,
		)
	}
}

func printQuery(m *mesh.Mesh, p mesh.Vec3) {
	fmt.Printf("%s %v\n", aurora.Bold("query"), p)
	closest, distance, err := m.ClosestPoint(p)
	if err != nil {
		fmt.Printf("  %s\n", aurora.Red(err))
		return
	}
	fmt.Printf("  closest point %v (distance %.4g)\n", closest, distance)
	for _, tag := range *tags {
		value, err := m.InterpolatedAttribute(p, tag)
		if err != nil {
			fmt.Printf("  tag %d: %s\n", tag, aurora.Red(err))
			continue
		}
		fmt.Printf("  tag %d (%s): %v\n", tag, value.Kind(), aurora.Green(value))
	}
}
