// Command freehanddemo renders a sheet of freehand stroke outlines.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/freehand"
	"github.com/gogpu/freehand/integration/ggdraw"
	"github.com/gogpu/freehand/polyunion"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "strokes.png", "output PNG file")
		svgOutput  = flag.String("svg", "", "optional output SVG file")
		size       = flag.Float64("size", 12, "base stroke diameter")
		thinning   = flag.Float64("thinning", 0.5, "pressure thinning factor")
		constant   = flag.Bool("constant-width", false, "disable pressure handling")
		smoothing  = flag.Float64("smoothing", 0.5, "outline point spacing gate")
		streamline = flag.Float64("streamline", 0.5, "input damping factor")
		simulate   = flag.Bool("simulate-pressure", true, "derive pressure from speed")
		clip       = flag.Bool("clip", false, "resolve self-intersections by polygon union")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		freehand.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := freehand.NewOptions(
		freehand.WithSize(*size),
		freehand.WithThinning(*thinning),
		freehand.WithSmoothing(*smoothing),
		freehand.WithStreamline(*streamline),
		freehand.WithSimulatePressure(*simulate),
		freehand.WithClip(*clip),
	)
	if *constant {
		freehand.WithConstantWidth()(&opts)
	}

	var unioner freehand.PolygonUnioner
	if *clip {
		unioner = polyunion.New()
	}

	dc := gg.NewContext(*width, *height)
	dc.SetRGB(0.97, 0.96, 0.93)
	dc.DrawRectangle(0, 0, float64(*width), float64(*height))
	_ = dc.Fill()

	scenes := []struct {
		name    string
		points  []freehand.InputPoint
		r, g, b float64
	}{
		{"signature", signaturePoints(), 0.12, 0.12, 0.18},
		{"spiral", spiralPoints(), 0.72, 0.25, 0.2},
		{"zigzag", zigzagPoints(), 0.15, 0.4, 0.65},
	}
	for _, dot := range dotStrokes() {
		scenes = append(scenes, struct {
			name    string
			points  []freehand.InputPoint
			r, g, b float64
		}{"dot", dot, 0.25, 0.55, 0.3})
	}

	var svgPaths []string
	for _, s := range scenes {
		dc.SetRGB(s.r, s.g, s.b)
		if err := ggdraw.Fill(dc, s.points, opts, unioner); err != nil {
			log.Fatalf("Failed to draw %s: %v", s.name, err)
		}
		if *svgOutput != "" {
			path, err := freehand.StrokeToPath(s.points, opts, unioner)
			if err != nil {
				log.Fatalf("Failed to convert %s: %v", s.name, err)
			}
			svgPaths = append(svgPaths, path.SVG())
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Strokes saved to %s (%dx%d)\n", *output, *width, *height)

	if *svgOutput != "" {
		if err := writeSVG(*svgOutput, *width, *height, svgPaths); err != nil {
			log.Fatalf("Failed to save SVG: %v", err)
		}
		log.Printf("SVG saved to %s\n", *svgOutput)
	}
}

// signaturePoints synthesizes a looping squiggle without pressure.
// The parameter is eased so the pen speeds up mid-stroke, which shows
// in the simulated pressure.
func signaturePoints() []freehand.InputPoint {
	var pts []freehand.InputPoint
	const steps = 140
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		e := t * t * (3 - 2*t)
		x := 60 + e*400
		y := 140 + 55*math.Sin(e*7.2) + 14*math.Sin(e*23)
		pts = append(pts, freehand.XY(x, y))
	}
	return pts
}

// spiralPoints synthesizes a stylus spiral with rising pressure.
func spiralPoints() []freehand.InputPoint {
	var pts []freehand.InputPoint
	const steps = 220
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		angle := t * 6 * math.Pi
		r := 8 + t*80
		pts = append(pts, freehand.XYP(
			620+r*math.Cos(angle),
			170+r*math.Sin(angle),
			0.2+0.8*t,
		))
	}
	return pts
}

// zigzagPoints synthesizes a stroke with sharp direction reversals.
func zigzagPoints() []freehand.InputPoint {
	var pts []freehand.InputPoint
	vertices := []freehand.Point{
		{X: 80, Y: 480}, {X: 170, Y: 380}, {X: 260, Y: 480},
		{X: 350, Y: 380}, {X: 440, Y: 480}, {X: 530, Y: 380},
	}
	const perLeg = 14
	for i := 0; i < len(vertices)-1; i++ {
		for j := 0; j < perLeg; j++ {
			t := float64(j) / perLeg
			p := vertices[i].Lerp(vertices[i+1], t)
			pts = append(pts, freehand.XY(p.X, p.Y))
		}
	}
	last := vertices[len(vertices)-1]
	pts = append(pts, freehand.XY(last.X, last.Y))
	return pts
}

// dotStrokes synthesizes single-point strokes at increasing pressure,
// each traced as its own dot capsule.
func dotStrokes() [][]freehand.InputPoint {
	var strokes [][]freehand.InputPoint
	for i := 0; i < 5; i++ {
		strokes = append(strokes, []freehand.InputPoint{
			freehand.XYP(600+float64(i)*42, 460, 0.25+0.17*float64(i)),
		})
	}
	return strokes
}

func writeSVG(path string, width, height int, paths []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n", width, height)
	for _, d := range paths {
		fmt.Fprintf(&b, "  <path d=\"%s\"/>\n", d)
	}
	b.WriteString("</svg>\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
