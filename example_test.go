package freehand_test

import (
	"fmt"

	"github.com/gogpu/freehand"
)

// A single tap produces a dot capsule: two 11-point sweeps around the
// first and last sample.
func ExampleOutline() {
	points := []freehand.InputPoint{
		freehand.XYP(0, 0, 0.5),
	}
	outline := freehand.Outline(points, freehand.DefaultOptions())
	fmt.Println(len(outline))
	// Output: 22
}

func ExampleOutlineBounds() {
	points := []freehand.InputPoint{freehand.XY(0, 0)}
	opts := freehand.NewOptions(freehand.WithConstantWidth())

	b := freehand.OutlineBounds(freehand.Outline(points, opts))
	fmt.Println(b.Width(), b.Height())
	// Output: 8 8
}

func ExampleNewOptions() {
	opts := freehand.NewOptions(
		freehand.WithSize(24),
		freehand.WithThinning(0.8),
		freehand.WithSimulatePressure(false),
	)
	fmt.Println(opts.Size, *opts.Thinning, opts.SimulatePressure)
	// Output: 24 0.8 false
}

func ExampleOutlineSVG() {
	// Any closed ring converts to quadratics through successive
	// midpoints; traced outlines work the same way.
	ring := []freehand.Point{
		freehand.Pt(0, 0),
		freehand.Pt(10, 0),
		freehand.Pt(10, 10),
	}
	fmt.Println(freehand.OutlineSVG(ring))
	// Output: M0.00,0.00Q0.00,0.00 5.00,0.00Q10.00,0.00 10.00,5.00Q10.00,10.00 5.00,5.00Z
}

func ExampleStrokeToPath() {
	points := []freehand.InputPoint{
		freehand.XY(0, 0),
		freehand.XY(40, 10),
		freehand.XY(80, 0),
	}
	path, err := freehand.StrokeToPath(points, freehand.DefaultOptions(), nil)
	if err != nil {
		fmt.Println("stroke failed:", err)
		return
	}
	fmt.Println(path.Empty())
	// Output: false
}
