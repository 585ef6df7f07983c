package freehand

import (
	"image"
	"image/draw"
	"testing"

	"golang.org/x/image/vector"
)

// rasterize fills a path into an alpha mask of the given size.
func rasterize(p *Path, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			r.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case Close:
			r.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// A horizontal constant-width stroke must rasterize to a vertically
// symmetric fill: the rows above and below the spine mirror each other.
func TestRasterizedStroke_FillSymmetry(t *testing.T) {
	const width, height = 96, 64

	opts := NewOptions(
		WithSize(16),
		WithConstantWidth(),
		WithStreamline(0),
	)
	points := []InputPoint{XY(12, 32), XY(48, 32), XY(84, 32)}
	mask := rasterize(OutlinePath(Outline(points, opts)), width, height)

	// The spine runs along y=32, so pixel rows 31 and 32 are mirrors,
	// as are 30 and 33, and so on.
	for k := 0; k < height/2; k++ {
		upper := height/2 - 1 - k
		lower := height/2 + k
		for x := 0; x < width; x++ {
			a := int(mask.AlphaAt(x, upper).A)
			b := int(mask.AlphaAt(x, lower).A)
			if d := a - b; d < -2 || d > 2 {
				t.Fatalf("asymmetric coverage at x=%d: rows %d/%d have alpha %d/%d",
					x, upper, lower, a, b)
			}
		}
	}
}

func TestRasterizedStroke_Coverage(t *testing.T) {
	const width, height = 96, 64

	opts := NewOptions(
		WithSize(16),
		WithConstantWidth(),
		WithStreamline(0),
	)
	points := []InputPoint{XY(12, 32), XY(48, 32), XY(84, 32)}
	mask := rasterize(OutlinePath(Outline(points, opts)), width, height)

	// Fully opaque along the spine.
	for _, x := range []int{20, 48, 76} {
		if a := mask.AlphaAt(x, 32).A; a != 255 {
			t.Errorf("alpha at (%d, 32) = %d, want 255", x, a)
		}
	}

	// Transparent well outside the stroke.
	for _, p := range []image.Point{{X: 2, Y: 2}, {X: 48, Y: 8}, {X: 48, Y: 56}, {X: 94, Y: 62}} {
		if a := mask.AlphaAt(p.X, p.Y).A; a != 0 {
			t.Errorf("alpha at %v = %d, want 0", p, a)
		}
	}
}
