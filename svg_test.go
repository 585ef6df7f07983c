package freehand

import (
	"strings"
	"testing"
)

func TestPath_SVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10.5, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.Close()

	want := "M0.00,0.00L10.50,0.00Q15.00,5.00 10.00,10.00Z"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestPath_SVG_Empty(t *testing.T) {
	if got := NewPath().SVG(); got != "" {
		t.Errorf("empty path SVG() = %q, want empty", got)
	}
}

func TestPath_SVG_NegativeCoordinates(t *testing.T) {
	p := NewPath()
	p.MoveTo(-1.25, -2.5)
	p.LineTo(0, -0.75)

	want := "M-1.25,-2.50L0.00,-0.75"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestPath_AppendSVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)

	got := p.AppendSVG([]byte("prefix "))
	if string(got) != "prefix M1.00,2.00" {
		t.Errorf("AppendSVG = %q", got)
	}
}

func TestOutlineSVG_Triangle(t *testing.T) {
	outline := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}

	want := "M0.00,0.00" +
		"Q0.00,0.00 5.00,0.00" +
		"Q10.00,0.00 10.00,5.00" +
		"Q10.00,10.00 5.00,5.00" +
		"Z"
	if got := OutlineSVG(outline); got != want {
		t.Errorf("OutlineSVG = %q, want %q", got, want)
	}
}

func TestOutlineSVG_TooFewPoints(t *testing.T) {
	if got := OutlineSVG([]Point{Pt(0, 0), Pt(1, 1)}); got != "" {
		t.Errorf("OutlineSVG(2 points) = %q, want empty", got)
	}
}

func TestOutlineSVG_TracedStroke(t *testing.T) {
	points := []InputPoint{XY(0, 0), XY(30, 10), XY(60, 0)}
	got := OutlineSVG(Outline(points, DefaultOptions()))

	if !strings.HasPrefix(got, "M") {
		t.Errorf("path data %q does not start with M", got)
	}
	if !strings.HasSuffix(got, "Z") {
		t.Errorf("path data %q does not end with Z", got)
	}
	if !strings.Contains(got, "Q") {
		t.Errorf("path data %q has no quadratic segments", got)
	}
}
