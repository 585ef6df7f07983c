package freehand

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of draw commands describing one or more closed
// outline rings.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty returns true if the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding rectangle of all path points, including
// curve control points. An empty path yields the zero Rect.
func (p *Path) Bounds() Rect {
	var b Rect
	first := true
	add := func(pt Point) {
		if first {
			b = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		b = b.Union(Rect{Min: pt, Max: pt})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		}
	}
	return b
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// OutlinePath converts a traced outline into a smooth closed path: a
// move to the first vertex, then one quadratic per vertex using the
// vertex as control and the midpoint to its wrapped successor as the
// curve end. The adapter never regenerates geometry; it only restates
// the already-traced points as curves. Outlines with fewer than three
// points yield an empty path.
func OutlinePath(outline []Point) *Path {
	p := NewPath()
	appendOutline(p, outline)
	return p
}

func appendOutline(p *Path, outline []Point) {
	if len(outline) < 3 {
		return
	}
	p.MoveTo(outline[0].X, outline[0].Y)
	for i, pt := range outline {
		mid := pt.Midpoint(outline[(i+1)%len(outline)])
		p.QuadraticTo(pt.X, pt.Y, mid.X, mid.Y)
	}
	p.Close()
}
