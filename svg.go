package freehand

import "strconv"

// AppendSVG appends the path as SVG path data to dst and returns the
// extended buffer. Coordinates are formatted with two decimal places.
func (p *Path) AppendSVG(dst []byte) []byte {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			dst = append(dst, 'M')
			dst = appendCoord(dst, e.Point)
		case LineTo:
			dst = append(dst, 'L')
			dst = appendCoord(dst, e.Point)
		case QuadTo:
			dst = append(dst, 'Q')
			dst = appendCoord(dst, e.Control)
			dst = append(dst, ' ')
			dst = appendCoord(dst, e.Point)
		case Close:
			dst = append(dst, 'Z')
		}
	}
	return dst
}

// SVG returns the path as an SVG path data string.
func (p *Path) SVG() string {
	return string(p.AppendSVG(nil))
}

// OutlineSVG returns SVG path data for a traced outline, smoothed the
// same way as OutlinePath.
func OutlineSVG(outline []Point) string {
	return OutlinePath(outline).SVG()
}

func appendCoord(dst []byte, pt Point) []byte {
	dst = strconv.AppendFloat(dst, pt.X, 'f', 2, 64)
	dst = append(dst, ',')
	dst = strconv.AppendFloat(dst, pt.Y, 'f', 2, 64)
	return dst
}
