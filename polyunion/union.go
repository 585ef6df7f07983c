package polyunion

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/gogpu/freehand"
)

// Unioner resolves self-intersecting outline rings through boolean
// union. The zero value is ready to use; Unioner is stateless and safe
// for concurrent use.
type Unioner struct{}

// Interface assertion.
var _ freehand.PolygonUnioner = (*Unioner)(nil)

// New creates a Unioner.
func New() *Unioner {
	return &Unioner{}
}

// Union implements freehand.PolygonUnioner. Rings with fewer than three
// points are passed through untouched when nothing else remains, and
// dropped otherwise. Hole rings in the result keep their winding, so a
// nonzero fill renders them correctly.
func (u *Unioner) Union(rings [][]freehand.Point) (out [][]freehand.Point, err error) {
	// The underlying clipper panics on some pathological inputs;
	// surface that as a capability failure instead of crashing the
	// drawing session.
	defer func() {
		if r := recover(); r != nil {
			freehand.Logger().Warn("polygon union panicked", "err", r)
			out = nil
			err = fmt.Errorf("polyunion: union failed: %v", r)
		}
	}()

	if len(rings) == 0 {
		return nil, nil
	}

	poly := make(geom.Polygon, 0, len(rings))
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		r := make([]geom.Point, len(ring))
		for i, pt := range ring {
			r[i] = geom.Point{X: pt.X, Y: pt.Y}
		}
		poly = append(poly, r)
	}
	if len(poly) == 0 {
		return rings, nil
	}

	// A self-union resolves self-intersections into simple rings.
	resolved := poly.Union(poly).(geom.Polygon)

	out = make([][]freehand.Point, 0, len(resolved))
	for _, ring := range resolved {
		if len(ring) < 3 {
			continue
		}
		r := make([]freehand.Point, len(ring))
		for i, pt := range ring {
			r[i] = freehand.Point{X: pt.X, Y: pt.Y}
		}
		out = append(out, r)
	}
	freehand.Logger().Debug("outline union resolved", "in", len(rings), "out", len(out))
	return out, nil
}
