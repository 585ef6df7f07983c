package freehand

import (
	"errors"
	"fmt"
)

// PolygonUnioner resolves a self-intersecting polygon ring into one or
// more simple rings via boolean union. Implementations are supplied by
// the caller; this module ships one in the polyunion package.
type PolygonUnioner interface {
	// Union receives closed rings and returns their union as zero or
	// more simple rings.
	Union(rings [][]Point) ([][]Point, error)
}

// ErrClipUnavailable reports that outline clipping was requested but the
// union capability is missing or failed. Callers can choose to render
// the unclipped outline instead.
var ErrClipUnavailable = errors.New("freehand: clip unavailable")

// ClipOutline resolves an outline's self-intersections through the
// union capability and returns the resulting simple rings. An empty
// outline yields no rings and no error.
func ClipOutline(outline []Point, u PolygonUnioner) ([][]Point, error) {
	if len(outline) == 0 {
		return nil, nil
	}
	if u == nil {
		return nil, ErrClipUnavailable
	}
	rings, err := u.Union([][]Point{outline})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClipUnavailable, err)
	}
	Logger().Debug("outline clipped", "points", len(outline), "rings", len(rings))
	return rings, nil
}

// ClippedOutlinePath converts an outline into a smooth path after
// resolving self-intersections: each union ring is smoothed
// independently and concatenated into a single path.
func ClippedOutlinePath(outline []Point, u PolygonUnioner) (*Path, error) {
	rings, err := ClipOutline(outline, u)
	if err != nil {
		return nil, err
	}
	p := NewPath()
	for _, ring := range rings {
		appendOutline(p, ring)
	}
	return p, nil
}

// StrokeToPath runs the full pipeline from raw input to a smooth closed
// path. With opts.Clip set the outline is routed through the union
// capability first; u may be nil otherwise.
func StrokeToPath(points []InputPoint, opts Options, u PolygonUnioner) (*Path, error) {
	opts = opts.normalized()
	outline := Outline(points, opts)
	if !opts.Clip {
		return OutlinePath(outline), nil
	}
	return ClippedOutlinePath(outline, u)
}
