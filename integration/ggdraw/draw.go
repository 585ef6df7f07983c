// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdraw

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/freehand"
)

// ErrNilContext is returned when a nil drawing context is passed.
var ErrNilContext = errors.New("ggdraw: nil drawing context")

// AddOutline adds a traced outline to the context's current path as a
// closed polygon subpath. Outlines with fewer than three points are
// ignored.
func AddOutline(dc *gg.Context, outline []freehand.Point) {
	if dc == nil || len(outline) < 3 {
		return
	}
	dc.MoveTo(outline[0].X, outline[0].Y)
	for _, pt := range outline[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
}

// AddPath replays a freehand path onto the context's current path.
func AddPath(dc *gg.Context, p *freehand.Path) {
	if dc == nil || p == nil {
		return
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case freehand.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case freehand.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case freehand.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case freehand.Close:
			dc.ClosePath()
		}
	}
}

// Fill traces raw input points into a smoothed stroke path and fills it
// with the context's current brush. With opts.Clip set the outline is
// resolved through u first; u may be nil otherwise.
func Fill(dc *gg.Context, points []freehand.InputPoint, opts freehand.Options, u freehand.PolygonUnioner) error {
	if dc == nil {
		return ErrNilContext
	}
	path, err := freehand.StrokeToPath(points, opts, u)
	if err != nil {
		return err
	}
	AddPath(dc, path)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("ggdraw: fill failed: %w", err)
	}
	return nil
}

// FillOutline fills an already traced outline as a flat polygon,
// skipping path smoothing. Useful when the caller keeps outlines cached.
func FillOutline(dc *gg.Context, outline []freehand.Point) error {
	if dc == nil {
		return ErrNilContext
	}
	AddOutline(dc, outline)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("ggdraw: fill failed: %w", err)
	}
	return nil
}
