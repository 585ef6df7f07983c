// Package freehand turns streams of pointer samples into pressure-shaped
// stroke outlines.
//
// # Overview
//
// freehand is a pure geometry library for the GoGPU ecosystem. Given the
// points of a freehand gesture (mouse, trackpad or stylus), it produces a
// closed polygon that surrounds the stroke with a pressure-dependent
// width, ready to be filled by any renderer. Rendering, input capture and
// persistence stay outside; the library is a side-effect-free core that
// can be re-run on a growing stroke at interactive rates.
//
// # Quick Start
//
//	import "github.com/gogpu/freehand"
//
//	// Collect gesture points, with or without pressure
//	points := []freehand.InputPoint{
//		freehand.XY(0, 0),
//		freehand.XYP(40, 12, 0.6),
//		freehand.XYP(90, 20, 0.8),
//	}
//
//	// Trace the outline polygon
//	outline := freehand.Outline(points, freehand.DefaultOptions())
//
//	// Or go straight to a smooth path / SVG path data
//	path, _ := freehand.StrokeToPath(points, freehand.DefaultOptions(), nil)
//	d := path.SVG()
//
// # Pipeline
//
// Each call runs the same stages:
//   - Samples: normalize raw input, defaulting missing pressure
//   - StrokePoints: damp positions toward history (streamline) and
//     annotate direction, spacing and running length
//   - OutlinePoints: walk the spine once, emitting left and right ribs
//     offset by the pressure-derived radius, closed with round caps
//   - OutlinePath / OutlineSVG: restate the polygon as quadratic curves
//     through successive midpoints
//
// The stages are exported separately so callers can enter the pipeline
// at any point.
//
// # Clipping
//
// Sharp turns make the outline self-intersect. When Options.Clip is set,
// StrokeToPath routes the polygon through a PolygonUnioner to resolve the
// overlap into simple rings; the polyunion sub-package provides an
// implementation. A missing or failing capability surfaces as
// ErrClipUnavailable so the caller can fall back to the raw outline.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Concurrency
//
// All functions are pure and safe to call concurrently across strokes.
// A single growing stroke must be processed in arrival order, because
// resampling folds over its own previous output.
package freehand

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
