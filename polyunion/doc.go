// Package polyunion implements freehand's polygon-union capability on
// github.com/ctessum/geom.
//
// Traced outlines self-intersect wherever a stroke doubles back on
// itself; renderers that cannot fill with a nonzero winding rule need
// the overlap resolved first. Unioner performs a boolean self-union and
// hands back simple rings.
//
// # Usage
//
//	u := polyunion.New()
//	path, err := freehand.StrokeToPath(points, freehand.NewOptions(
//		freehand.WithClip(true),
//	), u)
//
// Union failures are reported as errors and surface from freehand as
// ErrClipUnavailable, so callers can fall back to the raw outline.
package polyunion
