// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggdraw renders freehand stroke outlines into gg drawing
// contexts.
//
// freehand produces geometry only; this package is the bridge to the gg
// renderer. Outlines are added as closed polygon subpaths, smoothed
// paths are replayed command by command, and the Fill helper runs the
// whole pipeline in one call:
//
//	dc := gg.NewContext(800, 600)
//	dc.SetRGB(0.1, 0.1, 0.1)
//	if err := ggdraw.Fill(dc, points, freehand.DefaultOptions(), nil); err != nil {
//		log.Fatal(err)
//	}
//	dc.SavePNG("stroke.png")
//
// Unclipped outlines self-intersect at sharp turns; gg's default
// nonzero fill rule renders them correctly. Clipped strokes may produce
// hole rings, which nonzero filling also handles because the union
// preserves winding.
package ggdraw
