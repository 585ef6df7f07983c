package freehand

import "math"

// Default option values used by DefaultOptions.
const (
	DefaultSize       = 8.0
	DefaultThinning   = 0.5
	DefaultSmoothing  = 0.5
	DefaultStreamline = 0.5
)

// Options configures outline generation. Most callers start from
// DefaultOptions or NewOptions and patch from there.
//
// Example:
//
//	// Defaults: size 8, pressure-sensitive, simulated pressure on
//	outline := freehand.Outline(points, freehand.DefaultOptions())
//
//	// Patched: a wide marker with real pen pressure
//	opts := freehand.NewOptions(
//		freehand.WithSize(24),
//		freehand.WithSimulatePressure(false),
//	)
type Options struct {
	// Size is the base stroke diameter in input units.
	Size float64

	// Thinning scales the effect of pressure on the radius. Nil disables
	// pressure handling entirely and every point gets radius Size/2.
	// Negative values invert the effect, so light pressure draws thicker.
	Thinning *float64

	// Smoothing widens the spacing gate between emitted outline points.
	// Larger values drop more intermediate points.
	Smoothing float64

	// Streamline damps raw input toward the previous resampled position,
	// from 0 (no damping) to 1 (full damping).
	Streamline float64

	// SimulatePressure derives pressure from point spacing instead of the
	// recorded values, for devices that report none (mouse, trackpad).
	SimulatePressure bool

	// Easing shapes normalized pressure before it modulates the radius.
	// Nil means EaseLinear.
	Easing Easing

	// Clip resolves the outline's self-intersections through a
	// PolygonUnioner before path conversion.
	Clip bool
}

// DefaultOptions returns the baseline configuration: size 8, thinning 0.5,
// smoothing 0.5, streamline 0.5, simulated pressure on, linear easing,
// clipping off.
func DefaultOptions() Options {
	thinning := DefaultThinning
	return Options{
		Size:             DefaultSize,
		Thinning:         &thinning,
		Smoothing:        DefaultSmoothing,
		Streamline:       DefaultStreamline,
		SimulatePressure: true,
		Easing:           EaseLinear,
	}
}

// Option patches an Options value.
type Option func(*Options)

// NewOptions builds an Options value by applying patches on top of
// DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSize sets the base stroke diameter.
func WithSize(size float64) Option {
	return func(o *Options) { o.Size = size }
}

// WithThinning enables pressure-sensitive radius with the given scale.
func WithThinning(thinning float64) Option {
	return func(o *Options) { o.Thinning = &thinning }
}

// WithConstantWidth disables pressure handling; every point gets radius
// Size/2.
func WithConstantWidth() Option {
	return func(o *Options) { o.Thinning = nil }
}

// WithSmoothing sets the outline point spacing gate.
func WithSmoothing(smoothing float64) Option {
	return func(o *Options) { o.Smoothing = smoothing }
}

// WithStreamline sets the input damping factor.
func WithStreamline(streamline float64) Option {
	return func(o *Options) { o.Streamline = streamline }
}

// WithSimulatePressure toggles deriving pressure from point spacing.
func WithSimulatePressure(simulate bool) Option {
	return func(o *Options) { o.SimulatePressure = simulate }
}

// WithEasing sets the pressure easing function.
func WithEasing(easing Easing) Option {
	return func(o *Options) { o.Easing = easing }
}

// WithClip toggles polygon-union cleanup of the traced outline.
func WithClip(clip bool) Option {
	return func(o *Options) { o.Clip = clip }
}

// normalized returns o with malformed values defensively corrected.
// Configuration is never rejected.
func (o Options) normalized() Options {
	if !finite(o.Size) || o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Thinning != nil {
		t := *o.Thinning
		if math.IsNaN(t) {
			t = DefaultThinning
		}
		t = clamp(t, -1, 1)
		o.Thinning = &t
	}
	if !finite(o.Smoothing) || o.Smoothing < 0 {
		o.Smoothing = 0
	}
	if !finite(o.Streamline) {
		o.Streamline = DefaultStreamline
	}
	o.Streamline = clamp(o.Streamline, 0, 1)
	if o.Easing == nil {
		o.Easing = EaseLinear
	}
	return o
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
