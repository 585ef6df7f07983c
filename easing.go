package freehand

import "math"

// Easing maps a normalized pressure t in [0, 1] to an adjusted value.
// It shapes how pressure translates into stroke radius.
type Easing func(t float64) float64

// EaseLinear returns t unchanged. It is the default easing.
func EaseLinear(t float64) float64 { return t }

// EaseInQuad accelerates from zero.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates toward one.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates through the first half and decelerates
// through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutSine follows a quarter sine wave.
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}
