package freehand

import (
	"math"
	"testing"
)

func TestEasings(t *testing.T) {
	tests := []struct {
		name   string
		easing Easing
		in     float64
		expect float64
	}{
		{"linear start", EaseLinear, 0, 0},
		{"linear mid", EaseLinear, 0.37, 0.37},
		{"linear end", EaseLinear, 1, 1},

		{"in-quad start", EaseInQuad, 0, 0},
		{"in-quad mid", EaseInQuad, 0.5, 0.25},
		{"in-quad end", EaseInQuad, 1, 1},

		{"out-quad start", EaseOutQuad, 0, 0},
		{"out-quad mid", EaseOutQuad, 0.5, 0.75},
		{"out-quad end", EaseOutQuad, 1, 1},

		{"in-out-quad start", EaseInOutQuad, 0, 0},
		{"in-out-quad quarter", EaseInOutQuad, 0.25, 0.125},
		{"in-out-quad mid", EaseInOutQuad, 0.5, 0.5},
		{"in-out-quad three-quarter", EaseInOutQuad, 0.75, 0.875},
		{"in-out-quad end", EaseInOutQuad, 1, 1},

		{"out-sine start", EaseOutSine, 0, 0},
		{"out-sine mid", EaseOutSine, 0.5, math.Sqrt2 / 2},
		{"out-sine end", EaseOutSine, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.easing(tt.in); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("easing(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestEasingsMonotonic(t *testing.T) {
	easings := []struct {
		name   string
		easing Easing
	}{
		{"EaseLinear", EaseLinear},
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseInOutQuad", EaseInOutQuad},
		{"EaseOutSine", EaseOutSine},
	}

	for _, e := range easings {
		t.Run(e.name, func(t *testing.T) {
			prev := e.easing(0)
			for i := 1; i <= 100; i++ {
				v := e.easing(float64(i) / 100)
				if v < prev {
					t.Fatalf("not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}
