package freehand

import "math"

// DefaultPressure is assigned to input points that carry no pressure and
// substituted for malformed pressure values.
const DefaultPressure = 0.5

// InputPoint is a sealed interface over the accepted input shapes:
// Coordinates (position only) and CoordinatesWithPressure.
type InputPoint interface {
	isInputPoint()
}

// Coordinates is an input point without pressure information.
// It normalizes to a Sample carrying DefaultPressure.
type Coordinates struct {
	X, Y float64
}

func (Coordinates) isInputPoint() {}

// CoordinatesWithPressure is an input point with recorded pressure.
type CoordinatesWithPressure struct {
	X, Y, Pressure float64
}

func (CoordinatesWithPressure) isInputPoint() {}

// XY is a convenience function to create a pressureless input point.
func XY(x, y float64) Coordinates {
	return Coordinates{X: x, Y: y}
}

// XYP is a convenience function to create an input point with pressure.
func XYP(x, y, pressure float64) CoordinatesWithPressure {
	return CoordinatesWithPressure{X: x, Y: y, Pressure: pressure}
}

// Sample is a normalized input point. Pressure is always in [0, 1].
type Sample struct {
	X, Y     float64
	Pressure float64
}

// Point returns the sample position.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// Samples normalizes raw input points at the pipeline boundary.
// Points without pressure receive DefaultPressure, non-finite pressure is
// replaced by DefaultPressure, and out-of-range pressure is clamped to
// [0, 1]. Nil entries are dropped. Empty input yields an empty result.
func Samples(points []InputPoint) []Sample {
	if len(points) == 0 {
		return nil
	}
	samples := make([]Sample, 0, len(points))
	for _, p := range points {
		switch p := p.(type) {
		case Coordinates:
			samples = append(samples, Sample{X: p.X, Y: p.Y, Pressure: DefaultPressure})
		case CoordinatesWithPressure:
			samples = append(samples, Sample{X: p.X, Y: p.Y, Pressure: normalPressure(p.Pressure)})
		}
	}
	return samples
}

func normalPressure(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return DefaultPressure
	}
	return clamp(p, 0, 1)
}
