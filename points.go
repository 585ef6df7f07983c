package freehand

// StrokePoint is a resampled input point annotated with the direction and
// spacing data the outline tracer consumes.
type StrokePoint struct {
	// Point is the damped position.
	Point Point

	// Pressure is carried over from the sample unchanged.
	Pressure float64

	// Angle is the direction from the previous resampled point in radians.
	Angle float64

	// Distance is the spacing from the previous resampled point.
	Distance float64

	// RunningLength is the cumulative length of the resampled polyline up
	// to this point.
	RunningLength float64
}

// StrokePoints resamples normalized samples into annotated stroke points.
//
// Each position is damped toward the previous resampled position, so
// pos[i] = lerp(prev, raw[i], 1-streamline). The fold is strictly
// sequential: every output depends on the damped predecessor, not the raw
// one. The first point is kept verbatim with zero angle, distance and
// running length. Streamline is clamped to [0, 1].
func StrokePoints(samples []Sample, streamline float64) []StrokePoint {
	if len(samples) == 0 {
		return nil
	}
	if !finite(streamline) {
		streamline = DefaultStreamline
	}
	t := 1 - clamp(streamline, 0, 1)

	pts := make([]StrokePoint, len(samples))
	pts[0] = StrokePoint{Point: samples[0].Point(), Pressure: samples[0].Pressure}
	run := 0.0
	for i := 1; i < len(samples); i++ {
		prev := pts[i-1].Point
		pos := prev.Lerp(samples[i].Point(), t)
		dist := prev.Distance(pos)
		run += dist
		pts[i] = StrokePoint{
			Point:         pos,
			Pressure:      samples[i].Pressure,
			Angle:         angleTo(prev, pos),
			Distance:      dist,
			RunningLength: run,
		}
	}
	return pts
}
