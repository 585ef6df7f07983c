package freehand

import "math"

// Cap resolution: full caps sweep a half-turn in 11 points, corner fans
// in 5.
const (
	capSteps    = 11
	cornerSteps = 5
)

// Corner thresholds. Turns sharper than a quarter turn get a corner fan;
// turns sharper than an eighth force a rib emission.
const (
	sharpCorner = math.Pi / 2
	dullCorner  = math.Pi / 4
)

// Outline runs the full pipeline over raw input points: normalization,
// streamline resampling, then outline tracing. The result is a closed
// polygon surrounding the stroke.
func Outline(points []InputPoint, opts Options) []Point {
	opts = opts.normalized()
	return OutlinePoints(StrokePoints(Samples(points), opts.Streamline), opts)
}

// OutlinePoints traces the outline polygon around resampled stroke
// points.
//
// The tracer walks the interior points once, emitting a left rib and a
// right rib offset from the spine by the pressure-derived radius. Round
// caps close the ends: strokes shorter than a quarter of the size
// collapse to a dot capsule, longer strokes get swept start and end
// caps. Corners sharper than a quarter turn receive small fans on both
// ribs instead of regular emissions. The polygon is the left rib
// followed by the reversed right rib.
//
// The tracer is total: any input yields a deterministic, possibly
// degenerate polygon, never an error.
func OutlinePoints(points []StrokePoint, opts Options) []Point {
	opts = opts.normalized()
	if len(points) == 0 {
		return nil
	}

	size := opts.Size
	totalLength := points[len(points)-1].RunningLength

	if len(points) == 1 || totalLength <= size/4 {
		return dotOutline(points, opts)
	}

	left := make([]Point, 0, len(points)+capSteps)
	right := make([]Point, 0, len(points)+capSteps)

	// Carried state: previous simulated pressure, current radius, the
	// per-rib test points emissions are measured against, and the short
	// flag for the leading segment before the start cap.
	pp := points[0].Pressure
	radius := opts.Radius(pp)
	tl := points[0].Point
	tr := points[0].Point
	short := true

	for i := 1; i < len(points)-1; i++ {
		cur := points[i]
		next := points[i+1]

		// Refine pressure and radius. Simulated pressure chases a
		// velocity target: fast segments drop toward zero, slow ones
		// rise toward one, at a rate scaled by the spacing.
		pressure := cur.Pressure
		if opts.Thinning != nil {
			if opts.SimulatePressure {
				rp := math.Min(1-cur.Distance/size, 1)
				sp := math.Min(cur.Distance/size, 1)
				pressure = math.Min(1, pp+(rp-pp)*(sp/2))
			}
			radius = opts.Radius(pressure)
		}
		pp = pressure

		// Skip the leading segment until the stroke has traveled a
		// quarter of its size, then close it with a start cap swept
		// from the first point around the back onto the left rib.
		if short {
			if cur.RunningLength <= size/4 {
				continue
			}
			short = false
			first := points[0].Point
			capStart := cur.Angle - math.Pi/2
			for j := 0; j < capSteps; j++ {
				t := float64(j) / float64(capSteps-1)
				tl = first.Project(capStart-math.Pi*t, radius)
				left = append(left, tl)
			}
			tr = first.Project(capStart, radius)
			right = append(right, tr)
		}

		delta := angleDelta(cur.Angle, next.Angle)

		// Sharp corner: fan both ribs around the incoming direction and
		// skip the regular emission for this point. The fans overlap the
		// spine; clipping resolves the self-intersection when requested.
		if math.Abs(delta) > sharpCorner {
			prevAngle := points[i-1].Angle
			for j := 0; j < cornerSteps; j++ {
				t := float64(j) / float64(cornerSteps-1)
				tl = cur.Point.Project(prevAngle+math.Pi/2-math.Pi*t, radius)
				left = append(left, tl)
				tr = cur.Point.Project(prevAngle-math.Pi/2+math.Pi*t, radius)
				right = append(right, tr)
			}
			continue
		}

		// Regular emission: offset candidates on both sides, emitted as
		// midpoints only when the turn is pronounced or the candidate
		// has drifted past the smoothing gate.
		nl := cur.Point.Project(cur.Angle+math.Pi/2, radius)
		nr := cur.Point.Project(cur.Angle-math.Pi/2, radius)
		if math.Abs(delta) > dullCorner || nl.Distance(tl) > size*opts.Smoothing {
			left = append(left, tl.Midpoint(nl))
			tl = nl
		}
		if math.Abs(delta) > dullCorner || nr.Distance(tr) > size*opts.Smoothing {
			right = append(right, tr.Midpoint(nr))
			tr = nr
		}
	}

	// End cap: sweep a half turn across the front of the last point,
	// appended to the right rib so the reversed assembly walks it from
	// the left side over to the right.
	last := points[len(points)-1]
	capStart := last.Angle - math.Pi/2
	for j := 0; j < capSteps; j++ {
		t := float64(j) / float64(capSteps-1)
		right = append(right, last.Point.Project(capStart+math.Pi*t, radius))
	}

	outline := make([]Point, 0, len(left)+len(right))
	outline = append(outline, left...)
	for j := len(right) - 1; j >= 0; j-- {
		outline = append(outline, right[j])
	}
	return outline
}

// dotOutline builds the capsule polygon for a single point or a stroke
// too short to trace: two half-turn sweeps, one from the first point and
// one from the last, closing around both.
func dotOutline(points []StrokePoint, opts Options) []Point {
	first := points[0]
	last := points[len(points)-1]
	angle := angleTo(first.Point, last.Point)

	radius := opts.Size / 2
	if opts.Thinning != nil {
		radius = opts.Radius(last.Pressure)
	}

	out := make([]Point, 0, 2*capSteps)
	for j := 0; j < capSteps; j++ {
		t := float64(j) / float64(capSteps-1)
		out = append(out, first.Point.Project(angle+math.Pi*t, radius))
	}
	for j := 0; j < capSteps; j++ {
		t := float64(j) / float64(capSteps-1)
		out = append(out, last.Point.Project(angle+math.Pi+math.Pi*t, radius))
	}
	return out
}
