package freehand

// Radius computes the stroke radius for a single pressure value.
//
// With nil Thinning the radius is a constant Size/2. Otherwise the eased
// pressure, clamped to [0, 1], interpolates the stroke diameter before
// halving. Negative thinning inverts the relationship, so light pressure
// draws thicker. The thinning magnitude is clamped away from 0 and 1 to
// keep the interpolation range meaningful.
func (o Options) Radius(pressure float64) float64 {
	if o.Thinning == nil {
		return o.Size / 2
	}
	easing := o.Easing
	if easing == nil {
		easing = EaseLinear
	}
	p := clamp(easing(pressure), 0, 1)
	t := *o.Thinning
	var diameter float64
	if t < 0 {
		diameter = lerp(o.Size, o.Size+o.Size*clamp(t, -0.95, -0.05), p)
	} else {
		diameter = lerp(o.Size-o.Size*clamp(t, 0.05, 0.95), o.Size, p)
	}
	return diameter / 2
}
