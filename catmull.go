package sliderpath

const catmullDetail = 50

// appendCatmull samples a Catmull-Rom spline at a fixed 50 steps per
// control-point pair. Missing neighbours are substituted: v1 falls back to
// v2 at the head, v4 mirrors to 2*v3 - v2 at the tail. Both endpoints of
// every step are emitted; the joint duplicates disappear in the path-level
// dedup.
func appendCatmull(path []Pos2, points []Pos2) []Pos2 {
	n := len(points)
	if n == 0 {
		return path
	}
	if n == 1 {
		// A single-point run stays a single point.
		return append(path, points[0])
	}

	for i := 0; i+1 < n; i++ {
		v2 := points[i]
		v1 := v2
		if i > 0 {
			v1 = points[i-1]
		}
		v3 := points[i+1]
		v4 := v3.Mul(2).Sub(v2)
		if i+2 < n {
			v4 = points[i+2]
		}

		for c := 0; c < catmullDetail; c++ {
			path = append(path,
				catmullPoint(v1, v2, v3, v4, float32(c)/catmullDetail),
				catmullPoint(v1, v2, v3, v4, float32(c+1)/catmullDetail),
			)
		}
	}
	return path
}

func catmullPoint(v1, v2, v3, v4 Pos2, t float32) Pos2 {
	t2 := t * t
	t3 := t2 * t
	return Pos2{
		0.5 * (2*v2.X() + (-v1.X()+v3.X())*t + (2*v1.X()-5*v2.X()+4*v3.X()-v4.X())*t2 + (-v1.X()+3*v2.X()-3*v3.X()+v4.X())*t3),
		0.5 * (2*v2.Y() + (-v1.Y()+v3.Y())*t + (2*v1.Y()-5*v2.Y()+4*v3.Y()-v4.Y())*t2 + (-v1.Y()+3*v2.Y()-3*v3.Y()+v4.Y())*t3),
	}
}
