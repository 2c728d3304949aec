package sliderpath

import "math"

// Discrete-curvature bound for arc sampling (sagitta tolerance).
const circularArcTolerance = 0.1

// circularArc fully describes a circular arc: position along it is the
// closed form centre + radius*(cos t, sin t), t = thetaStart + direction*d/radius.
type circularArc struct {
	thetaStart float32
	thetaRange float32
	direction  float32
	radius     float32
	centre     Pos2
}

func (a *circularArc) pointAt(d float32) Pos2 {
	theta := a.thetaStart + a.direction*d/a.radius
	return a.centre.Add(unitAt(theta).Mul(a.radius))
}

// circularArcProperties fits the circumcircle of a, b and c. It fails on a
// (near-)degenerate triangle, in which case the caller falls back to the
// numerically stable Bezier approximation of the same points.
func circularArcProperties(a, b, c Pos2) (circularArc, bool) {
	if abs32(cross(c.Sub(a), b.Sub(a))) <= float32Epsilon {
		return circularArc{}, false
	}

	d := 2 * (a.X()*b.Sub(c).Y() + b.X()*c.Sub(a).Y() + c.X()*a.Sub(b).Y())
	aSq := a.LenSqr()
	bSq := b.LenSqr()
	cSq := c.LenSqr()

	centre := Pos2{
		(aSq*b.Sub(c).Y() + bSq*c.Sub(a).Y() + cSq*a.Sub(b).Y()) / d,
		(aSq*c.Sub(b).X() + bSq*a.Sub(c).X() + cSq*b.Sub(a).X()) / d,
	}

	dA := a.Sub(centre)
	dC := c.Sub(centre)
	radius := dA.Len()

	thetaStart := atan2f(dA.Y(), dA.X())
	thetaEnd := atan2f(dC.Y(), dC.X())
	for thetaEnd < thetaStart {
		thetaEnd += 2 * math.Pi
	}

	direction := float32(1)
	thetaRange := thetaEnd - thetaStart

	// Draw direction depends on which side of AC the point B lies.
	orthoAToC := c.Sub(a)
	orthoAToC = Pos2{orthoAToC.Y(), -orthoAToC.X()}
	if orthoAToC.Dot(b.Sub(a)) < 0 {
		direction = -direction
		thetaRange = 2*math.Pi - thetaRange
	}

	return circularArc{
		thetaStart: thetaStart,
		thetaRange: thetaRange,
		direction:  direction,
		radius:     radius,
		centre:     centre,
	}, true
}

// appendCircularArc discretizes the arc through a, b and c. The sample
// count keeps the discrete curvature under the tolerance; the exact step
// meeting it is 2*acos(1 - tolerance/r). Arcs with a radius below the
// tolerance are pathological and get the 2-point minimum directly.
func appendCircularArc(path []Pos2, a, b, c Pos2) []Pos2 {
	arc, ok := circularArcProperties(a, b, c)
	if !ok {
		return appendBezier(path, []Pos2{a, b, c})
	}

	amountPoints := 2
	if 2*arc.radius > circularArcTolerance {
		step := 2 * math.Acos(1-circularArcTolerance/float64(arc.radius))
		amountPoints = max(2, int(math.Ceil(float64(arc.thetaRange)/step)))
	}

	directedRange := arc.direction * arc.thetaRange
	for i := 0; i < amountPoints; i++ {
		fract := float32(i) / float32(amountPoints-1)
		theta := arc.thetaStart + fract*directedRange
		path = append(path, arc.centre.Add(unitAt(theta).Mul(arc.radius)))
	}
	return path
}
