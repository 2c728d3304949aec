package sliderpath

import "slices"

const (
	bezierTolerance = 0.25

	// Subdivision budget. The flatness test converges for any finite
	// input (and reads NaN as flat), so the budget only matters for
	// numerically corrupt control points; hitting it forces the current
	// polygon to be emitted as-is rather than failing.
	bezierMaxSubdivisions = 1 << 14
)

// appendBezier approximates a Bezier curve of arbitrary degree with a
// piecewise-linear path, refining the control polygon depth-first until
// every polygon passes the flatness test. The stack replaces recursion so
// pathological inputs cannot overflow the call stack; child/scratch buffers
// are reused across iterations.
func appendBezier(path []Pos2, points []Pos2) []Pos2 {
	count := len(points)
	if count == 0 {
		return path
	}

	subdiv := make([]Pos2, count)
	leftChild := make([]Pos2, count)
	// merged holds the left half and, past index count-1, the right half.
	merged := make([]Pos2, count*2-1)
	right := make([]Pos2, count)

	toFlatten := [][]Pos2{slices.Clone(points)}
	var freeBufs [][]Pos2

	subdivisions := 0
	for len(toFlatten) > 0 {
		parent := toFlatten[len(toFlatten)-1]
		toFlatten = toFlatten[:len(toFlatten)-1]

		if bezierFlatEnough(parent) || subdivisions >= bezierMaxSubdivisions {
			path = bezierApproximate(path, parent, merged, right, subdiv)
			freeBufs = append(freeBufs, parent)
			continue
		}
		subdivisions++

		var rightChild []Pos2
		if n := len(freeBufs); n > 0 {
			rightChild = freeBufs[n-1]
			freeBufs = freeBufs[:n-1]
		} else {
			rightChild = make([]Pos2, count)
		}
		bezierSubdivide(parent, leftChild, rightChild, subdiv)

		// Reuse the parent's buffer for the left child; push right first
		// so the halves are flattened left-to-right.
		copy(parent, leftChild)
		toFlatten = append(toFlatten, rightChild, parent)
	}

	return append(path, points[count-1])
}

// bezierFlatEnough reports whether the control polygon may be approximated
// directly: every second difference must stay within the tolerance.
func bezierFlatEnough(points []Pos2) bool {
	const limit = 4 * bezierTolerance * bezierTolerance

	for i := 1; i+1 < len(points); i++ {
		second := points[i-1].Sub(points[i].Mul(2)).Add(points[i+1])
		if second.LenSqr() > limit {
			return false
		}
	}
	return true
}

// bezierSubdivide performs one De Casteljau split at t=0.5, writing the two
// child control polygons into l and r. midpoints is scratch space of the
// same length as points.
func bezierSubdivide(points, l, r, midpoints []Pos2) {
	count := len(points)
	copy(midpoints, points[:count])

	for i := count - 1; i >= 1; i-- {
		l[count-i-1] = midpoints[0]
		r[i] = midpoints[i]

		for j := 0; j < i; j++ {
			midpoints[j] = midpoints[j].Add(midpoints[j+1]).Mul(0.5)
		}
	}

	l[count-1] = midpoints[0]
	r[0] = midpoints[0]
}

// bezierApproximate emits a flat-enough polygon as curve points: the two
// subdivision halves are merged and every other interior point is averaged
// with its neighbours, (prev + 2*curr + next) / 4, yielding as many vertices
// as the polygon has control points.
func bezierApproximate(path []Pos2, points []Pos2, merged, r, midpoints []Pos2) []Pos2 {
	count := len(points)

	bezierSubdivide(points, merged, r, midpoints)
	copy(merged[count:2*count-1], r[1:count])

	path = append(path, points[0])
	for i := 1; i+1 < count; i++ {
		idx := 2 * i
		p := merged[idx-1].Add(merged[idx].Mul(2)).Add(merged[idx+1]).Mul(0.25)
		path = append(path, p)
	}
	return path
}
