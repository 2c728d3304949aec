// Package sliderpath reconstructs the continuous 2-D path of a slider from
// its typed control points and answers arc-length distance queries on it.
//
// A Curve is built once per slider and is immutable afterwards, so it can
// be shared read-only across concurrent difficulty calculations.
package sliderpath

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Curve is the arc-length parameterised form of a slider path.
//
// Most paths are flattened into a polyline with a parallel cumulative
// length table. A path consisting of exactly one valid 3-point perfect
// circle keeps the analytic arc instead and answers queries in closed form
// with no discretization at all.
type Curve struct {
	path    []Pos2
	lengths []float32

	arc    *circularArc
	arcLen float32
}

// New builds the curve for the given control points. expectedLen is the
// total length declared by the beatmap; the geometry is corrected to match
// it. Construction never fails: malformed input degrades to a well-defined
// shorter or empty path.
func New(points []PathControlPoint, expectedLen float32) *Curve {
	if arc, ok := analyticArc(points); ok {
		return &Curve{arc: &arc, arcLen: max(expectedLen, 0)}
	}

	path := calculatePath(points)
	path, lengths := calculateLength(points, path, expectedLen)

	return &Curve{path: path, lengths: lengths}
}

// analyticArc matches the one shape that needs no flattening: a single
// segment of exactly 3 points typed PathPerfect whose circumcircle exists.
func analyticArc(points []PathControlPoint) (circularArc, bool) {
	if len(points) != 3 || !points[0].Typed || points[0].Kind != PathPerfect {
		return circularArc{}, false
	}
	if points[1].Typed || points[2].Typed {
		return circularArc{}, false
	}
	return circularArcProperties(points[0].Pos, points[1].Pos, points[2].Pos)
}

// TotalLength returns the corrected total length of the curve.
func (c *Curve) TotalLength() float32 {
	if c.arc != nil {
		return c.arcLen
	}
	if len(c.lengths) == 0 {
		return 0
	}
	return c.lengths[len(c.lengths)-1]
}

// PositionAt returns the point at the given fraction of the total length.
// progress is clamped to [0, 1].
func (c *Curve) PositionAt(progress float32) Pos2 {
	d := mgl32.Clamp(progress, 0, 1) * c.TotalLength()
	return c.PointAtDistance(d)
}

// PointAtDistance returns the point at arc-length distance d from the
// start of the path. Distances outside the path clamp to its endpoints;
// an empty curve returns the zero point.
func (c *Curve) PointAtDistance(d float32) Pos2 {
	if c.arc != nil {
		return c.arc.pointAt(mgl32.Clamp(d, 0, c.arcLen))
	}

	i := sort.Search(len(c.lengths), func(i int) bool { return c.lengths[i] >= d })
	return c.interpolateVertices(i, d)
}

func (c *Curve) interpolateVertices(i int, d float32) Pos2 {
	if len(c.path) == 0 {
		return Pos2{}
	}
	if i <= 0 {
		return c.path[0]
	}
	if i >= len(c.path) {
		return c.path[len(c.path)-1]
	}

	p0 := c.path[i-1]
	p1 := c.path[i]
	d0 := c.lengths[i-1]
	d1 := c.lengths[i]

	// Avoid division by an almost-zero number in case two points are
	// extremely close to each other.
	if abs32(d0-d1) <= float32Epsilon {
		return p0
	}

	w := (d - d0) / (d1 - d0)
	return p0.Add(p1.Sub(p0).Mul(w))
}
