package sliderpath

import "slices"

// PathType selects the approximator for one segment of control points.
type PathType uint8

const (
	PathBezier PathType = iota
	PathLinear
	PathCatmull
	PathPerfect
)

// PathControlPoint is one authored anchor of a slider path. Typed marks
// that a new segment of type Kind begins at this point; an untyped leading
// point falls back to PathLinear. The parser also sets Typed to force a
// segment boundary where two consecutive raw points coincide.
type PathControlPoint struct {
	Pos   Pos2
	Kind  PathType
	Typed bool
}

// calculatePath splits the control points into typed segments, approximates
// each and concatenates the results into a single polyline. Consecutive
// exactly-equal vertices are removed so the length table never sees a
// zero-length span.
func calculatePath(points []PathControlPoint) []Pos2 {
	if len(points) == 0 {
		return nil
	}

	vertices := make([]Pos2, len(points))
	for i := range points {
		vertices[i] = points[i].Pos
	}

	var path []Pos2
	start := 0

	for i := range points {
		// A typed point (or the final point) ends the current segment.
		if !points[i].Typed && i < len(points)-1 {
			continue
		}

		kind := PathLinear
		if points[start].Typed {
			kind = points[start].Kind
		}
		path = appendSubpath(path, vertices[start:i+1], kind)

		// The next segment starts at the point that ended this one.
		start = i
	}

	return slices.Compact(path)
}

func appendSubpath(path []Pos2, sub []Pos2, kind PathType) []Pos2 {
	switch kind {
	case PathLinear:
		return append(path, sub...)
	case PathCatmull:
		return appendCatmull(path, sub)
	case PathPerfect:
		// Perfect circles are defined by exactly 3 points; anything else
		// is treated as a Bezier, like osu!stable does.
		if len(sub) == 3 {
			return appendCircularArc(path, sub[0], sub[1], sub[2])
		}
		return appendBezier(path, sub)
	default:
		return appendBezier(path, sub)
	}
}
