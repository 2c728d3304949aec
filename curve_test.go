package sliderpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func typed(x, y float32, kind PathType) PathControlPoint {
	return PathControlPoint{Pos: Pos2{x, y}, Kind: kind, Typed: true}
}

func anchor(x, y float32) PathControlPoint {
	return PathControlPoint{Pos: Pos2{x, y}}
}

func TestLinearMidpoint(t *testing.T) {
	c := New([]PathControlPoint{typed(0, 0, PathLinear), anchor(10, 0)}, 10)

	if got := c.PointAtDistance(5); got != (Pos2{5, 0}) {
		t.Errorf("point at distance 5 = %v, want (5, 0)", got)
	}
	if got := c.TotalLength(); got != 10 {
		t.Errorf("total length = %v, want 10", got)
	}
}

func TestEmptyControlPoints(t *testing.T) {
	c := New(nil, 10)

	if got := c.TotalLength(); got != 0 {
		t.Errorf("total length = %v, want 0", got)
	}
	if got := c.PointAtDistance(3); got != (Pos2{}) {
		t.Errorf("point at distance 3 = %v, want zero point", got)
	}
	if got := c.PositionAt(0.5); got != (Pos2{}) {
		t.Errorf("position at 0.5 = %v, want zero point", got)
	}
}

func TestQueryEndpoints(t *testing.T) {
	curves := map[string]*Curve{
		"linear":  New([]PathControlPoint{typed(0, 0, PathLinear), anchor(10, 0)}, 10),
		"bezier":  New([]PathControlPoint{typed(0, 0, PathBezier), anchor(5, 5), anchor(10, 0)}, 11.478),
		"catmull": New([]PathControlPoint{typed(0, 0, PathCatmull), anchor(10, 0), anchor(10, 10)}, 21),
	}

	for name, c := range curves {
		if got := c.PointAtDistance(0); got != (Pos2{0, 0}) {
			t.Errorf("%s: point at distance 0 = %v, want path start", name, got)
		}
		// The table clamps to its final vertex at and beyond the total.
		end := c.PointAtDistance(c.TotalLength())
		if got := c.PointAtDistance(c.TotalLength() + 100); got != end {
			t.Errorf("%s: point beyond total = %v, want clamped %v", name, got, end)
		}
	}
}

func TestPositionAtMatchesPointAtDistance(t *testing.T) {
	c := New([]PathControlPoint{typed(0, 0, PathBezier), anchor(5, 5), anchor(10, 0)}, 12)

	for _, p := range []float32{0, 0.25, 0.5, 0.75, 1} {
		want := c.PointAtDistance(p * c.TotalLength())
		if got := c.PositionAt(p); got != want {
			t.Errorf("position at %v = %v, want %v", p, got, want)
		}
	}
}

func TestPositionAtClamps(t *testing.T) {
	c := New([]PathControlPoint{typed(0, 0, PathLinear), anchor(10, 0)}, 10)

	if got := c.PositionAt(-0.5); got != c.PointAtDistance(0) {
		t.Errorf("position at -0.5 = %v, want path start", got)
	}
	if got := c.PositionAt(1.5); got != c.PointAtDistance(c.TotalLength()) {
		t.Errorf("position at 1.5 = %v, want path end", got)
	}
}

func TestQueryIdempotent(t *testing.T) {
	c := New([]PathControlPoint{typed(0, 0, PathBezier), anchor(5, 5), anchor(10, 0)}, 12)

	for _, d := range []float32{0, 3.7, 6, 12} {
		first := c.PointAtDistance(d)
		if second := c.PointAtDistance(d); second != first {
			t.Errorf("repeated query at %v: %v then %v", d, first, second)
		}
	}
}

func TestLengthTableInvariants(t *testing.T) {
	curves := map[string]*Curve{
		"linear":    New([]PathControlPoint{typed(0, 0, PathLinear), anchor(10, 0), anchor(10, 10)}, 20),
		"bezier":    New([]PathControlPoint{typed(0, 0, PathBezier), anchor(5, 5), anchor(10, 0)}, 12),
		"catmull":   New([]PathControlPoint{typed(0, 0, PathCatmull), anchor(10, 0), anchor(10, 10)}, 21),
		"truncated": New([]PathControlPoint{typed(0, 0, PathLinear), anchor(10, 0), anchor(20, 0)}, 5),
	}

	for name, c := range curves {
		if len(c.lengths) != len(c.path) {
			t.Errorf("%s: %d lengths for %d vertices", name, len(c.lengths), len(c.path))
		}
		if len(c.lengths) > 0 && c.lengths[0] != 0 {
			t.Errorf("%s: first length = %v, want 0", name, c.lengths[0])
		}
		for i := 1; i < len(c.lengths); i++ {
			if c.lengths[i] < c.lengths[i-1] {
				t.Errorf("%s: lengths decrease at %d: %v < %v", name, i, c.lengths[i], c.lengths[i-1])
			}
		}
	}
}

func TestDuplicateControlPointsDeduped(t *testing.T) {
	c := New([]PathControlPoint{
		typed(0, 0, PathLinear), anchor(5, 0), anchor(5, 0), anchor(10, 0),
	}, 10)

	for i := 1; i < len(c.path); i++ {
		if c.path[i] == c.path[i-1] {
			t.Errorf("adjacent duplicate vertex at %d: %v", i, c.path[i])
		}
	}
	if got := c.PointAtDistance(5); got != (Pos2{5, 0}) {
		t.Errorf("point at distance 5 = %v, want (5, 0)", got)
	}
}
