package sliderpath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pos2 is a playfield position or direction vector. It is an alias of
// mgl32.Vec2, so two positions compare equal with == exactly when their
// coordinates are bit-equal; duplicate detection relies on that.
type Pos2 = mgl32.Vec2

// Machine epsilon of a float32; differences inside it count as equal.
const float32Epsilon = 1.1920929e-7

// cross returns the z component of the 2-D cross product a×b.
func cross(a, b Pos2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// unitAt returns the point of the unit circle at angle theta.
func unitAt(theta float32) Pos2 {
	s, c := math.Sincos(float64(theta))
	return Pos2{float32(c), float32(s)}
}
