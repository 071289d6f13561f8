package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b cp.Vector) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b cp.Vector) cp.Vector {
	return cp.Vector{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
