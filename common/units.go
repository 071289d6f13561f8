package common

import "github.com/jakecoffman/cp"

// PTMRatio is the default number of screen pixels per physics world unit.
const PTMRatio = 32.0

// Gravity is the default world gravity, Y-up, in world units per second squared.
var Gravity = cp.Vector{X: 0, Y: -9.8}

// Units converts between screen pixels and physics world units.
// The zero value uses PTMRatio.
type Units struct {
	Scale float64
}

func (u Units) scale() float64 {
	if u.Scale <= 0 {
		return PTMRatio
	}
	return u.Scale
}

// ToWorld converts a screen length to world units.
func (u Units) ToWorld(n float64) float64 {
	return n / u.scale()
}

// ToScreen converts a world length to screen pixels.
func (u Units) ToScreen(n float64) float64 {
	return n * u.scale()
}

// ToWorldVec converts a screen point to world units.
func (u Units) ToWorldVec(p cp.Vector) cp.Vector {
	return p.Mult(1 / u.scale())
}

// ToScreenVec converts a world point to screen pixels.
func (u Units) ToScreenVec(p cp.Vector) cp.Vector {
	return p.Mult(u.scale())
}

// ToWorld converts using the default PTMRatio.
func ToWorld(n float64) float64 {
	return Units{}.ToWorld(n)
}

// ToScreen converts using the default PTMRatio.
func ToScreen(n float64) float64 {
	return Units{}.ToScreen(n)
}
