package component

// Transform is an entity's on-screen pose in image space (Y-down pixels).
// Rotation is clockwise radians, the way ebiten.GeoM rotates.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
