package component

// BoundaryTag marks the static body holding the screen-edge walls.
type BoundaryTag struct{}

var BoundaryTagComponent = NewComponent[BoundaryTag]()

// StrokeTag marks entities created from a finished stroke.
type StrokeTag struct {
	Points int
}

var StrokeTagComponent = NewComponent[StrokeTag]()
