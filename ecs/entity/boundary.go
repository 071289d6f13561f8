package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
)

// BuildBoundary adds four static walls on the space's static body along the
// edges of a width x height world-unit box with its corner at the origin.
// thickness is the segment radius.
func BuildBoundary(space *cp.Space, width, height, thickness float64, friction float64) []*cp.Shape {
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},           // bottom
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}}, // top
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: 0, Y: 0}},          // left
		{a: cp.Vector{X: width, Y: height}, b: cp.Vector{X: width, Y: 0}},  // right
	}
	shapes := make([]*cp.Shape, 0, len(segments))
	for _, seg := range segments {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(friction)
		space.AddShape(shape)
		shapes = append(shapes, shape)
	}
	return shapes
}

// NewBoundaryEntity tags the static walls so queries can find them.
func NewBoundaryEntity(w *ecs.World, space *cp.Space, shapes []*cp.Shape) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BoundaryTagComponent.Kind(), &component.BoundaryTag{}); err != nil {
		return 0, fmt.Errorf("boundary: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   space.StaticBody,
		Shapes: shapes,
	}); err != nil {
		return 0, fmt.Errorf("boundary: add physics body: %w", err)
	}
	for _, shape := range shapes {
		shape.UserData = e
	}
	return e, nil
}
