package entity

import (
	"fmt"

	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
)

// NewStrokeEntity registers a finished stroke body and its sprite with the
// world. The transform is filled in by the physics system each frame.
func NewStrokeEntity(w *ecs.World, sb *StrokeBody, sprite component.Sprite, points int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:     sb.Body,
		Shapes:   sb.Shapes,
		Fixtures: sb.Fixtures,
	}); err != nil {
		return 0, fmt.Errorf("stroke: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("stroke: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return 0, fmt.Errorf("stroke: add sprite: %w", err)
	}

	if err := ecs.Add(w, e, component.StrokeTagComponent.Kind(), &component.StrokeTag{Points: points}); err != nil {
		return 0, fmt.Errorf("stroke: add tag: %w", err)
	}

	for _, shape := range sb.Shapes {
		shape.UserData = e
	}
	return e, nil
}
