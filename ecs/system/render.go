package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"github.com/milk9111/inkfall/ecs/render"
)

type RenderSystem struct {
	Background color.Color
	// Canvas returns the stroke being drawn, nil when idle.
	Canvas func() *render.Canvas
}

func NewRenderSystem(background color.Color, canvas func() *render.Canvas) *RenderSystem {
	return &RenderSystem{Background: background, Canvas: canvas}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if r.Background != nil {
		screen.Fill(r.Background)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Hidden {
			continue
		}
		screen.DrawImage(s.Image, SpriteDrawOptions(t, s))
	}

	if r.Canvas == nil {
		return
	}
	if canvas := r.Canvas(); canvas != nil {
		if img := canvas.Image(); img != nil {
			screen.DrawImage(img, &ebiten.DrawImageOptions{})
		}
	}
}

// SpriteDrawOptions places the sprite pivot on the transform position and
// rotates around it.
func SpriteDrawOptions(t *component.Transform, s *component.Sprite) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	ox, oy := s.Origin()
	op.GeoM.Translate(-ox, -oy)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.Filter = ebiten.FilterLinear
	return op
}
