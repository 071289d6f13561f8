package system

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"github.com/milk9111/inkfall/ecs/entity"
	"github.com/milk9111/inkfall/ecs/render"
)

type sessionState int

const (
	sessionIdle sessionState = iota
	sessionDrawing
)

// TouchSessionConfig wires a session to its canvas and sprite backends.
type TouchSessionConfig struct {
	ViewportW  int
	ViewportH  int
	Brush      *render.Brush
	Material   component.Material
	NewSurface render.SurfaceFactory
	// NewTexture uploads sprite pixels; nil means ebiten.NewImageFromImage.
	NewTexture func(image.Image) *ebiten.Image
}

// TouchSession records one stroke at a time on a fresh canvas and turns it
// into a falling body when the touch lifts.
type TouchSession struct {
	cfg     TouchSessionConfig
	physics *PhysicsSystem

	state   sessionState
	touchID int
	canvas  *render.Canvas
}

func NewTouchSession(cfg TouchSessionConfig, physics *PhysicsSystem) *TouchSession {
	if cfg.NewSurface == nil {
		cfg.NewSurface = render.NewEbitenSurface
	}
	return &TouchSession{cfg: cfg, physics: physics}
}

// SetMaterial changes the material used for the next stroke.
func (s *TouchSession) SetMaterial(m component.Material) {
	s.cfg.Material = m
}

// Drawing reports whether a stroke is in progress.
func (s *TouchSession) Drawing() bool {
	return s.state == sessionDrawing
}

// Canvas is the live canvas while drawing, nil otherwise.
func (s *TouchSession) Canvas() *render.Canvas {
	return s.canvas
}

// OnTouchBegin starts a stroke. A second touch while drawing is refused.
func (s *TouchSession) OnTouchBegin(w *ecs.World, ev TouchEvent) bool {
	if s.state != sessionIdle {
		return false
	}

	surface := s.cfg.NewSurface(s.cfg.ViewportW, s.cfg.ViewportH, s.cfg.Brush)
	s.canvas = render.NewCanvas(surface)
	s.canvas.Reset()
	s.canvas.StampAt(ev.Pos)

	s.touchID = ev.ID
	s.state = sessionDrawing
	return true
}

func (s *TouchSession) OnTouchMove(w *ecs.World, ev TouchEvent) {
	s.mustOwn(ev, "move")
	s.canvas.StampLine(ev.Prev, ev.Pos)
}

// OnTouchEnd builds the body and sprite for the finished stroke and
// releases the canvas.
func (s *TouchSession) OnTouchEnd(w *ecs.World, ev TouchEvent) {
	s.mustOwn(ev, "end")
	defer s.finish()

	points := s.canvas.Points()
	units := s.physics.Units()

	sb := entity.BuildStrokeBody(s.physics.Space(), points, entity.StrokeOptions{
		Units:       units,
		BrushRadius: s.cfg.Brush.Radius,
		BrushHeight: s.cfg.Brush.Height,
		Material:    s.cfg.Material,
	})

	sprite := entity.BuildStrokeSprite(sb.Body, sb.Fixtures, s.canvas.Snapshot(), entity.SpriteOptions{
		Units:       units,
		ViewportH:   float64(s.cfg.ViewportH),
		BrushRadius: s.cfg.Brush.Radius,
		NewTexture:  s.cfg.NewTexture,
	})
	sprite.Hidden = DebugEnabled(w)

	e, err := entity.NewStrokeEntity(w, sb, sprite, len(points))
	if err != nil {
		log.Printf("TouchSession: spawn stroke entity: %v", err)
		return
	}

	// place the sprite before the first physics sync
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos := units.ToScreenVec(sb.Body.Position())
		t.X = pos.X
		t.Y = float64(s.cfg.ViewportH) - pos.Y
		t.Rotation = -sb.Body.Angle()
	}

	w.Events().Push(ecs.Event{
		Type: ecs.EventStrokeBody,
		Data: ecs.StrokeBodyEvent{Entity: e, Points: len(points), Fixtures: len(sb.Fixtures)},
	})
	log.Printf("TouchSession: new body from %d points (%d boxes)", len(points), sb.Boxes())
}

func (s *TouchSession) finish() {
	if s.canvas != nil {
		s.canvas.Dispose()
	}
	s.canvas = nil
	s.state = sessionIdle
}

func (s *TouchSession) mustOwn(ev TouchEvent, what string) {
	if s.state != sessionDrawing || ev.ID != s.touchID {
		panic(fmt.Sprintf("system: touch %s for inactive touch %d", what, ev.ID))
	}
}
