package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	debugOutline    = fcolor(colornames.Limegreen, 0.9)
	debugShape      = fcolor(colornames.Forestgreen, 0.5)
	debugSleeping   = fcolor(colornames.Slategray, 0.5)
	debugStatic     = fcolor(colornames.Gold, 0.7)
	debugConstraint = fcolor(colornames.Orange, 0.9)
	debugContact    = fcolor(colornames.Red, 0.9)
)

// DrawPhysicsDebug outlines every shape in space. World coordinates are
// scaled to pixels and Y is flipped against viewportH.
func DrawPhysicsDebug(space *cp.Space, units common.Units, viewportH float64, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	drawer := &physicsDebugDrawer{
		screen:    screen,
		units:     units,
		viewportH: viewportH,
	}
	cp.DrawSpace(space, drawer)
}

// DebugEnabled reports the DebugDraw singleton, false when absent.
func DebugEnabled(w *ecs.World) bool {
	e, ok := w.First(component.DebugDrawComponent.Kind())
	if !ok {
		return false
	}
	d, ok := ecs.Get(w, e, component.DebugDrawComponent.Kind())
	return ok && d.Enabled
}

// SetDebug stores the debug flag in w and hides stroke sprites while it is
// on, so only the physics outlines are visible.
func SetDebug(w *ecs.World, enabled bool) error {
	e, ok := w.First(component.DebugDrawComponent.Kind())
	if !ok {
		e = w.CreateEntity()
	}
	if err := ecs.Add(w, e, component.DebugDrawComponent.Kind(), &component.DebugDraw{Enabled: enabled}); err != nil {
		return err
	}
	ecs.ForEach2(w, component.StrokeTagComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, _ *component.StrokeTag, s *component.Sprite) {
		s.Hidden = enabled
	})
	return nil
}

type physicsDebugDrawer struct {
	screen    *ebiten.Image
	units     common.Units
	viewportH float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := pos.Add(cp.ForAngle(angle).Mult(radius))
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.toScreen(pos)
	vector.FillRect(d.screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return debugOutline
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	body := shape.Body()
	switch {
	case body.GetType() == cp.BODY_STATIC:
		return debugStatic
	case body.IsSleeping():
		return debugSleeping
	default:
		return debugShape
	}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return debugConstraint
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return debugContact
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	p := d.units.ToScreenVec(v)
	return p.X, d.viewportH - p.Y
}

func fcolor(c color.RGBA, alpha float32) cp.FColor {
	return cp.FColor{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: alpha,
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PhysicsDebugPass draws the physics outlines while debug is on.
type PhysicsDebugPass struct {
	Physics   *PhysicsSystem
	ViewportH float64
}

func (p *PhysicsDebugPass) Draw(w *ecs.World, screen *ebiten.Image) {
	if p == nil || p.Physics == nil || !DebugEnabled(w) {
		return
	}
	DrawPhysicsDebug(p.Physics.Space(), p.Physics.Units(), p.ViewportH, screen)
}
