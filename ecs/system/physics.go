package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
	"github.com/milk9111/inkfall/ecs"
	"github.com/milk9111/inkfall/ecs/component"
	"github.com/milk9111/inkfall/ecs/entity"
	"github.com/milk9111/inkfall/prefabs"
)

const defaultStep = 1.0 / 60.0

// PhysicsConfig sizes and tunes the simulation. Viewport sizes are pixels.
type PhysicsConfig struct {
	Units              common.Units
	Gravity            cp.Vector
	Iterations         int
	Substeps           int
	SleepTimeThreshold float64
	WallThickness      float64
	WallFriction       float64
	ViewportW          float64
	ViewportH          float64
}

// DefaultPhysicsConfig returns the stock tuning for a viewport.
func DefaultPhysicsConfig(viewportW, viewportH float64) PhysicsConfig {
	return PhysicsConfig{
		Units:              common.Units{Scale: common.PTMRatio},
		Gravity:            common.Gravity,
		Iterations:         8,
		Substeps:           1,
		SleepTimeThreshold: 0.5,
		WallThickness:      0.25,
		WallFriction:       component.DefaultMaterial.Friction,
		ViewportW:          viewportW,
		ViewportH:          viewportH,
	}
}

// PhysicsConfigFromSpec maps the physics section of sketch.yaml.
func PhysicsConfigFromSpec(spec *prefabs.SketchSpec) PhysicsConfig {
	cfg := DefaultPhysicsConfig(float64(spec.Viewport.Width), float64(spec.Viewport.Height))
	p := spec.Physics
	cfg.Units = common.Units{Scale: p.PTMRatio}
	if p.Gravity != nil {
		cfg.Gravity = cp.Vector{X: p.Gravity.X, Y: p.Gravity.Y}
	}
	cfg.Iterations = p.Iterations
	cfg.Substeps = p.Substeps
	cfg.SleepTimeThreshold = p.SleepTimeThreshold
	cfg.WallThickness = p.WallThickness
	if spec.Material.Friction != nil {
		cfg.WallFriction = *spec.Material.Friction
	}
	return cfg
}

// PhysicsSystem owns the Chipmunk space: gravity, the four walls around the
// viewport and every stroke body. Bodies are never removed.
type PhysicsSystem struct {
	cfg      PhysicsConfig
	space    *cp.Space
	boundary []*cp.Shape
	stepping bool
	dt       float64
}

// NewPhysicsSystem builds the space and the boundary walls.
func NewPhysicsSystem(cfg PhysicsConfig) *PhysicsSystem {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cfg.Gravity)
	space.SleepTimeThreshold = cfg.SleepTimeThreshold

	width := cfg.Units.ToWorld(cfg.ViewportW)
	height := cfg.Units.ToWorld(cfg.ViewportH)
	boundary := entity.BuildBoundary(space, width, height, cfg.WallThickness, cfg.WallFriction)

	log.Printf("PhysicsWorld: %.1fx%.1f units, gravity %.2f,%.2f, %d iterations x %d substeps",
		width, height, cfg.Gravity.X, cfg.Gravity.Y, cfg.Iterations, cfg.Substeps)

	return &PhysicsSystem{
		cfg:      cfg,
		space:    space,
		boundary: boundary,
		dt:       defaultStep,
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Units() common.Units {
	return ps.cfg.Units
}

// SetTimeStep changes the dt used by Update.
func (ps *PhysicsSystem) SetTimeStep(dt float64) {
	if dt > 0 {
		ps.dt = dt
	}
}

// Attach tags the boundary walls in w.
func (ps *PhysicsSystem) Attach(w *ecs.World) (ecs.Entity, error) {
	return entity.NewBoundaryEntity(w, ps.space, ps.boundary)
}

// Bodies returns every dynamic body in the space.
func (ps *PhysicsSystem) Bodies() []*cp.Body {
	var bodies []*cp.Body
	ps.space.EachBody(func(body *cp.Body) {
		if body.GetType() == cp.BODY_DYNAMIC {
			bodies = append(bodies, body)
		}
	})
	return bodies
}

// Step advances the simulation by dt in Substeps equal slices.
func (ps *PhysicsSystem) Step(dt float64) {
	if ps.stepping {
		panic("system: physics step while stepping")
	}
	if dt <= 0 {
		return
	}
	ps.stepping = true
	defer func() { ps.stepping = false }()

	h := dt / float64(ps.cfg.Substeps)
	for i := 0; i < ps.cfg.Substeps; i++ {
		ps.space.Step(h)
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Step(ps.dt)
	ps.syncTransforms(w)
}

// syncTransforms writes each body's pose into its entity Transform in image
// space. Chipmunk angles are counter-clockwise with Y-up, ebiten rotates
// clockwise with Y-down, so the angle is negated.
func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		pos := ps.cfg.Units.ToScreenVec(pb.Body.Position())
		angle := pb.Body.Angle()
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(angle) {
			log.Printf("PhysicsWorld: entity %d has an invalid pose", e)
			return
		}
		t.X = pos.X
		t.Y = ps.cfg.ViewportH - pos.Y
		t.Rotation = -angle
	})
}
