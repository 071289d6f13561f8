package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
	"github.com/milk9111/inkfall/ecs/component"
)

// minHalfWidth keeps boxes for coincident points from collapsing into a
// zero-area polygon.
const minHalfWidth = 1e-3

// StrokeOptions carries everything the builders need besides the stroke.
type StrokeOptions struct {
	Units       common.Units
	BrushRadius float64 // pixels
	BrushHeight float64 // pixels
	Material    component.Material
}

// StrokeBody is the compound body synthesized from one stroke.
type StrokeBody struct {
	Body     *cp.Body
	Shapes   []*cp.Shape
	Fixtures []component.Fixture
}

// BuildStrokeBody turns stroke points (screen pixels, Y-up) into one
// dynamic body at the first point: a circle at each end of the stroke and
// an oriented box per retained pair of consecutive points. A pair shorter
// than the brush radius is merged into the next one unless it ends on the
// last point. Mass and moment come from the fixture densities.
func BuildStrokeBody(space *cp.Space, points []cp.Vector, opts StrokeOptions) *StrokeBody {
	if len(points) == 0 {
		panic("entity: build body from empty stroke")
	}
	if space == nil {
		panic("entity: build body without a space")
	}

	start := points[0]
	origin := opts.Units.ToWorldVec(start)

	body := cp.NewBody(0, 0)
	body.SetPosition(origin)
	space.AddBody(body)

	sb := &StrokeBody{Body: body}
	sb.addCircle(space, opts, origin, start)
	sb.addCircle(space, opts, origin, points[len(points)-1])

	last := len(points) - 1
	prev := start
	for i := 1; i <= last; i++ {
		cur := points[i]
		if common.Distance(prev, cur) < opts.BrushRadius && i != last {
			continue
		}
		sb.addBox(space, opts, origin, prev, cur)
		prev = cur
	}
	return sb
}

// Boxes counts the box fixtures.
func (sb *StrokeBody) Boxes() int {
	n := 0
	for _, f := range sb.Fixtures {
		if f.Kind == component.FixtureBox {
			n++
		}
	}
	return n
}

func (sb *StrokeBody) addCircle(space *cp.Space, opts StrokeOptions, origin, at cp.Vector) {
	f := component.Fixture{
		Kind:     component.FixtureCircle,
		Center:   opts.Units.ToWorldVec(at).Sub(origin),
		Radius:   opts.Units.ToWorld(opts.BrushRadius),
		Material: opts.Material,
	}
	shape := cp.NewCircle(sb.Body, f.Radius, f.Center)
	sb.attach(space, shape, f)
}

func (sb *StrokeBody) addBox(space *cp.Space, opts StrokeOptions, origin, from, to cp.Vector) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	f := component.Fixture{
		Kind:       component.FixtureBox,
		Center:     opts.Units.ToWorldVec(common.Midpoint(from, to)).Sub(origin),
		HalfWidth:  math.Max(opts.Units.ToWorld(common.Distance(from, to))/2, minHalfWidth),
		HalfHeight: opts.Units.ToWorld(opts.BrushHeight) / 2,
		Angle:      math.Atan2(dy, dx),
		Material:   opts.Material,
	}
	f.Verts = boxCorners(f.Center, f.HalfWidth, f.HalfHeight, f.Angle)
	shape := cp.NewPolyShape(sb.Body, len(f.Verts), f.Verts, cp.NewTransformIdentity(), 0)
	sb.attach(space, shape, f)
}

func (sb *StrokeBody) attach(space *cp.Space, shape *cp.Shape, f component.Fixture) {
	shape.SetFriction(f.Material.Friction)
	shape.SetElasticity(f.Material.Restitution)
	shape.SetDensity(f.Material.Density)
	space.AddShape(shape)
	sb.Shapes = append(sb.Shapes, shape)
	sb.Fixtures = append(sb.Fixtures, f)
}

// boxCorners returns the counter-clockwise corners of a box centered on
// center and rotated by angle.
func boxCorners(center cp.Vector, hw, hh, angle float64) []cp.Vector {
	rot := cp.ForAngle(angle)
	local := [4]cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	out := make([]cp.Vector, len(local))
	for i, v := range local {
		out[i] = center.Add(v.Rotate(rot))
	}
	return out
}
