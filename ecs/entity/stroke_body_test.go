package entity

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
	"github.com/milk9111/inkfall/ecs/component"
)

const eps = 1e-9

func testOptions() StrokeOptions {
	return StrokeOptions{
		Units:       common.Units{Scale: 32},
		BrushRadius: 16,
		BrushHeight: 32,
		Material:    component.DefaultMaterial,
	}
}

func pts(xy ...float64) []cp.Vector {
	out := make([]cp.Vector, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, cp.Vector{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func countKinds(fs []component.Fixture) (circles, boxes int) {
	for _, f := range fs {
		switch f.Kind {
		case component.FixtureCircle:
			circles++
		case component.FixtureBox:
			boxes++
		}
	}
	return circles, boxes
}

func TestBuildStrokeBodyFixtureCounts(t *testing.T) {
	cases := []struct {
		name      string
		points    []cp.Vector
		wantBoxes int
	}{
		{"single_point", pts(100, 100), 0},
		{"two_long_segments", pts(0, 0, 50, 0, 100, 0), 2},
		{"no_skips_five_points", pts(0, 0, 20, 0, 40, 0, 60, 10, 80, 30), 4},
		{"short_pairs_merged", pts(0, 0, 5, 0, 10, 0, 40, 0), 1},
		{"short_final_pair_kept", pts(0, 0, 40, 0, 45, 0), 2},
		{"exactly_radius_kept", pts(0, 0, 16, 0, 50, 0), 2},
		{"all_short_only_final", pts(0, 0, 1, 0, 2, 0, 3, 0), 1},
		{"duplicate_final_point", pts(0, 0, 40, 0, 40, 0), 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := cp.NewSpace()
			sb := BuildStrokeBody(space, c.points, testOptions())

			circles, boxes := countKinds(sb.Fixtures)
			if circles != 2 {
				t.Fatalf("circles = %d, want 2", circles)
			}
			if boxes != c.wantBoxes {
				t.Fatalf("boxes = %d, want %d", boxes, c.wantBoxes)
			}
			if sb.Boxes() != c.wantBoxes {
				t.Fatalf("Boxes() = %d, want %d", sb.Boxes(), c.wantBoxes)
			}
			if len(sb.Shapes) != len(sb.Fixtures) {
				t.Fatalf("shapes %d != fixtures %d", len(sb.Shapes), len(sb.Fixtures))
			}
		})
	}
}

func TestBuildStrokeBodyNoSkipsYieldsNPlusOne(t *testing.T) {
	points := pts(0, 0, 30, 0, 60, 0, 90, 0, 120, 0, 150, 0)
	sb := BuildStrokeBody(cp.NewSpace(), points, testOptions())
	if len(sb.Fixtures) != len(points)+1 {
		t.Fatalf("fixtures = %d, want %d", len(sb.Fixtures), len(points)+1)
	}
}

func TestBuildStrokeBodySinglePoint(t *testing.T) {
	space := cp.NewSpace()
	sb := BuildStrokeBody(space, pts(100, 100), testOptions())

	pos := sb.Body.Position()
	if !near(pos.X, 100.0/32) || !near(pos.Y, 100.0/32) {
		t.Fatalf("body position = %v, want toWorld(100,100)", pos)
	}
	a, b := sb.Fixtures[0], sb.Fixtures[1]
	if a.Center != b.Center {
		t.Fatalf("circles should coincide: %v vs %v", a.Center, b.Center)
	}
	if !near(a.Center.X, 0) || !near(a.Center.Y, 0) {
		t.Fatalf("circle offset = %v, want zero", a.Center)
	}
	if a.Radius != 0.5 {
		t.Fatalf("radius = %v, want 0.5", a.Radius)
	}
}

func TestBuildStrokeBodyBoxGeometry(t *testing.T) {
	sb := BuildStrokeBody(cp.NewSpace(), pts(0, 0, 50, 0, 100, 0), testOptions())
	boxes := sb.Fixtures[2:]

	wantCenters := []float64{25.0 / 32, 75.0 / 32}
	for i, f := range boxes {
		if f.Kind != component.FixtureBox {
			t.Fatalf("fixture %d kind = %v", i+2, f.Kind)
		}
		if !near(f.Center.X, wantCenters[i]) || !near(f.Center.Y, 0) {
			t.Fatalf("box %d center = %v, want (%v, 0)", i, f.Center, wantCenters[i])
		}
		if !near(f.HalfWidth, 50.0/32/2) {
			t.Fatalf("box %d half width = %v", i, f.HalfWidth)
		}
		if !near(f.HalfHeight, 0.5) {
			t.Fatalf("box %d half height = %v", i, f.HalfHeight)
		}
		if f.Angle != 0 {
			t.Fatalf("box %d angle = %v", i, f.Angle)
		}
		if len(f.Verts) != 4 {
			t.Fatalf("box %d has %d verts", i, len(f.Verts))
		}
	}
	last := sb.Fixtures[1]
	if !near(last.Center.X, 100.0/32) {
		t.Fatalf("end circle offset = %v", last.Center)
	}
}

func TestBuildStrokeBodyVerticalBoxAngle(t *testing.T) {
	sb := BuildStrokeBody(cp.NewSpace(), pts(0, 0, 0, 50), testOptions())
	box := sb.Fixtures[2]
	if !near(box.Angle, math.Pi/2) {
		t.Fatalf("angle = %v, want pi/2", box.Angle)
	}
	// A vertical box is tall, not wide.
	for _, v := range box.Verts {
		if math.Abs(v.X) > 0.5+eps {
			t.Fatalf("vertex %v outside brush half height", v)
		}
	}
}

func TestBuildStrokeBodyMaterialAndMass(t *testing.T) {
	opts := testOptions()
	opts.Material = component.Material{Density: 2, Friction: 0.7, Restitution: 0.3}
	space := cp.NewSpace()
	sb := BuildStrokeBody(space, pts(10, 10, 60, 10), opts)

	for i, s := range sb.Shapes {
		if s.Friction() != 0.7 {
			t.Fatalf("shape %d friction = %v", i, s.Friction())
		}
		if s.Elasticity() != 0.3 {
			t.Fatalf("shape %d elasticity = %v", i, s.Elasticity())
		}
		if sb.Fixtures[i].Material != opts.Material {
			t.Fatalf("fixture %d material = %+v", i, sb.Fixtures[i].Material)
		}
	}
	if sb.Body.Mass() <= 0 {
		t.Fatalf("mass = %v, want positive", sb.Body.Mass())
	}
	// Accumulating mass must not move the body origin.
	pos := sb.Body.Position()
	if !near(pos.X, 10.0/32) || !near(pos.Y, 10.0/32) {
		t.Fatalf("body moved to %v", pos)
	}
	if sb.Body.GetType() != cp.BODY_DYNAMIC {
		t.Fatalf("body type = %v, want dynamic", sb.Body.GetType())
	}
}

func TestBuildStrokeBodyCoincidentFinalPoint(t *testing.T) {
	space := cp.NewSpace()
	sb := BuildStrokeBody(space, pts(0, 0, 40, 0, 40, 0), testOptions())
	box := sb.Fixtures[len(sb.Fixtures)-1]
	if box.Kind != component.FixtureBox {
		t.Fatalf("last fixture kind = %v", box.Kind)
	}
	if box.HalfWidth <= 0 {
		t.Fatalf("degenerate box must keep a positive half width, got %v", box.HalfWidth)
	}
	// The space must still step with the thin box attached.
	space.SetGravity(common.Gravity)
	for i := 0; i < 10; i++ {
		space.Step(1.0 / 60)
	}
	p := sb.Body.Position()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Fatalf("body position became NaN")
	}
}

func TestBuildStrokeBodyEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty stroke")
		}
	}()
	BuildStrokeBody(cp.NewSpace(), nil, testOptions())
}

func TestBoxCorners(t *testing.T) {
	corners := boxCorners(cp.Vector{X: 1, Y: 1}, 2, 1, math.Pi/2)
	want := []cp.Vector{{X: 2, Y: -1}, {X: 2, Y: 3}, {X: 0, Y: 3}, {X: 0, Y: -1}}
	for i := range want {
		if !near(corners[i].X, want[i].X) || !near(corners[i].Y, want[i].Y) {
			t.Fatalf("corner %d = %v, want %v", i, corners[i], want[i])
		}
	}
}
