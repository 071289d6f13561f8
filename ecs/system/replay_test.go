package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/ecs/component"
)

func TestReplaySourceFrames(t *testing.T) {
	strokes := [][]cp.Vector{
		{{X: 10, Y: 20}, {X: 30, Y: 20}},
		{{X: 50, Y: 50}},
	}
	r := NewReplaySource(strokes, 100)
	if r.Frames() != 5 {
		t.Fatalf("frames = %d, want 5", r.Frames())
	}

	want := [][]TouchPoint{
		{{ID: ReplayTouchIDBase, X: 10, Y: 80}},
		{{ID: ReplayTouchIDBase, X: 30, Y: 80}},
		nil,
		{{ID: ReplayTouchIDBase + 1, X: 50, Y: 50}},
		nil,
	}
	for i, w := range want {
		got := r.Touches()
		if len(got) != len(w) {
			t.Fatalf("frame %d = %+v, want %+v", i, got, w)
		}
		for j := range w {
			if got[j] != w[j] {
				t.Fatalf("frame %d = %+v, want %+v", i, got, w)
			}
		}
	}
	if !r.Done() || r.Touches() != nil {
		t.Fatalf("replay should be exhausted")
	}
}

func TestMultiSourceMerges(t *testing.T) {
	a := &scriptedSource{frames: [][]TouchPoint{{{ID: 1}}}}
	b := &scriptedSource{frames: [][]TouchPoint{{{ID: 2}, {ID: 3}}}}
	got := MultiSource{a, nil, b}.Touches()
	if len(got) != 3 || got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("merged = %+v", got)
	}
}

func TestReplayDrivesSession(t *testing.T) {
	f := newSessionFixture()
	strokes := [][]cp.Vector{
		{{X: 100, Y: 300}, {X: 140, Y: 300}, {X: 180, Y: 300}},
		{{X: 400, Y: 300}},
		{{X: 500, Y: 200}, {X: 500, Y: 240}},
	}
	r := NewReplaySource(strokes, testViewportH)
	d := NewTouchDispatcher(r, f.session, testViewportH)
	for !r.Done() {
		d.Update(f.world)
		f.physics.Update(f.world)
	}

	if got := len(f.world.Query(component.StrokeTagComponent.Kind())); got != len(strokes) {
		t.Fatalf("strokes = %d, want %d", got, len(strokes))
	}
	if got := len(f.physics.Bodies()); got != len(strokes) {
		t.Fatalf("bodies = %d, want %d", got, len(strokes))
	}
	if f.session.Drawing() {
		t.Fatalf("session still drawing after replay")
	}
}
