package system

import (
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/ecs"
)

type scriptedSource struct {
	frames [][]TouchPoint
	next   int
}

func (s *scriptedSource) Touches() []TouchPoint {
	if s.next >= len(s.frames) {
		return nil
	}
	f := s.frames[s.next]
	s.next++
	return f
}

type recordedTouch struct {
	Phase TouchPhase
	ID    int
	Pos   cp.Vector
	Prev  cp.Vector
}

type recordingHandler struct {
	accept func(id int) bool
	got    []recordedTouch
}

func (h *recordingHandler) OnTouchBegin(w *ecs.World, ev TouchEvent) bool {
	ok := h.accept == nil || h.accept(ev.ID)
	if ok {
		h.got = append(h.got, recordedTouch{ev.Phase, ev.ID, ev.Pos, ev.Prev})
	}
	return ok
}

func (h *recordingHandler) OnTouchMove(w *ecs.World, ev TouchEvent) {
	h.got = append(h.got, recordedTouch{ev.Phase, ev.ID, ev.Pos, ev.Prev})
}

func (h *recordingHandler) OnTouchEnd(w *ecs.World, ev TouchEvent) {
	h.got = append(h.got, recordedTouch{ev.Phase, ev.ID, ev.Pos, ev.Prev})
}

func runDispatcher(frames [][]TouchPoint, handler *recordingHandler) {
	src := &scriptedSource{frames: frames}
	d := NewTouchDispatcher(src, handler, 100)
	w := ecs.NewWorld()
	for range frames {
		d.Update(w)
	}
	// one more frame with nothing held releases everything
	d.Update(w)
}

func TestTouchDispatcher(t *testing.T) {
	tests := []struct {
		name   string
		frames [][]TouchPoint
		accept func(int) bool
		want   []recordedTouch
	}{
		{
			name: "begin_move_end_flips_y",
			frames: [][]TouchPoint{
				{{ID: 1, X: 10, Y: 90}},
				{{ID: 1, X: 20, Y: 80}},
			},
			want: []recordedTouch{
				{TouchBegan, 1, cp.Vector{X: 10, Y: 10}, cp.Vector{X: 10, Y: 10}},
				{TouchMoved, 1, cp.Vector{X: 20, Y: 20}, cp.Vector{X: 10, Y: 10}},
				{TouchEnded, 1, cp.Vector{X: 20, Y: 20}, cp.Vector{X: 20, Y: 20}},
			},
		},
		{
			name: "stationary_touch_has_no_moves",
			frames: [][]TouchPoint{
				{{ID: 3, X: 5, Y: 5}},
				{{ID: 3, X: 5, Y: 5}},
				{{ID: 3, X: 5, Y: 5}},
			},
			want: []recordedTouch{
				{TouchBegan, 3, cp.Vector{X: 5, Y: 95}, cp.Vector{X: 5, Y: 95}},
				{TouchEnded, 3, cp.Vector{X: 5, Y: 95}, cp.Vector{X: 5, Y: 95}},
			},
		},
		{
			name: "unclaimed_touch_never_moves_or_ends",
			frames: [][]TouchPoint{
				{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 50, Y: 50}},
				{{ID: 1, X: 1, Y: 0}, {ID: 2, X: 60, Y: 50}},
			},
			accept: func(id int) bool { return id == 1 },
			want: []recordedTouch{
				{TouchBegan, 1, cp.Vector{X: 0, Y: 100}, cp.Vector{X: 0, Y: 100}},
				{TouchMoved, 1, cp.Vector{X: 1, Y: 100}, cp.Vector{X: 0, Y: 100}},
				{TouchEnded, 1, cp.Vector{X: 1, Y: 100}, cp.Vector{X: 1, Y: 100}},
			},
		},
		{
			name: "refused_touch_is_not_offered_again_while_held",
			frames: [][]TouchPoint{
				{{ID: 4, X: 0, Y: 0}},
				{{ID: 4, X: 10, Y: 0}},
			},
			accept: func(int) bool { return false },
			want:   nil,
		},
		{
			name: "released_touch_can_begin_again",
			frames: [][]TouchPoint{
				{{ID: MouseTouchID, X: 0, Y: 50}},
				{},
				{{ID: MouseTouchID, X: 30, Y: 50}},
			},
			want: []recordedTouch{
				{TouchBegan, MouseTouchID, cp.Vector{X: 0, Y: 50}, cp.Vector{X: 0, Y: 50}},
				{TouchEnded, MouseTouchID, cp.Vector{X: 0, Y: 50}, cp.Vector{X: 0, Y: 50}},
				{TouchBegan, MouseTouchID, cp.Vector{X: 30, Y: 50}, cp.Vector{X: 30, Y: 50}},
				{TouchEnded, MouseTouchID, cp.Vector{X: 30, Y: 50}, cp.Vector{X: 30, Y: 50}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{accept: tt.accept}
			runDispatcher(tt.frames, h)
			if !reflect.DeepEqual(h.got, tt.want) {
				t.Fatalf("events:\n got %+v\nwant %+v", h.got, tt.want)
			}
		})
	}
}

func TestTouchPhaseString(t *testing.T) {
	if TouchBegan.String() != "began" || TouchMoved.String() != "moved" || TouchEnded.String() != "ended" {
		t.Fatalf("unexpected phase names")
	}
	if TouchPhase(9).String() != "unknown" {
		t.Fatalf("unexpected name for invalid phase")
	}
}
