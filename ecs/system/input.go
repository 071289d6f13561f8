package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/ecs"
)

// MouseTouchID is the pseudo touch id reported for the left mouse button.
const MouseTouchID = -1

type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TouchEvent is one touch update. Pos and Prev are screen pixels with the
// origin at the bottom-left (Y-up).
type TouchEvent struct {
	ID    int
	Phase TouchPhase
	Pos   cp.Vector
	Prev  cp.Vector
}

// TouchPoint is a raw sample in image space (Y-down) as the platform
// reports it.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchSource reports every touch currently held down.
type TouchSource interface {
	Touches() []TouchPoint
}

// TouchHandler receives targeted touches: only ids whose begin returned
// true get moves and the end.
type TouchHandler interface {
	OnTouchBegin(w *ecs.World, ev TouchEvent) bool
	OnTouchMove(w *ecs.World, ev TouchEvent)
	OnTouchEnd(w *ecs.World, ev TouchEvent)
}

// EbitenTouchSource reads Ebitengine touches and maps the left mouse
// button to MouseTouchID.
type EbitenTouchSource struct {
	ids []ebiten.TouchID
}

func NewEbitenTouchSource() *EbitenTouchSource {
	return &EbitenTouchSource{}
}

func (s *EbitenTouchSource) Touches() []TouchPoint {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	points := make([]TouchPoint, 0, len(s.ids)+1)
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, TouchPoint{ID: MouseTouchID, X: float64(x), Y: float64(y)})
	}
	return points
}

// TouchDispatcher turns per-frame touch samples into begin, move and end
// events for one handler.
type TouchDispatcher struct {
	source    TouchSource
	handler   TouchHandler
	viewportH float64

	last    map[int]cp.Vector
	claimed map[int]bool
}

func NewTouchDispatcher(source TouchSource, handler TouchHandler, viewportH float64) *TouchDispatcher {
	return &TouchDispatcher{
		source:    source,
		handler:   handler,
		viewportH: viewportH,
		last:      make(map[int]cp.Vector),
		claimed:   make(map[int]bool),
	}
}

func (d *TouchDispatcher) Update(w *ecs.World) {
	if d == nil || d.source == nil || d.handler == nil {
		return
	}

	seen := make(map[int]bool)
	for _, tp := range d.source.Touches() {
		seen[tp.ID] = true
		pos := cp.Vector{X: tp.X, Y: d.viewportH - tp.Y}

		prev, held := d.last[tp.ID]
		d.last[tp.ID] = pos
		if !held {
			ev := TouchEvent{ID: tp.ID, Phase: TouchBegan, Pos: pos, Prev: pos}
			if d.handler.OnTouchBegin(w, ev) {
				d.claimed[tp.ID] = true
			}
			continue
		}
		if !d.claimed[tp.ID] || prev == pos {
			continue
		}
		d.handler.OnTouchMove(w, TouchEvent{ID: tp.ID, Phase: TouchMoved, Pos: pos, Prev: prev})
	}

	released := make([]int, 0)
	for id := range d.last {
		if !seen[id] {
			released = append(released, id)
		}
	}
	sort.Ints(released)
	for _, id := range released {
		pos := d.last[id]
		delete(d.last, id)
		if !d.claimed[id] {
			continue
		}
		delete(d.claimed, id)
		d.handler.OnTouchEnd(w, TouchEvent{ID: id, Phase: TouchEnded, Pos: pos, Prev: pos})
	}
}

// Active reports whether id is held and claimed.
func (d *TouchDispatcher) Active(id int) bool {
	return d.claimed[id]
}
