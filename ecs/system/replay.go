package system

import "github.com/jakecoffman/cp"

// ReplayTouchIDBase is the first touch id used by ReplaySource, far from the
// ids platforms hand out.
const ReplayTouchIDBase = 1000

// ReplaySource plays recorded strokes back as touches: one sample per
// frame, then a frame with the touch lifted.
type ReplaySource struct {
	frames [][]TouchPoint
	next   int
}

// NewReplaySource converts strokes (Y-up screen pixels) to image-space
// touch frames.
func NewReplaySource(strokes [][]cp.Vector, viewportH float64) *ReplaySource {
	var frames [][]TouchPoint
	for i, stroke := range strokes {
		id := ReplayTouchIDBase + i
		for _, p := range stroke {
			frames = append(frames, []TouchPoint{{ID: id, X: p.X, Y: viewportH - p.Y}})
		}
		frames = append(frames, nil)
	}
	return &ReplaySource{frames: frames}
}

func (r *ReplaySource) Touches() []TouchPoint {
	if r.Done() {
		return nil
	}
	f := r.frames[r.next]
	r.next++
	return f
}

// Done reports whether every frame was played.
func (r *ReplaySource) Done() bool {
	return r.next >= len(r.frames)
}

// Frames is the number of frames the replay takes.
func (r *ReplaySource) Frames() int {
	return len(r.frames)
}

// MultiSource merges the touches of several sources.
type MultiSource []TouchSource

func (m MultiSource) Touches() []TouchPoint {
	var out []TouchPoint
	for _, s := range m {
		if s == nil {
			continue
		}
		out = append(out, s.Touches()...)
	}
	return out
}
