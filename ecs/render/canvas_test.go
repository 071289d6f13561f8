package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

type recordingSurface struct {
	bounds   image.Rectangle
	stamps   []cp.Vector
	disposed bool
}

func (s *recordingSurface) Bounds() image.Rectangle { return s.bounds }
func (s *recordingSurface) Stamp(x, y float64)      { s.stamps = append(s.stamps, cp.Vector{X: x, Y: y}) }
func (s *recordingSurface) Snapshot() image.Image   { return image.NewRGBA(s.bounds) }
func (s *recordingSurface) Image() *ebiten.Image    { return nil }
func (s *recordingSurface) Dispose()                { s.disposed = true }

func newRecordingCanvas(w, h int) (*Canvas, *recordingSurface) {
	s := &recordingSurface{bounds: image.Rect(0, 0, w, h)}
	return NewCanvas(s), s
}

func solidBrush(size int) *Brush {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = 0xff
	}
	return NewBrush("solid", img)
}

func TestCanvasStampAtFlipsY(t *testing.T) {
	c, s := newRecordingCanvas(200, 100)
	c.StampAt(cp.Vector{X: 10, Y: 30})

	if len(c.Points()) != 1 || c.Points()[0] != (cp.Vector{X: 10, Y: 30}) {
		t.Fatalf("points = %v", c.Points())
	}
	if len(s.stamps) != 1 || s.stamps[0] != (cp.Vector{X: 10, Y: 70}) {
		t.Fatalf("stamps = %v, want image-space (10,70)", s.stamps)
	}
}

func TestCanvasStampLine(t *testing.T) {
	cases := []struct {
		name       string
		start, end cp.Vector
		wantStamps int
	}{
		{"horizontal_50", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 50, Y: 0}, 50},
		{"rounds_up", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 2.6, Y: 0}, 3},
		{"rounds_down", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 2.4, Y: 0}, 2},
		{"zero_length", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 5, Y: 5}, 0},
		{"diagonal", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 30, Y: 40}, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, s := newRecordingCanvas(100, 100)
			c.StampLine(tc.start, tc.end)

			if len(s.stamps) != tc.wantStamps {
				t.Fatalf("stamps = %d, want %d", len(s.stamps), tc.wantStamps)
			}
			if c.Stamps() != tc.wantStamps {
				t.Fatalf("Stamps() = %d, want %d", c.Stamps(), tc.wantStamps)
			}
			pts := c.Points()
			if len(pts) != 1 || pts[0] != tc.end {
				t.Fatalf("StampLine should append only end, got %v", pts)
			}
			if tc.wantStamps > 0 {
				first := s.stamps[0]
				if first.X != tc.start.X || first.Y != 100-tc.start.Y {
					t.Fatalf("first stamp at %v, want start", first)
				}
			}
		})
	}
}

func TestCanvasResetAndDispose(t *testing.T) {
	c, s := newRecordingCanvas(10, 10)
	c.StampAt(cp.Vector{X: 1, Y: 1})
	c.Reset()
	if len(c.Points()) != 0 {
		t.Fatalf("Reset should clear points")
	}

	c.Dispose()
	c.Dispose()
	if !s.disposed {
		t.Fatalf("surface should be disposed")
	}
	if c.Image() != nil {
		t.Fatalf("disposed canvas has no image")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("stamping a disposed canvas should panic")
		}
	}()
	c.StampAt(cp.Vector{X: 2, Y: 2})
}

func TestRasterSurfaceStampAndSnapshot(t *testing.T) {
	brush := solidBrush(4)
	if brush.Radius != 2 || brush.Height != 4 {
		t.Fatalf("brush radius/height = %v/%v", brush.Radius, brush.Height)
	}

	surface := NewRasterSurface(20, 20, brush)
	c := NewCanvas(surface)
	// screen (10,10) is image (10,10) on a 20px tall canvas
	c.StampAt(cp.Vector{X: 10, Y: 10})

	snap := c.Snapshot()
	if _, _, _, a := snap.At(10, 10).RGBA(); a == 0 {
		t.Fatalf("stamp center should be painted")
	}
	if _, _, _, a := snap.At(1, 1).RGBA(); a != 0 {
		t.Fatalf("far pixel should be untouched")
	}

	// The snapshot must not change when painting continues.
	c.StampAt(cp.Vector{X: 2, Y: 18})
	if _, _, _, a := snap.At(2, 2).RGBA(); a != 0 {
		t.Fatalf("snapshot changed after later stamp")
	}
	if _, _, _, a := c.Snapshot().At(2, 2).RGBA(); a == 0 {
		t.Fatalf("later stamp should be visible in a new snapshot")
	}
}

func TestNewBrushRadiusUsesLargerSide(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 24))
	img.Set(0, 0, color.White)
	b := NewBrush("tall", img)
	if b.Radius != 12 {
		t.Fatalf("radius = %v, want 12", b.Radius)
	}
	if b.Height != 24 {
		t.Fatalf("height = %v, want 24", b.Height)
	}
}

func TestLoadBrushFromAssets(t *testing.T) {
	b, err := LoadBrush("brush.png")
	if err != nil {
		t.Fatalf("load brush: %v", err)
	}
	if b.Radius != 16 {
		t.Fatalf("radius = %v, want 16", b.Radius)
	}
}
