package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
)

// Canvas accumulates the in-progress stroke: the ordered touch samples in
// screen space (Y-up) and the brush stamps painted for them.
type Canvas struct {
	surface   Surface
	viewportH float64
	points    []cp.Vector
	stamps    int
	disposed  bool
}

// NewCanvas wraps a viewport-sized surface.
func NewCanvas(surface Surface) *Canvas {
	return &Canvas{
		surface:   surface,
		viewportH: float64(surface.Bounds().Dy()),
	}
}

// StampAt paints the brush at p and appends p to the stroke.
func (c *Canvas) StampAt(p cp.Vector) {
	c.mustBeLive()
	c.stamp(p)
	c.points = append(c.points, p)
}

// StampLine paints one stamp per pixel of distance between start and end,
// so a fast swipe still leaves a continuous trail, then appends end.
func (c *Canvas) StampLine(start, end cp.Vector) {
	c.mustBeLive()
	distance := common.Distance(start, end)
	steps := int(distance + 0.5)
	for i := 0; i < steps; i++ {
		delta := float64(i) / distance
		c.stamp(cp.Vector{
			X: common.Lerp(start.X, end.X, delta),
			Y: common.Lerp(start.Y, end.Y, delta),
		})
	}
	c.points = append(c.points, end)
}

// Points returns the stroke samples. The slice is owned by the canvas.
func (c *Canvas) Points() []cp.Vector {
	return c.points
}

// Reset clears the stroke for reuse without touching painted pixels.
func (c *Canvas) Reset() {
	c.points = c.points[:0]
}

// Stamps reports how many brush stamps were composited.
func (c *Canvas) Stamps() int {
	return c.stamps
}

// Snapshot returns an immutable copy of the painted pixels.
func (c *Canvas) Snapshot() image.Image {
	c.mustBeLive()
	return c.surface.Snapshot()
}

// Image is the live image for on-screen feedback; nil for CPU surfaces or
// after Dispose.
func (c *Canvas) Image() *ebiten.Image {
	if c.disposed {
		return nil
	}
	return c.surface.Image()
}

// ViewportHeight is the surface height used to flip Y.
func (c *Canvas) ViewportHeight() float64 {
	return c.viewportH
}

// Dispose releases the surface. The canvas must not be used afterwards.
func (c *Canvas) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.surface.Dispose()
}

func (c *Canvas) stamp(p cp.Vector) {
	c.surface.Stamp(p.X, c.viewportH-p.Y)
	c.stamps++
}

func (c *Canvas) mustBeLive() {
	if c.disposed {
		panic("render: canvas used after dispose")
	}
}
