package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is an off-screen paint buffer in image space (origin top-left,
// Y-down).
type Surface interface {
	Bounds() image.Rectangle
	// Stamp composites the brush centered at (x, y).
	Stamp(x, y float64)
	// Snapshot returns an immutable copy of the current contents.
	Snapshot() image.Image
	// Image returns the live GPU image, or nil for CPU-only surfaces.
	Image() *ebiten.Image
	Dispose()
}

// SurfaceFactory allocates a surface of the given size for a brush.
type SurfaceFactory func(width, height int, brush *Brush) Surface
