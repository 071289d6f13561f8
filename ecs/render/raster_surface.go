package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RasterSurface paints on the CPU. Stamps land at sub-pixel positions
// through a bilinear affine transform, matching what the GPU surface does.
type RasterSurface struct {
	dst      *image.RGBA
	brush    image.Image
	bw, bh   float64
	disposed bool
}

func NewRasterSurface(width, height int, brush *Brush) Surface {
	bw, bh := brush.Size()
	return &RasterSurface{
		dst:   image.NewRGBA(image.Rect(0, 0, width, height)),
		brush: brush.Pixels,
		bw:    bw,
		bh:    bh,
	}
}

func (s *RasterSurface) Bounds() image.Rectangle {
	return s.dst.Bounds()
}

func (s *RasterSurface) Stamp(x, y float64) {
	if s.disposed {
		panic("render: stamp on disposed surface")
	}
	sb := s.brush.Bounds()
	s2d := f64.Aff3{
		1, 0, x - s.bw/2 - float64(sb.Min.X),
		0, 1, y - s.bh/2 - float64(sb.Min.Y),
	}
	draw.ApproxBiLinear.Transform(s.dst, s2d, s.brush, sb, draw.Over, nil)
}

func (s *RasterSurface) Snapshot() image.Image {
	out := image.NewRGBA(s.dst.Rect)
	copy(out.Pix, s.dst.Pix)
	return out
}

func (s *RasterSurface) Image() *ebiten.Image {
	return nil
}

func (s *RasterSurface) Dispose() {
	s.disposed = true
	s.dst = image.NewRGBA(image.Rectangle{})
}
