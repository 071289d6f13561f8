package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface paints into an offscreen ebiten image, which the render
// pass draws directly for live feedback while the stroke is in progress.
type EbitenSurface struct {
	img    *ebiten.Image
	brush  *ebiten.Image
	bw, bh float64
}

func NewEbitenSurface(width, height int, brush *Brush) Surface {
	bw, bh := brush.Size()
	return &EbitenSurface{
		img:   ebiten.NewImage(width, height),
		brush: brush.EbitenImage(),
		bw:    bw,
		bh:    bh,
	}
}

func (s *EbitenSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *EbitenSurface) Stamp(x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-s.bw/2, y-s.bh/2)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.brush, op)
}

// Snapshot reads the pixels back. It must run inside the game loop.
func (s *EbitenSurface) Snapshot() image.Image {
	b := s.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s.img.ReadPixels(out.Pix)
	return out
}

func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

func (s *EbitenSurface) Dispose() {
	s.img.Deallocate()
}
