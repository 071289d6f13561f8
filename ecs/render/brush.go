package render

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Brush is the stamp image painted along a stroke. Radius is half the
// larger image side and doubles as the minimum box length and end-cap
// circle radius. Height is the thickness of every box fixture.
type Brush struct {
	Key    string
	Pixels image.Image
	Radius float64
	Height float64

	image *ebiten.Image
}

// NewBrush wraps a decoded image.
func NewBrush(key string, img image.Image) *Brush {
	b := img.Bounds()
	return &Brush{
		Key:    key,
		Pixels: img,
		Radius: math.Max(float64(b.Dx())/2, float64(b.Dy())/2),
		Height: float64(b.Dy()),
	}
}

// LoadBrush decodes the brush image at path.
func LoadBrush(path string) (*Brush, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, fmt.Errorf("render: load brush: %w", err)
	}
	return NewBrush(path, img), nil
}

// Size returns the brush image size in pixels.
func (b *Brush) Size() (float64, float64) {
	bounds := b.Pixels.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

// EbitenImage uploads the brush once and returns the GPU copy.
func (b *Brush) EbitenImage() *ebiten.Image {
	if b.image != nil {
		return b.image
	}
	if img := GetImage(b.Key); img != nil {
		b.image = img
		return img
	}
	b.image = ebiten.NewImageFromImage(b.Pixels)
	RegisterImage(b.Key, b.image)
	return b.image
}
