package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a textured quad. AnchorX and AnchorY are the normalized pivot
// inside the texture, measured from the left and from the bottom edge.
type Sprite struct {
	Image   *ebiten.Image
	Source  image.Rectangle
	AnchorX float64
	AnchorY float64
	Hidden  bool
}

// Origin returns the pivot in texture pixels from the top-left corner.
func (s *Sprite) Origin() (float64, float64) {
	w := float64(s.Source.Dx())
	h := float64(s.Source.Dy())
	return s.AnchorX * w, (1 - s.AnchorY) * h
}

var SpriteComponent = NewComponent[Sprite]()
