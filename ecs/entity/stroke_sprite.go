package entity

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/inkfall/common"
	"github.com/milk9111/inkfall/ecs/component"
	"golang.org/x/image/draw"
)

// Rect is a rectangle in image space (origin top-left, Y-down, pixels).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside or on the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Pixels returns the smallest integer rectangle covering r.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)),
		int(math.Ceil(r.Y+r.Height)),
	)
}

func rectFromPixels(p image.Rectangle) Rect {
	return Rect{X: float64(p.Min.X), Y: float64(p.Min.Y), Width: float64(p.Dx()), Height: float64(p.Dy())}
}

// ScreenBounds returns the axis-aligned box around every fixture of body,
// placed by the body's current transform, in image space. Y is flipped
// from world (Y-up) to image (Y-down) with viewportH.
func ScreenBounds(body *cp.Body, fixtures []component.Fixture, units common.Units, viewportH float64) Rect {
	if len(fixtures) == 0 {
		panic("entity: bounds of a body without fixtures")
	}
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, f := range fixtures {
		switch f.Kind {
		case component.FixtureCircle:
			bb = bb.Merge(cp.NewBBForCircle(body.LocalToWorld(f.Center), f.Radius))
		default:
			for _, v := range f.Verts {
				bb = bb.Expand(body.LocalToWorld(v))
			}
		}
	}

	minX := units.ToScreen(bb.L)
	maxX := units.ToScreen(bb.R)
	minY := units.ToScreen(bb.B)
	maxY := units.ToScreen(bb.T)
	return Rect{
		X:      minX,
		Y:      viewportH - maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// SpriteRect grows bounds toward the top-left by the brush radius so the
// soft edge of the first stamps is not clipped.
func SpriteRect(bounds Rect, brushRadius float64) Rect {
	return Rect{
		X:      bounds.X - brushRadius,
		Y:      bounds.Y - brushRadius,
		Width:  bounds.Width + brushRadius,
		Height: bounds.Height + brushRadius,
	}
}

// SpriteAnchor returns the normalized pivot of rect (X from the left, Y
// from the bottom) that sits on bodyPos, the body origin in screen space
// (Y-up).
func SpriteAnchor(bodyPos cp.Vector, rect Rect, viewportH float64) (float64, float64) {
	ax := (bodyPos.X - rect.X) / rect.Width
	ay := (bodyPos.Y + rect.Y + rect.Height - viewportH) / rect.Height
	return ax, ay
}

// SpriteOptions configures BuildStrokeSprite.
type SpriteOptions struct {
	Units       common.Units
	ViewportH   float64
	BrushRadius float64
	// NewTexture uploads the cropped pixels. Defaults to
	// ebiten.NewImageFromImage.
	NewTexture func(image.Image) *ebiten.Image
}

// BuildStrokeSprite crops snapshot to the body's screen bounds and anchors
// the result on the body origin so the sprite renders exactly over the
// painted stroke.
func BuildStrokeSprite(body *cp.Body, fixtures []component.Fixture, snapshot image.Image, opts SpriteOptions) component.Sprite {
	bounds := ScreenBounds(body, fixtures, opts.Units, opts.ViewportH)
	rect := SpriteRect(bounds, opts.BrushRadius)

	src := rect.Pixels().Intersect(snapshot.Bounds())
	if src.Empty() {
		// The body lies entirely off the canvas; keep a one-pixel texture so
		// the sprite stays valid.
		src = image.Rect(0, 0, 1, 1).Add(snapshot.Bounds().Min)
	}
	texRect := rectFromPixels(src)

	ax, ay := SpriteAnchor(opts.Units.ToScreenVec(body.Position()), texRect, opts.ViewportH)

	newTexture := opts.NewTexture
	if newTexture == nil {
		newTexture = ebiten.NewImageFromImage
	}
	return component.Sprite{
		Image:   newTexture(cropImage(snapshot, src)),
		Source:  src,
		AnchorX: ax,
		AnchorY: ay,
	}
}

func cropImage(img image.Image, r image.Rectangle) image.Image {
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(r)
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}
