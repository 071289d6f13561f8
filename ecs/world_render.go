package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws part of the world each frame.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

// RenderPasses draws in order, later passes on top.
type RenderPasses []Renderer

// Draw calls every pass.
func (p RenderPasses) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, r := range p {
		if r == nil {
			continue
		}
		r.Draw(w, screen)
	}
}
