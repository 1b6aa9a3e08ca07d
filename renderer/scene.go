// Package renderer draws the game onto a drawing surface.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
)

// Surface is a fixed-size canvas accepting draw calls in canvas pixels.
type Surface interface {
	FillRect(x, y, w, h int, c color.RGBA)
	DrawImage(img assets.Image, x, y, w, h int)
}

// Scene is a read-only view of the state needed to draw one frame.
type Scene struct {
	Width, Height int
	CellSize      int
	Body          []components.Cell // Head first
	Direction     components.Direction
	Food          components.Cell
	HasFood       bool
}

// Style holds the colors and margins shared by every surface.
type Style struct {
	Background color.RGBA
	Body       color.RGBA
	BodyInset  int
}

// StyleFromConfig builds a Style from the render section.
func StyleFromConfig(cfg *config.Config) Style {
	return Style{
		Background: cfg.Derived.Background,
		Body:       cfg.Derived.Body,
		BodyInset:  cfg.Render.BodyInset,
	}
}

// DrawScene paints background, food, the head glyph for the current
// direction and inset squares for the rest of the body.
func DrawScene(s Surface, scene Scene, bundle *assets.Bundle, style Style) {
	cs := scene.CellSize

	s.FillRect(0, 0, scene.Width, scene.Height, style.Background)

	if scene.HasFood {
		s.DrawImage(bundle.Food, scene.Food.X, scene.Food.Y, cs, cs)
	}

	for i, seg := range scene.Body {
		if i == 0 {
			s.DrawImage(bundle.Head(scene.Direction), seg.X, seg.Y, cs, cs)
			continue
		}
		in := style.BodyInset
		s.FillRect(seg.X+in, seg.Y+in, cs-2*in, cs-2*in, style.Body)
	}
}
