package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/camera"
)

// RaylibSurface draws into the current raylib frame through a viewport.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct {
	view *camera.Viewport
}

// NewRaylibSurface creates a surface mapped through view.
func NewRaylibSurface(view *camera.Viewport) *RaylibSurface {
	return &RaylibSurface{view: view}
}

func (r *RaylibSurface) rect(x, y, w, h int) rl.Rectangle {
	sx, sy := r.view.CanvasToScreen(float32(x), float32(y))
	return rl.Rectangle{
		X:      sx,
		Y:      sy,
		Width:  r.view.ScaleLength(float32(w)),
		Height: r.view.ScaleLength(float32(h)),
	}
}

// FillRect implements Surface.
func (r *RaylibSurface) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangleRec(r.rect(x, y, w, h), c)
}

// DrawImage implements Surface. Non-texture images fall back to a marker.
func (r *RaylibSurface) DrawImage(img assets.Image, x, y, w, h int) {
	dst := r.rect(x, y, w, h)

	t, ok := img.(*assets.Texture)
	if !ok || t.Tex.ID == 0 {
		rl.DrawRectangleLinesEx(dst, 2, rl.Magenta)
		return
	}

	src := rl.Rectangle{X: 0, Y: 0, Width: float32(t.Tex.Width), Height: float32(t.Tex.Height)}
	rl.DrawTexturePro(t.Tex, src, dst, rl.Vector2{}, 0, rl.White)
}
