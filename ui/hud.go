package ui

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds what the status line shows.
type HUDData struct {
	Score    int
	Best     int
	Length   int
	State    string
	FPS      int32
	ShowHint bool
}

// StatusText formats the score line shared by every front-end.
func StatusText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// HUD renders the status line under the board.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(theme Theme) *HUD {
	return &HUD{renderer: NewRenderer(theme)}
}

// Draw renders the HUD into the given strip.
func (h *HUD) Draw(data HUDData, x, y, width, height int32) {
	r := h.renderer
	r.DrawPanel(x, y, width, height)

	ty := y + r.Theme.Padding
	tx := x + r.Theme.Padding
	rl.DrawText(StatusText(data.Score), tx, ty, r.Theme.FontSize, r.Theme.Accent)
	tx += rl.MeasureText(StatusText(data.Score), r.Theme.FontSize) + 2*r.Theme.Padding

	tx = r.DrawLabelValue(tx, ty, "Best", strconv.Itoa(data.Best)) + 2*r.Theme.Padding
	tx = r.DrawLabelValue(tx, ty, "Length", strconv.Itoa(data.Length)) + 2*r.Theme.Padding
	if data.State != "" {
		r.DrawLabelValue(tx, ty, "State", data.State)
	}

	if data.ShowHint {
		hint := fmt.Sprintf("arrows/WASD move, R restart | %d fps", data.FPS)
		r.DrawHint(x+r.Theme.Padding, y+height-r.Theme.HintSize-r.Theme.Padding, hint)
	}
}
