package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabelValue draws "label: value" and returns the x position after it.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	size := r.Theme.FontSize
	rl.DrawText(label+":", x, y, size, r.Theme.LabelColor)
	x += rl.MeasureText(label+": ", size)
	rl.DrawText(value, x, y, size, r.Theme.ValueColor)
	return x + rl.MeasureText(value, size)
}

// DrawHint draws a small hint line.
func (r *Renderer) DrawHint(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.HintSize, r.Theme.HintColor)
}
