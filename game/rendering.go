package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/renderer"
	"github.com/pthm-cable/dragon/ui"
)

// Draw renders the board, status strip, controls and any open dialog.
// Raylib needs a full redraw every frame; the scene itself only changes on ticks.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	renderer.DrawScene(g.surface, g.session.Scene(), g.bundle, g.style)

	stripY := g.screenHeight - g.stripHeight
	best := g.session.Score
	if g.tel != nil {
		best = max(best, g.tel.Collector.HallOfFame().BestScore())
	}
	g.hud.Draw(ui.HUDData{
		Score:    g.session.Score,
		Best:     best,
		Length:   g.session.Creature.Len(),
		State:    g.ctrl.State().String(),
		FPS:      rl.GetFPS(),
		ShowHint: true,
	}, 0, int32(stripY), int32(g.screenWidth), int32(g.stripHeight))

	g.actions = append(g.actions, g.controls.Draw(!g.modal.Visible())...)

	v := g.view
	g.modal.Draw(v.AreaX, v.AreaY, v.AreaW, v.AreaH)
}
