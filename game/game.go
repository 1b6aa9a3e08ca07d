package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/camera"
	"github.com/pthm-cable/dragon/config"
	"github.com/pthm-cable/dragon/renderer"
	"github.com/pthm-cable/dragon/ui"
)

// Game is the raylib window front-end. It requires an open window.
type Game struct {
	cfg  *config.Config
	opts Options

	session *Session
	ctrl    *Controller
	sched   *FrameScheduler
	input   *Input
	tel     *Telemetry

	bundle *assets.Bundle
	loader assets.Loader

	// Rendering
	view     *camera.Viewport
	surface  *renderer.RaylibSurface
	style    renderer.Style
	hud      *ui.HUD
	controls *ui.Controls
	modal    *ui.Modal
	theme    ui.Theme

	// Actions clicked during Draw, applied on the next Update
	actions []ui.Action

	screenWidth, screenHeight float32
	stripHeight               float32
}

// NewGame creates the window front-end from a complete asset bundle.
// tel may be nil.
func NewGame(cfg *config.Config, bundle *assets.Bundle, loader assets.Loader, tel *Telemetry, opts Options) *Game {
	theme := ui.ThemeFromConfig(cfg)

	g := &Game{
		cfg:          cfg,
		opts:         opts,
		session:      NewSessionFromConfig(cfg, opts.Seed),
		sched:        NewFrameScheduler(),
		tel:          tel,
		bundle:       bundle,
		loader:       loader,
		style:        renderer.StyleFromConfig(cfg),
		hud:          ui.NewHUD(theme),
		controls:     ui.NewControls(theme),
		modal:        ui.NewModal(),
		theme:        theme,
		screenWidth:  float32(rl.GetScreenWidth()),
		screenHeight: float32(rl.GetScreenHeight()),
		stripHeight:  float32(max(cfg.Screen.Height-cfg.Board.Height, int(2*theme.ButtonSize+theme.ButtonGap+2*theme.Padding))),
	}

	g.input = NewInput(g.session.Creature)
	g.ctrl = NewController(g.session, g.sched, cfg.Loop.TickInterval, Notifiers{LogNotifier{}, g}, tel)

	g.view = camera.New(float32(cfg.Board.Width), float32(cfg.Board.Height), 0, 0)
	g.surface = renderer.NewRaylibSurface(g.view)
	g.layout()

	return g
}

// Start begins the first run.
func (g *Game) Start() {
	g.ctrl.Start()
}

// ScoreChanged implements Notifier. The HUD reads the score from the session.
func (g *Game) ScoreChanged(int) {}

// GameOver implements Notifier.
func (g *Game) GameOver(finalScore int) {
	g.modal.Show(g.cfg.Screen.Title, ui.GameOverText(finalScore))
}

// Update processes input and advances the tick source by the frame time.
func (g *Game) Update() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.input.PollKeyboard()
	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}
	if g.modal.Visible() && rl.IsKeyPressed(rl.KeyEnter) {
		g.modal.Hide()
	}

	for _, a := range g.actions {
		if a == ui.ActionRestart {
			g.restart()
			continue
		}
		if d, ok := ActionDirection(a); ok {
			g.input.Request(d)
		}
	}
	g.actions = g.actions[:0]

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	g.sched.Advance(dt)

	if g.tel != nil {
		g.tel.Perf.RecordFrame()
	}
}

func (g *Game) restart() {
	g.modal.Hide()
	g.ctrl.Restart()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.layout()
}

// layout splits the window into the board area and the status strip.
func (g *Game) layout() {
	boardH := max(g.screenHeight-g.stripHeight, 0)
	g.view.Fit(0, 0, g.screenWidth, boardH)

	cw, ch := g.controls.Size()
	pad := float32(g.theme.Padding)
	g.controls.Layout(g.screenWidth-cw-pad, boardH+(g.stripHeight-ch)/2)
}

// Done reports whether the tick limit has been reached.
func (g *Game) Done() bool {
	return g.opts.MaxTicks > 0 && g.ctrl.Ticks() >= int64(g.opts.MaxTicks)
}

// Controller returns the game loop controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Unload stops ticking and releases textures.
func (g *Game) Unload() {
	g.ctrl.Stop()
	g.bundle.Unload(g.loader)
}

// ShowError blocks on an error screen until the window is closed.
func ShowError(title string, err error) {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 52, G: 73, B: 94, A: 255})
		rl.DrawText(title, 20, 20, 24, rl.White)
		rl.DrawText(err.Error(), 20, 60, 16, rl.LightGray)
		rl.DrawText("Close the window to exit.", 20, 90, 16, rl.Gray)
		rl.EndDrawing()
	}
}
