package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
	"github.com/pthm-cable/dragon/renderer"
	"github.com/pthm-cable/dragon/systems"
	"github.com/pthm-cable/dragon/ui"
)

// Terminal is the tcell front-end. One goroutine owns all game state; a
// second one only forwards screen events.
type Terminal struct {
	cfg  *config.Config
	opts Options

	screen  tcell.Screen
	surface *renderer.TerminalSurface
	style   renderer.Style
	bundle  *assets.Bundle

	session *Session
	ctrl    *Controller
	sched   *FrameScheduler
	input   *Input
	tel     *Telemetry

	modal string
	quit  bool
}

// NewTerminal creates the terminal front-end on an initialized screen.
// tel may be nil.
func NewTerminal(screen tcell.Screen, cfg *config.Config, bundle *assets.Bundle, tel *Telemetry, opts Options) *Terminal {
	t := &Terminal{
		cfg:     cfg,
		opts:    opts,
		screen:  screen,
		surface: renderer.NewTerminalSurface(screen, cfg.Board.CellSize),
		style:   renderer.StyleFromConfig(cfg),
		bundle:  bundle,
		session: NewSessionFromConfig(cfg, opts.Seed),
		sched:   NewFrameScheduler(),
		tel:     tel,
	}
	t.input = NewInput(t.session.Creature)
	t.ctrl = NewController(t.session, t.sched, cfg.Loop.TickInterval, Notifiers{LogNotifier{}, t}, tel)
	t.ctrl.OnTick(func(systems.StepResult) { t.Draw() })
	return t
}

// ScoreChanged implements Notifier. The status line reads the score from the session.
func (t *Terminal) ScoreChanged(int) {}

// GameOver implements Notifier.
func (t *Terminal) GameOver(finalScore int) {
	t.modal = ui.GameOverText(finalScore)
}

// TerminalKeyDirection maps arrow keys and WASD to a direction.
func TerminalKeyDirection(ev *tcell.EventKey) (components.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return components.Up, true
	case tcell.KeyDown:
		return components.Down, true
	case tcell.KeyLeft:
		return components.Left, true
	case tcell.KeyRight:
		return components.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return components.Up, true
		case 's', 'S':
			return components.Down, true
		case 'a', 'A':
			return components.Left, true
		case 'd', 'D':
			return components.Right, true
		}
	}
	return 0, false
}

// HandleEvent applies one screen event. It returns false once the user quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.Draw()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			t.quit = true
		case ev.Key() == tcell.KeyEnter:
			t.modal = ""
			t.Draw()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			t.quit = true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			t.modal = ""
			t.ctrl.Restart()
			t.Draw()
		default:
			if d, ok := TerminalKeyDirection(ev); ok {
				t.input.Request(d)
			}
		}
	}
	return !t.quit
}

// Draw renders the board, the status line and any game over message.
func (t *Terminal) Draw() {
	t.screen.Clear()
	renderer.DrawScene(t.surface, t.session.Scene(), t.bundle, t.style)

	_, rows := t.surface.Size(t.cfg.Board.Width, t.cfg.Board.Height)
	status := ui.StatusText(t.session.Score) + "  [" + t.ctrl.State().String() + "]  arrows/WASD move, r restart, q quit"
	t.drawText(0, rows, status, tcell.StyleDefault.Bold(true))
	if t.modal != "" {
		t.drawText(0, rows+1, t.modal+"  (Enter to dismiss)", tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Done reports whether the tick limit has been reached.
func (t *Terminal) Done() bool {
	return t.opts.MaxTicks > 0 && t.ctrl.Ticks() >= int64(t.opts.MaxTicks)
}

// Controller returns the game loop controller.
func (t *Terminal) Controller() *Controller {
	return t.ctrl
}

// Run starts the first run and pumps events and frames until the user
// quits, the tick limit is hit or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	fps := max(t.cfg.Screen.TargetFPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	t.ctrl.Start()
	t.Draw()
	defer t.ctrl.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !t.HandleEvent(ev) {
				slog.Info("quit requested", "tick", t.ctrl.Ticks())
				return nil
			}
		case now := <-ticker.C:
			t.sched.Advance(now.Sub(last))
			last = now
			if t.Done() {
				slog.Info("max ticks reached", "tick", t.ctrl.Ticks())
				return nil
			}
		}
	}
}
