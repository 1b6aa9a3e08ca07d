package game

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	bundle, err := assets.LoadAll(assets.NewGlyphLoader(cfg), assets.ManifestFromConfig(cfg))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 20)

	return NewTerminal(screen, cfg, bundle, nil, Options{Seed: 1}), screen
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func findRune(s tcell.Screen, want rune) bool {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := s.GetContent(x, y); r == want {
				return true
			}
		}
	}
	return false
}

func TestTerminalKeyDirection(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want components.Direction
		ok   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), components.Up, true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), components.Down, true},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), components.Left, true},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), components.Right, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), components.Up, true},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), components.Down, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), components.Left, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), components.Right, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TerminalKeyDirection(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("TerminalKeyDirection = (%s, %v), want (%s, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTerminalDrawsBoardAndStatus(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.Controller().Start()
	term.Controller().Session().Food = components.Cell{X: 0, Y: 0}
	term.Draw()

	status := rowText(screen, 15)
	if !strings.HasPrefix(status, "Score: 0") {
		t.Errorf("status row = %q, want prefix %q", status, "Score: 0")
	}
	if !strings.Contains(status, "[running]") {
		t.Errorf("status row = %q, want running state", status)
	}
	if !findRune(screen, '>') {
		t.Error("head glyph not drawn")
	}
	if !findRune(screen, '@') {
		t.Error("food glyph not drawn")
	}
}

func TestTerminalDirectionKey(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.Controller().Start()

	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("direction key quit the game")
	}
	if p := term.Controller().Session().Creature.Pending; p != components.Up {
		t.Errorf("pending = %s, want up", p)
	}

	// Reversal of the current direction is ignored.
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if p := term.Controller().Session().Creature.Pending; p != components.Up {
		t.Errorf("pending = %s after reversal, want up", p)
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range keys {
		term, _ := newTestTerminal(t)
		if term.HandleEvent(ev) {
			t.Errorf("HandleEvent(%v) = true, want quit", ev.Name())
		}
	}
}

func TestTerminalGameOverAndRestart(t *testing.T) {
	term, screen := newTestTerminal(t)
	ctrl := term.Controller()
	ctrl.Start()
	s := ctrl.Session()
	s.Score = 20
	s.Creature.Body = []components.Cell{{X: 40, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 40}, {X: 40, Y: 40}}
	s.Creature.Direction, s.Creature.Pending = components.Left, components.Down

	ctrl.Frame()

	if ctrl.State() != GameOver {
		t.Fatalf("state = %s, want game over", ctrl.State())
	}
	if got := rowText(screen, 16); !strings.HasPrefix(got, "Game over! Final score: 20") {
		t.Errorf("modal row = %q", got)
	}

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))

	if ctrl.State() != Running || s.Score != 0 || s.Creature.Len() != 1 {
		t.Errorf("after restart: state %s score %d length %d", ctrl.State(), s.Score, s.Creature.Len())
	}
	if got := rowText(screen, 16); got != "" {
		t.Errorf("modal row after restart = %q, want empty", got)
	}
	if got := rowText(screen, 15); !strings.HasPrefix(got, "Score: 0") {
		t.Errorf("status row after restart = %q", got)
	}
}

func TestTerminalDone(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.opts.MaxTicks = 2
	term.Controller().Start()
	term.Controller().Session().HasFood = false

	term.Controller().Frame()
	if term.Done() {
		t.Error("Done after 1 of 2 ticks")
	}
	term.Controller().Frame()
	if !term.Done() {
		t.Error("not Done after 2 of 2 ticks")
	}
}
