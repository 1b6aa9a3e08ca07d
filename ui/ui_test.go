package ui

import (
	"testing"

	"github.com/pthm-cable/dragon/config"
)

func TestStatusText(t *testing.T) {
	if got := StatusText(0); got != "Score: 0" {
		t.Errorf("StatusText(0) = %q", got)
	}
	if got := GameOverText(30); got != "Game over! Final score: 30" {
		t.Errorf("GameOverText(30) = %q", got)
	}
}

func TestControlsHit(t *testing.T) {
	theme := DefaultTheme()
	theme.ButtonSize = 40
	theme.ButtonGap = 0
	c := NewControls(theme)
	c.Layout(100, 500)

	tests := []struct {
		x, y float32
		want Action
		ok   bool
	}{
		{150, 510, ActionUp, true},
		{110, 550, ActionLeft, true},
		{150, 550, ActionDown, true},
		{190, 550, ActionRight, true},
		{250, 550, ActionRestart, true},
		{319, 579, ActionRestart, true},
		{320, 550, ActionNone, false},
		{110, 510, ActionNone, false}, // empty corner of the d-pad
		{99, 550, ActionNone, false},
	}
	if w, h := c.Size(); w != 220 || h != 80 {
		t.Errorf("Size = %vx%v, want 220x80", w, h)
	}
	for _, tt := range tests {
		got, ok := c.Hit(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Hit(%v, %v) = %s, %v; want %s, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModalVisibility(t *testing.T) {
	m := NewModal()
	if m.Visible() {
		t.Fatal("new modal is visible")
	}
	m.Show("Dragon", GameOverText(10))
	if !m.Visible() || m.Message() != "Game over! Final score: 10" {
		t.Errorf("after Show: visible=%v message=%q", m.Visible(), m.Message())
	}
	m.Hide()
	if m.Visible() {
		t.Error("modal visible after Hide")
	}
}

func TestThemeFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Render.StatusFontSize = 24
	cfg.Render.ButtonSize = 0

	th := ThemeFromConfig(cfg)
	if th.FontSize != 24 {
		t.Errorf("FontSize = %d, want 24", th.FontSize)
	}
	if th.ButtonSize != DefaultTheme().ButtonSize {
		t.Errorf("ButtonSize = %d, want default %d", th.ButtonSize, DefaultTheme().ButtonSize)
	}
}
