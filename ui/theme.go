// Package ui draws the status line, on-screen controls and the game over
// dialog around the board.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/config"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Accent      rl.Color
	HintColor   rl.Color
	Padding     int32
	FontSize    int32
	HintSize    int32
	ButtonSize  int32
	ButtonGap   int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 44, G: 62, B: 80, A: 255},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:  rl.LightGray,
		ValueColor:  rl.White,
		Accent:      rl.Color{R: 241, G: 196, B: 15, A: 255},
		HintColor:   rl.Gray,
		Padding:     10,
		FontSize:    20,
		HintSize:    14,
		ButtonSize:  48,
		ButtonGap:   4,
	}
}

// ThemeFromConfig applies the render section on top of the default theme.
func ThemeFromConfig(cfg *config.Config) Theme {
	t := DefaultTheme()
	if cfg.Render.StatusFontSize > 0 {
		t.FontSize = int32(cfg.Render.StatusFontSize)
	}
	if cfg.Render.ButtonSize > 0 {
		t.ButtonSize = int32(cfg.Render.ButtonSize)
	}
	return t
}
