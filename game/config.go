package game

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
	"github.com/pthm-cable/dragon/systems"
)

// Options holds per-process settings that are not part of the config file.
type Options struct {
	Seed      int64  // RNG seed (0 = time-based)
	OutputDir string // Telemetry output directory (empty = disabled)
	MaxTicks  int    // Stop after N ticks (0 = unlimited)
}

// BoardFromConfig builds the board geometry from the board section.
func BoardFromConfig(cfg *config.Config) systems.Board {
	return systems.Board{
		Width:    cfg.Board.Width,
		Height:   cfg.Board.Height,
		CellSize: cfg.Board.CellSize,
	}
}

// NewSessionFromConfig creates a session at the configured start cell.
func NewSessionFromConfig(cfg *config.Config, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := components.Cell{X: cfg.Derived.StartX, Y: cfg.Derived.StartY}
	return NewSession(BoardFromConfig(cfg), start, cfg.Scoring.FoodPoints, rand.New(rand.NewSource(seed)))
}
