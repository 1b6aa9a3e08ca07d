package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/renderer"
	"github.com/pthm-cable/dragon/systems"
)

// noFood stands in for the food cell while none is placed. It is outside
// every board, so a wrapped head never matches it.
var noFood = components.Cell{X: -1, Y: -1}

// Session is the mutable state of one game: the creature, the food and the score.
type Session struct {
	Board    systems.Board
	Creature *components.Creature
	Food     components.Cell
	HasFood  bool
	Score    int

	start  components.Cell
	points int
	rng    *rand.Rand
}

// NewSession creates a session with a single-cell creature at start and no food.
func NewSession(board systems.Board, start components.Cell, points int, rng *rand.Rand) *Session {
	return &Session{
		Board:    board,
		Creature: components.NewCreature(start),
		Food:     noFood,
		start:    start,
		points:   points,
		rng:      rng,
	}
}

// Reset puts the creature back at the start cell and clears score and food.
// The Creature pointer stays the same.
func (s *Session) Reset() {
	s.Creature.Reset(s.start)
	s.Score = 0
	s.Food = noFood
	s.HasFood = false
}

// PlaceFood moves the food to a random free cell. It returns false when
// the body covers the whole board, leaving the session without food.
func (s *Session) PlaceFood() bool {
	c, ok := systems.PlaceFood(s.rng, s.Board, s.Creature.Body)
	if !ok {
		slog.Warn("no free cell for food", "length", s.Creature.Len())
		s.Food, s.HasFood = noFood, false
		return false
	}
	s.Food, s.HasFood = c, true
	return true
}

// Tick advances the creature one cell, scoring and replacing food when eaten.
func (s *Session) Tick() systems.StepResult {
	food := noFood
	if s.HasFood {
		food = s.Food
	}

	res := systems.Step(s.Creature, s.Board, food)
	if res.Ate {
		s.Score += s.points
		s.PlaceFood()
	}
	return res
}

// Scene returns a read-only view for the render step.
func (s *Session) Scene() renderer.Scene {
	return renderer.Scene{
		Width:     s.Board.Width,
		Height:    s.Board.Height,
		CellSize:  s.Board.CellSize,
		Body:      s.Creature.Body,
		Direction: s.Creature.Direction,
		Food:      s.Food,
		HasFood:   s.HasFood,
	}
}
