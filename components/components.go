// Package components defines the plain data the game is built from.
package components

import "fmt"

// Cell is a position on the canvas in pixels.
// Game cells are normally multiples of the board cell size.
type Cell struct {
	X, Y int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Creature is the player-controlled dragon.
// Body is ordered head first.
type Creature struct {
	Body      []Cell
	Direction Direction
	Pending   Direction
}

// NewCreature creates a single-cell creature heading right.
func NewCreature(start Cell) *Creature {
	return &Creature{
		Body:      []Cell{start},
		Direction: Right,
		Pending:   Right,
	}
}

// Reset puts the creature back to a single cell at start, heading right.
func (c *Creature) Reset(start Cell) {
	c.Body = append(c.Body[:0], start)
	c.Direction = Right
	c.Pending = Right
}

// Head returns the first body cell.
func (c *Creature) Head() Cell {
	return c.Body[0]
}

// Len returns the body length.
func (c *Creature) Len() int {
	return len(c.Body)
}

// Occupies reports whether any body cell equals p.
func (c *Creature) Occupies(p Cell) bool {
	for _, b := range c.Body {
		if b == p {
			return true
		}
	}
	return false
}
