// Package systems holds the rules of the game: board geometry, food placement
// and the per-tick simulation step.
package systems

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/dragon/components"
)

// ErrInvalidBoard is returned by Board.Validate.
var ErrInvalidBoard = errors.New("invalid board")

// Board is the fixed-size canvas the creature moves on, in pixels.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Validate checks that the cell size tiles the board exactly.
func (b Board) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.CellSize <= 0 {
		return fmt.Errorf("%w: %dx%d cell %d", ErrInvalidBoard, b.Width, b.Height, b.CellSize)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: cell %d does not divide %dx%d", ErrInvalidBoard, b.CellSize, b.Width, b.Height)
	}
	return nil
}

// Columns returns the number of cells across.
func (b Board) Columns() int { return b.Width / b.CellSize }

// Rows returns the number of cells down.
func (b Board) Rows() int { return b.Height / b.CellSize }

// TotalCells returns the number of grid-aligned cells.
func (b Board) TotalCells() int { return b.Columns() * b.Rows() }

// Center returns the middle of the canvas.
func (b Board) Center() components.Cell {
	return components.Cell{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether c lies inside the canvas.
func (b Board) Contains(c components.Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// WrapAxis wraps v onto [0, extent). A value past the far edge re-enters at 0,
// a negative value re-enters one cell before the far edge.
func (b Board) WrapAxis(v, extent int) int {
	if v < 0 {
		return extent - b.CellSize
	}
	if v >= extent {
		return 0
	}
	return v
}

// WrapCell wraps both axes independently.
func (b Board) WrapCell(c components.Cell) components.Cell {
	return components.Cell{
		X: b.WrapAxis(c.X, b.Width),
		Y: b.WrapAxis(c.Y, b.Height),
	}
}

// Step returns c moved one cell in direction d, without wrapping.
func (b Board) Step(c components.Cell, d components.Direction) components.Cell {
	dx, dy := d.Delta()
	return c.Add(dx*b.CellSize, dy*b.CellSize)
}
