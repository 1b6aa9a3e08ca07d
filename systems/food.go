package systems

import (
	"math/rand"

	"github.com/pthm-cable/dragon/components"
)

// PlaceFood picks a uniformly random grid-aligned cell that is not in occupied.
// It resamples until it finds one. ok is false only when the board has no free
// cell left, which the game never reaches in practice.
func PlaceFood(rng *rand.Rand, b Board, occupied []components.Cell) (cell components.Cell, ok bool) {
	if freeCells(b, occupied) == 0 {
		return components.Cell{}, false
	}

	for {
		cell = components.Cell{
			X: rng.Intn(b.Columns()) * b.CellSize,
			Y: rng.Intn(b.Rows()) * b.CellSize,
		}
		if !contains(occupied, cell) {
			return cell, true
		}
	}
}

// freeCells counts grid-aligned cells not covered by occupied.
// Off-grid and duplicate entries do not reduce the count.
func freeCells(b Board, occupied []components.Cell) int {
	taken := make(map[components.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if b.Contains(c) && c.X%b.CellSize == 0 && c.Y%b.CellSize == 0 {
			taken[c] = struct{}{}
		}
	}
	return b.TotalCells() - len(taken)
}

func contains(cells []components.Cell, c components.Cell) bool {
	for _, o := range cells {
		if o == c {
			return true
		}
	}
	return false
}
