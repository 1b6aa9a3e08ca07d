package systems

import "github.com/pthm-cable/dragon/components"

// StepResult reports what happened during one simulation step.
type StepResult struct {
	Head     components.Cell // New head after wrap (also set on collision)
	Collided bool            // Head ran into the body; nothing was mutated
	Ate      bool            // Head landed on food; body grew by one
}

// Step advances the creature by one cell.
//
// The pending direction is committed unconditionally: reversals are rejected
// when requested, not here. The collision test covers the whole body including
// the tail cell that would be vacated on this same step.
func Step(c *components.Creature, b Board, food components.Cell) StepResult {
	if len(c.Body) == 0 {
		panic("systems: step on empty body")
	}

	c.Direction = c.Pending

	head := b.WrapCell(b.Step(c.Head(), c.Direction))
	if c.Occupies(head) {
		return StepResult{Head: head, Collided: true}
	}

	// Prepend the new head
	c.Body = append(c.Body, components.Cell{})
	copy(c.Body[1:], c.Body)
	c.Body[0] = head

	if head == food {
		return StepResult{Head: head, Ate: true}
	}

	c.Body = c.Body[:len(c.Body)-1]
	return StepResult{Head: head}
}
