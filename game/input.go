package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/ui"
)

// Input turns direction requests from any modality into the creature's
// pending direction.
type Input struct {
	creature *components.Creature
}

// NewInput creates an input adapter for c.
func NewInput(c *components.Creature) *Input {
	return &Input{creature: c}
}

// Request sets the pending direction unless d reverses the current one.
// A later request in the same tick overwrites an earlier one.
func (in *Input) Request(d components.Direction) bool {
	if !d.Valid() {
		return false
	}
	if d.IsOpposite(in.creature.Direction) {
		slog.Debug("reversal rejected", "current", in.creature.Direction, "requested", d)
		return false
	}
	in.creature.Pending = d
	return true
}

var keyDirections = []struct {
	keys []int32
	dir  components.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, components.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, components.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, components.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, components.Right},
}

// PollKeyboard forwards arrow and WASD presses of this frame.
func (in *Input) PollKeyboard() {
	for _, kd := range keyDirections {
		for _, k := range kd.keys {
			if rl.IsKeyPressed(k) {
				in.Request(kd.dir)
			}
		}
	}
}

// ActionDirection maps an on-screen control to a direction.
func ActionDirection(a ui.Action) (components.Direction, bool) {
	switch a {
	case ui.ActionUp:
		return components.Up, true
	case ui.ActionDown:
		return components.Down, true
	case ui.ActionLeft:
		return components.Left, true
	case ui.ActionRight:
		return components.Right, true
	}
	return 0, false
}
