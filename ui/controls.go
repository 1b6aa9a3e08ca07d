package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a request produced by an on-screen control.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

type button struct {
	action Action
	label  string
	bounds rl.Rectangle
}

// Controls is a d-pad of direction buttons plus a restart button.
type Controls struct {
	theme   Theme
	buttons []button
}

// NewControls creates the control cluster; call Layout before drawing.
func NewControls(theme Theme) *Controls {
	return &Controls{theme: theme}
}

// Layout places the d-pad with its top-left corner at (x, y) and the restart
// button to its right.
func (c *Controls) Layout(x, y float32) {
	s := float32(c.theme.ButtonSize)
	g := float32(c.theme.ButtonGap)
	rect := func(col, row float32) rl.Rectangle {
		return rl.Rectangle{X: x + col*(s+g), Y: y + row*(s+g), Width: s, Height: s}
	}

	restart := rect(3.5, 1)
	restart.Width = 2 * s

	c.buttons = []button{
		{ActionUp, "#121#", rect(1, 0)},
		{ActionLeft, "#118#", rect(0, 1)},
		{ActionDown, "#120#", rect(1, 1)},
		{ActionRight, "#119#", rect(2, 1)},
		{ActionRestart, "Restart", restart},
	}
}

// Size returns the footprint of the laid out cluster.
func (c *Controls) Size() (w, h float32) {
	s := float32(c.theme.ButtonSize)
	g := float32(c.theme.ButtonGap)
	return 3.5*(s+g) + 2*s, 2*s + g
}

// Hit returns the action whose button contains the point.
func (c *Controls) Hit(x, y float32) (Action, bool) {
	for _, b := range c.buttons {
		r := b.bounds
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return b.action, true
		}
	}
	return ActionNone, false
}

// Draw renders the buttons and returns the actions triggered this frame,
// by mouse click or by a touch tap on a button. Disabled controls are drawn
// but produce nothing.
func (c *Controls) Draw(enabled bool) []Action {
	if !enabled {
		gui.Disable()
		defer gui.Enable()
	}

	var actions []Action
	seen := make(map[Action]bool, 2)
	add := func(a Action) {
		if enabled && !seen[a] {
			seen[a] = true
			actions = append(actions, a)
		}
	}

	for _, b := range c.buttons {
		if gui.Button(b.bounds, b.label) {
			add(b.action)
		}
	}

	if rl.GetTouchPointCount() > 0 && rl.IsGestureDetected(rl.GestureTap) {
		tp := rl.GetTouchPosition(0)
		if a, ok := c.Hit(tp.X, tp.Y); ok {
			add(a)
		}
	}
	return actions
}
