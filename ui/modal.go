package ui

import (
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GameOverText is the message shown when a run ends.
func GameOverText(finalScore int) string {
	return "Game over! Final score: " + strconv.Itoa(finalScore)
}

// Modal is a one-shot message dialog.
type Modal struct {
	visible bool
	title   string
	message string
	width   float32
	height  float32
}

// NewModal creates a hidden modal.
func NewModal() *Modal {
	return &Modal{width: 320, height: 140}
}

// Show makes the modal visible with a message.
func (m *Modal) Show(title, message string) {
	m.title = title
	m.message = message
	m.visible = true
}

// Hide dismisses the modal.
func (m *Modal) Hide() {
	m.visible = false
}

// Visible reports whether the modal is shown.
func (m *Modal) Visible() bool {
	return m.visible
}

// Message returns the current message.
func (m *Modal) Message() string {
	return m.message
}

// Draw renders the modal centered in the given area. Returns true on the
// frame the user dismisses it.
func (m *Modal) Draw(areaX, areaY, areaW, areaH float32) bool {
	if !m.visible {
		return false
	}

	rl.DrawRectangle(int32(areaX), int32(areaY), int32(areaW), int32(areaH), rl.Fade(rl.Black, 0.4))
	bounds := rl.Rectangle{
		X:      areaX + (areaW-m.width)/2,
		Y:      areaY + (areaH-m.height)/2,
		Width:  m.width,
		Height: m.height,
	}

	// -1 while open, 0 for the close icon, 1 for OK
	if gui.MessageBox(bounds, m.title, m.message, "OK") >= 0 {
		m.visible = false
		return true
	}
	return false
}
