package renderer

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/dragon/assets"
)

// TerminalSurface draws onto a tcell screen. Each board cell occupies
// CellCols terminal columns and one row; the canvas starts at (OriginX, OriginY).
type TerminalSurface struct {
	Screen   tcell.Screen
	CellSize int
	CellCols int
	OriginX  int
	OriginY  int
}

// NewTerminalSurface creates a surface with two columns per board cell,
// which keeps cells roughly square in most terminal fonts.
func NewTerminalSurface(screen tcell.Screen, cellSize int) *TerminalSurface {
	return &TerminalSurface{Screen: screen, CellSize: cellSize, CellCols: 2}
}

// span converts a pixel range to a half-open range of board cells.
func (t *TerminalSurface) span(p, l int) (from, to int) {
	from = floorDiv(p, t.CellSize)
	to = floorDiv(p+l-1, t.CellSize) + 1
	return from, to
}

// FillRect implements Surface.
func (t *TerminalSurface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	c0, c1 := t.span(x, w)
	r0, r1 := t.span(y, h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			for k := 0; k < t.CellCols; k++ {
				t.Screen.SetContent(t.OriginX+col*t.CellCols+k, t.OriginY+row, ' ', nil, style)
			}
		}
	}
}

// DrawImage implements Surface. Glyphs fill the first column of their cell.
func (t *TerminalSurface) DrawImage(img assets.Image, x, y, w, h int) {
	r, style := '?', tcell.StyleDefault
	if g, ok := img.(*assets.Glyph); ok {
		r, style = g.Rune, g.Style
	}

	col := floorDiv(x, t.CellSize)
	row := floorDiv(y, t.CellSize)
	sx := t.OriginX + col*t.CellCols
	t.Screen.SetContent(sx, t.OriginY+row, r, nil, style)
	for k := 1; k < t.CellCols; k++ {
		t.Screen.SetContent(sx+k, t.OriginY+row, ' ', nil, style)
	}
}

// Size returns the terminal footprint of a canvas.
func (t *TerminalSurface) Size(width, height int) (cols, rows int) {
	return width / t.CellSize * t.CellCols, height / t.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
