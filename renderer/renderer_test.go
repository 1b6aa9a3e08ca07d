package renderer

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
)

type call struct {
	kind       string // "rect" or "image"
	x, y, w, h int
	color      color.RGBA
	image      assets.Name
}

type recordingSurface struct {
	calls []call
}

func (r *recordingSurface) FillRect(x, y, w, h int, c color.RGBA) {
	r.calls = append(r.calls, call{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recordingSurface) DrawImage(img assets.Image, x, y, w, h int) {
	r.calls = append(r.calls, call{kind: "image", x: x, y: y, w: w, h: h, image: img.Name()})
}

type namedImage assets.Name

func (n namedImage) Name() assets.Name { return assets.Name(n) }

func testBundle() *assets.Bundle {
	b := &assets.Bundle{Food: namedImage(assets.Food)}
	for _, d := range components.Directions {
		b.Heads[d] = namedImage(assets.HeadName(d))
	}
	return b
}

func testStyle() Style {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	return StyleFromConfig(cfg)
}

func TestDrawSceneOrder(t *testing.T) {
	style := testStyle()
	scene := Scene{
		Width: 800, Height: 600, CellSize: 40,
		Body:      []components.Cell{{X: 440, Y: 300}, {X: 400, Y: 300}},
		Direction: components.Right,
		Food:      components.Cell{X: 80, Y: 120},
		HasFood:   true,
	}
	s := &recordingSurface{}
	DrawScene(s, scene, testBundle(), style)

	want := []call{
		{kind: "rect", x: 0, y: 0, w: 800, h: 600, color: style.Background},
		{kind: "image", x: 80, y: 120, w: 40, h: 40, image: assets.Food},
		{kind: "image", x: 440, y: 300, w: 40, h: 40, image: assets.DragonRight},
		{kind: "rect", x: 402, y: 302, w: 36, h: 36, color: style.Body},
	}
	if len(s.calls) != len(want) {
		t.Fatalf("got %d draw calls, want %d: %+v", len(s.calls), len(want), s.calls)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Errorf("call[%d] = %+v, want %+v", i, s.calls[i], want[i])
		}
	}
}

func TestDrawSceneHeadFollowsDirection(t *testing.T) {
	for _, d := range components.Directions {
		s := &recordingSurface{}
		scene := Scene{Width: 80, Height: 80, CellSize: 40, Body: []components.Cell{{X: 0, Y: 0}}, Direction: d}
		DrawScene(s, scene, testBundle(), testStyle())

		var head assets.Name
		for _, c := range s.calls {
			if c.kind == "image" {
				head = c.image
			}
		}
		if head != assets.HeadName(d) {
			t.Errorf("direction %s drew head %s, want %s", d, head, assets.HeadName(d))
		}
	}
}

func TestDrawSceneWithoutFood(t *testing.T) {
	s := &recordingSurface{}
	scene := Scene{Width: 80, Height: 80, CellSize: 40, Body: []components.Cell{{X: 40, Y: 40}}, Food: components.Cell{X: 0, Y: 0}}
	DrawScene(s, scene, testBundle(), testStyle())

	for _, c := range s.calls {
		if c.image == assets.Food {
			t.Error("food drawn while HasFood is false")
		}
	}
}

func TestTerminalSurface(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	ts := NewTerminalSurface(screen, 40)
	if cols, rows := ts.Size(800, 600); cols != 40 || rows != 15 {
		t.Errorf("Size = %dx%d, want 40x15", cols, rows)
	}

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	ts.FillRect(0, 0, 800, 600, bg)
	ts.DrawImage(&assets.Glyph{Rune: '>', Style: tcell.StyleDefault}, 440, 280, 40, 40)
	screen.Show()

	r, _, _, _ := screen.GetContent(22, 7)
	if r != '>' {
		t.Errorf("head rune at (22,7) = %q, want '>'", r)
	}

	_, _, style, _ := screen.GetContent(0, 0)
	_, bgGot, _ := style.Decompose()
	if want := tcell.NewRGBColor(10, 20, 30); bgGot != want {
		t.Errorf("background at (0,0) = %v, want %v", bgGot, want)
	}

	// Inset body rect still covers exactly one cell.
	ts.FillRect(402, 302, 36, 36, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	_, _, style, _ = screen.GetContent(20, 7)
	if _, bgGot, _ = style.Decompose(); bgGot != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("body cell background = %v, want body color", bgGot)
	}
	_, _, style, _ = screen.GetContent(22, 7)
	if _, bgGot, _ = style.Decompose(); bgGot == tcell.NewRGBColor(1, 2, 3) {
		t.Error("inset body rect spilled into neighbouring cell")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 40, 0},
		{39, 40, 0},
		{40, 40, 1},
		{-1, 40, -1},
		{-40, 40, -1},
		{-41, 40, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
