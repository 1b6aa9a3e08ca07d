package assets

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/dragon/config"
)

// Glyph is a terminal stand-in for an image.
type Glyph struct {
	name  Name
	Rune  rune
	Style tcell.Style
}

// Name implements Image.
func (g *Glyph) Name() Name { return g.name }

// GlyphLoader resolves images from a configured rune table.
// The path argument is ignored; the table key is the image name.
type GlyphLoader struct {
	Runes  map[Name]string
	Styles map[Name]tcell.Style
}

// NewGlyphLoader builds a loader from the glyphs section.
func NewGlyphLoader(cfg *config.Config) *GlyphLoader {
	g := cfg.Glyphs
	head := tcell.StyleDefault.Foreground(rgb(cfg.Derived.HeadGlyph)).Background(rgb(cfg.Derived.Background)).Bold(true)
	food := tcell.StyleDefault.Foreground(rgb(cfg.Derived.FoodGlyph)).Background(rgb(cfg.Derived.Background)).Bold(true)

	return &GlyphLoader{
		Runes: map[Name]string{
			DragonUp:    g.DragonUp,
			DragonDown:  g.DragonDown,
			DragonLeft:  g.DragonLeft,
			DragonRight: g.DragonRight,
			Food:        g.Food,
		},
		Styles: map[Name]tcell.Style{
			DragonUp:    head,
			DragonDown:  head,
			DragonLeft:  head,
			DragonRight: head,
			Food:        food,
		},
	}
}

// Load implements Loader.
func (l *GlyphLoader) Load(name Name, _ string) (Image, error) {
	s, ok := l.Runes[name]
	if !ok || s == "" {
		return nil, fmt.Errorf("no glyph configured for %s", name)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return nil, fmt.Errorf("glyph for %s is not valid UTF-8", name)
	}
	return &Glyph{name: name, Rune: r, Style: l.Styles[name]}, nil
}

// Unload implements Loader.
func (l *GlyphLoader) Unload(Image) {}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
