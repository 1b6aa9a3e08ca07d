// Asset check tool - verifies that every configured image (and terminal
// glyph) resolves before the game is started.
//
// Usage: go run ./cmd/assetcheck [-config path] [-glyphs]
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	glyphs := flag.Bool("glyphs", false, "Check the terminal glyph table instead of image files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var loader assets.Loader = assets.ImageLoader{}
	if *glyphs {
		loader = assets.NewGlyphLoader(cfg)
	}

	manifest := assets.ManifestFromConfig(cfg)
	bundle, err := assets.LoadAll(loader, manifest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer bundle.Unload(loader)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tDETAIL")
	for _, name := range assets.Order {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, manifest[name], describe(bundle.Get(name), cfg.Board.CellSize))
	}
	w.Flush()
}

func describe(img assets.Image, cellSize int) string {
	switch img := img.(type) {
	case *assets.Picture:
		s := fmt.Sprintf("%dx%d", img.Width, img.Height)
		if int(img.Width) != cellSize || int(img.Height) != cellSize {
			s += fmt.Sprintf(" (scaled to %dx%d)", cellSize, cellSize)
		}
		return s
	case *assets.Glyph:
		return fmt.Sprintf("%q", img.Rune)
	}
	return "?"
}
