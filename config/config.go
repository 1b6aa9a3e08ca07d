// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned (wrapped) when a loaded configuration is inconsistent.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Board     BoardConfig     `yaml:"board"`
	Loop      LoopConfig      `yaml:"loop"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Render    RenderConfig    `yaml:"render"`
	Assets    AssetsConfig    `yaml:"assets"`
	Glyphs    GlyphsConfig    `yaml:"glyphs"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// BoardConfig holds the canvas dimensions in pixels.
// A start coordinate set to null falls back to the canvas center on that axis.
type BoardConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	CellSize int  `yaml:"cell_size"`
	StartX   *int `yaml:"start_x"`
	StartY   *int `yaml:"start_y"`
}

// LoopConfig holds tick cadence.
type LoopConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// ScoringConfig holds scoring parameters.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// RenderConfig holds drawing parameters shared by all surfaces.
type RenderConfig struct {
	Background     string `yaml:"background"`
	Body           string `yaml:"body"`
	BodyInset      int    `yaml:"body_inset"`
	StatusFontSize int    `yaml:"status_font_size"`
	ButtonSize     int    `yaml:"button_size"`
}

// AssetsConfig lists the image files, relative to Dir.
type AssetsConfig struct {
	Dir         string `yaml:"dir"`
	DragonUp    string `yaml:"dragon_up"`
	DragonDown  string `yaml:"dragon_down"`
	DragonLeft  string `yaml:"dragon_left"`
	DragonRight string `yaml:"dragon_right"`
	Food        string `yaml:"food"`
}

// GlyphsConfig holds the terminal stand-ins for the images.
type GlyphsConfig struct {
	DragonUp    string `yaml:"dragon_up"`
	DragonDown  string `yaml:"dragon_down"`
	DragonLeft  string `yaml:"dragon_left"`
	DragonRight string `yaml:"dragon_right"`
	Food        string `yaml:"food"`
	HeadColor   string `yaml:"head_color"`
	FoodColor   string `yaml:"food_color"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow   int `yaml:"perf_window"`      // Ticks averaged by the perf collector
	PerfLogEvery int `yaml:"perf_log_every"`   // Log perf stats every N ticks (0 = never)
	HallOfFame   int `yaml:"hall_of_fame"`     // Best runs kept in memory
	Milestone    int `yaml:"length_milestone"` // Bookmark every N body cells (0 = never)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background color.RGBA
	Body       color.RGBA
	HeadGlyph  color.RGBA
	FoodGlyph  color.RGBA
	StartX     int // Effective start cell
	StartY     int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	colors := []struct {
		field string
		hex   string
		dst   *color.RGBA
	}{
		{"render.background", c.Render.Background, &c.Derived.Background},
		{"render.body", c.Render.Body, &c.Derived.Body},
		{"glyphs.head_color", c.Glyphs.HeadColor, &c.Derived.HeadGlyph},
		{"glyphs.food_color", c.Glyphs.FoodColor, &c.Derived.FoodGlyph},
	}
	for _, col := range colors {
		rgba, err := parseHex(col.hex)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, col.field, err)
		}
		*col.dst = rgba
	}

	c.Derived.StartX = c.Board.Width / 2
	if c.Board.StartX != nil {
		c.Derived.StartX = *c.Board.StartX
	}
	c.Derived.StartY = c.Board.Height / 2
	if c.Board.StartY != nil {
		c.Derived.StartY = *c.Board.StartY
	}
	return nil
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, b.Width, b.Height)
	case b.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, b.CellSize)
	case b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0:
		return fmt.Errorf("%w: cell size %d does not divide board %dx%d", ErrInvalid, b.CellSize, b.Width, b.Height)
	case c.Derived.StartX < 0 || c.Derived.StartX >= b.Width || c.Derived.StartY < 0 || c.Derived.StartY >= b.Height:
		return fmt.Errorf("%w: start (%d,%d) outside board", ErrInvalid, c.Derived.StartX, c.Derived.StartY)
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %s", ErrInvalid, c.Loop.TickInterval)
	case c.Scoring.FoodPoints < 0:
		return fmt.Errorf("%w: food points %d", ErrInvalid, c.Scoring.FoodPoints)
	case c.Render.BodyInset < 0 || 2*c.Render.BodyInset >= b.CellSize:
		return fmt.Errorf("%w: body inset %d", ErrInvalid, c.Render.BodyInset)
	}
	return nil
}

// AssetPath joins a file name from the assets section onto the asset directory.
func (c *Config) AssetPath(file string) string {
	return filepath.Join(c.Assets.Dir, file)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func parseHex(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
