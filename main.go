package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dragon/assets"
	"github.com/pthm-cable/dragon/config"
	"github.com/pthm-cable/dragon/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	terminal := flag.Bool("terminal", false, "Play in the terminal instead of a window")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stdout/stderr")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	closeLog, err := setupLogging(*logLevel, *logFile, *terminal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer closeLog()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		MaxTicks:  *maxTicks,
	}

	tel, err := game.NewTelemetry(cfg, opts.OutputDir)
	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}
	if dir := tel.Output.Dir(); dir != "" {
		slog.Info("writing telemetry", "dir", dir)
	}

	slog.Info("starting", "seed", rngSeed, "terminal", *terminal, "max_ticks", *maxTicks)

	var code int
	if *terminal {
		code = runTerminal(cfg, tel, opts)
	} else {
		code = runWindow(cfg, tel, opts)
	}

	if err := tel.Close(); err != nil {
		slog.Error("failed to close telemetry", "error", err)
	}
	if code != 0 {
		closeLog()
		os.Exit(code)
	}
}

// setupLogging installs a JSON slog handler. The terminal front-end owns
// stdout, so it logs to stderr unless a file is given.
func setupLogging(level, file string, terminal bool) (func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	var w io.Writer = os.Stdout
	closeFn := func() {}
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case terminal:
		w = os.Stderr
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	return closeFn, nil
}

func runWindow(cfg *config.Config, tel *game.Telemetry, opts game.Options) int {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	loader := assets.TextureLoader{}
	bundle, err := assets.LoadAll(loader, assets.ManifestFromConfig(cfg))
	if err != nil {
		slog.Error("failed to load images", "error", err)
		game.ShowError("Could not load images", err)
		return 1
	}

	g := game.NewGame(cfg, bundle, loader, tel, opts)
	defer g.Unload()
	g.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if g.Done() {
			slog.Info("max ticks reached", "tick", g.Controller().Ticks())
			break
		}
	}
	return 0
}

func runTerminal(cfg *config.Config, tel *game.Telemetry, opts game.Options) int {
	bundle, err := assets.LoadAll(assets.NewGlyphLoader(cfg), assets.ManifestFromConfig(cfg))
	if err != nil {
		slog.Error("failed to load glyphs", "error", err)
		fmt.Fprintln(os.Stderr, "could not load glyphs:", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		return 1
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := game.NewTerminal(screen, cfg, bundle, tel, opts)
	if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("terminal loop failed", "error", err)
		return 1
	}
	return 0
}
