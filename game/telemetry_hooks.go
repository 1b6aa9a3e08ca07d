package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/dragon/config"
	"github.com/pthm-cable/dragon/telemetry"
)

// Telemetry bundles the run collector, tick timing and optional CSV output.
type Telemetry struct {
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
	Output    *telemetry.OutputManager

	perfLogEvery int
}

// NewTelemetry creates telemetry from the config. An empty outputDir
// disables file output.
func NewTelemetry(cfg *config.Config, outputDir string) (*Telemetry, error) {
	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return nil, fmt.Errorf("telemetry output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("telemetry config snapshot: %w", err)
	}

	return &Telemetry{
		Collector:    telemetry.NewCollector(cfg.Telemetry.HallOfFame, cfg.Telemetry.Milestone),
		Perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		Output:       om,
		perfLogEvery: cfg.Telemetry.PerfLogEvery,
	}, nil
}

// Summary aggregates every finished run.
func (t *Telemetry) Summary() telemetry.Summary {
	if t == nil {
		return telemetry.Summary{}
	}
	return telemetry.Summarize(t.Collector.Runs())
}

// Close logs the session summary and closes output files.
func (t *Telemetry) Close() error {
	if t == nil {
		return nil
	}
	t.Summary().LogStats()
	t.Collector.HallOfFame().Log()
	return t.Output.Close()
}

func (c *Controller) beginRun() {
	if c.tel == nil {
		return
	}
	id := c.tel.Collector.BeginRun(c.tick, c.session.Creature.Len())
	slog.Info("run started", "run_id", id, "tick", c.tick)
}

func (c *Controller) recordTick() {
	if c.tel == nil {
		return
	}
	c.tel.Collector.RecordTick(c.session.Creature.Len())

	if c.tel.perfLogEvery > 0 && c.tick%int64(c.tel.perfLogEvery) == 0 {
		stats := c.tel.Perf.Stats()
		stats.LogStats()
		if err := c.tel.Output.WritePerf(stats, c.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

func (c *Controller) recordFood() {
	if c.tel == nil {
		return
	}
	bookmarks := c.tel.Collector.RecordFood(c.tick, c.session.Score, c.session.Creature.Len())
	for _, bm := range bookmarks {
		bm.LogBookmark()
		if err := c.tel.Output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

func (c *Controller) endRun(reason string) {
	if c.tel == nil {
		return
	}
	r, ok := c.tel.Collector.EndRun(c.tick, c.session.Score, c.session.Creature.Len(), reason)
	if !ok {
		return
	}
	slog.Info("run ended", "run", r)
	if err := c.tel.Output.WriteRun(r); err != nil {
		slog.Error("failed to write run", "error", err)
	}
}

func (c *Controller) startPhase(phase telemetry.Phase) {
	if c.tel != nil {
		c.tel.Perf.StartPhase(phase)
	}
}
