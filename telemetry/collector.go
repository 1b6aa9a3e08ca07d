// Package telemetry tracks runs, timing and summary statistics for the game.
package telemetry

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// End reasons recorded on RunStats.
const (
	EndCollision = "collision"
	EndRestart   = "restart"
	EndQuit      = "quit"
)

// RunStats describes one finished run, from Start to game over.
type RunStats struct {
	RunID       string `csv:"run_id"`
	Seq         int    `csv:"seq"`
	StartTick   int64  `csv:"start_tick"`
	EndTick     int64  `csv:"end_tick"`
	Ticks       int    `csv:"ticks"`
	Score       int    `csv:"-"` // Logged and summarized, never written to disk
	FoodEaten   int    `csv:"food_eaten"`
	FinalLength int    `csv:"final_length"`
	MaxLength   int    `csv:"max_length"`
	DurationMS  int64  `csv:"duration_ms"`
	EndReason   string `csv:"end_reason"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", r.RunID),
		slog.Int("seq", r.Seq),
		slog.Int("ticks", r.Ticks),
		slog.Int("score", r.Score),
		slog.Int("food_eaten", r.FoodEaten),
		slog.Int("final_length", r.FinalLength),
		slog.Int("max_length", r.MaxLength),
		slog.Int64("duration_ms", r.DurationMS),
		slog.String("end_reason", r.EndReason),
	)
}

// Collector follows the current run and keeps every finished one.
type Collector struct {
	now func() time.Time

	active  bool
	current RunStats
	started time.Time

	runs      []RunStats
	hof       *HallOfFame
	bookmarks *BookmarkDetector
}

// NewCollector creates a collector keeping the best hofSize runs and
// flagging every milestone body lengths (0 disables milestones).
func NewCollector(hofSize, milestone int) *Collector {
	return &Collector{
		now:       time.Now,
		hof:       NewHallOfFame(hofSize),
		bookmarks: NewBookmarkDetector(milestone),
	}
}

// BeginRun opens a run at the given tick and returns its id.
// A run still open is closed first with EndRestart.
func (c *Collector) BeginRun(tick int64, length int) string {
	if c.active {
		c.EndRun(tick, c.current.Score, length, EndRestart)
	}

	c.active = true
	c.started = c.now()
	c.current = RunStats{
		RunID:       uuid.NewString(),
		Seq:         len(c.runs) + 1,
		StartTick:   tick,
		FinalLength: length,
		MaxLength:   length,
	}
	c.bookmarks.BeginRun(c.hof.BestScore())
	return c.current.RunID
}

// Active reports whether a run is open.
func (c *Collector) Active() bool {
	return c.active
}

// RecordTick records one completed tick of the open run.
func (c *Collector) RecordTick(length int) {
	if !c.active {
		return
	}
	c.current.Ticks++
	c.current.FinalLength = length
	if length > c.current.MaxLength {
		c.current.MaxLength = length
	}
}

// RecordFood records a food consumption and returns any bookmarks it triggered.
func (c *Collector) RecordFood(tick int64, score, length int) []Bookmark {
	if !c.active {
		return nil
	}
	c.current.FoodEaten++
	c.current.Score = score
	return c.bookmarks.Check(c.current.RunID, tick, score, length)
}

// EndRun closes the open run. It returns false when no run was open.
func (c *Collector) EndRun(tick int64, score, length int, reason string) (RunStats, bool) {
	if !c.active {
		return RunStats{}, false
	}
	c.active = false

	r := c.current
	r.EndTick = tick
	r.Score = score
	r.FinalLength = length
	if length > r.MaxLength {
		r.MaxLength = length
	}
	r.DurationMS = c.now().Sub(c.started).Milliseconds()
	r.EndReason = reason

	c.runs = append(c.runs, r)
	c.hof.Consider(r)
	return r, true
}

// Runs returns every finished run in order.
func (c *Collector) Runs() []RunStats {
	return c.runs
}

// HallOfFame returns the best runs seen so far.
func (c *Collector) HallOfFame() *HallOfFame {
	return c.hof
}
