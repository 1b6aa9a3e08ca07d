package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed section of a game tick.
type Phase uint8

const (
	PhaseStep Phase = iota
	PhaseNotify
	PhaseTelemetry
	PhaseRender
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseStep:
		return "step"
	case PhaseNotify:
		return "notify"
	case PhaseTelemetry:
		return "telemetry"
	case PhaseRender:
		return "render"
	}
	return "unknown"
}

type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times game ticks and their phases over the last window ticks,
// and the frame interval of the window front-end.
type PerfCollector struct {
	now func() time.Time

	window []tickSample
	next   int
	filled int

	cur        tickSample
	tickStart  time.Time
	phase      Phase
	phaseStart time.Time
	inPhase    bool

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks (50 if not positive).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 50
	}
	return &PerfCollector{now: time.Now, window: make([]tickSample, window)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.cur = tickSample{}
	p.tickStart = p.now()
	p.inPhase = false
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase, p.phaseStart, p.inPhase = phase, now, true
}

// EndTick closes the running phase and stores the tick in the window.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false
	p.cur.total = now.Sub(p.tickStart)

	p.window[p.next] = p.cur
	p.next = (p.next + 1) % len(p.window)
	p.filled = min(p.filled+1, len(p.window))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase < numPhases {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame marks the start of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats is a snapshot of the timing window.
type PerfStats struct {
	Ticks   int // Ticks in the window
	AvgTick time.Duration
	MaxTick time.Duration
	Phase   [numPhases]time.Duration // Average per phase
	Frame   time.Duration            // Last frame interval (0 without a window)
}

// FPS derives the frame rate from the last frame interval.
func (s PerfStats) FPS() float64 {
	if s.Frame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Frame)
}

// Stats averages the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled, Frame: p.frame}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phases [numPhases]time.Duration
	for _, t := range p.window[:p.filled] {
		total += t.total
		s.MaxTick = max(s.MaxTick, t.total)
		for i, d := range t.phases {
			phases[i] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgTick = total / n
	for i := range phases {
		s.Phase[i] = phases[i] / n
	}
	return s
}

// LogStats logs the snapshot at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
	}
	for i, d := range s.Phase {
		attrs = append(attrs, slog.Int64(Phase(i).String()+"_us", d.Microseconds()))
	}
	if fps := s.FPS(); fps > 0 {
		attrs = append(attrs, slog.Float64("fps", fps))
	}
	return slog.GroupValue(attrs...)
}

// PerfRecord is one row of perf.csv.
type PerfRecord struct {
	Tick        int64   `csv:"tick"`
	AvgTickUS   int64   `csv:"avg_tick_us"`
	MaxTickUS   int64   `csv:"max_tick_us"`
	StepUS      int64   `csv:"step_us"`
	NotifyUS    int64   `csv:"notify_us"`
	TelemetryUS int64   `csv:"telemetry_us"`
	RenderUS    int64   `csv:"render_us"`
	FPS         float64 `csv:"fps"`
}

// Record flattens the snapshot taken at tick into a CSV row.
func (s PerfStats) Record(tick int64) PerfRecord {
	return PerfRecord{
		Tick:        tick,
		AvgTickUS:   s.AvgTick.Microseconds(),
		MaxTickUS:   s.MaxTick.Microseconds(),
		StepUS:      s.Phase[PhaseStep].Microseconds(),
		NotifyUS:    s.Phase[PhaseNotify].Microseconds(),
		TelemetryUS: s.Phase[PhaseTelemetry].Microseconds(),
		RenderUS:    s.Phase[PhaseRender].Microseconds(),
		FPS:         s.FPS(),
	}
}
