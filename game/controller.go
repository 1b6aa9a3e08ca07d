package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/dragon/systems"
	"github.com/pthm-cable/dragon/telemetry"
)

// State is the game loop state.
type State uint8

const (
	Idle State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Controller drives a Session from a Scheduler and reports to a Notifier.
// All methods must be called from the goroutine that runs the scheduler.
type Controller struct {
	session *Session
	sched   Scheduler
	period  time.Duration
	notify  Notifier
	tel     *Telemetry

	timer Timer
	state State
	tick  int64

	onTick func(systems.StepResult)
}

// NewController creates an idle controller. tel may be nil.
func NewController(s *Session, sched Scheduler, period time.Duration, n Notifier, tel *Telemetry) *Controller {
	return &Controller{
		session: s,
		sched:   sched,
		period:  period,
		notify:  n,
		tel:     tel,
	}
}

// OnTick registers a hook run after every tick, used by front-ends that
// redraw per tick.
func (c *Controller) OnTick(fn func(systems.StepResult)) {
	c.onTick = fn
}

// Start places food and begins ticking. Calling Start while a timer is
// installed replaces it.
func (c *Controller) Start() {
	c.stopTimer()
	c.endRun(telemetry.EndRestart)

	c.session.PlaceFood()
	c.timer = c.sched.Every(c.period, c.Frame)
	c.state = Running
	c.beginRun()
}

// Frame runs one tick. It does nothing unless the controller is running.
func (c *Controller) Frame() {
	if c.state != Running {
		return
	}

	if c.tel != nil {
		c.tel.Perf.StartTick()
	}
	c.startPhase(telemetry.PhaseStep)
	res := c.session.Tick()
	c.tick++

	c.startPhase(telemetry.PhaseNotify)
	switch {
	case res.Collided:
		c.stopTimer()
		c.state = GameOver
		slog.Info("self collision", "head", res.Head, "score", c.session.Score, "tick", c.tick)
		c.notify.GameOver(c.session.Score)
	case res.Ate:
		c.notify.ScoreChanged(c.session.Score)
	}

	c.startPhase(telemetry.PhaseTelemetry)
	if res.Ate {
		c.recordFood()
	}
	c.recordTick()
	if res.Collided {
		c.endRun(telemetry.EndCollision)
	}

	if c.onTick != nil {
		c.startPhase(telemetry.PhaseRender)
		c.onTick(res)
	}
	if c.tel != nil {
		c.tel.Perf.EndTick()
	}
}

// Restart resets the session and starts a new run.
func (c *Controller) Restart() {
	c.endRun(telemetry.EndRestart)
	c.session.Reset()
	c.notify.ScoreChanged(0)
	c.Start()
}

// Stop cancels the timer without changing state.
func (c *Controller) Stop() {
	c.stopTimer()
	c.endRun(telemetry.EndQuit)
}

func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// State returns the current loop state.
func (c *Controller) State() State {
	return c.state
}

// Ticks returns the number of ticks run since creation.
func (c *Controller) Ticks() int64 {
	return c.tick
}

// Session returns the controlled session.
func (c *Controller) Session() *Session {
	return c.session
}
