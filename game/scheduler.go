package game

import "time"

// Timer is a handle to a repeating callback.
type Timer interface {
	Stop()
}

// Scheduler runs a callback every period until its timer is stopped.
type Scheduler interface {
	Every(period time.Duration, fn func()) Timer
}

// FrameScheduler is a cooperative Scheduler driven by a frame pump.
// Callbacks only run inside Advance, on the caller's goroutine.
type FrameScheduler struct {
	timers []*frameTimer
}

type frameTimer struct {
	period  time.Duration
	elapsed time.Duration
	fn      func()
	stopped bool
}

func (t *frameTimer) Stop() { t.stopped = true }

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Every implements Scheduler. A non-positive period panics.
func (s *FrameScheduler) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		panic("game: non-positive timer period")
	}
	t := &frameTimer{period: period, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves time forward by dt and fires every timer whose period has
// elapsed, at most once each. Periods missed beyond the first are dropped.
// Timers installed by a callback start counting from the next Advance.
// Returns the number of callbacks fired.
func (s *FrameScheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}

	due := s.timers
	fired := 0
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.elapsed += dt
		if t.elapsed < t.period {
			continue
		}
		t.elapsed %= t.period
		t.fn()
		fired++
	}

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(s.timers[len(live):])
	s.timers = live
	return fired
}

// Active returns the number of running timers.
func (s *FrameScheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
