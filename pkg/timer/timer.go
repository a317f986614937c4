// Package timer tracks elapsed time for a command and for each of its stages.
package timer

import (
	"sync"
	"time"
)

// Timer measures total elapsed time and the time spent in the current stage.
type Timer interface {
	// Start resets the timer. Total and stage time both restart from zero.
	Start()
	// NewStage begins a new stage. Total time keeps running.
	NewStage()
	// GetTiming returns the total time since Start and the time since the last stage began.
	GetTiming() (total, stage time.Duration)
}

// Clock returns the current time.
type Clock func() time.Time

// StageTimer is the default Timer implementation.
type StageTimer struct {
	mu         sync.Mutex
	now        Clock
	start      time.Time
	stageStart time.Time
}

// New returns a StageTimer driven by time.Now. Call Start before reading it.
func New() *StageTimer {
	return NewWithClock(time.Now)
}

// NewWithClock returns a StageTimer driven by clock.
func NewWithClock(clock Clock) *StageTimer {
	if clock == nil {
		clock = time.Now
	}

	return &StageTimer{now: clock}
}

// Start implements Timer.
func (t *StageTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.start = t.now()
	t.stageStart = t.start
}

// NewStage implements Timer.
func (t *StageTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		t.start = t.now()
	}

	t.stageStart = t.now()
}

// GetTiming implements Timer. An unstarted timer reports zero durations.
func (t *StageTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	now := t.now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
