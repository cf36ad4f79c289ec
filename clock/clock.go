// Package clock abstracts wall-clock time so gravity can be driven by a
// simulated clock in tests.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// FrameTimer measures the time between successive frames.
type FrameTimer struct {
	clock Clock
	last  time.Time
}

// NewFrameTimer starts a timer at the clock's current time.
func NewFrameTimer(c Clock) *FrameTimer {
	return &FrameTimer{clock: c, last: c.Now()}
}

// Tick returns the current time and the elapsed time since the previous Tick.
func (ft *FrameTimer) Tick() (time.Time, time.Duration) {
	now := ft.clock.Now()
	delta := now.Sub(ft.last)
	ft.last = now
	return now, delta
}
