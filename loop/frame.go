package loop

import "time"

// Frame is passed to every system during one scheduler step.
type Frame struct {
	Now       time.Time
	DeltaTime time.Duration
	Events    *Events

	stopped bool
}

func newFrame(now time.Time, dt time.Duration, events *Events) *Frame {
	return &Frame{
		Now:       now,
		DeltaTime: dt,
		Events:    events,
	}
}

// Stop asks the scheduler to end its run after this frame.
func (f *Frame) Stop() {
	f.stopped = true
}

// Stopped reports whether a system called Stop during this frame.
func (f *Frame) Stopped() bool {
	return f.stopped
}
