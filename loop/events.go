package loop

import (
	"time"

	"github.com/plus3/blockfall/engine"
)

// EventKind says which kind of transition produced an event.
type EventKind uint8

const (
	// EventCommand is emitted for every polled command, whether or not it
	// changed anything.
	EventCommand EventKind = iota + 1
	// EventGravity is emitted when a gravity step moved or locked the piece.
	EventGravity
	// EventGameOver is emitted once, on the first frame the game is over.
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventGravity:
		return "gravity"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event records one engine transition.
type Event struct {
	Kind    EventKind
	At      time.Time
	Command engine.Command
	Result  engine.Result
}

// Listener receives events after a frame's systems have all run.
type Listener func(Event)

// Events buffers events and deferred calls raised during a frame. Nothing is
// delivered until Flush, so listeners never observe a half-updated frame.
type Events struct {
	pending []Event
	defers  []func()
}

func newEvents() *Events {
	return &Events{}
}

// Emit queues an event.
func (e *Events) Emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// Defer queues a function to run after the frame's events are delivered.
func (e *Events) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.pending)
}

// Flush delivers queued events to every listener in order, runs deferred
// functions, and resets the buffer.
func (e *Events) Flush(listeners []Listener) {
	for _, ev := range e.pending {
		for _, l := range listeners {
			l(ev)
		}
	}

	for _, fn := range e.defers {
		fn()
	}

	e.pending = e.pending[:0]
	e.defers = e.defers[:0]
}
