package loop

import "github.com/plus3/blockfall/engine"

// InputSource yields at most one pending command per poll without blocking.
type InputSource interface {
	Poll() (engine.Command, bool)
}

// Queue is a bounded, non-blocking command buffer. Front-ends push commands
// as keys arrive; the input system drains one per frame.
type Queue struct {
	ch chan engine.Command
}

// NewQueue returns a queue holding up to size pending commands.
func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan engine.Command, max(size, 1))}
}

// Push enqueues c. It reports false and drops c when the queue is full.
func (q *Queue) Push(c engine.Command) bool {
	select {
	case q.ch <- c:
		return true
	default:
		return false
	}
}

// Poll returns the oldest pending command, if any.
func (q *Queue) Poll() (engine.Command, bool) {
	select {
	case c := <-q.ch:
		return c, true
	default:
		return 0, false
	}
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Drain discards all pending commands.
func (q *Queue) Drain() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
