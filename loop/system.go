// Package loop drives a game with an ordered list of systems executed once
// per frame. Systems read shared state through Resource fields that the
// Scheduler injects at registration, and report what happened through frame
// events that are delivered to listeners after every system has run.
package loop

// System is a unit of per-frame behavior. Implementations may declare
// Resource fields, which are initialized by Scheduler.Register, and may keep
// their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
