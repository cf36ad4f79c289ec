// Package debugui provides a Dear ImGui overlay for inspecting a running game.
// Windows are registered as items on an Overlay resource and rendered by the
// overlay system after each frame's events are delivered.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front-ends consult it before forwarding keys to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of windows drawn each frame.
type Overlay struct {
	Visible bool
	items   []Item
}

// NewOverlay returns a visible overlay with no windows.
func NewOverlay() *Overlay {
	return &Overlay{Visible: true}
}

// Add registers a window.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Items returns the registered windows in order.
func (o *Overlay) Items() []Item {
	return o.items
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Render draws every window now. Front-ends call it directly while no
// scheduler frame is running.
func (o *Overlay) Render() {
	if !o.Visible {
		return
	}
	for _, item := range o.items {
		item.Render()
	}
}

// System updates InputState and defers every overlay window's render
// function until the frame's events have been delivered.
type System struct {
	Overlay    loop.Resource[Overlay]
	InputState loop.Resource[InputState]
}

func (s *System) Execute(frame *loop.Frame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	if overlay := s.Overlay.Get(); overlay != nil {
		frame.Events.Defer(overlay.Render)
	}
}
