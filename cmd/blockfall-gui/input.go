package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// repeater turns a held key into an initial press followed by repeats.
// Delays are counted in frames.
type repeater struct {
	delay    int
	interval int
	held     int
}

// Step advances one frame and reports whether the key fires this frame.
func (r *repeater) Step(pressed bool) bool {
	if !pressed {
		r.held = 0
		return false
	}
	r.held++
	if r.held == 1 {
		return true
	}
	if r.held <= r.delay {
		return false
	}
	return (r.held-r.delay)%max(r.interval, 1) == 0
}

type binding struct {
	keys    []ebiten.Key
	command engine.Command
	repeat  *repeater
}

// keyboard maps ebiten key state to engine commands.
type keyboard struct {
	bindings []binding
}

func newKeyboard() *keyboard {
	return &keyboard{
		bindings: []binding{
			{keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, command: engine.MoveLeft, repeat: &repeater{delay: 10, interval: 3}},
			{keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, command: engine.MoveRight, repeat: &repeater{delay: 10, interval: 3}},
			{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, command: engine.SoftDropStep, repeat: &repeater{delay: 0, interval: 3}},
			{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, command: engine.Rotate},
			{keys: []ebiten.Key{ebiten.KeySpace}, command: engine.HardDrop},
			{keys: []ebiten.Key{ebiten.KeyC}, command: engine.Hold},
			{keys: []ebiten.Key{ebiten.KeyP}, command: engine.TogglePause},
			{keys: []ebiten.Key{ebiten.KeyQ}, command: engine.Quit},
		},
	}
}

// Poll pushes every command whose key fired this frame.
func (k *keyboard) Poll(q *loop.Queue) {
	for _, b := range k.bindings {
		if b.repeat != nil {
			if b.repeat.Step(anyPressed(b.keys)) {
				q.Push(b.command)
			}
			continue
		}
		if anyJustPressed(b.keys) {
			q.Push(b.command)
		}
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
