package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/highscore"
)

func fires(r *repeater, frames int) []int {
	var out []int
	for i := 1; i <= frames; i++ {
		if r.Step(true) {
			out = append(out, i)
		}
	}
	return out
}

func TestRepeater(t *testing.T) {
	t.Run("delay then interval", func(t *testing.T) {
		r := &repeater{delay: 10, interval: 3}
		assert.Equal(t, []int{1, 13, 16, 19}, fires(r, 20))
	})

	t.Run("no delay", func(t *testing.T) {
		r := &repeater{interval: 3}
		assert.Equal(t, []int{1, 3, 6, 9}, fires(r, 10))
	})

	t.Run("release resets", func(t *testing.T) {
		r := &repeater{delay: 10, interval: 3}
		assert.True(t, r.Step(true))
		assert.False(t, r.Step(true))
		assert.False(t, r.Step(false))
		assert.True(t, r.Step(true))
	})

	t.Run("zero interval repeats every frame", func(t *testing.T) {
		r := &repeater{delay: 2}
		assert.Equal(t, []int{1, 3, 4, 5}, fires(r, 5))
	})
}

func TestScoresText(t *testing.T) {
	assert.Contains(t, scoresText(nil), "No scores yet")

	text := scoresText([]highscore.Entry{{Name: "ana", Score: 900}, {Name: "bo", Score: 40}})
	assert.Contains(t, text, " 1. ana")
	assert.Contains(t, text, " 2. bo")
	assert.NotContains(t, text, "No scores yet")
}

func TestIdleOverlayOutsidePlay(t *testing.T) {
	overlay := debugui.NewOverlay()
	var renders int
	overlay.Add(debugui.Item{Name: "count", Render: func() { renders++ }})

	g := &Game{overlay: overlay}
	g.idleOverlay(phasePlaying)
	assert.Zero(t, renders)

	g.idleOverlay(phaseNameEntry)
	g.idleOverlay(phaseScores)
	assert.Equal(t, 2, renders)

	overlay.Toggle()
	g.idleOverlay(phaseScores)
	assert.Equal(t, 2, renders)

	(&Game{}).idleOverlay(phaseScores)
}
