package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

type gameHarness struct {
	game   *engine.Game
	clock  *clock.Manual
	input  *loop.Queue
	sched  *loop.Scheduler
	events []loop.Event
}

func newHarness(t *testing.T, b *board.Board, kinds ...piece.Kind) *gameHarness {
	t.Helper()
	h := &gameHarness{
		clock: clock.NewManual(epoch),
		input: loop.NewQueue(8),
	}

	opts := []engine.Option{
		engine.WithGenerator(piece.Sequence(kinds...)),
		engine.WithClock(h.clock),
	}
	if b != nil {
		opts = append(opts, engine.WithBoard(b))
	}
	h.game = engine.New(opts...)
	h.sched = loop.NewGameScheduler(h.game, h.input)
	h.sched.Listen(func(ev loop.Event) {
		h.events = append(h.events, ev)
	})
	return h
}

func TestGravitySystem(t *testing.T) {
	h := newHarness(t, nil, piece.O)

	h.clock.Advance(999 * time.Millisecond)
	require.True(t, h.sched.Once())
	assert.Equal(t, 0, h.game.Active().Y)
	assert.Empty(t, h.events)

	h.clock.Advance(time.Millisecond)
	require.True(t, h.sched.Once())
	assert.Equal(t, 1, h.game.Active().Y)
	require.Len(t, h.events, 1)
	assert.Equal(t, loop.EventGravity, h.events[0].Kind)
	assert.True(t, h.events[0].Result.Moved)
	assert.Equal(t, epoch.Add(time.Second), h.events[0].At)

	// The timer restarted at the last step.
	h.clock.Advance(500 * time.Millisecond)
	h.sched.Once()
	assert.Equal(t, 1, h.game.Active().Y)
}

func TestInputSystem(t *testing.T) {
	t.Run("one command per frame", func(t *testing.T) {
		h := newHarness(t, nil, piece.O)
		require.True(t, h.input.Push(engine.MoveLeft))
		require.True(t, h.input.Push(engine.MoveLeft))

		h.sched.Once()
		assert.Equal(t, 3, h.game.Active().X)
		assert.Equal(t, 1, h.input.Len())

		h.sched.Once()
		assert.Equal(t, 2, h.game.Active().X)

		require.Len(t, h.events, 2)
		for _, ev := range h.events {
			assert.Equal(t, loop.EventCommand, ev.Kind)
			assert.Equal(t, engine.MoveLeft, ev.Command)
			assert.True(t, ev.Result.Moved)
		}
	})

	t.Run("hard drop reports the lock", func(t *testing.T) {
		h := newHarness(t, nil, piece.O)
		h.input.Push(engine.HardDrop)

		h.sched.Once()

		require.Len(t, h.events, 1)
		r := h.events[0].Result
		assert.True(t, r.Locked)
		assert.Equal(t, board.Height-2, r.Dropped)
		assert.True(t, h.game.Board().Occupied(4, board.Height-1))
	})

	t.Run("paused game ignores gravity and input", func(t *testing.T) {
		h := newHarness(t, nil, piece.O)
		h.input.Push(engine.TogglePause)
		h.sched.Once()
		require.True(t, h.game.Paused())

		h.input.Push(engine.MoveRight)
		h.clock.Advance(5 * time.Second)
		h.sched.Once()

		assert.Equal(t, 4, h.game.Active().X)
		assert.Equal(t, 0, h.game.Active().Y)
	})
}

func TestGameOverSystem(t *testing.T) {
	t.Run("quit stops the loop", func(t *testing.T) {
		h := newHarness(t, nil, piece.T)
		h.input.Push(engine.Quit)

		assert.False(t, h.sched.Once())
		require.Len(t, h.events, 2)
		assert.Equal(t, loop.EventCommand, h.events[0].Kind)
		assert.True(t, h.events[0].Result.GameOver)
		assert.Equal(t, loop.EventGameOver, h.events[1].Kind)

		// Reported once; the loop keeps refusing to continue.
		assert.False(t, h.sched.Once())
		assert.Len(t, h.events, 2)
	})

	t.Run("blocked spawn ends a run", func(t *testing.T) {
		b := board.New()
		b.Set(4, 0, piece.I.Color())
		h := newHarness(t, b, piece.O)
		require.True(t, h.game.Over())

		err := h.sched.Run(context.Background(), time.Millisecond)
		require.NoError(t, err)
		require.Len(t, h.events, 1)
		assert.Equal(t, loop.EventGameOver, h.events[0].Kind)
	})

	t.Run("input is not polled after game over", func(t *testing.T) {
		h := newHarness(t, nil, piece.T)
		h.game.Quit()
		h.input.Push(engine.MoveLeft)

		h.sched.Once()
		assert.Equal(t, 1, h.input.Len())
	})
}

func TestQueue(t *testing.T) {
	q := loop.NewQueue(2)

	assert.True(t, q.Push(engine.Rotate))
	assert.True(t, q.Push(engine.Hold))
	assert.False(t, q.Push(engine.HardDrop))

	c, ok := q.Poll()
	require.True(t, ok)
	assert.Equal(t, engine.Rotate, c)

	q.Drain()
	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}
