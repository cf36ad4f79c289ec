package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

func TestLineScore(t *testing.T) {
	assert.Equal(t, 0, LineScore(0))
	assert.Equal(t, 100, LineScore(1))
	assert.Equal(t, 300, LineScore(2))
	assert.Equal(t, 500, LineScore(3))
	assert.Equal(t, 800, LineScore(4))
	assert.Equal(t, 0, LineScore(5))
	assert.Equal(t, 0, LineScore(-1))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(9))
	assert.Equal(t, 2, LevelFor(10))
	assert.Equal(t, 4, LevelFor(35))
}

func TestFallIntervalFor(t *testing.T) {
	assert.Equal(t, 950*time.Millisecond, FallIntervalFor(1))
	assert.Equal(t, 500*time.Millisecond, FallIntervalFor(10))
	assert.Equal(t, 50*time.Millisecond, FallIntervalFor(19))
	assert.Equal(t, 50*time.Millisecond, FallIntervalFor(20))
	assert.Equal(t, 50*time.Millisecond, FallIntervalFor(500))

	prev := InitialFallInterval
	for level := 1; level <= 100; level++ {
		interval := FallIntervalFor(level)
		assert.LessOrEqual(t, interval, prev)
		assert.GreaterOrEqual(t, interval, MinFallInterval)
		assert.LessOrEqual(t, interval, InitialFallInterval)
		prev = interval
	}
}

func TestAward(t *testing.T) {
	t.Run("zero rows change nothing", func(t *testing.T) {
		g, _ := newTestGame(t, nil, piece.O)
		before := g.Progress()
		g.award(0)
		assert.Equal(t, before, g.Progress())
		assert.Equal(t, 0, g.Stats().Clears(0))
	})

	t.Run("uses level before the clear", func(t *testing.T) {
		g, _ := newTestGame(t, nil, piece.O)
		g.progress.Lines = 28
		g.progress.Level = LevelFor(28)
		g.progress.Score = 1000

		g.award(2)

		p := g.Progress()
		assert.Equal(t, 1000+300*3, p.Score)
		assert.Equal(t, 30, p.Lines)
		assert.Equal(t, 4, p.Level)
		assert.Equal(t, 800*time.Millisecond, p.FallInterval)
	})

	t.Run("tetris", func(t *testing.T) {
		g, _ := newTestGame(t, nil, piece.O)
		g.award(4)
		assert.Equal(t, 800, g.Progress().Score)
		assert.Equal(t, 1, g.Stats().Clears(4))
	})
}

func TestSingleClearAtHigherLevel(t *testing.T) {
	b := board.New()
	for x := 1; x < board.Width; x++ {
		b.Set(x, board.Height-1, piece.S.Color())
	}
	g, _ := newTestGame(t, b, piece.I)
	g.progress.Lines = 12
	g.progress.Level = 2

	place(g, piece.Piece{Kind: piece.I, Shape: piece.I.Shape().Rotate()}, 0, 0)
	r := g.HardDrop()

	assert.Equal(t, 1, r.Cleared)
	assert.Equal(t, 200, g.Progress().Score)
	assert.Equal(t, 13, g.Progress().Lines)
	assert.Equal(t, 2, g.Progress().Level)
}
