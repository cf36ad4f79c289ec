package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/piece"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, b *board.Board, kinds ...piece.Kind) (*Game, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	opts := []Option{
		WithGenerator(piece.Sequence(kinds...)),
		WithClock(clk),
	}
	if b != nil {
		opts = append(opts, WithBoard(b))
	}
	return New(opts...), clk
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.T, piece.I, piece.O)

	active := g.Active()
	assert.Equal(t, piece.T, active.Kind)
	assert.Equal(t, 4, active.X)
	assert.Equal(t, 0, active.Y)
	assert.Equal(t, piece.I, g.Next().Kind)

	p := g.Progress()
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Lines)
	assert.Equal(t, time.Second, p.FallInterval)
	assert.False(t, p.Paused)
	assert.False(t, p.Over)

	assert.False(t, g.HoldSlot().Full)
	assert.False(t, g.HoldSlot().Used)
	assert.Equal(t, epoch, g.LastFall())
}

func TestSpawnColumn(t *testing.T) {
	assert.Equal(t, 3, SpawnColumn(piece.I.Shape()))
	assert.Equal(t, 4, SpawnColumn(piece.O.Shape()))
	assert.Equal(t, 4, SpawnColumn(piece.T.Shape()))
	assert.Equal(t, 5, SpawnColumn(piece.I.Shape().Rotate()))
}

func TestMove(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.O)

	assert.True(t, g.Move(-1).Moved)
	assert.Equal(t, 3, g.Active().X)

	for g.Move(-1).Moved {
	}
	assert.Equal(t, 0, g.Active().X)

	r := g.Move(-1)
	assert.Equal(t, Result{}, r)
	assert.Equal(t, 0, g.Active().X)

	for g.Move(1).Moved {
	}
	assert.Equal(t, board.Width-2, g.Active().X)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	b := board.New()
	b.Set(3, 1, piece.Z.Color())
	g, _ := newTestGame(t, b, piece.O)

	assert.False(t, g.Move(-1).Moved)
	assert.Equal(t, 4, g.Active().X)
	assert.True(t, g.Move(1).Moved)
}

func TestSoftDrop(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.O, piece.T)

	for range board.Height - 2 {
		r := g.SoftDrop()
		require.True(t, r.Moved)
		require.False(t, r.Locked)
	}
	assert.Equal(t, board.Height-2, g.Active().Y)

	r := g.SoftDrop()
	assert.True(t, r.Locked)
	assert.Equal(t, 0, r.Cleared)
	assert.True(t, g.Board().Occupied(4, 18))
	assert.True(t, g.Board().Occupied(5, 19))
	assert.Equal(t, piece.T, g.Active().Kind)
	assert.Equal(t, 0, g.Active().Y)
}

func TestHardDropStacksOPieces(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.O)

	for i := range 5 {
		r := g.HardDrop()
		require.True(t, r.Locked)
		assert.Equal(t, 0, r.Cleared)
		assert.Equal(t, board.Height-2-2*i, r.Dropped)
	}

	cells := g.Board().Cells()
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			want := (x == 4 || x == 5) && y >= 10
			assert.Equal(t, want, cells[y][x] != piece.None, "cell %d,%d", x, y)
		}
	}
	assert.Equal(t, 0, g.Progress().Lines)
	assert.Equal(t, 0, g.Progress().Score)
	assert.False(t, g.Over())
}

func TestHardDropOPiecesAcrossColumnsClearsRow(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.O)

	// five O pieces side by side fill the bottom two rows
	for _, dx := range []int{-4, -2, 0, 2, 4} {
		for range max(dx, -dx) {
			if dx < 0 {
				g.Move(-1)
			} else {
				g.Move(1)
			}
		}
		r := g.HardDrop()
		require.True(t, r.Locked)
		if dx == 4 {
			assert.Equal(t, 2, r.Cleared)
		} else {
			assert.Equal(t, 0, r.Cleared)
		}
	}

	assert.Equal(t, board.Cells{}, g.Board().Cells())
	assert.Equal(t, 2, g.Progress().Lines)
	assert.Equal(t, 300, g.Progress().Score)
}

func TestSingleLineClear(t *testing.T) {
	b := board.New()
	for x := 1; x < board.Width; x++ {
		b.Set(x, board.Height-1, piece.L.Color())
	}
	g, _ := newTestGame(t, b, piece.I, piece.O)

	require.True(t, g.Rotate().Moved)
	for g.Move(-1).Moved {
	}
	require.Equal(t, 0, g.Active().X)

	r := g.HardDrop()
	assert.True(t, r.Locked)
	assert.Equal(t, 1, r.Cleared)

	p := g.Progress()
	assert.Equal(t, 100, p.Score)
	assert.Equal(t, 1, p.Lines)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 950*time.Millisecond, p.FallInterval)

	// the three remaining I cells moved down one row
	for y := 17; y < board.Height; y++ {
		assert.Equal(t, piece.I.Color(), g.Board().At(0, y))
	}
	assert.False(t, g.Board().Occupied(0, 16))
	for x := 1; x < board.Width; x++ {
		assert.False(t, g.Board().Occupied(x, board.Height-1))
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	b := board.New()
	b.Set(4, 2, piece.Z.Color())
	b.Set(5, 2, piece.Z.Color())
	g, _ := newTestGame(t, b, piece.O)

	r := g.HardDrop()
	assert.True(t, r.Locked)
	assert.True(t, r.GameOver)
	assert.True(t, g.Over())

	expected := board.New()
	expected.Set(4, 2, piece.Z.Color())
	expected.Set(5, 2, piece.Z.Color())
	expected.Merge(piece.O.Shape(), 4, 0, piece.O.Color())
	assert.Equal(t, expected.Cells(), g.Board().Cells())

	before := g.Snapshot()
	assert.Equal(t, Result{}, g.Move(-1))
	assert.Equal(t, Result{}, g.SoftDrop())
	assert.Equal(t, Result{}, g.HardDrop())
	assert.Equal(t, Result{}, g.Rotate())
	assert.Equal(t, Result{}, g.Hold())
	assert.Equal(t, Result{}, g.Tick())
	assert.Equal(t, Result{}, g.Apply(Quit))
	g.TogglePause()
	assert.Equal(t, before, g.Snapshot())
}

func TestNewGameOnBlockedBoardIsOver(t *testing.T) {
	b := board.New()
	b.Set(4, 0, piece.Z.Color())
	before := b.Cells()

	g, _ := newTestGame(t, b, piece.O)
	assert.True(t, g.Over())
	assert.Equal(t, before, g.Board().Cells())
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.T)
	g.SoftDrop()

	r := g.Apply(Quit)
	assert.True(t, r.GameOver)
	assert.False(t, r.Locked)
	assert.True(t, g.Over())
	assert.Equal(t, board.Cells{}, g.Board().Cells())
}

func TestApplyIgnoresUnknownCommand(t *testing.T) {
	g, _ := newTestGame(t, nil, piece.T)
	before := g.Snapshot()
	assert.Equal(t, Result{}, g.Apply(0))
	assert.Equal(t, Result{}, g.Apply(Command(200)))
	assert.Equal(t, before, g.Snapshot())
}

func TestCommandNames(t *testing.T) {
	for _, c := range []Command{MoveLeft, MoveRight, SoftDropStep, Rotate, HardDrop, Hold, TogglePause, Quit} {
		require.True(t, c.Valid())
		parsed, ok := ParseCommand(c.String())
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	assert.False(t, Command(0).Valid())
	assert.Equal(t, "none", Command(0).String())
	_, ok := ParseCommand("jump")
	assert.False(t, ok)
}
