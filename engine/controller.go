package engine

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// rotationKicks are the anchor offsets tried, in order, after a clockwise
// turn. They are offsets from the pre-rotation anchor.
var rotationKicks = [...]piece.Point{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
}

// SpawnColumn is the anchor column that centres s horizontally.
func SpawnColumn(s piece.Shape) int {
	return board.Width/2 - s.Width()/2
}

// Move shifts the active piece dx columns if the target is free.
func (g *Game) Move(dx int) Result {
	if !g.accepting() {
		return Result{}
	}
	if g.collides(g.active.Shape, g.active.X+dx, g.active.Y) {
		return Result{}
	}
	g.active.X += dx
	return Result{Moved: true}
}

// SoftDrop moves the active piece down one row, or locks it when the row
// below is blocked. Gravity uses the same transition.
func (g *Game) SoftDrop() Result {
	if !g.accepting() {
		return Result{}
	}
	if !g.collides(g.active.Shape, g.active.X, g.active.Y+1) {
		g.active.Y++
		return Result{Moved: true}
	}
	return g.lock()
}

// HardDrop drops the active piece as far as it goes and locks it.
func (g *Game) HardDrop() Result {
	if !g.accepting() {
		return Result{}
	}
	landing := board.DropRow(g.board, g.active.Shape, g.active.X, g.active.Y)
	dropped := landing - g.active.Y
	g.active.Y = landing

	r := g.lock()
	r.Dropped = dropped
	r.Moved = dropped > 0
	return r
}

// Rotate turns the active piece clockwise, trying each kick offset in turn.
// If none fits, the piece is left exactly as it was.
func (g *Game) Rotate() Result {
	if !g.accepting() {
		return Result{}
	}
	rotated := g.active.Shape.Rotate()
	for _, kick := range rotationKicks {
		x := g.active.X + kick.X
		y := g.active.Y + kick.Y
		if g.collides(rotated, x, y) {
			continue
		}
		g.active.Shape = rotated
		g.active.X = x
		g.active.Y = y
		return Result{Moved: true}
	}
	return Result{}
}

// Hold stores the active piece, once per piece. With an empty slot the next
// piece is spawned; otherwise the held piece is swapped in at the top centre.
// The swapped-in piece is not checked for collision.
func (g *Game) Hold() Result {
	if !g.accepting() || g.hold.Used {
		return Result{}
	}

	if !g.hold.Full {
		g.hold.Piece = g.active.Piece
		g.hold.Full = true
		g.spawn()
	} else {
		g.active.Piece, g.hold.Piece = g.hold.Piece, g.active.Piece
		g.active.X = SpawnColumn(g.active.Shape)
		g.active.Y = 0
	}
	g.hold.Used = true

	return Result{Held: true, GameOver: g.progress.Over}
}

// TogglePause pauses or resumes the game. Resuming restarts the gravity
// timer so no drop happens for time spent paused.
func (g *Game) TogglePause() {
	if g.progress.Over {
		return
	}
	g.progress.Paused = !g.progress.Paused
	if !g.progress.Paused {
		g.lastFall = g.clock.Now()
	}
}

// Quit ends the game without locking the active piece.
func (g *Game) Quit() Result {
	if !g.accepting() {
		return Result{}
	}
	g.progress.Over = true
	return Result{GameOver: true}
}

// Tick applies gravity: once the fall interval has elapsed since the last
// gravity step, the piece soft-drops and the timer restarts.
func (g *Game) Tick() Result {
	if !g.accepting() {
		return Result{}
	}
	now := g.clock.Now()
	if now.Sub(g.lastFall) < g.progress.FallInterval {
		return Result{}
	}
	r := g.SoftDrop()
	g.lastFall = now
	return r
}

// GhostRow is the row the active piece would land on if hard-dropped.
func (g *Game) GhostRow() int {
	return board.DropRow(g.board, g.active.Shape, g.active.X, g.active.Y)
}

func (g *Game) lock() Result {
	a := g.active
	g.board.Merge(a.Shape, a.X, a.Y, a.Color())
	cleared := g.board.ClearFullRows()
	g.award(cleared)
	g.spawn()
	return Result{Locked: true, Cleared: cleared, GameOver: g.progress.Over}
}

// spawn promotes the lookahead piece and draws a new one. A piece that
// collides where it appears ends the game; the board is left untouched.
func (g *Game) spawn() {
	g.active = ActivePiece{Piece: g.next}
	g.next = g.gen.Next()
	g.active.X = SpawnColumn(g.active.Shape)
	g.active.Y = 0
	g.hold.Used = false
	g.stats.recordSpawn(g.active.Kind)

	if g.collides(g.active.Shape, g.active.X, g.active.Y) {
		g.progress.Over = true
	}
}
