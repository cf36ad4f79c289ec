package engine

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Cells    board.Cells
	Active   ActivePiece
	GhostY   int
	Next     piece.Piece
	Hold     HoldSlot
	Progress Progress
}

// Snapshot copies the current state. Mutating the result never affects the
// game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:    g.board.Cells(),
		Active:   g.active,
		GhostY:   g.GhostRow(),
		Next:     g.next,
		Hold:     g.hold,
		Progress: g.progress,
	}
}

// Composite returns the board cells with the active piece drawn in. The
// ghost is left to the renderer.
func (s Snapshot) Composite() board.Cells {
	cells := s.Cells
	if s.Progress.Over {
		return cells
	}
	color := s.Active.Color()
	for p := range s.Active.Shape.Cells() {
		x, y := s.Active.X+p.X, s.Active.Y+p.Y
		if board.InBounds(x, y) {
			cells[y][x] = color
		}
	}
	return cells
}
