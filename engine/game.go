// Package engine is the game-state engine: it owns the board, the active
// piece, the next piece, the hold slot and the score, and applies every
// player and gravity transition to them.
//
// A Game is not safe for concurrent use. It is meant to be owned by a single
// loop that mutates it synchronously within a tick.
package engine

import (
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/piece"
)

// ActivePiece is the falling piece: its current orientation and top-left
// anchor in board coordinates.
type ActivePiece struct {
	piece.Piece
	X, Y int
}

// HoldSlot is the stored piece and whether hold was already used by the
// current piece.
type HoldSlot struct {
	Piece piece.Piece
	Full  bool
	Used  bool
}

// Progress is the scoring and lifecycle state of a game.
type Progress struct {
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
	Paused       bool
	Over         bool
}

// Result describes what a single operation did.
type Result struct {
	Moved    bool // position or orientation changed
	Held     bool // a hold took place
	Locked   bool // the piece was merged into the board
	Cleared  int  // rows removed by the lock
	Dropped  int  // rows descended by a hard drop
	GameOver bool // the game ended during this operation
}

// Game is a single play session.
type Game struct {
	board    *board.Board
	gen      piece.Generator
	clock    clock.Clock
	active   ActivePiece
	next     piece.Piece
	hold     HoldSlot
	progress Progress
	lastFall time.Time
	stats    *Stats
}

// Option configures a Game.
type Option func(*Game)

// WithGenerator sets the piece source. By default pieces come from a
// Randomizer seeded from the clock.
func WithGenerator(gen piece.Generator) Option {
	return func(g *Game) {
		g.gen = gen
	}
}

// WithClock sets the time source used for gravity.
func WithClock(c clock.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithBoard starts the game on an existing board instead of an empty one.
func WithBoard(b *board.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// New starts a game: it draws the lookahead piece, spawns the first active
// piece from it and starts the gravity timer.
func New(opts ...Option) *Game {
	g := &Game{
		board: board.New(),
		clock: clock.System{},
		progress: Progress{
			Level:        1,
			FallInterval: InitialFallInterval,
		},
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = piece.NewSeededRandomizer(uint64(g.clock.Now().UnixNano()))
	}

	g.next = g.gen.Next()
	g.spawn()
	g.lastFall = g.clock.Now()
	return g
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *board.Board { return g.board }

// Active returns the falling piece.
func (g *Game) Active() ActivePiece { return g.active }

// Next returns the lookahead piece.
func (g *Game) Next() piece.Piece { return g.next }

// HoldSlot returns the hold slot.
func (g *Game) HoldSlot() HoldSlot { return g.hold }

// Progress returns score, level, lines and lifecycle flags.
func (g *Game) Progress() Progress { return g.progress }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.progress.Over }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.progress.Paused }

// Stats returns the running piece and clear counters.
func (g *Game) Stats() *Stats { return g.stats }

// LastFall returns when gravity last moved the piece.
func (g *Game) LastFall() time.Time { return g.lastFall }

// Clock returns the game's time source.
func (g *Game) Clock() clock.Clock { return g.clock }

func (g *Game) accepting() bool {
	return !g.progress.Over && !g.progress.Paused
}

func (g *Game) collides(s piece.Shape, x, y int) bool {
	return board.Collides(g.board, s, x, y)
}
