// Package board implements the playfield grid and the collision test every
// piece placement goes through.
package board

import (
	"strings"

	"github.com/plus3/blockfall/piece"
)

const (
	Width  = 10
	Height = 20
)

// Cells is a value copy of the grid, indexed [row][column] with row 0 at the top.
type Cells [Height][Width]piece.Color

// Board is the grid of locked cells.
type Board struct {
	cells Cells
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// InBounds reports whether (x, y) is on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Occupied reports whether the in-range cell at (x, y) holds a color.
// Out-of-range coordinates report false; bounds are the collision test's job.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != piece.None
}

// At returns the color at (x, y), or piece.None when out of range.
func (b *Board) At(x, y int) piece.Color {
	if !InBounds(x, y) {
		return piece.None
	}
	return b.cells[y][x]
}

// Set writes a color into an in-range cell. Out-of-range writes are ignored.
func (b *Board) Set(x, y int, c piece.Color) {
	if !InBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Cells {
	return b.cells
}

// Merge writes color into every occupied cell of s anchored at (x, y).
// The caller must have checked the placement with Collides. Cells above
// row 0 have nowhere to go and are dropped.
func (b *Board) Merge(s piece.Shape, x, y int, color piece.Color) {
	for p := range s.Cells() {
		b.Set(x+p.X, y+p.Y, color)
	}
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == piece.None {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			b.cells[pull] = b.cells[pull-1]
		}
		b.cells[0] = [Width]piece.Color{}
		// row y now holds what was above it; look at it again
	}
	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = Cells{}
}

// String draws the grid with '.' for empty cells and the kind letter for
// occupied ones.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			k, ok := piece.KindOf(b.cells[y][x])
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
