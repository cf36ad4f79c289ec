package board

import "github.com/plus3/blockfall/piece"

// Collides reports whether shape s anchored at (x, y) overlaps a wall, the
// floor, or a locked cell. Cells above row 0 never collide, which lets pieces
// spawn partially off the top of the grid.
func Collides(b *Board, s piece.Shape, x, y int) bool {
	for p := range s.Cells() {
		bx := x + p.X
		by := y + p.Y

		if bx < 0 || bx >= Width || by >= Height {
			return true
		}

		if by >= 0 && b.cells[by][bx] != piece.None {
			return true
		}
	}

	return false
}

// DropRow returns the lowest y at or below y where s can sit at column x
// without colliding. It is the ghost row for previews and the landing row for
// hard drops.
func DropRow(b *Board, s piece.Shape, x, y int) int {
	for !Collides(b, s, x, y+1) {
		y++
	}
	return y
}
