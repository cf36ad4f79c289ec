package piece

import "iter"

// MaxSize is the largest extent of any shape in either dimension.
const MaxSize = 4

// Point is a cell offset inside a shape, or a cell on the board.
type Point struct {
	X, Y int
}

// Shape is an immutable occupancy matrix for one piece orientation.
// Cells outside Width x Height are always empty.
type Shape struct {
	cells  [MaxSize][MaxSize]bool
	width  int
	height int
}

// NewShape builds a shape from rows of 0/1 values. Rows must not be empty
// and must all have the same length, no larger than MaxSize.
func NewShape(rows ...[]int) Shape {
	if len(rows) == 0 || len(rows) > MaxSize {
		panic("shape must have between 1 and 4 rows")
	}

	s := Shape{height: len(rows), width: len(rows[0])}
	if s.width == 0 || s.width > MaxSize {
		panic("shape must have between 1 and 4 columns")
	}

	for y, row := range rows {
		if len(row) != s.width {
			panic("shape rows must have equal length")
		}
		for x, v := range row {
			s.cells[y][x] = v != 0
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int { return s.width }

// Height returns the number of rows.
func (s Shape) Height() int { return s.height }

// Filled reports whether the cell at column x, row y is occupied.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.cells[y][x]
}

// Cells iterates the occupied cells in row-major order.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				if !s.cells[y][x] {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Rotate returns the shape turned 90 degrees clockwise. Width and height swap.
func (s Shape) Rotate() Shape {
	r := Shape{width: s.height, height: s.width}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r.cells[x][s.height-1-y] = s.cells[y][x]
		}
	}
	return r
}

// String renders the shape with '#' for occupied and '.' for empty cells,
// one row per line.
func (s Shape) String() string {
	buf := make([]byte, 0, (s.width+1)*s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < s.width; x++ {
			if s.cells[y][x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
