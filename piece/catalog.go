// Package piece holds the fixed tetromino catalog and the randomizer that
// draws from it.
package piece

// Kind identifies one of the seven catalog shapes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	L
	J
	S
	Z
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// Color is a board cell value. None marks an empty cell; every catalog kind
// maps to a distinct non-zero color.
type Color uint8

const None Color = 0

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

var catalog = [KindCount]Shape{
	I: NewShape(
		[]int{1, 1, 1, 1},
	),
	O: NewShape(
		[]int{1, 1},
		[]int{1, 1},
	),
	T: NewShape(
		[]int{0, 1, 0},
		[]int{1, 1, 1},
	),
	L: NewShape(
		[]int{0, 0, 1},
		[]int{1, 1, 1},
	),
	J: NewShape(
		[]int{1, 0, 0},
		[]int{1, 1, 1},
	),
	S: NewShape(
		[]int{0, 1, 1},
		[]int{1, 1, 0},
	),
	Z: NewShape(
		[]int{1, 1, 0},
		[]int{0, 1, 1},
	),
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool { return k < KindCount }

// Shape returns the spawn orientation for the kind.
func (k Kind) Shape() Shape { return catalog[k] }

// Color returns the color id bound to the kind: I=1 through Z=7.
func (k Kind) Color() Color { return Color(k) + 1 }

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// KindOf maps a color id back to its kind. The second result is false for
// None and unknown colors.
func KindOf(c Color) (Kind, bool) {
	if c == None || c > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}

// Kinds returns every catalog kind in order.
func Kinds() [KindCount]Kind {
	return [KindCount]Kind{I, O, T, L, J, S, Z}
}

// Piece is a shape in some orientation together with the kind it came from.
type Piece struct {
	Kind  Kind
	Shape Shape
}

// New returns the kind's piece in spawn orientation.
func New(k Kind) Piece {
	return Piece{Kind: k, Shape: k.Shape()}
}

// Color returns the color id of the piece's kind.
func (p Piece) Color() Color { return p.Kind.Color() }
