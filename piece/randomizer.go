package piece

import "math/rand/v2"

// Generator produces the next piece to enter the game.
type Generator interface {
	Next() Piece
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() Piece

func (f GeneratorFunc) Next() Piece { return f() }

// Randomizer draws each piece uniformly and independently from the catalog.
// Repeats are possible in any run length; there is no bag.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer returns a randomizer reading from src.
func NewRandomizer(src rand.Source) *Randomizer {
	return &Randomizer{rng: rand.New(src)}
}

// NewSeededRandomizer returns a randomizer with a PCG source seeded from seed.
func NewSeededRandomizer(seed uint64) *Randomizer {
	return NewRandomizer(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Next returns a new piece in spawn orientation.
func (r *Randomizer) Next() Piece {
	return New(Kind(r.rng.IntN(KindCount)))
}

// Sequence returns a generator that cycles through kinds in order. It is
// meant for scripted games and tests.
func Sequence(kinds ...Kind) Generator {
	if len(kinds) == 0 {
		panic("piece: empty sequence")
	}
	i := 0
	return GeneratorFunc(func() Piece {
		k := kinds[i%len(kinds)]
		i++
		return New(k)
	})
}
