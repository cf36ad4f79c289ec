package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
)

// botMoves are the commands the bot picks from. Hard drops are rarer so
// pieces spend some time falling under gravity.
var botMoves = []engine.Command{
	engine.MoveLeft, engine.MoveLeft, engine.MoveLeft,
	engine.MoveRight, engine.MoveRight, engine.MoveRight,
	engine.Rotate, engine.Rotate,
	engine.SoftDropStep, engine.SoftDropStep,
	engine.Hold,
	engine.HardDrop,
}

// bot is a loop.InputSource that issues a random command every few frames.
// It never pauses or quits.
type bot struct {
	rng   *rand.Rand
	every int
	frame int
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), every: 4}
}

func (b *bot) Poll() (engine.Command, bool) {
	b.frame++
	if b.frame%b.every != 0 {
		return 0, false
	}
	return botMoves[b.rng.IntN(len(botMoves))], true
}
