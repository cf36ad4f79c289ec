package engine

import "time"

const (
	InitialFallInterval = time.Second
	MinFallInterval     = 50 * time.Millisecond
	fallIntervalStep    = 50 * time.Millisecond
	linesPerLevel       = 10
)

var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore is the base award for clearing n rows at once, before the level
// multiplier.
func LineScore(n int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n]
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return 1 + lines/linesPerLevel
}

// FallIntervalFor returns the gravity interval at level, floored at
// MinFallInterval.
func FallIntervalFor(level int) time.Duration {
	return max(MinFallInterval, InitialFallInterval-time.Duration(level)*fallIntervalStep)
}

// award applies a clear of n rows. The score uses the level in effect before
// the clear.
func (g *Game) award(n int) {
	if n <= 0 {
		return
	}
	p := &g.progress
	p.Lines += n
	p.Score += LineScore(n) * p.Level
	p.Level = LevelFor(p.Lines)
	p.FallInterval = FallIntervalFor(p.Level)
	g.stats.recordClear(n)
}
