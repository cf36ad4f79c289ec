// Package sound plays short synthesized tones for game events.
package sound

import (
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Cue identifies a sound.
type Cue int

const (
	CueLock Cue = iota
	CueLine1
	CueLine2
	CueLine3
	CueLine4
	CueRotate
	CueMove
	CueDrop
	CueHold
	CueGameOver
)

type tone struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func (c Cue) tones() []tone {
	switch c {
	case CueLock:
		return []tone{{frequency: 220, duration: 70 * time.Millisecond, volume: 0.3}}
	case CueLine1:
		return []tone{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case CueLine2:
		return []tone{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case CueLine3:
		return []tone{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case CueLine4:
		return []tone{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case CueRotate:
		return []tone{{frequency: 520, duration: 40 * time.Millisecond, volume: 0.25}}
	case CueMove:
		return []tone{{frequency: 380, duration: 25 * time.Millisecond, volume: 0.18}}
	case CueDrop:
		return []tone{{frequency: 240, duration: 55 * time.Millisecond, volume: 0.22}}
	case CueHold:
		return []tone{{frequency: 330, duration: 45 * time.Millisecond, volume: 0.2}}
	case CueGameOver:
		return []tone{{frequency: 180, duration: 160 * time.Millisecond, volume: 0.28}}
	default:
		return nil
	}
}

// CueFor picks the sound for a loop event. Clears win over locks, and locks
// win over the command that caused them.
func CueFor(ev loop.Event) (Cue, bool) {
	r := ev.Result
	switch {
	case ev.Kind == loop.EventGameOver:
		return CueGameOver, true
	case r.Cleared > 0:
		return CueLine1 + Cue(min(r.Cleared, 4)-1), true
	case r.Locked && r.Dropped > 0:
		return CueDrop, true
	case r.Locked:
		return CueLock, true
	case ev.Kind != loop.EventCommand:
		return 0, false
	}

	switch ev.Command {
	case engine.Rotate:
		if r.Moved {
			return CueRotate, true
		}
	case engine.MoveLeft, engine.MoveRight:
		if r.Moved {
			return CueMove, true
		}
	case engine.Hold:
		if r.Held {
			return CueHold, true
		}
	}
	return 0, false
}
