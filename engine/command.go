package engine

// Command is a discrete player action. The zero value is not a command and
// is ignored.
type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	SoftDropStep
	Rotate
	HardDrop
	Hold
	TogglePause
	Quit
)

var commandNames = map[Command]string{
	MoveLeft:     "move-left",
	MoveRight:    "move-right",
	SoftDropStep: "soft-drop",
	Rotate:       "rotate",
	HardDrop:     "hard-drop",
	Hold:         "hold",
	TogglePause:  "pause",
	Quit:         "quit",
}

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	_, ok := commandNames[c]
	return ok
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand maps a command name back to its value.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Apply dispatches a command to the matching operation. While paused only
// TogglePause is honoured. Unknown commands and commands after game over do
// nothing.
func (g *Game) Apply(c Command) Result {
	if g.progress.Over {
		return Result{}
	}
	if g.progress.Paused && c != TogglePause {
		return Result{}
	}

	switch c {
	case MoveLeft:
		return g.Move(-1)
	case MoveRight:
		return g.Move(1)
	case SoftDropStep:
		r := g.SoftDrop()
		g.lastFall = g.clock.Now()
		return r
	case Rotate:
		return g.Rotate()
	case HardDrop:
		return g.HardDrop()
	case Hold:
		return g.Hold()
	case TogglePause:
		g.TogglePause()
		return Result{}
	case Quit:
		return g.Quit()
	}
	return Result{}
}
