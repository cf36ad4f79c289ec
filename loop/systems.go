package loop

import "github.com/plus3/blockfall/engine"

// InputSystem applies at most one polled command per frame.
type InputSystem struct {
	Game   Resource[engine.Game]
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	g := s.Game.Get()
	if g == nil || g.Over() || s.Source == nil {
		return
	}

	c, ok := s.Source.Poll()
	if !ok {
		return
	}

	frame.Events.Emit(Event{
		Kind:    EventCommand,
		At:      frame.Now,
		Command: c,
		Result:  g.Apply(c),
	})
}

// GravitySystem drops the active piece one row whenever the fall interval
// has elapsed.
type GravitySystem struct {
	Game Resource[engine.Game]
}

func (s *GravitySystem) Execute(frame *Frame) {
	g := s.Game.Get()
	if g == nil {
		return
	}

	r := g.Tick()
	if r == (engine.Result{}) {
		return
	}

	frame.Events.Emit(Event{
		Kind:   EventGravity,
		At:     frame.Now,
		Result: r,
	})
}

// GameOverSystem reports the end of the game once and stops the run.
type GameOverSystem struct {
	Game Resource[engine.Game]

	reported bool
}

func (s *GameOverSystem) Execute(frame *Frame) {
	g := s.Game.Get()
	if g == nil || !g.Over() {
		return
	}

	if !s.reported {
		s.reported = true
		frame.Events.Emit(Event{
			Kind:   EventGameOver,
			At:     frame.Now,
			Result: engine.Result{GameOver: true},
		})
	}
	frame.Stop()
}

// NewGameScheduler provides g as a resource and registers the input, gravity
// and game-over systems in that order.
func NewGameScheduler(g *engine.Game, input InputSource) *Scheduler {
	res := NewResources()
	Provide(res, g)

	s := NewScheduler(res, g.Clock())
	s.Register(&InputSystem{Source: input})
	s.Register(&GravitySystem{})
	s.Register(&GameOverSystem{})
	return s
}
