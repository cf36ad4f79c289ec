package debugui

import (
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// Install provides the overlay resources on s, registers the overlay system
// and adds the game inspector and performance windows.
func Install(s *loop.Scheduler, g *engine.Game, input *loop.Queue) *Overlay {
	overlay := NewOverlay()
	loop.Provide(s.Resources(), overlay)
	loop.Provide(s.Resources(), &InputState{})

	stats := NewPerformanceStats(s, g, 120)
	inspector := NewGameInspector(g, input)

	overlay.Add(Item{Name: "inspector", Render: inspector.Render})
	overlay.Add(Item{Name: "performance", Render: stats.Render})

	s.Register(stats.System())
	s.Register(&System{})
	return overlay
}
