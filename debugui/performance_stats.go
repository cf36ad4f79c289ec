package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	count   int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records one frame's duration.
func (h *FrameHistory) Push(dt time.Duration) {
	h.samples[h.index] = float32(dt.Seconds() * 1000.0)
	h.index = (h.index + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.count] {
		sum += s
	}
	return sum / float32(h.count)
}

// Samples returns the backing ring in storage order.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// PerformanceStats shows frame timing, per-system scheduler timings and
// piece statistics. Call Record once per frame before rendering.
type PerformanceStats struct {
	Scheduler *loop.Scheduler
	Game      *engine.Game

	history *FrameHistory
}

func NewPerformanceStats(s *loop.Scheduler, g *engine.Game, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		Scheduler: s,
		Game:      g,
		history:   NewFrameHistory(historyFrames),
	}
}

// Record adds a frame time to the graph.
func (ps *PerformanceStats) Record(dt time.Duration) {
	ps.history.Push(dt)
}

// System returns a loop system that records each frame's delta time.
func (ps *PerformanceStats) System() loop.System {
	return loop.SystemFunc(func(frame *loop.Frame) {
		ps.Record(frame.DeltaTime)
	})
}

func (ps *PerformanceStats) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.history.Average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if ps.Scheduler != nil {
		ps.renderSchedulerStats(ps.Scheduler.Stats())
	}
	if ps.Game != nil {
		ps.renderPieceStats(ps.Game.Stats())
	}

	imgui.End()
}

func (ps *PerformanceStats) renderSchedulerStats(stats *loop.SchedulerStats) {
	if !imgui.TreeNodeStr("Systems") {
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d  Events: %d", stats.Frames, stats.EventsDelivered))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}
	imgui.TreePop()
}

func (ps *PerformanceStats) renderPieceStats(stats *engine.Stats) {
	if !imgui.TreeNodeStr("Pieces") {
		return
	}

	total := stats.TotalSpawned()
	imgui.Text(fmt.Sprintf("Spawned: %d", total))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PieceStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		for _, k := range piece.Kinds() {
			n := stats.Spawned(k)
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))

			if total > 0 {
				barWidth := float32(n) / float32(total) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), imgui.ColorU32Vec4(palette[k]))
			}
		}

		imgui.EndTable()
	}

	for rows := 1; rows <= 4; rows++ {
		imgui.BulletText(fmt.Sprintf("%d-line clears: %d", rows, stats.Clears(rows)))
	}
	imgui.TreePop()
}
