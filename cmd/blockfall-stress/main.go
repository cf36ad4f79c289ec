// Command blockfall-stress plays headless games with a random bot on a
// simulated clock and reports frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the piece randomizer and the bot.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time between frames.")
	maxGames := flag.Int("games", 0, "Stop after this many games (0 means no limit).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Frame:          *frame,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	clk := clock.NewManual(time.Unix(0, 0))
	gameSeed := *seed

	for ctx.Err() == nil && (*maxGames == 0 || report.Games < *maxGames) {
		result := play(ctx, clk, gameSeed, *frame, &report.UpdateTime)
		report.add(result)
		gameSeed++
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// GameResult summarizes one finished or interrupted game.
type GameResult struct {
	Frames   int64
	Progress engine.Progress
	Spawned  int
	Tetrises int
}

// play runs one game until it ends or ctx is done, appending each frame's
// update time to samples.
func play(ctx context.Context, clk *clock.Manual, seed uint64, frame time.Duration, samples *Stats) GameResult {
	g := engine.New(
		engine.WithClock(clk),
		engine.WithGenerator(piece.NewSeededRandomizer(seed)),
	)
	sched := loop.NewGameScheduler(g, newBot(seed))

	for ctx.Err() == nil {
		clk.Advance(frame)

		updateStart := time.Now()
		running := sched.Once()
		samples.Samples = append(samples.Samples, time.Since(updateStart))

		if !running {
			break
		}
	}

	return GameResult{
		Frames:   sched.Stats().Frames,
		Progress: g.Progress(),
		Spawned:  g.Stats().TotalSpawned(),
		Tetrises: g.Stats().Clears(4),
	}
}
