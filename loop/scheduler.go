package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/clock"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	EventsDelivered int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	resources   *Resources
	clock       clock.Clock
	timer       *clock.FrameTimer
	events      *Events
	listeners   []Listener
	systems     []System
	systemStats []*systemStatsInternal

	frames    int64
	delivered int64
}

// NewScheduler creates a scheduler that reads frame times from c.
func NewScheduler(resources *Resources, c clock.Clock) *Scheduler {
	return &Scheduler{
		resources: resources,
		clock:     c,
		timer:     clock.NewFrameTimer(c),
		events:    newEvents(),
		systems:   make([]System, 0),
	}
}

// Resources returns the resource set shared by registered systems.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register adds a system to the scheduler and initializes its Resource fields.
func (s *Scheduler) Register(system System) {
	s.initializeResources(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	systemName := systemType.Name()
	if systemName == "" {
		systemName = systemType.String()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Listen adds a listener that receives every event after each frame.
func (s *Scheduler) Listen(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Scheduler) initializeResources(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if res, ok := field.Addr().Interface().(resourceField); ok {
			res.Init(s.resources)
		}
	}
}

// Once executes all registered systems once, then delivers the frame's
// events. It returns false when a system asked the run to stop.
func (s *Scheduler) Once() bool {
	now, dt := s.timer.Tick()
	frame := newFrame(now, dt, s.events)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	s.delivered += int64(s.events.Len())
	s.events.Flush(s.listeners)

	return !frame.Stopped()
}

// Run executes all systems at the given interval until the context is
// cancelled or a system stops the run.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Once() {
				return nil
			}
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:     len(s.systems),
		Frames:          s.frames,
		EventsDelivered: s.delivered,
		Systems:         make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
