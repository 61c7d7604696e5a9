package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	StartupCount    int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single update system.
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

// initializer is satisfied by Query and Singleton fields.
type initializer interface {
	Init(storage *Storage)
}

// executor is satisfied by Query fields, refreshed before their system runs.
type executor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []executor
	stats   *systemStatsInternal
}

// Scheduler runs systems in registration order in two phases: startup
// systems run once, before the first update, and update systems run on
// every call to Once.
type Scheduler struct {
	storage *Storage
	startup []*registeredSystem
	update  []*registeredSystem
	started bool
	frames  int64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Storage returns the storage the scheduler runs against.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register adds an update system and initializes its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	s.update = append(s.update, s.prepare(system))
}

// RegisterStartup adds a system that runs exactly once, before the first update.
// Registering after startup has happened panics.
func (s *Scheduler) RegisterStartup(system System) {
	if s.started {
		panic("startup system registered after startup: " + systemName(system))
	}
	s.startup = append(s.startup, s.prepare(system))
}

func (s *Scheduler) prepare(system System) *registeredSystem {
	rs := &registeredSystem{
		system: system,
		stats: &systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		},
	}

	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return rs
	}

	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct || !field.CanAddr() {
			continue
		}

		addr := field.Addr().Interface()
		binder, ok := addr.(initializer)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if exec, ok := addr.(executor); ok {
			rs.queries = append(rs.queries, exec)
		}
	}

	return rs
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Startup runs the startup phase if it has not run yet and flushes its commands.
func (s *Scheduler) Startup() {
	if s.started {
		return
	}
	s.started = true

	frame := newUpdateFrame(0, s.storage)
	for _, rs := range s.startup {
		s.execute(rs, frame)
	}
	frame.Commands.Flush(s.storage)
}

// Once executes all update systems once with the given delta time, running
// the startup phase first when needed.
func (s *Scheduler) Once(dt float64) {
	s.Startup()

	frame := newUpdateFrame(dt, s.storage)
	for _, rs := range s.update {
		s.execute(rs, frame)
	}
	s.frames++

	frame.Commands.Flush(s.storage)
}

func (s *Scheduler) execute(rs *registeredSystem, frame *UpdateFrame) {
	start := time.Now()
	for _, q := range rs.queries {
		q.Execute()
	}
	rs.system.Execute(frame)
	duration := time.Since(start)

	stats := rs.stats
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

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about update system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.update),
		StartupCount: len(s.startup),
		Frames:       s.frames,
		Systems:      make([]SystemStats, len(s.update)),
	}

	for i, rs := range s.update {
		internal := rs.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
