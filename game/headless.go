package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/scene"
)

// RunHeadless steps the scene without a window or keyboard at cfg.Hz until
// ctx is done or cfg.Ticks frames have run, then writes a run report to w.
// Cancellation is a normal stop.
func RunHeadless(ctx context.Context, cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Debug {
		log.Println("debug overlay needs a window; ignoring -debug")
	}

	world := NewWorld(nil, false)
	report := &Report{Hz: cfg.Hz, Ticks: cfg.Ticks}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer ticker.Stop()

	start := time.Now()
	last := start
Loop:
	for cfg.Ticks == 0 || report.Frames < cfg.Ticks {
		select {
		case <-ctx.Done():
			break Loop
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			updateStart := time.Now()
			world.Update.Once(dt)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(updateStart))
			report.Frames++
		}
	}
	report.Wall = time.Since(start)
	report.collect(world)

	if err := report.Generate(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// collect fills the scene and scheduler parts of the report.
func (r *Report) collect(world *World) {
	r.FrameTime.Finalize()
	r.Scheduler = world.Update.GetStats()
	r.Storage = world.Storage.CollectStats()

	var t *scene.Time
	if world.Storage.ReadSingleton(&t) {
		r.Elapsed = t.Elapsed
	}

	players := ecs.NewView[struct {
		*scene.Player
		*scene.Transform
	}](world.Storage)
	for p := range players.Values() {
		r.PlayerYaw = p.Transform.Heading() * 180 / math.Pi
		break
	}

	cameras := ecs.NewView[struct {
		*scene.Camera
		*scene.Transform
	}](world.Storage)
	for c := range cameras.Values() {
		r.CameraPosition = c.Transform.Translation
		break
	}
}
