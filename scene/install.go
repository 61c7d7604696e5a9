// Package scene holds the prototype's components and the systems that build
// and animate it: lighting, camera, the player cube and the ground plane.
package scene

import (
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/input"
)

// Install adds the scene resources to the scheduler's storage and registers
// the setup and update systems. reader may be nil when there is no keyboard.
// Components must already be registered with RegisterComponents.
func Install(scheduler *ecs.Scheduler, reader input.KeyReader) {
	storage := scheduler.Storage()
	ecs.NewSingleton(storage, Time{})
	ecs.NewSingleton(storage, input.Keyboard{})

	scheduler.RegisterStartup(&SetupLighting{})
	scheduler.RegisterStartup(&SetupCamera{})
	scheduler.RegisterStartup(&SetupPlayer{})
	scheduler.RegisterStartup(&SetupGround{})

	scheduler.Register(&TimeSystem{})
	scheduler.Register(&input.PollSystem{Reader: reader})
	scheduler.Register(&RotatePlayerSystem{})
	scheduler.Register(&CameraControlSystem{})
}

// NewWorld builds a storage with every scene component registered and a
// scheduler with the scene installed.
func NewWorld(reader input.KeyReader) *ecs.Scheduler {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	scheduler := ecs.NewScheduler(ecs.NewStorage(registry))
	Install(scheduler, reader)
	return scheduler
}
