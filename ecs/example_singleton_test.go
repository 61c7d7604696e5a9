package ecs_test

import (
	"fmt"

	"github.com/plus3/vaultworn/ecs"
)

type Ambient struct {
	Brightness float32
}

type FrameCount struct {
	Frames int
}

// ExampleNewSingleton shows that every accessor for a type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	ambient := ecs.NewSingleton(storage, Ambient{Brightness: 300})
	fmt.Printf("brightness: %.0f\n", ambient.Get().Brightness)

	// The initializer is ignored once the singleton exists.
	same := ecs.NewSingleton(storage, Ambient{Brightness: 1})
	same.Get().Brightness = 150
	fmt.Printf("brightness: %.0f\n", ambient.Get().Brightness)

	// Output:
	// brightness: 300
	// brightness: 150
}

// ExampleStorage_ReadSingleton reads resources outside of systems.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton(storage, Ambient{Brightness: 300})

	var ambient *Ambient
	if storage.ReadSingleton(&ambient) {
		fmt.Printf("ambient %.0f\n", ambient.Brightness)
	}

	var frames *FrameCount
	if !storage.ReadSingleton(&frames) {
		fmt.Println("no frame counter")
	}

	// Output:
	// ambient 300
	// no frame counter
}
