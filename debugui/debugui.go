// Package debugui renders optional Dear ImGui windows on top of the game:
// frame timing, scheduler and storage statistics, and a scene inspector.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/input"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem publishes ImGui's input capture state and defers every
// ImguiItem render function to the end of the frame. It must be registered
// before input.PollSystem so a focused widget keeps keys from the camera.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
	Keyboard   ecs.Singleton[input.Keyboard]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	captureKeyboard := io.WantCaptureKeyboard()
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = captureKeyboard
	}

	if kb := i.Keyboard.Get(); kb != nil {
		kb.Captured = captureKeyboard
	}

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}

// RegisterComponents registers the overlay's components.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Install adds the overlay resources, system and windows. Call it before the
// scene installs its input polling.
func Install(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	ecs.NewSingleton(storage, ImguiInputState{})
	scheduler.Register(&ImguiSystem{})

	perf := NewPerformanceWindow(scheduler, 120)
	inspector := NewSceneInspector(storage)
	storage.Spawn(ImguiItem{Render: perf.Render})
	storage.Spawn(ImguiItem{Render: inspector.Render})
}
