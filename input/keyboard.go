// Package input turns polled keyboard state into held actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vaultworn/ecs"
)

// KeyReader reports whether a physical key is currently held down.
// ebiten.IsKeyPressed satisfies it.
type KeyReader func(key ebiten.Key) bool

// Bindings maps each action to the physical key that drives it.
type Bindings map[Action]ebiten.Key

// DefaultBindings is the WASD layout.
func DefaultBindings() Bindings {
	return Bindings{
		MoveForward:  ebiten.KeyW,
		MoveBackward: ebiten.KeyS,
		MoveLeft:     ebiten.KeyA,
		MoveRight:    ebiten.KeyD,
	}
}

// Keyboard is the held state of every action for the current frame.
// Captured is set when another consumer, such as the debug overlay, owns the
// keyboard; actions then read as released.
type Keyboard struct {
	held     [actionCount]bool
	Captured bool
}

// Pressed reports whether the action is held this frame.
func (k *Keyboard) Pressed(a Action) bool {
	if k == nil || a < 0 || a >= actionCount {
		return false
	}
	return k.held[a]
}

// Set overrides the held state of one action.
func (k *Keyboard) Set(a Action, held bool) {
	if a < 0 || a >= actionCount {
		return
	}
	k.held[a] = held
}

// Release clears every action.
func (k *Keyboard) Release() {
	k.held = [actionCount]bool{}
}

// PollSystem copies key state into the Keyboard resource once per frame.
// With no Reader (no input device) every action reads as released.
type PollSystem struct {
	Keyboard ecs.Singleton[Keyboard]
	Reader   KeyReader
	Bindings Bindings
}

func (s *PollSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if kb == nil {
		return
	}

	kb.Release()
	if s.Reader == nil || kb.Captured {
		return
	}

	bindings := s.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	for action, key := range bindings {
		kb.Set(action, s.Reader(key))
	}
}
