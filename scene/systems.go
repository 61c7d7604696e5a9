package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/input"
)

const (
	// PlayerSpinRate is the player's rotation speed in radians per second.
	PlayerSpinRate = 1.0
	// CameraSpeed is the camera's speed along one axis in world units per second.
	CameraSpeed = 5.0
)

// TimeSystem advances the Time resource. It should run first in the update phase.
type TimeSystem struct {
	Time ecs.Singleton[Time]
}

func (s *TimeSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Time.Get()
	if t == nil {
		return
	}
	dt := max(frame.DeltaTime, 0)
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++
}

// RotatePlayerSystem spins every Player about its vertical axis.
type RotatePlayerSystem struct {
	Players ecs.Query[struct {
		*Transform
		*Player
	}]
}

func (s *RotatePlayerSystem) Execute(frame *ecs.UpdateFrame) {
	angle := float32(PlayerSpinRate * frame.DeltaTime)
	for item := range s.Players.Values() {
		item.Transform.RotateY(angle)
	}
}

// CameraControlSystem flies every non-player camera with the movement actions.
// Opposite actions cancel. The summed direction is not normalized, so
// diagonal movement is faster than movement along one axis.
type CameraControlSystem struct {
	Cameras ecs.Query[struct {
		*Camera
		*Transform
		Player *Player `ecs:"without"`
	}]
	Keyboard ecs.Singleton[input.Keyboard]
}

func (s *CameraControlSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	step := float32(CameraSpeed * frame.DeltaTime)

	for item := range s.Cameras.Values() {
		movement := Movement(kb, *item.Transform)
		item.Transform.Translation = item.Transform.Translation.Add(movement.Mul(step))
	}
}

// Movement sums the unit direction of every held movement action in the
// frame of t. A nil keyboard means no keys are held.
func Movement(kb *input.Keyboard, t Transform) mgl32.Vec3 {
	var movement mgl32.Vec3
	if kb.Pressed(input.MoveForward) {
		movement = movement.Add(t.Forward())
	}
	if kb.Pressed(input.MoveBackward) {
		movement = movement.Sub(t.Forward())
	}
	if kb.Pressed(input.MoveLeft) {
		movement = movement.Sub(t.Right())
	}
	if kb.Pressed(input.MoveRight) {
		movement = movement.Add(t.Right())
	}
	return movement
}
