package input_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heldKeys(keys ...ebiten.Key) input.KeyReader {
	return func(key ebiten.Key) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func newPoll(t *testing.T, reader input.KeyReader) (*ecs.Scheduler, *input.Keyboard) {
	t.Helper()
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	kb := ecs.NewSingleton(storage, input.Keyboard{}).Get()
	require.NotNil(t, kb)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&input.PollSystem{Reader: reader})
	return scheduler, kb
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "MoveForward", input.MoveForward.String())
	assert.Equal(t, "MoveRight", input.MoveRight.String())
	assert.Equal(t, "Action(42)", input.Action(42).String())
	assert.Len(t, input.Actions(), 4)
}

func TestDefaultBindingsAreWASD(t *testing.T) {
	b := input.DefaultBindings()
	assert.Equal(t, ebiten.KeyW, b[input.MoveForward])
	assert.Equal(t, ebiten.KeyA, b[input.MoveLeft])
	assert.Equal(t, ebiten.KeyS, b[input.MoveBackward])
	assert.Equal(t, ebiten.KeyD, b[input.MoveRight])
}

func TestPollSystemReadsHeldKeys(t *testing.T) {
	scheduler, kb := newPoll(t, heldKeys(ebiten.KeyW, ebiten.KeyD, ebiten.KeyQ))

	scheduler.Once(1.0 / 60)

	assert.True(t, kb.Pressed(input.MoveForward))
	assert.True(t, kb.Pressed(input.MoveRight))
	assert.False(t, kb.Pressed(input.MoveBackward))
	assert.False(t, kb.Pressed(input.MoveLeft))
}

func TestPollSystemReleasesBetweenFrames(t *testing.T) {
	held := true
	scheduler, kb := newPoll(t, func(key ebiten.Key) bool {
		return held && key == ebiten.KeyS
	})

	scheduler.Once(0)
	assert.True(t, kb.Pressed(input.MoveBackward))

	held = false
	scheduler.Once(0)
	assert.False(t, kb.Pressed(input.MoveBackward))
}

func TestPollSystemWithoutDevice(t *testing.T) {
	scheduler, kb := newPoll(t, nil)
	kb.Set(input.MoveForward, true)

	scheduler.Once(0)

	for _, a := range input.Actions() {
		assert.False(t, kb.Pressed(a), a.String())
	}
}

func TestPollSystemCaptured(t *testing.T) {
	scheduler, kb := newPoll(t, heldKeys(ebiten.KeyW))
	kb.Captured = true

	scheduler.Once(0)

	assert.False(t, kb.Pressed(input.MoveForward))
}

func TestKeyboardNilAndOutOfRange(t *testing.T) {
	var kb *input.Keyboard
	assert.False(t, kb.Pressed(input.MoveForward))

	var real input.Keyboard
	real.Set(input.Action(99), true)
	assert.False(t, real.Pressed(input.Action(99)))
}
