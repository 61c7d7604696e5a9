package ecs_test

import (
	"testing"

	"github.com/plus3/vaultworn/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(&Position{X: 1, Y: 2}, Temperature(32))

	view := ecs.NewView[struct {
		*Position
		*Temperature
	}](storage)

	item := view.Get(entityId)
	require.NotNil(t, item)
	assert.Equal(t, Temperature(32), *item.Temperature)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)
}

func TestViewMissingComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(&Position{X: 5, Y: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	assert.Nil(t, view.Get(entityId))
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(Position{X: 1}, Velocity{DX: 2})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
	}

	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, entityId).X)
}

func TestViewOptional(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	withName := storage.Spawn(Position{}, Name{Value: "a"})
	withoutName := storage.Spawn(Position{})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](storage)

	a := view.Get(withName)
	require.NotNil(t, a)
	require.NotNil(t, a.Name)
	assert.Equal(t, "a", a.Name.Value)

	b := view.Get(withoutName)
	require.NotNil(t, b)
	assert.Nil(t, b.Name)

	assert.Equal(t, 2, view.Count())
}

func TestViewWithout(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	free := storage.Spawn(Position{X: 1})
	frozen := storage.Spawn(Position{X: 2}, Frozen{})

	view := ecs.NewView[struct {
		*Position
		Frozen *Frozen `ecs:"without"`
	}](storage)

	assert.NotNil(t, view.Get(free))
	assert.Nil(t, view.Get(frozen))

	var seen []ecs.EntityId
	for id, item := range view.Iter() {
		assert.Nil(t, item.Frozen)
		seen = append(seen, id)
	}
	assert.Equal(t, []ecs.EntityId{free}, seen)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 1})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Health
	}](storage)

	for item := range view.Values() {
		assert.Equal(t, id, item.EntityId)
	}
}

func TestViewSkipsDeleted(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	gone := storage.Spawn(Position{})
	kept := storage.Spawn(Position{})
	storage.Delete(gone)

	view := ecs.NewView[struct{ *Position }](storage)

	assert.Nil(t, view.Get(gone))
	assert.NotNil(t, view.Get(kept))
	assert.Equal(t, 1, view.Count())
}

func TestViewInvalidShapes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ P Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](storage)
	})
}
