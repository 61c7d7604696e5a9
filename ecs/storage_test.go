package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/vaultworn/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawnAndRead(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2}, &Name{Value: "cube"})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, "cube", name.Value)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestStorageComponentOrderDoesNotMatter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Len(t, storage.Archetypes(), 1)
}

func TestStorageMutationThroughPointer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 10, Max: 10})

	ecs.ReadComponent[Health](storage, id).Current = 3

	assert.Equal(t, 3, ecs.ReadComponent[Health](storage, id).Current)
}

func TestStorageDeleteReusesSlot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	second := storage.Spawn(Position{X: 2})

	storage.Delete(first)
	assert.False(t, storage.Alive(first))
	assert.True(t, storage.Alive(second))
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))

	third := storage.Spawn(Position{X: 3})
	assert.Equal(t, first.Index(), third.Index())
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, second).X)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, third).X)
}

func TestStorageDeleteUnknownIsNoop(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.NotPanics(t, func() {
		storage.Delete(ecs.NewEntityId(42, 7))
	})
}

func TestStorageZeroSizeTags(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	tagged := storage.Spawn(PlayerController{}, Position{X: 5})
	storage.Spawn(Position{X: 6})

	assert.NotNil(t, ecs.ReadComponent[PlayerController](storage, tagged))
	assert.Len(t, storage.Archetypes(), 2)
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) })
	assert.PanicsWithValue(t, "component type int32 not registered", func() {
		storage.Spawn(int32(4))
	})
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)

	storage.AddSingleton(Health{Current: 7, Max: 9})

	var health *Health
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 7, health.Current)

	health.Current = 1
	var again *Health
	require.True(t, storage.ReadSingleton(&again))
	assert.Same(t, health, again)

	storage.AddSingleton(Health{Current: 2, Max: 2})
	assert.Equal(t, 2, health.Current, "overwrite keeps the same backing value")
}

func TestStorageCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{}, Name{})
	storage.Spawn(Position{}, Name{})
	doomed := storage.Spawn(Temperature(3))
	storage.Delete(doomed)
	ecs.NewSingleton(storage, Health{})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Health"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, []string{"ecs_test.Name", "ecs_test.Position"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Equal(t, 0, stats.ArchetypeBreakdown[1].EntityCount)
}
