package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

// Storage is the entity/component store: archetypes for entities plus a
// table of singleton resources that belong to no entity.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	ordered    []*Archetype
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

type singletonEntry struct {
	value reflect.Value
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

func (s *Storage) archetype(id uint32) *Archetype {
	a, _ := s.archetypes.Get(id)
	return a
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	if a := s.archetype(id); a != nil {
		return a
	}
	a := NewArchetype(id, types, s.registry)
	s.archetypes.Put(id, a)
	s.ordered = append(s.ordered, a)
	return a
}

// GetArchetype returns the archetype for exactly these components, if one exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetype(hashTypesToUint32(extractComponentTypes(components)))
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	archetype := s.archetypeFor(extractComponentTypes(components))
	return NewEntityId(archetype.id, archetype.Spawn(components))
}

// Delete removes all data related to the entity ID
func (s *Storage) Delete(id EntityId) {
	if archetype := s.archetype(id.ArchetypeId()); archetype != nil {
		archetype.Delete(id.Index())
	}
}

// Alive reports whether the entity exists.
func (s *Storage) Alive(id EntityId) bool {
	archetype := s.archetype(id.ArchetypeId())
	return archetype != nil && archetype.Alive(id.Index())
}

// GetComponent returns a pointer to the component for the given entity, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype := s.archetype(id.ArchetypeId())
	return archetype != nil && archetype.Alive(id.Index()) && archetype.HasComponent(compType)
}

// AddSingleton stores a resource value. An existing singleton of the same type
// is overwritten in place so outstanding Singleton accessors stay valid.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{value: ptr}
}

// ReadSingleton points *out at the stored singleton of type T.
// Returns false, leaving out untouched, when no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}
	entry, ok := s.singletons[target.Elem().Type().Elem()]
	if !ok {
		return false
	}
	target.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// StorageStats is a point-in-time summary of storage contents.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats summarizes archetypes and singletons.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		ArchetypeCount: len(s.ordered),
		SingletonCount: len(s.singletons),
	}

	for _, a := range s.ordered {
		names := make([]string, len(a.types))
		for i, t := range a.types {
			names[i] = t.String()
		}
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             a.id,
			ComponentTypes: names,
			EntityCount:    a.Len(),
		})
		stats.TotalEntityCount += a.Len()
	}

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to an entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
