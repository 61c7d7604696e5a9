package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage has its own registry so independent worlds can coexist.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() column {
		return &typedColumn[T]{}
	}
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}

// column is a type-erased, index-stable slot array for one component type.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// typedColumn stores components of type T densely. Deleted slots are
// recycled through a free list so live indices never move.
type typedColumn[T any] struct {
	items     []T
	alive     []bool
	freeSlots []int
	live      int
}

func (c *typedColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("component of type " + reflect.TypeOf(item).String() + " does not match column " + reflect.TypeFor[T]().String())
	}

	c.live++
	if n := len(c.freeSlots); n > 0 {
		index := c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
		c.items[index] = value
		c.alive[index] = true
		return index
	}

	c.items = append(c.items, value)
	c.alive = append(c.alive, true)
	return len(c.items) - 1
}

func (c *typedColumn[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	var zero T
	c.items[index] = zero
	c.alive[index] = false
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

// Get returns a *T for a live slot, nil otherwise.
func (c *typedColumn[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.items[index]
}

func (c *typedColumn[T]) Has(index int) bool {
	return index >= 0 && index < len(c.alive) && c.alive[index]
}

func (c *typedColumn[T]) Len() int {
	return c.live
}

func (c *typedColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := range c.alive {
			if ok && !yield(i) {
				return
			}
		}
	}
}
