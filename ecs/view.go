package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

type fieldRole uint8

const (
	roleRequired fieldRole = iota
	roleOptional
	roleWithout
	roleEntityId
)

var entityIdType = reflect.TypeFor[EntityId]()

// View matches entities against a struct shape.
//
// Pointer fields name component types; embedded pointer fields are always
// required. Named pointer fields accept an `ecs` struct tag:
//
//	`ecs:"optional"` - the component may be absent; the field is nil then
//	`ecs:"without"`  - the entity must NOT carry the component; the field stays nil
//
// A field of type EntityId (embedded or named) receives the matched entity's id.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	roles       []fieldRole
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.types = append(v.types, entityIdType)
			v.roles = append(v.roles, roleEntityId)
			v.fieldOffset = append(v.fieldOffset, field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		role := roleRequired
		if tag := field.Tag.Get("ecs"); tag != "" {
			if field.Anonymous {
				panic("embedded View fields cannot carry an ecs tag")
			}
			switch tag {
			case "optional":
				role = roleOptional
			case "without":
				role = roleWithout
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (expected \"optional\" or \"without\")")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.roles = append(v.roles, role)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// matchesArchetype reports whether an archetype carries every required type
// and none of the excluded ones.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, typ := range v.types {
		switch v.roles[i] {
		case roleRequired:
			if !archetype.HasComponent(typ) {
				return false
			}
		case roleWithout:
			if archetype.HasComponent(typ) {
				return false
			}
		}
	}
	return true
}

// fill writes the component pointers of one entity into *out.
func (v *View[T]) fill(out *T, archetype *Archetype, id EntityId) bool {
	base := unsafe.Pointer(out)

	for i, typ := range v.types {
		fieldPtr := unsafe.Add(base, v.fieldOffset[i])

		switch v.roles[i] {
		case roleEntityId:
			*(*EntityId)(fieldPtr) = id
			continue
		case roleWithout:
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		component := archetype.GetComponent(id.Index(), typ)
		if component == nil {
			if v.roles[i] == roleRequired {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = reflect.ValueOf(component).UnsafePointer()
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity does not match the view.
func (v *View[T]) Get(id EntityId) *T {
	archetype := v.storage.archetype(id.ArchetypeId())
	if archetype == nil || !archetype.Alive(id.Index()) || !v.matchesArchetype(archetype) {
		return nil
	}

	var result T
	if !v.fill(&result, archetype, id) {
		return nil
	}
	return &result
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		for id := range archetype.Iter() {
			if !v.fill(&result, archetype, id) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over every matching entity, in archetype creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.ordered {
			if !v.matchesArchetype(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}
