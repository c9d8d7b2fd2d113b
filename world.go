package phases

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// EntityId identifies a scene object within a World.
type EntityId uint64

const NoEntityId = EntityId(0)

func (e EntityId) String() string {
	return "Entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// AnyComponent is any value stored on an entity. The type of the value
// identifies the component, an entity holds at most one value per type.
type AnyComponent = any

type entity struct {
	// maps the component type to a pointer holding the component value
	components map[reflect.Type]any
}

// World is the scene object store. It holds all entities together with their
// components, the resources shared between actions and the exit signal of the app.
//
// A World is not safe for concurrent use. All actions run on the thread driving App.Update.
type World struct {
	entityIdSeq EntityId
	entities    map[EntityId]*entity
	resources   map[reflect.Type]any

	exit *appExit
}

type appExit struct {
	err error
}

// NewWorld creates a new empty world.
// You probably want to use the App api instead.
func NewWorld() *World {
	return &World{
		entities:  map[EntityId]*entity{},
		resources: map[reflect.Type]any{},
	}
}

// Spawn creates a new entity holding the given components.
func (w *World) Spawn(components ...AnyComponent) EntityId {
	if w.entityIdSeq == math.MaxUint64 {
		// wrapping around would reuse NoEntityId and then the ids of live entities
		panic("entity ids exhausted")
	}

	w.entityIdSeq += 1
	entityId := w.entityIdSeq

	w.entities[entityId] = &entity{
		components: map[reflect.Type]any{},
	}

	w.Insert(entityId, components...)

	return entityId
}

// Insert adds components to an existing entity. A component of a type
// already present on the entity is replaced. Inserting into an entity
// that does not exist is a no-op.
func (w *World) Insert(entityId EntityId, components ...AnyComponent) {
	entity, ok := w.entities[entityId]
	if !ok {
		return
	}

	for _, component := range flattenComponents(nil, components...) {
		if component == nil {
			continue
		}

		value := reflect.ValueOf(component)
		if value.Kind() == reflect.Pointer {
			panic(fmt.Sprintf("component must be inserted by value, got %T", component))
		}

		// keep a private copy of the value so the entity owns it
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)

		entity.components[value.Type()] = ptr.Interface()
	}
}

// Remove removes the component of the given type from the entity.
func Remove[C any](w *World, entityId EntityId) {
	entity, ok := w.entities[entityId]
	if !ok {
		return
	}

	delete(entity.components, reflect.TypeFor[C]())
}

// Despawn removes the entity and all of its components.
// Despawning an entity that does not exist is a no-op.
func (w *World) Despawn(entityId EntityId) {
	if _, ok := w.entities[entityId]; !ok {
		return
	}

	delete(w.entities, entityId)
}

// IsAlive returns true, if the entity exists within this world.
func (w *World) IsAlive(entityId EntityId) bool {
	_, ok := w.entities[entityId]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Get returns a pointer to the component of type C on the given entity.
// Modifications through the pointer are visible to all later readers.
func Get[C any](w *World, entityId EntityId) (*C, bool) {
	entity, ok := w.entities[entityId]
	if !ok {
		return nil, false
	}

	value, ok := entity.components[reflect.TypeFor[C]()]
	if !ok {
		return nil, false
	}

	return value.(*C), true
}

// MustGet is like Get but panics if the entity does not hold a component of type C.
func MustGet[C any](w *World, entityId EntityId) *C {
	value, ok := Get[C](w, entityId)
	if !ok {
		panic(fmt.Sprintf("entity %s has no component of type %s", entityId, reflect.TypeFor[C]()))
	}

	return value
}

// Has returns true, if the entity holds a component of type C.
func Has[C any](w *World, entityId EntityId) bool {
	_, ok := Get[C](w, entityId)
	return ok
}

// Each iterates over all entities holding a component of type C, ordered by entity id.
// Entities spawned or despawned while iterating are not observed by the iteration.
func Each[C any](w *World) iter.Seq2[EntityId, *C] {
	componentType := reflect.TypeFor[C]()

	return func(yield func(EntityId, *C) bool) {
		for _, entityId := range w.entityIds() {
			entity, ok := w.entities[entityId]
			if !ok {
				// despawned during iteration
				continue
			}

			value, ok := entity.components[componentType]
			if !ok {
				continue
			}

			if !yield(entityId, value.(*C)) {
				return
			}
		}
	}
}

// Single returns the only entity holding a component of type C.
// It returns false if there is no such entity or if there is more than one.
func Single[C any](w *World) (EntityId, *C, bool) {
	var (
		resultId EntityId
		result   *C
		count    int
	)

	for entityId, value := range Each[C](w) {
		resultId, result = entityId, value

		count += 1
		if count > 1 {
			return NoEntityId, nil, false
		}
	}

	return resultId, result, count == 1
}

// Tagged returns a snapshot of all entities holding a component equal to tag.
// The tag must be a comparable value. Two tags of the same type but with
// different values select different entities.
func (w *World) Tagged(tag AnyComponent) []EntityId {
	tagType := reflect.TypeOf(tag)
	if tagType == nil || !tagType.Comparable() {
		panic(fmt.Sprintf("tag must be a comparable value, got %T", tag))
	}

	var result []EntityId

	for _, entityId := range w.entityIds() {
		value, ok := w.entities[entityId].components[tagType]
		if !ok {
			continue
		}

		if reflect.ValueOf(value).Elem().Interface() == tag {
			result = append(result, entityId)
		}
	}

	return result
}

func (w *World) entityIds() []EntityId {
	return slices.Sorted(maps.Keys(w.entities))
}

// Exit requests the termination of the app. The host stops after the current frame.
// A nil error indicates a regular shutdown.
func (w *World) Exit(err error) {
	if w.exit != nil {
		// first one wins
		return
	}

	w.exit = &appExit{err: err}
}

// ExitRequested returns true, if any action requested the app to exit.
func (w *World) ExitRequested() (error, bool) {
	if w.exit == nil {
		return nil, false
	}

	return w.exit.err, true
}
