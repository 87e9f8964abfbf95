package ecs

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]any
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]any),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.Reserve()
	w.alive[id] = true
	return id
}

// Reserve mints a new entity ID without marking it alive. The entity
// materializes when a queued command adopts it at the next apply.
func (w *World) Reserve() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// adopt marks a reserved entity alive. Idempotent.
func (w *World) adopt(id EntityID) {
	if id != NilEntity {
		w.alive[id] = true
	}
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity, replacing any previous value
// of the same type.
func (w *World) Add(id EntityID, c any) {
	t := TypeOf(c)
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]any)
	}
	w.components[t][id] = c
}

// Insert attaches every given component to the entity. Callers on the
// synchronous path get the same all-or-nothing result a queued insert
// has: no observer runs between the individual Adds.
func (w *World) Insert(id EntityID, components ...any) {
	for _, c := range components {
		w.Add(id, c)
	}
}

// GetRaw returns the component of the given type for entity id, or nil.
func (w *World) GetRaw(id EntityID, t ComponentType) any {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.GetRaw(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// Execute runs f with a fresh Commands and applies the queued commands
// before returning.
func (w *World) Execute(f func(*Commands)) {
	var queue CommandQueue
	f(NewCommands(&queue, w))
	queue.Apply(w)
}

// Get returns the T component for entity id.
func Get[T any](w *World, id EntityID) (T, bool) {
	c := w.GetRaw(id, TypeFor[T]())
	if c == nil {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Has reports whether entity id has a T component.
func Has[T any](w *World, id EntityID) bool {
	return w.Has(id, TypeFor[T]())
}

// Remove detaches the T component from entity id.
func Remove[T any](w *World, id EntityID) {
	w.Remove(id, TypeFor[T]())
}
