// Package kind adds typed entity kinds on top of the ecs world.
//
// A kind is declared by a zero-size tag type implementing EntityKind.
// It names two component sets: defaults, inserted automatically on
// every entity of the kind, and a required bundle the caller must
// supply. A hidden marker component is inserted alongside them; its
// presence is the single source of truth for "entity has this kind",
// and the Handle type turns that proof into a compile-time one.
package kind

import "kindly/ecs"

// Tag is the constraint shared by all kind tag types: a zero-size type
// that can produce fresh values of its default components.
type Tag interface {
	Defaults() []any
}

// EntityKind binds a kind tag to its required bundle type R: a struct
// whose fields are the components every caller must supply when
// creating an entity of this kind.
//
// Because R appears in the Required method, a kind satisfies
// EntityKind for exactly one bundle type — Spawn[K] rejects any other
// bundle at compile time, never at runtime.
type EntityKind[R any] interface {
	Tag
	// Required ties the kind to its bundle type. Implementations
	// return the zero bundle; the value is never read.
	Required() R
}

// marker is the per-kind presence component. It carries no data and is
// insertable only through this package, so observing it is proof that a
// full Bundle[K] landed on the entity at some point.
type marker[K any] struct{}

// Handle is an entity known to be of kind K. Handles are obtained only
// from the guarded paths in this package — a validated spawn/insert or
// a successful TryCast — never fabricated from a raw ID. Two handles
// for the same entity and kind compare equal.
type Handle[K any] struct {
	id ecs.EntityID
}

// Entity returns the underlying entity ID.
func (h Handle[K]) Entity() ecs.EntityID { return h.id }

// handleOf is the privileged constructor. Callers must have either
// queued a validated bundle insertion for id or observed the marker.
func handleOf[K any](id ecs.EntityID) Handle[K] {
	return Handle[K]{id: id}
}
