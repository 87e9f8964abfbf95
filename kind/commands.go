package kind

import "kindly/ecs"

// ScopedCommands is a deferred-mutation handle scoped to an entity of
// kind K. It is the extension point for kind-specific verbs: external
// code adds operations that take a *ScopedCommands[K] and close over
// Commands(). The package guarantees only the scoping — Get always
// returns a valid handle — not the content of added verbs.
type ScopedCommands[K any] struct {
	handle Handle[K]
	entity *ecs.EntityCommands
}

// Get returns the branded handle for the scoped entity.
func (s *ScopedCommands[K]) Get() Handle[K] { return s.handle }

// Entity returns the generic per-entity command handle.
func (s *ScopedCommands[K]) Entity() *ecs.EntityCommands { return s.entity }

// Commands returns the underlying command issuer, for queueing
// arbitrary further deferred mutations.
func (s *ScopedCommands[K]) Commands() *ecs.Commands { return s.entity.Commands() }

// Insert queues additional components onto the scoped entity.
func (s *ScopedCommands[K]) Insert(components ...any) *ScopedCommands[K] {
	s.entity.Insert(components...)
	return s
}

// Spawn queues the creation of a new entity of kind K: a fresh entity
// plus the full kind bundle, applied together at the next queue flush.
func Spawn[K EntityKind[R], R any](c *ecs.Commands, required R) *ScopedCommands[K] {
	e := c.Spawn().Insert(New[K](required).Components()...)
	return &ScopedCommands[K]{handle: handleOf[K](e.ID()), entity: e}
}

// InsertOn queues the insertion of kind K's bundle onto an existing
// entity. The entity may already carry other kinds, or this one —
// re-insertion overwrites component values, last write wins.
func InsertOn[K EntityKind[R], R any](c *ecs.Commands, id ecs.EntityID, required R) *ScopedCommands[K] {
	e := c.Entity(id).Insert(New[K](required).Components()...)
	return &ScopedCommands[K]{handle: handleOf[K](id), entity: e}
}

// With re-enters kind scoping for an already-branded handle.
func With[K Tag](c *ecs.Commands, h Handle[K]) *ScopedCommands[K] {
	return &ScopedCommands[K]{handle: h, entity: c.Entity(h.Entity())}
}
