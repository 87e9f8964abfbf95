package ecs

// CommandQueue buffers deferred mutations until Apply flushes them
// against a World in FIFO order.
type CommandQueue struct {
	cmds []func(*World)
}

// Push appends a command to the queue.
func (q *CommandQueue) Push(cmd func(*World)) {
	q.cmds = append(q.cmds, cmd)
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int { return len(q.cmds) }

// Apply runs every queued command against w in the order it was pushed,
// then empties the queue. Commands pushed while applying run in the
// same flush.
func (q *CommandQueue) Apply(w *World) {
	for i := 0; i < len(q.cmds); i++ {
		q.cmds[i](w)
	}
	q.cmds = q.cmds[:0]
}

// Commands issues deferred mutations against a World through a
// CommandQueue. Nothing mutates storage until the queue is applied.
type Commands struct {
	queue *CommandQueue
	world *World
}

// NewCommands binds a queue to the world it will be applied to.
func NewCommands(queue *CommandQueue, world *World) *Commands {
	return &Commands{queue: queue, world: world}
}

// Queue pushes an arbitrary deferred mutation.
func (c *Commands) Queue(cmd func(*World)) {
	c.queue.Push(cmd)
}

// Spawn reserves a new entity ID and queues its creation. The returned
// EntityCommands can stage components onto the not-yet-applied entity.
func (c *Commands) Spawn() *EntityCommands {
	id := c.world.Reserve()
	c.queue.Push(func(w *World) { w.adopt(id) })
	return &EntityCommands{commands: c, id: id}
}

// Entity returns an EntityCommands for an already-known entity.
func (c *Commands) Entity(id EntityID) *EntityCommands {
	return &EntityCommands{commands: c, id: id}
}

// EntityCommands issues deferred mutations scoped to one entity. A
// command whose target is no longer alive when the queue is applied is
// dropped rather than mutating a destroyed entity's storage.
type EntityCommands struct {
	commands *Commands
	id       EntityID
}

// ID returns the entity this handle mutates.
func (e *EntityCommands) ID() EntityID { return e.id }

// Commands returns the underlying Commands.
func (e *EntityCommands) Commands() *Commands { return e.commands }

// Insert queues the insertion of every given component as a single
// command: at apply time either all of them land or none do.
func (e *EntityCommands) Insert(components ...any) *EntityCommands {
	id := e.id
	e.commands.queue.Push(func(w *World) {
		if w.Alive(id) {
			w.Insert(id, components...)
		}
	})
	return e
}

// Remove queues the removal of a component type.
func (e *EntityCommands) Remove(t ComponentType) *EntityCommands {
	id := e.id
	e.commands.queue.Push(func(w *World) {
		if w.Alive(id) {
			w.Remove(id, t)
		}
	})
	return e
}

// Despawn queues the destruction of the entity.
func (e *EntityCommands) Despawn() {
	id := e.id
	e.commands.queue.Push(func(w *World) { w.DestroyEntity(id) })
}
