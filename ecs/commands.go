package ecs

// Commands buffers structural changes made while systems run. They are
// applied when the scheduler flushes the frame, so queries never observe a
// half-built entity.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
	spawned []EntityId
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues a function to run after spawns and deletes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether any command is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns)+len(c.deletes)+len(c.defers) > 0
}

// Flush applies deletes, then spawns, then deferred functions, and resets
// the buffer. It returns the ids of the spawned entities in queue order.
func (c *Commands) Flush(storage *Storage) []EntityId {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	c.spawned = c.spawned[:0]
	for _, components := range c.spawns {
		c.spawned = append(c.spawned, storage.Spawn(components...))
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
	return c.spawned
}
