package world

import "github.com/plus3/stepwise/entity"

// Commands buffers structural changes so entities are not added or removed
// while the world is being iterated.
type Commands struct {
	spawns   []entity.Entity
	despawns []ID
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn.
func (c *Commands) Spawn(e entity.Entity) {
	c.spawns = append(c.spawns, e)
}

// Despawn queues an entity removal.
func (c *Commands) Despawn(id ID) {
	c.despawns = append(c.despawns, id)
}

// Defer queues a function to run after spawns and despawns.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.despawns) + len(c.defers)
}

// Flush applies all queued commands to w and resets the buffer.
// Despawns run first, then spawns, then deferred functions. Commands queued
// while flushing wait for the next flush.
func (c *Commands) Flush(w *World) {
	despawns, spawns, defers := c.despawns, c.spawns, c.defers
	c.despawns, c.spawns, c.defers = nil, nil, nil

	for _, id := range despawns {
		w.Despawn(id)
	}

	for _, e := range spawns {
		w.Spawn(e)
	}

	for _, fn := range defers {
		fn()
	}
}
