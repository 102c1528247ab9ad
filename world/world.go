// Package world keeps the entities driven by the loop.
package world

import (
	"fmt"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
)

// ID identifies an entity in a World. IDs start at 1 and are never reused.
type ID uint32

type slot struct {
	id     ID
	entity *entity.Entity
}

// World owns a set of entities and updates and draws them in spawn order.
type World struct {
	slots    []slot
	index    *intmap.Map[ID, int]
	lastID   ID
	commands *Commands
}

func New() *World {
	return &World{
		index:    intmap.New[ID, int](256),
		commands: newCommands(),
	}
}

// Spawn takes ownership of e and returns its ID. The systems attached to e
// must not be attached to any other spawned entity.
func (w *World) Spawn(e entity.Entity) ID {
	w.lastID++
	id := w.lastID

	stored := e
	w.index.Put(id, len(w.slots))
	w.slots = append(w.slots, slot{id: id, entity: &stored})
	return id
}

// Despawn removes the entity, keeping the order of the others. It reports
// whether the entity existed.
func (w *World) Despawn(id ID) bool {
	pos, ok := w.index.Get(id)
	if !ok {
		return false
	}

	w.index.Del(id)
	copy(w.slots[pos:], w.slots[pos+1:])
	w.slots[len(w.slots)-1] = slot{}
	w.slots = w.slots[:len(w.slots)-1]

	for i := pos; i < len(w.slots); i++ {
		w.index.Put(w.slots[i].id, i)
	}
	return true
}

// Get returns the entity with the given ID, or nil.
func (w *World) Get(id ID) *entity.Entity {
	pos, ok := w.index.Get(id)
	if !ok {
		return nil
	}
	return w.slots[pos].entity
}

func (w *World) Len() int {
	return len(w.slots)
}

// All iterates entities in spawn order.
func (w *World) All() iter.Seq2[ID, *entity.Entity] {
	return func(yield func(ID, *entity.Entity) bool) {
		for _, s := range w.slots {
			if !yield(s.id, s.entity) {
				return
			}
		}
	}
}

// Commands returns the buffer of structural changes applied after the next
// Update.
func (w *World) Commands() *Commands {
	return w.commands
}

// Update runs one fixed step on every entity, then flushes queued commands.
func (w *World) Update(gravity geom.Vec2, dt float32) {
	for _, s := range w.slots {
		s.entity.Update(gravity, dt)
	}
	w.commands.Flush(w)
}

// Draw draws every entity. It stops at the first failing entity and returns
// its error annotated with the entity ID.
func (w *World) Draw(screen *ebiten.Image, res *drawables.Registry, lag float32) error {
	for _, s := range w.slots {
		if err := s.entity.Draw(screen, res, lag); err != nil {
			return fmt.Errorf("entity %d: %w", s.id, err)
		}
	}
	return nil
}
