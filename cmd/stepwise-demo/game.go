package main

import (
	"github.com/plus3/stepwise/config"
	"github.com/plus3/stepwise/loop"
	"github.com/plus3/stepwise/world"
)

// Game runs the loop and recycles entities that left the screen.
type Game struct {
	*loop.Loop
	cfg config.Config

	// queued holds boxes whose respawn is waiting for the next command flush.
	queued map[world.ID]struct{}
}

func (g *Game) Update() error {
	if err := g.Loop.Update(); err != nil {
		return err
	}
	g.recycle()
	return nil
}

// recycle queues offscreen boxes for respawn at the top and wraps the
// player around horizontally.
func (g *Game) recycle() {
	w := g.World()
	width := float32(g.cfg.Window.Width)
	height := float32(g.cfg.Window.Height)

	for id := range g.queued {
		if w.Get(id) == nil {
			delete(g.queued, id)
		}
	}

	for id, e := range w.All() {
		if e.Location.X > width {
			e.Location.X = -e.Location.W
		}
		if !e.AffectedByGravity() || e.Location.Y <= height {
			continue
		}
		if _, ok := g.queued[id]; ok {
			continue
		}
		g.queued[id] = struct{}{}
		w.Commands().Despawn(id)
		w.Commands().Spawn(newBox(g.cfg, 0))
	}
}
