package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/geom"
)

// PhysicsSystem integrates an entity's motion. Implementations are owned by
// exactly one entity and are only touched from the loop goroutine.
type PhysicsSystem interface {
	Velocity() geom.Vec2
	SetVelocity(x, y float32)
	// ApplyForce adds force straight into the velocity. There is no mass and
	// no dt scaling; a force behaves like an impulse.
	ApplyForce(force geom.Vec2)
	// Update advances location by velocity*dt.
	Update(location *geom.Rect, dt float32)
}

// DrawSystem renders an entity. It receives the already resolved position
// and must not change entity state. lag and physics are passed through for
// systems that want velocity-aware rendering; physics may be nil.
type DrawSystem interface {
	Draw(res *drawables.Registry, screen *ebiten.Image, position geom.Vec2, lag float32, physics PhysicsSystem) error
}
