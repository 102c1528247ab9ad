// Package physics provides physics systems for entities.
package physics

import (
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
)

var (
	_ entity.PhysicsSystem = (*Linear)(nil)
	_ entity.PhysicsSystem = (*Clamped)(nil)
)

// Linear integrates a constant velocity with explicit Euler steps. It is the
// physics system used by the player.
type Linear struct {
	velocity geom.Vec2
}

// NewLinear returns a Linear system moving at (vx, vy).
func NewLinear(vx, vy float32) *Linear {
	return &Linear{velocity: geom.Vec2{X: vx, Y: vy}}
}

func (l *Linear) Velocity() geom.Vec2 {
	return l.velocity
}

func (l *Linear) SetVelocity(x, y float32) {
	l.velocity = geom.Vec2{X: x, Y: y}
}

// ApplyForce adds force to the velocity as is.
func (l *Linear) ApplyForce(force geom.Vec2) {
	l.velocity = l.velocity.Add(force)
}

func (l *Linear) Update(location *geom.Rect, dt float32) {
	location.X += l.velocity.X * dt
	location.Y += l.velocity.Y * dt
}
