// Package entity provides the entity shell that delegates movement and
// drawing to optional, pluggable physics and draw systems.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/geom"
)

// Entity is a positioned object with an optional physics system and an
// optional draw system. Missing systems turn the matching operations into
// no-ops.
//
// Entities are configured with the With* builders, each of which returns a
// modified copy:
//
//	player := entity.New().
//		WithLocation(10, 20).
//		WithGravity(true).
//		WithPhysicsSystem(&physics.Linear{}).
//		WithDrawSystem(render.PlayerSprite())
type Entity struct {
	Location geom.Rect

	extrapolationActive bool
	affectedByGravity   bool
	physics             PhysicsSystem
	draw                DrawSystem
}

// New returns an entity at the origin with extrapolation enabled, gravity
// disabled and no systems attached.
func New() Entity {
	return Entity{extrapolationActive: true}
}

// WithLocation sets the location origin, keeping the size.
func (e Entity) WithLocation(x, y float32) Entity {
	e.Location.X = x
	e.Location.Y = y
	return e
}

// WithSize sets the location size, keeping the origin.
func (e Entity) WithSize(w, h float32) Entity {
	e.Location.W = w
	e.Location.H = h
	return e
}

func (e Entity) WithExtrapolation(active bool) Entity {
	e.extrapolationActive = active
	return e
}

func (e Entity) WithGravity(affected bool) Entity {
	e.affectedByGravity = affected
	return e
}

// WithDrawSystem attaches draw. Systems are attached by reference and are
// not copied by later builders, so give every entity its own instance.
func (e Entity) WithDrawSystem(draw DrawSystem) Entity {
	e.draw = draw
	return e
}

// WithPhysicsSystem attaches physics. The system holds the entity's velocity
// and must not be attached to more than one entity; copies made by later
// builders share it.
func (e Entity) WithPhysicsSystem(physics PhysicsSystem) Entity {
	e.physics = physics
	return e
}

func (e *Entity) ExtrapolationActive() bool {
	return e.extrapolationActive
}

func (e *Entity) AffectedByGravity() bool {
	return e.affectedByGravity
}

// PhysicsSystem returns the attached physics system, or nil.
func (e *Entity) PhysicsSystem() PhysicsSystem {
	return e.physics
}

// DrawSystem returns the attached draw system, or nil.
func (e *Entity) DrawSystem() DrawSystem {
	return e.draw
}

// Velocity returns the physics velocity, or the zero vector without physics.
func (e *Entity) Velocity() geom.Vec2 {
	if e.physics == nil {
		return geom.Vec2{}
	}
	return e.physics.Velocity()
}

// SetVelocity overwrites the physics velocity. No-op without physics.
func (e *Entity) SetVelocity(x, y float32) {
	if e.physics == nil {
		return
	}
	e.physics.SetVelocity(x, y)
}

// ExtrapolatedPosition predicts where the entity will be lag fixed steps
// after its last update, using the current velocity. lag is expected in
// [0, 1). Without physics the location origin is returned unchanged.
func (e *Entity) ExtrapolatedPosition(lag float32) geom.Vec2 {
	position := e.Location.XY()
	if e.physics == nil {
		return position
	}
	return position.Add(e.physics.Velocity().Scale(lag))
}

// Draw hands the render position to the draw system. The error of the draw
// system is returned as is. No-op without a draw system.
func (e *Entity) Draw(screen *ebiten.Image, res *drawables.Registry, lag float32) error {
	if e.draw == nil {
		return nil
	}

	position := e.Location.XY()
	if e.extrapolationActive {
		position = e.ExtrapolatedPosition(lag)
	}

	return e.draw.Draw(res, screen, position, lag, e.physics)
}

// Update runs one fixed step. Gravity is applied to the velocity before the
// velocity is integrated into the location. No-op without physics.
func (e *Entity) Update(gravity geom.Vec2, dt float32) {
	if e.physics == nil {
		return
	}

	if e.affectedByGravity {
		e.physics.ApplyForce(gravity)
	}
	e.physics.Update(&e.Location, dt)
}
