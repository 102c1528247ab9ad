package entity_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
)

// recordingPhysics is a linear integrator that records which operations ran.
type recordingPhysics struct {
	velocity geom.Vec2
	calls    []string
}

func (p *recordingPhysics) Velocity() geom.Vec2 { return p.velocity }

func (p *recordingPhysics) SetVelocity(x, y float32) {
	p.calls = append(p.calls, "set_velocity")
	p.velocity = geom.Vec2{X: x, Y: y}
}

func (p *recordingPhysics) ApplyForce(force geom.Vec2) {
	p.calls = append(p.calls, "apply_force")
	p.velocity = p.velocity.Add(force)
}

func (p *recordingPhysics) Update(location *geom.Rect, dt float32) {
	p.calls = append(p.calls, "update")
	location.X += p.velocity.X * dt
	location.Y += p.velocity.Y * dt
}

type drawCall struct {
	res      *drawables.Registry
	screen   *ebiten.Image
	position geom.Vec2
	lag      float32
	physics  entity.PhysicsSystem
}

// recordingDraw captures every draw request and returns err.
type recordingDraw struct {
	calls []drawCall
	err   error
}

func (d *recordingDraw) Draw(res *drawables.Registry, screen *ebiten.Image, position geom.Vec2, lag float32, physics entity.PhysicsSystem) error {
	d.calls = append(d.calls, drawCall{
		res:      res,
		screen:   screen,
		position: position,
		lag:      lag,
		physics:  physics,
	})
	return d.err
}
