package physics

import "github.com/plus3/stepwise/geom"

// Clamped behaves like Linear but caps the speed after every applied force,
// giving falling props a terminal velocity. A MaxSpeed of zero or less
// disables the cap.
type Clamped struct {
	Linear
	MaxSpeed float32
}

// NewClamped returns a resting Clamped system with the given speed cap.
func NewClamped(maxSpeed float32) *Clamped {
	return &Clamped{MaxSpeed: maxSpeed}
}

func (c *Clamped) ApplyForce(force geom.Vec2) {
	c.Linear.ApplyForce(force)
	c.clamp()
}

func (c *Clamped) clamp() {
	if c.MaxSpeed <= 0 {
		return
	}
	speed := c.velocity.Len()
	if speed <= c.MaxSpeed {
		return
	}
	c.velocity = c.velocity.Scale(c.MaxSpeed / speed)
}
