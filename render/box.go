package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
)

// Box draws a filled W*H rectangle at the entity position. It needs no
// registered images.
type Box struct {
	W, H  float32
	Color color.RGBA
}

func (b Box) Draw(res *drawables.Registry, screen *ebiten.Image, position geom.Vec2, lag float32, physics entity.PhysicsSystem) error {
	if screen == nil {
		return &DrawError{System: "box", Err: ErrNoTarget}
	}
	vector.DrawFilledRect(screen, position.X, position.Y, b.W, b.H, b.Color, false)
	return nil
}
