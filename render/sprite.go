// Package render provides draw systems backed by ebiten.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
)

var (
	_ entity.DrawSystem = Sprite{}
	_ entity.DrawSystem = Box{}
)

// Sprite draws a registered image with its top-left corner at the entity
// position.
type Sprite struct {
	Name string
}

// PlayerSprite returns the draw system of the player.
func PlayerSprite() Sprite {
	return Sprite{Name: drawables.Player}
}

func (s Sprite) Draw(res *drawables.Registry, screen *ebiten.Image, position geom.Vec2, lag float32, physics entity.PhysicsSystem) error {
	if screen == nil {
		return &DrawError{System: s.system(), Err: ErrNoTarget}
	}
	if res == nil {
		return &DrawError{System: s.system(), Err: drawables.ErrNotFound}
	}

	img, err := res.Image(s.Name)
	if err != nil {
		return &DrawError{System: s.system(), Err: err}
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(position.X), float64(position.Y))
	screen.DrawImage(img, opts)
	return nil
}

func (s Sprite) system() string {
	return "sprite " + s.Name
}
