package render_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/geom"
	"github.com/plus3/stepwise/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSprite(t *testing.T) {
	assert.Equal(t, render.Sprite{Name: drawables.Player}, render.PlayerSprite())
}

func TestSpriteErrors(t *testing.T) {
	res := drawables.NewRegistry()

	t.Run("nil target", func(t *testing.T) {
		err := render.PlayerSprite().Draw(res, nil, geom.Vec2{}, 0, nil)

		var drawErr *render.DrawError
		require.True(t, errors.As(err, &drawErr))
		assert.Equal(t, "sprite player", drawErr.System)
		assert.ErrorIs(t, err, render.ErrNoTarget)
	})

	t.Run("missing drawable", func(t *testing.T) {
		screen := ebiten.NewImage(8, 8)
		e := entity.New().WithDrawSystem(render.Sprite{Name: "ghost"})
		err := e.Draw(screen, res, 0)

		var drawErr *render.DrawError
		require.True(t, errors.As(err, &drawErr))
		assert.Equal(t, "sprite ghost", drawErr.System)
		assert.ErrorIs(t, err, drawables.ErrNotFound)
	})

	t.Run("nil registry", func(t *testing.T) {
		screen := ebiten.NewImage(8, 8)
		err := render.PlayerSprite().Draw(nil, screen, geom.Vec2{}, 0, nil)
		assert.ErrorIs(t, err, drawables.ErrNotFound)
	})
}

func TestSpriteDrawsRegisteredImage(t *testing.T) {
	res := drawables.NewRegistry()
	require.NoError(t, res.AddSolid(drawables.Player, 4, 4, color.RGBA{255, 0, 0, 255}))
	screen := ebiten.NewImage(16, 16)

	err := render.PlayerSprite().Draw(res, screen, geom.Vec2{X: 3, Y: 5}, 0.5, nil)
	assert.NoError(t, err)
}

func TestBoxDraws(t *testing.T) {
	screen := ebiten.NewImage(16, 16)
	err := render.Box{W: 4, H: 4, Color: color.RGBA{0, 255, 0, 255}}.Draw(nil, screen, geom.Vec2{X: 1, Y: 1}, 0, nil)
	assert.NoError(t, err)
}

func TestBoxNilTarget(t *testing.T) {
	err := render.Box{W: 4, H: 4}.Draw(nil, nil, geom.Vec2{}, 0, nil)
	assert.ErrorIs(t, err, render.ErrNoTarget)
	assert.EqualError(t, err, "draw box: no render target")
}

func TestDrawErrorUnwrap(t *testing.T) {
	cause := drawables.ErrNotFound
	err := &render.DrawError{System: "sprite x", Err: cause}
	assert.ErrorIs(t, err, drawables.ErrNotFound)
	assert.EqualError(t, err, "draw sprite x: drawable not found")
}
