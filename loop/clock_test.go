package loop_test

import (
	"testing"
	"time"

	"github.com/plus3/stepwise/loop"
	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	step := 20 * time.Millisecond

	t.Run("whole steps and lag", func(t *testing.T) {
		c := loop.NewClock(step, 0)

		assert.Equal(t, 2, c.Advance(50*time.Millisecond))
		assert.Equal(t, float32(0.5), c.Lag())

		assert.Equal(t, 1, c.Advance(10*time.Millisecond))
		assert.Equal(t, float32(0), c.Lag())
	})

	t.Run("sub step accumulates", func(t *testing.T) {
		c := loop.NewClock(step, 0)

		assert.Equal(t, 0, c.Advance(5*time.Millisecond))
		assert.Equal(t, float32(0.25), c.Lag())
		assert.Equal(t, 0, c.Advance(10*time.Millisecond))
		assert.Equal(t, float32(0.75), c.Lag())
		assert.Equal(t, 1, c.Advance(5*time.Millisecond))
	})

	t.Run("negative elapsed is ignored", func(t *testing.T) {
		c := loop.NewClock(step, 0)
		c.Advance(10 * time.Millisecond)

		assert.Equal(t, 0, c.Advance(-time.Second))
		assert.Equal(t, float32(0.5), c.Lag())
	})

	t.Run("cap drops backlog", func(t *testing.T) {
		c := loop.NewClock(step, 3)

		assert.Equal(t, 3, c.Advance(time.Second+5*time.Millisecond))
		assert.Equal(t, int64(47), c.Dropped())
		assert.Equal(t, float32(0.25), c.Lag())

		assert.Equal(t, 1, c.Advance(15*time.Millisecond))
		assert.Equal(t, int64(47), c.Dropped())
	})

	t.Run("lag stays below one", func(t *testing.T) {
		c := loop.NewClock(step, 5)
		for i := 0; i < 100; i++ {
			c.Advance(time.Duration(i*7) * time.Millisecond)
			assert.GreaterOrEqual(t, c.Lag(), float32(0))
			assert.Less(t, c.Lag(), float32(1))
		}

		c = loop.NewClock(step, 5)
		assert.Equal(t, 0, c.Advance(step-time.Nanosecond))
		assert.Less(t, c.Lag(), float32(1))
		assert.Greater(t, c.Lag(), float32(0.99))
	})

	t.Run("invalid step panics", func(t *testing.T) {
		assert.Panics(t, func() { loop.NewClock(0, 1) })
	})

	assert.Equal(t, step, loop.NewClock(step, 1).Step())
}
