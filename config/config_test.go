package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/stepwise/config"
	"github.com/plus3/stepwise/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, uint32(50), cfg.TargetUpdateFPS)
	assert.Equal(t, float32(0.1), cfg.GravityForce)
	assert.NoError(t, cfg.Validate())

	assert.InDelta(t, 0.02, cfg.DeltaTime(), 1e-9)
	assert.Equal(t, 20*time.Millisecond, cfg.FixedStep())
	assert.Equal(t, geom.Vec2{Y: 0.1}, cfg.Gravity())
}

func TestParse(t *testing.T) {
	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte("target_update_fps: 100\nwindow:\n  title: demo\n"))
		require.NoError(t, err)

		assert.Equal(t, uint32(100), cfg.TargetUpdateFPS)
		assert.Equal(t, float32(0.1), cfg.GravityForce)
		assert.Equal(t, "demo", cfg.Window.Title)
		assert.Equal(t, 1280, cfg.Window.Width)
		assert.Equal(t, 10*time.Millisecond, cfg.FixedStep())
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("target_update_fps: [1"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Parse([]byte("target_update_fps: 0\nmax_steps_per_frame: 0\n"))
		assert.ErrorIs(t, err, config.ErrUpdateRate)
		assert.ErrorIs(t, err, config.ErrMaxSteps)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"zero fps", func(c *config.Config) { c.TargetUpdateFPS = 0 }, config.ErrUpdateRate},
		{"step shorter than a nanosecond", func(c *config.Config) { c.TargetUpdateFPS = 2_000_000_000 }, config.ErrUpdateRate},
		{"nan gravity", func(c *config.Config) { c.GravityForce = float32(math.NaN()) }, config.ErrGravity},
		{"inf gravity", func(c *config.Config) { c.GravityForce = float32(math.Inf(1)) }, config.ErrGravity},
		{"no steps", func(c *config.Config) { c.MaxStepsPerFrame = -1 }, config.ErrMaxSteps},
		{"no window", func(c *config.Config) { c.Window.Height = 0 }, config.ErrWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("one nanosecond step is allowed", func(t *testing.T) {
		cfg := config.Default()
		cfg.TargetUpdateFPS = 1_000_000_000
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, time.Nanosecond, cfg.FixedStep())
	})

	t.Run("negative gravity is allowed", func(t *testing.T) {
		cfg := config.Default()
		cfg.GravityForce = -0.5
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "stepwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity_force: 0.25\nlog:\n  level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), cfg.GravityForce)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
