// Package config loads the process-wide settings read once at startup and
// handed to the loop.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/plus3/stepwise/geom"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// TargetUpdateFPS is the number of fixed physics steps per second.
	TargetUpdateFPS uint32 `yaml:"target_update_fps"`
	// GravityForce is added to the Y velocity of gravity-affected entities
	// on every fixed step.
	GravityForce float32 `yaml:"gravity_force"`
	// MaxStepsPerFrame caps how many fixed steps one frame may run.
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"`

	Window Window `yaml:"window"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Log struct {
	Level string `yaml:"level"`
	// File enables rotating file output when set.
	File string `yaml:"file"`
}

func Default() Config {
	return Config{
		TargetUpdateFPS:  50,
		GravityForce:     0.1,
		MaxStepsPerFrame: 5,
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "stepwise",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes raw YAML on top of Default and validates the result.
// Keys missing from raw keep their default values.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrUpdateRate = errors.New("target_update_fps must be between 1 and 1e9")
	ErrGravity    = errors.New("gravity_force must be finite")
	ErrMaxSteps   = errors.New("max_steps_per_frame must be positive")
	ErrWindow     = errors.New("window size must be positive")
)

// Validate rejects values the loop cannot run with. Entities assume finite
// inputs, so non-finite gravity is caught here.
func (c Config) Validate() error {
	var errs []error
	if c.TargetUpdateFPS == 0 || c.FixedStep() <= 0 {
		errs = append(errs, ErrUpdateRate)
	}
	g := float64(c.GravityForce)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		errs = append(errs, ErrGravity)
	}
	if c.MaxStepsPerFrame <= 0 {
		errs = append(errs, ErrMaxSteps)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, ErrWindow)
	}
	return errors.Join(errs...)
}

// DeltaTime is the fixed step length in seconds.
func (c Config) DeltaTime() float32 {
	return 1.0 / float32(c.TargetUpdateFPS)
}

// FixedStep is the fixed step length.
func (c Config) FixedStep() time.Duration {
	if c.TargetUpdateFPS == 0 {
		return 0
	}
	return time.Second / time.Duration(c.TargetUpdateFPS)
}

// Gravity is the per-step force applied to gravity-affected entities.
func (c Config) Gravity() geom.Vec2 {
	return geom.Vec2{Y: c.GravityForce}
}
