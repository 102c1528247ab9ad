// Package loop drives a world with fixed physics steps and extrapolated
// rendering. Loop implements ebiten.Game.
package loop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/config"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/world"
	"go.uber.org/zap"
)

// Overlay is drawn on top of the world, e.g. the debug UI.
type Overlay interface {
	Update(stats Stats)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Option func(*Loop)

func WithOverlay(overlay Overlay) Option {
	return func(l *Loop) {
		l.overlay = overlay
	}
}

// WithNow replaces the wall clock used by Update.
func WithNow(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

type Loop struct {
	cfg     config.Config
	world   *world.World
	res     *drawables.Registry
	clock   *Clock
	log     *zap.Logger
	overlay Overlay
	now     func() time.Time

	last       time.Time
	steps      int64
	drawErrors int64
	update     phaseStatsInternal
	draw       phaseStatsInternal
	stopped    bool
}

// New returns a loop over w. cfg must be valid; a nil logger discards logs.
func New(cfg config.Config, w *world.World, res *drawables.Registry, logger *zap.Logger, opts ...Option) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loop{
		cfg:    cfg,
		world:  w,
		res:    res,
		clock:  NewClock(cfg.FixedStep(), cfg.MaxStepsPerFrame),
		log:    logger,
		now:    time.Now,
		update: newPhaseStats("update"),
		draw:   newPhaseStats("draw"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) World() *world.World {
	return l.world
}

func (l *Loop) Clock() *Clock {
	return l.clock
}

// Stop makes the next Update end the game.
func (l *Loop) Stop() {
	l.stopped = true
}

// Update runs the fixed steps due since the previous call.
func (l *Loop) Update() error {
	now := l.now()
	if l.last.IsZero() {
		l.last = now
	}
	elapsed := now.Sub(l.last)
	l.last = now

	l.Step(elapsed)

	if l.overlay != nil {
		l.overlay.Update(l.Stats())
	}

	if l.stopped {
		l.log.Info("loop stopped", zap.Int64("steps", l.steps))
		return ebiten.Termination
	}
	return nil
}

// Step advances the clock by elapsed and runs the fixed steps that became
// due. It returns the number of steps run.
func (l *Loop) Step(elapsed time.Duration) int {
	dropped := l.clock.Dropped()
	n := l.clock.Advance(elapsed)
	if d := l.clock.Dropped() - dropped; d > 0 {
		l.log.Warn("dropped fixed steps", zap.Int64("dropped", d), zap.Duration("elapsed", elapsed))
	}

	gravity := l.cfg.Gravity()
	dt := l.cfg.DeltaTime()
	for i := 0; i < n; i++ {
		start := time.Now()
		l.world.Update(gravity, dt)
		l.update.record(time.Since(start))
		l.steps++
	}
	return n
}

// Draw renders the world at the current lag. A failed draw ends the frame's
// world pass; it is logged and counted, and the next frame tries again.
func (l *Loop) Draw(screen *ebiten.Image) {
	lag := l.clock.Lag()

	start := time.Now()
	err := l.world.Draw(screen, l.res, lag)
	l.draw.record(time.Since(start))

	if err != nil {
		l.drawErrors++
		l.log.Error("draw failed", zap.Error(err), zap.Float32("lag", lag))
	}

	if l.overlay != nil {
		l.overlay.Draw(screen)
	}
}

func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l.overlay != nil {
		l.overlay.Layout(outsideWidth, outsideHeight)
	}
	return l.cfg.Window.Width, l.cfg.Window.Height
}

func (l *Loop) Stats() Stats {
	return Stats{
		Update:       l.update.snapshot(),
		Draw:         l.draw.snapshot(),
		Steps:        l.steps,
		DroppedSteps: l.clock.Dropped(),
		DrawErrors:   l.drawErrors,
		Entities:     l.world.Len(),
		Lag:          l.clock.Lag(),
	}
}
