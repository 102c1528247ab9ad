package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stepwise/config"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/logging"
	"github.com/plus3/stepwise/loop"
	"github.com/plus3/stepwise/physics"
	"github.com/plus3/stepwise/world"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated frame time fed to the loop clock.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	runID := uuid.New()
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger = logger.With(zap.Stringer("run", runID))
	defer logger.Sync()

	logger.Info("populating world", zap.Int("entities", *entityCount))
	w := world.New()
	for i := 0; i < *entityCount; i++ {
		w.Spawn(RandomEntity())
	}

	report := &Report{
		RunID:          runID,
		Duration:       *duration,
		Frame:          *frame,
		Entities:       *entityCount,
		UpdateFPS:      cfg.TargetUpdateFPS,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	l := loop.New(cfg, w, drawables.NewRegistry(), logger)

	logger.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			l.Step(*frame)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.Loop = l.Stats()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", zap.Int64("steps", report.Loop.Steps))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// RandomEntity returns an entity with a random mix of physics variant,
// gravity and starting velocity. About one in ten has no physics at all.
func RandomEntity() entity.Entity {
	e := entity.New().
		WithLocation(rand.Float32()*1000, rand.Float32()*1000).
		WithGravity(rand.IntN(2) == 0)

	switch rand.IntN(10) {
	case 0:
		return e
	case 1, 2, 3:
		return e.WithPhysicsSystem(physics.NewClamped(rand.Float32() * 500))
	default:
		return e.WithPhysicsSystem(physics.NewLinear(rand.Float32()*200-100, rand.Float32()*200-100))
	}
}
