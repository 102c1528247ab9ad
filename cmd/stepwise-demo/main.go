package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stepwise/config"
	"github.com/plus3/stepwise/debugui"
	"github.com/plus3/stepwise/drawables"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/logging"
	"github.com/plus3/stepwise/loop"
	"github.com/plus3/stepwise/physics"
	"github.com/plus3/stepwise/render"
	"github.com/plus3/stepwise/world"
	"go.uber.org/zap"
)

const (
	playerSize   = 32
	boxSize      = 12
	maxBoxSpeed  = 400
	playerSpeedX = 120
)

var pastelColors = []color.RGBA{
	{255, 179, 186, 255},
	{179, 229, 252, 255},
	{255, 223, 186, 255},
	{186, 255, 201, 255},
	{217, 186, 255, 255},
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	playerSprite := flag.String("player-sprite", "", "PNG used for the player; a solid square when empty.")
	boxes := flag.Int("boxes", 40, "Number of falling boxes.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger = logger.With(zap.String("run", uuid.NewString()))
	defer logger.Sync()

	res := drawables.NewRegistry()
	if *playerSprite != "" {
		err = res.LoadFile(drawables.Player, *playerSprite)
	} else {
		err = res.AddSolid(drawables.Player, playerSize, playerSize, color.RGBA{80, 120, 200, 255})
	}
	if err != nil {
		logger.Fatal("player sprite", zap.Error(err))
	}

	w := world.New()
	w.Spawn(entity.New().
		WithLocation(0, float32(cfg.Window.Height)/2).
		WithSize(playerSize, playerSize).
		WithPhysicsSystem(physics.NewLinear(playerSpeedX, 0)).
		WithDrawSystem(render.PlayerSprite()))
	for i := 0; i < *boxes; i++ {
		w.Spawn(newBox(cfg, rand.Float32()*float32(cfg.Window.Height)))
	}

	var opts []loop.Option
	if *debug {
		opts = append(opts, loop.WithOverlay(debugui.NewOverlay(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, w)))
	}

	game := &Game{
		Loop:   loop.New(cfg, w, res, logger, opts...),
		cfg:    cfg,
		queued: make(map[world.ID]struct{}),
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	logger.Info("starting",
		zap.Uint32("target_update_fps", cfg.TargetUpdateFPS),
		zap.Float32("gravity_force", cfg.GravityForce),
		zap.Int("entities", w.Len()))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game ended", zap.Error(err))
	}
}

// newBox returns a falling box starting at height y above the top edge.
func newBox(cfg config.Config, y float32) entity.Entity {
	x := rand.Float32() * float32(cfg.Window.Width-boxSize)
	return entity.New().
		WithLocation(x, -y).
		WithSize(boxSize, boxSize).
		WithGravity(true).
		WithPhysicsSystem(physics.NewClamped(maxBoxSpeed)).
		WithDrawSystem(render.Box{
			W:     boxSize,
			H:     boxSize,
			Color: pastelColors[rand.IntN(len(pastelColors))],
		})
}
