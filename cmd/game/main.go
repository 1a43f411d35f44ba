package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/mg/internal/application/game"
	"github.com/younwookim/mg/internal/application/replay"
	"github.com/younwookim/mg/internal/application/scene/playing"
	"github.com/younwookim/mg/internal/application/system"
	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/ecs"
	"github.com/younwookim/mg/internal/infrastructure/assets"
	"github.com/younwookim/mg/internal/infrastructure/config"
	"github.com/younwookim/mg/internal/infrastructure/logger"
)

func main() {
	configDir := flag.String("config", "", "Directory holding game.yaml (default: embedded; enables hot reload)")
	assetsDir := flag.String("assets", "", "Asset root directory (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input from file instead of the devices")
	dumpFlag := flag.String("dump", "", "Write the level to file on exit")
	debugFlag := flag.Bool("debug", false, "Start with the debug overlay and editor on")
	levelFlag := flag.String("level", "", "Level to play: "+strings.Join(entity.LevelNames(), ", "))
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	// Load configuration
	loader, err := configLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debugFlag {
		cfg.Debug.Enabled = true
	}

	// Input source
	opts := playing.Options{
		Quit:       system.QuitRequested,
		RecordPath: *recordFlag,
		DumpPath:   *dumpFlag,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data)
		if *levelFlag == "" {
			// Play back on the layout the session was recorded on
			cfg.Stage.Level = replayer.Level()
			cfg.Stage.Rows = replayer.Rows()
		}
		opts.Input = replayer
		log.WithFields(logrus.Fields{
			"file":   *replayFlag,
			"level":  replayer.Level(),
			"frames": replayer.TotalFrames(),
		}).Info("replaying")
	}
	if *levelFlag != "" {
		cfg.Stage.Level = *levelFlag
		cfg.Stage.Rows = nil
	}

	// Build the world
	grid, err := system.LoadStage(&cfg.Stage, cfg.Physics.TileSize)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}
	world := ecs.NewWorld(grid, cfg)
	if err := world.Populate(cfg); err != nil {
		log.Fatalf("Failed to spawn bodies: %v", err)
	}

	// Textures
	assetFS, err := assetRoot(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	opts.Textures, err = playing.LoadTextures(assets.NewLoader(assetFS), &cfg.Assets)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	// Hot reload when reading config from disk
	if dir, ok := loader.WatchDir(); ok {
		watcher, err := config.NewWatcher(dir)
		if err != nil {
			log.WithError(err).Warn("config hot reload disabled")
		} else {
			opts.Config = loader
			opts.Watcher = watcher
			log.WithField("dir", dir).Info("watching config")
		}
	}

	scene := playing.New(cfg, world, opts)
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(cfg.Display.TickDuration())

	// Set up ebiten
	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
	log.Info("bye")
}

func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func assetRoot(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(assetFS, "assets")
}
