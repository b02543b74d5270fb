package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/charctl/internal/application/game"
	"github.com/younwookim/charctl/internal/application/replay"
	"github.com/younwookim/charctl/internal/application/scene"
	"github.com/younwookim/charctl/internal/application/scene/playing"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	stageName := flag.String("stage", "sandbox", "Stage to load")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	watchFlag := flag.Bool("watch", false, "Reload configs when files in -config change")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	loader := newLoader(*configDir)
	cfg, err := loader.LoadAll(*stageName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{RecordPath: *recordFlag, Logger: logger}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" && data.Stage != cfg.Stage.ID {
			log.Printf("Replay was recorded on stage %q, running on %q", data.Stage, cfg.Stage.ID)
		}
		opts.Replay = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
	}

	scn, err := playing.New(cfg.Control, cfg.Stage, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Control.Display
	g := game.New(scn, display.ScreenWidth, display.ScreenHeight)
	defer g.Close()

	if *watchFlag {
		if *configDir == "" {
			log.Fatalf("-watch needs -config")
		}
		watcher, err := config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()

		r := &reloader{loader: loader, stage: *stageName, logger: logger}
		g.AddTickHook(func(current scene.Scene) error {
			target, ok := current.(reloadTarget)
			if !ok {
				return nil
			}
			for {
				path, ok := watcher.Poll()
				if !ok {
					return nil
				}
				r.apply(target, path)
			}
		})
		log.Printf("Watching %s for changes", *configDir)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Character Control Sandbox")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game stopped: %v", err)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	return config.NewFSLoader(fsys, "configs")
}
