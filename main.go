package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"interstellar/internal/applog"
	"interstellar/internal/config"
)

const WindowTitle = "Interstellar Tech Support"

func main() {
	configPath := flag.String("config", "", "config file (default $HOME/.config/interstellar/config.yaml)")
	flag.Parse()

	// 1. Configuration and logging
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: applog.ParseLevel(cfg.LogLevel),
	})))

	// 2. Window Setup
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*cfg.Screen.Scale), int(float64(cfg.Screen.Height)*cfg.Screen.Scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FrameRate)

	// 3. Initialize Game
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	applog.Logger().Info("desktop ready", "width", cfg.Screen.Width, "height", cfg.Screen.Height, "tps", cfg.FrameRate)

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
