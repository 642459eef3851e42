package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/window"
	"github.com/vovakirdan/flappy/internal/registry"
	"github.com/vovakirdan/flappy/internal/sprite"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with image sprites.

Sprites are read from <assets>/images/<id>.png: FlappyRed,
pipe-upright, pipe-upside-down and BackgroundFlappy. Missing images are
drawn as shapes instead.

Controls:
  Space/Up/W/Click - Flap, or restart after game over
  D                - Toggle collision rectangles
  Q/Esc            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Assets directory (default: from config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, rc, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, "flappy-window")

	game, err := registry.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game.Reset(rc)

	dir := cfg.Assets.Dir
	if flagAssets != "" {
		dir = flagAssets
	}
	sprites := sprite.LoadSet(sprite.Dir{Root: expandHome(dir)},
		int(cfg.Actor.VisualRadius*2), int(cfg.Obstacles.Width),
		rc.FieldW, rc.FieldH, logger)

	logger.Info("starting", "game", game.ID(), "seed", rc.Seed, "assets", dir)
	if err := window.Run(game, sprites, rc, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
