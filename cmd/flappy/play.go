package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/registry"
)

var flagLog string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The 800x600 field is scaled to the
terminal size.

Controls:
  Space/Up/W - Flap, or restart after game over
  D          - Toggle collision rectangles
  Q/Esc      - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --log /tmp/flappy.log --verbose`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLog, "log", "~/.flappy/flappy.log", "Log file (the terminal is used by the game)")
}

func runPlay(cmd *cobra.Command, args []string) {
	_, rc, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(flagLog); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
	}
	logger := newLogger(logOut, "flappy-tui")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "game", game.ID(), "terminal", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, rc, width, height, logger); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
