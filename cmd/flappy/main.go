// flappy is a Flappy Bird-style arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set ticks per second (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load tunables from a YAML file
//	--debug          - Draw collision rectangles
//	--verbose        - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDebug   bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through scrolling pipes",
	Long: `Flappy is a single-screen arcade game. Flap to stay in the air, fly
through the gaps between pipes and score a point for every pipe you pass.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --debug
  flappy window --config ./my-flappy.yaml
  flappy config --defaults > ~/.flappy/configs/flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Ticks per second; speeds the whole game up or down (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw collision rectangles")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
