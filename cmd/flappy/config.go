package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play and window do and prints
it as YAML. Redirect the output to ~/.flappy/configs/flappy.yaml to start a
custom config.

With --defaults the built-in defaults file is printed as shipped, comments
included, and no config files are read.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead of the effective config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if err := writeConfig(os.Stdout, flagDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig prints the embedded defaults or the effective config to w.
func writeConfig(w io.Writer, defaults bool) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
