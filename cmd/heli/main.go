// heli is a helicopter arcade game: fly through the gaps of scrolling pipes
// in the terminal or in a desktop window.
//
// Usage:
//
//	heli                    - Play with the default backend
//	heli play               - Play a game
//	heli backends           - List available display backends
//	heli config             - Print the built-in configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacle layouts
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/heli-arcade/internal/platform/tui"
	_ "github.com/vovakirdan/heli-arcade/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "heli",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("heli failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heli",
	Short: "Helicopter arcade - fly through the gaps",
	Long: `A single-screen arcade game. The helicopter falls under gravity and
rises when you flap; fly through the gaps between the pipes.

Available commands:
  play      - Play the game (default)
  backends  - Show the available display backends
  config    - Print the built-in or resolved configuration

Examples:
  heli
  heli play --backend window --assets ./assets
  heli play --config ./my-heli.yaml --watch
  heli --seed 42 play`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}
