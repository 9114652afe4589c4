package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
	"github.com/vovakirdan/heli-arcade/internal/games/heli"
	"github.com/vovakirdan/heli-arcade/internal/platform/tui"
	"github.com/vovakirdan/heli-arcade/internal/registry"
)

var (
	flagBackend string
	flagConfig  string
	flagAssets  string
	flagWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the selected display backend.

Controls:
  Space/Up/W/Mouse - Flap
  P/Esc            - Pause
  Q/Ctrl+C         - Quit (or close the window)

Backends:
  tui     - Render in the terminal (default)
  window  - Open a desktop window with sprites; needs the asset directory

Examples:
  heli play
  heli play --backend window --assets ./assets
  heli play --config ./my-heli.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them
// so that running heli without a subcommand plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", tui.BackendID, "Display backend (see 'heli backends')")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change; applied at the next reset")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q; run 'heli backends' to see available backends", flagBackend)
	}
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadHeli(flagConfig)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	logger.Debug("config loaded", "source", source)

	// Get terminal size for the cell backend
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Debug("starting", "backend", backend.ID(), "fps", rc.TickRate)

	game := heli.New(cfg, core.NewMonotonicClock(), logger)

	if flagWatch {
		if source == config.EmbeddedSource {
			logger.Warn("--watch ignored: no config file in use")
		} else {
			w, err := config.NewWatcher(source)
			if err != nil {
				return err
			}
			defer w.Close()
			game.WatchConfig(w.Updates())
			logger.Info("watching config", "path", source)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return backend.Run(ctx, game, registry.RunOptions{
		Runtime:   rc,
		Assets:    cfg.Assets,
		Logger:    logger,
		LogOutput: os.Stderr,
	})
}
