package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/heli-arcade/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.heli/configs/heli.yaml or ./configs/heli.yaml to customize the game.

With --resolved, prints the configuration the play command would use
after searching --config, the user directory and ./configs.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration and its source")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.LoadHeli(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(out)
	return err
}
