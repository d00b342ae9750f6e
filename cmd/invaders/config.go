package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the search
for config files and the defaults have been applied.

The output is a complete config file and can be saved as
~/.invaders/configs/invaders.yaml (or .toml) and edited.

Examples:
  invaders config
  invaders config --format toml > ~/.invaders/configs/invaders.toml
  invaders config --config ./custom.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, cfg, flagFormat)
}
