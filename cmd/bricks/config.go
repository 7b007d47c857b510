package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in default config as YAML.

Save it to ~/.bricks/configs/breakout.yaml or ./configs/breakout.yaml
and edit the values you want to change. Keys left out keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
