package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rooftops/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it, edit what you want to change, and pass it with --config, or place it
at ~/.rooftops/configs/rooftops.yaml to make it the default.

Examples:
  rooftops config > my-rooftops.yaml
  rooftops play --config my-rooftops.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
