package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the default gameplay configuration as YAML.

Save it and pass it back with --config to tune the game:

  invaders config > my-invaders.yaml
  invaders play --config my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}
