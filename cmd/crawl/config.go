package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawl/internal/config"
	"github.com/vovakirdan/crawl/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print a variant's default config",
	Long: `Print the embedded default YAML for a variant. Save it as
~/.crawl/configs/<variant>.yaml or pass it with --config to customize play.

Examples:
  crawl config crawl > ~/.crawl/configs/crawl.yaml
  crawl config crawl_neon`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'crawl list' to see available variants", gameID)
	}

	_, err := os.Stdout.Write(config.GetDefaultYAML(gameID))
	return err
}
