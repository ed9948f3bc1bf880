// crawl is an endless 3D runner for the terminal.
//
// Usage:
//
//	crawl list                - List available variants
//	crawl play [variant]      - Play a variant (default: crawl)
//	crawl menu                - Pick variants interactively
//	crawl serve               - Start SSH server for remote play
//	crawl scores <variant>    - Show best runs for a variant
//	crawl config <variant>    - Print a variant's default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 75)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.crawl/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawl/internal/audio"

	// Import variants to register them
	_ "github.com/vovakirdan/crawl/internal/games/crawl"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "crawl",
})

func main() {
	err := rootCmd.Execute()
	audio.Shutdown()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl - dodge cubes on an endless floor",
	Long: `Crawl is an endless 3D runner drawn in your terminal.

Strafe between lanes while the floor speeds up underneath you.
Touch a cube and the run is over.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print a default config

Examples:
  crawl play
  crawl play crawl_neon --difficulty hard
  crawl menu
  crawl serve --ssh :2222
  crawl scores crawl_neon`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 75, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crawl/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
