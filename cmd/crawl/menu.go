package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawl/internal/platform/tui"
	"github.com/vovakirdan/crawl/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start crawl in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to play a variant, Tab for the
scoreboard. After a game ends, you return to the menu to pick again.

Controls:
  Up/Down/w/s  - Navigate menu
  Enter/Space  - Play variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  crawl menu
  crawl menu --fps 30 --mute
  crawl menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		configureVariants(menuResult.GameID)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "variant", menuResult.GameID, "error", err)
			continue
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return err
		}
		reportAudio()
	}
}
