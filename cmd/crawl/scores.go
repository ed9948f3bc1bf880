package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crawl/internal/platform/tui"
	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best runs",
	Long: `Display the best runs for a variant, or a summary of every variant when
none is given.

Examples:
  crawl scores
  crawl scores crawl
  crawl scores crawl_neon --limit 20
  crawl scores crawl --tui
  crawl scores crawl --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 'crawl list' to see available variants", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	case gameID == "":
		return printSummary(store)
	case flagScoresClear:
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("cleared runs", "variant", gameID)
		return nil
	}

	return printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crawl play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-9s  %-6s  %s\n", "Rank", "Score", "Distance", "Top speed", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-9s  %-6s  %s\n", "----", "-----", "--------", "---------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-9.0f  %-9.2f  %-6s  %s\n",
			i+1, r.Score, r.Distance, r.TopSpeed, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Played: %s\n",
		stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalPlayTime)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-10s  %s\n", "Variant", "Runs", "Best", "Average", "Distance", "Last played")
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-10s  %s\n", "-------", "----", "----", "-------", "--------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-12s  %-6d  %-8d  %-8.0f  %-10.0f  %s\n",
			id, st.RunsCount, st.HighScore, st.AvgScore, st.TotalDistance, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
