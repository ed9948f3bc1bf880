package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crawl/internal/audio"
	"github.com/vovakirdan/crawl/internal/config"
	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/games/crawl"
	"github.com/vovakirdan/crawl/internal/platform/tui"
	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant (default: crawl).

Controls:
  A/D, Left/Right  - Strafe
  Space/Enter/R    - Start, play again
  P/Esc            - Pause
  F                - Toggle FPS counter
  Ctrl+S           - Screenshot to ~/.crawl/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at base speed
  normal - Start 30% faster
  hard   - Start 70% faster
  fixed  - No acceleration, speed stays where it starts

Examples:
  crawl play
  crawl play crawl_neon
  crawl play crawl --difficulty hard
  crawl play crawl_neon --mute
  crawl play crawl --config ./my-crawl.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'crawl list' to see available variants", gameID)
	}

	configureVariants(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)
	reportAudio()
	return runErr
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Storage is optional, so a failure is
// a warning and the game runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
		return nil
	}
	return store
}

// configureVariants applies the CLI flags to the crawl package before a game
// is created. A broken --config is reported here, before the alt screen,
// since the game itself silently falls back to defaults.
func configureVariants(gameID string) {
	crawl.SetConfigPath(flagConfig)
	crawl.SetDifficultyPreset(flagDifficulty)

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset, using config default", "preset", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.Load(gameID, flagConfig); err != nil {
			logger.Warn("could not load config, using defaults", "path", flagConfig, "error", err)
		}
	}

	if flagMute {
		crawl.SetMusicFactory(nil)
		return
	}
	crawl.SetMusicFactory(newMusic)
}

var (
	audioErrMu sync.Mutex
	audioErr   error
)

// newMusic opens the speaker. Failures fall back to silence and are logged
// once the terminal is restored.
func newMusic(cfg config.CrawlAudio) audio.Music {
	m, err := audio.NewBeepMusic(cfg.BPM, cfg.Volume)
	if err != nil {
		audioErrMu.Lock()
		audioErr = err
		audioErrMu.Unlock()
		return audio.Nop{}
	}
	return m
}

// reportAudio logs an audio failure from the last game, if any.
func reportAudio() {
	audioErrMu.Lock()
	defer audioErrMu.Unlock()

	if audioErr != nil {
		logger.Warn("audio unavailable, played without music", "error", audioErr)
		audioErr = nil
	}
}
