package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	hold     *HoldTracker
	now      func() time.Time

	input     core.InputFrame
	gameState core.GameState
	runTicks  int // unpaused ticks in the current run

	showFPS    bool
	fps        float64
	fpsFrames  int
	fpsSince   time.Time
	quitting   bool
	backToMenu bool
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: defaultRenderer(),
		store:    store,
		config:   cfg,
		keys:     DefaultKeyMap(),
		hold:     NewHoldTracker(HoldWindow),
		now:      time.Now,
		input:    core.NewInputFrame(),
	}
}

// WithRenderer returns a copy drawing through r, used for SSH sessions whose
// colour profile differs from the server's.
func (m Model) WithRenderer(r *ScreenRenderer) Model {
	m.renderer = r
	return m
}

// WithBackToMenu returns a copy where B leaves the game while paused or
// after a game over.
func (m Model) WithBackToMenu() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
	case core.ActionToggleFPS:
		m.showFPS = !m.showFPS
	case core.ActionLeft, core.ActionRight:
		m.input.Set(action)
		m.hold.Press(action, m.now())
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize only resizes the buffer; the world does not depend on it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	now := m.now()
	m.hold.Apply(&m.input, now)
	m.sampleFPS(now)

	prev := m.gameState
	m.gameState = m.game.Step(m.input).State

	if m.gameState.Playing && !prev.Playing {
		m.runTicks = 0
	}
	if m.gameState.Playing && !m.gameState.Paused {
		m.runTicks++
	}

	// Save the run once, on the tick it ends.
	if m.gameState.GameOver && !prev.GameOver {
		m.saveRun()
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage is optional; a failure is kept
// for the caller to report and the game continues.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Distance: m.gameState.Distance,
		TopSpeed: m.gameState.TopSpeed,
		Duration: time.Duration(m.runTicks) * time.Second / time.Duration(m.config.TickRate),
	})
	if err != nil {
		m.saveErr = err
	}
}

// sampleFPS counts ticks and refreshes the FPS figure once a second.
func (m *Model) sampleFPS(now time.Time) {
	if m.fpsSince.IsZero() {
		m.fpsSince = now
	}
	m.fpsFrames++
	if elapsed := now.Sub(m.fpsSince); elapsed >= time.Second {
		m.fps = float64(m.fpsFrames) / elapsed.Seconds()
		m.fpsFrames = 0
		m.fpsSince = now
	}
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".crawl", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.showFPS {
		m.screen.DrawText(1, 0, fmt.Sprintf("%d FPS", int(m.fps+0.5)), core.ColorLime)
	}
	return m.renderer.Render(m.screen)
}

// SaveErr returns the last error from saving a run, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and closes the game when it
// exits. A run that could not be saved is logged as a warning once the
// terminal is restored.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("could not close game", "game", game.ID(), "error", err)
		}
	}()

	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.SaveErr() != nil {
		logger.Warn("could not save run", "game", game.ID(), "error", m.SaveErr())
	}
	return nil
}
