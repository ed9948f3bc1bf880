package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

// sessionScreen is what an SSH session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is one SSH client's whole visit: it moves between the variant
// menu, a running game and the scoreboard inside a single Bubble Tea program.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	renderer *ScreenRenderer
	logger   *log.Logger

	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	game       registry.Game
	gameModel  *Model
	quitting   bool
}

// NewSessionModel creates a session that opens on the variant menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, renderer *ScreenRenderer, logger *log.Logger) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		renderer: renderer,
		logger:   logger,
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.store, "", m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

// startGame creates the chosen variant with a fresh seed.
func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		// The menu only lists registered variants.
		m.logger.Error("could not create game", "user", m.username, "variant", gameID, "error", err)
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}

	m.config = m.menu.Config()
	m.config.Seed = time.Now().UnixNano()

	gameModel := NewModel(game, m.store, m.config).WithRenderer(m.renderer).WithBackToMenu()
	m.game = game
	m.gameModel = &gameModel
	m.screen = screenGame
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(Model); ok {
		m.gameModel = &gameModel
	}

	if !m.gameModel.BackToMenu() && !m.gameModel.IsQuitting() {
		return m, cmd
	}

	m.endGame()
	if m.quitting {
		return m, tea.Quit
	}
	return m.toMenu()
}

// updateScores runs the scoreboard until it asks to leave. Its own tea.Quit
// is dropped since only the session may end the program.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// endGame closes the running game and reports a failed save.
func (m *SessionModel) endGame() {
	if err := m.gameModel.SaveErr(); err != nil {
		m.logger.Warn("could not save run", "user", m.username, "variant", m.game.ID(), "error", err)
	}
	if err := m.game.Close(); err != nil {
		m.logger.Warn("could not close game", "user", m.username, "error", err)
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
	}
	m.gameModel = nil
	m.game = nil
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
