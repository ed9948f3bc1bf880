package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/storage"
)

// scriptedGame plays back a fixed sequence of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	step   int
	resets int
	inputs []core.InputFrame
	closed bool
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Description() string      { return "test double" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState    { return g.current() }

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 1, "world", core.ColorDefault)
}

func (g *scriptedGame) Close() error {
	g.closed = true
	return nil
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if g.step < len(g.states)-1 {
		g.step++
	}
	return core.StepResult{State: g.current()}
}

func (g *scriptedGame) current() core.GameState {
	if len(g.states) == 0 {
		return core.GameState{}
	}
	return g.states[g.step]
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(g *scriptedGame, store *storage.Store) (Model, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 1})
	m.now = clock.now
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelHeldMovement(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{Playing: true}}}
	m, clock := newTestModel(g, nil)

	m = update(t, m, runeKey('a'))
	m = update(t, m, TickMsg{})
	clock.t = clock.t.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg{})
	clock.t = clock.t.Add(100 * time.Millisecond)
	update(t, m, TickMsg{})

	if len(g.inputs) != 3 {
		t.Fatalf("steps = %d, want 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].IsDown(core.ActionLeft) {
		t.Error("first tick should see the press")
	}
	if g.inputs[1].Has(core.ActionLeft) || !g.inputs[1].IsDown(core.ActionLeft) {
		t.Error("second tick should see left held, not pressed")
	}
	if g.inputs[2].IsDown(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	over := core.GameState{GameOver: true, Score: 42, Distance: 42.5, TopSpeed: 0.3}
	g := &scriptedGame{states: []core.GameState{
		{}, // first Step moves off this
		{Playing: true},
		{Playing: true, Paused: true},
		{Playing: true},
		{Playing: true},
		over,
	}}
	m, _ := newTestModel(g, store)

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.SaveErr() != nil {
		t.Fatalf("SaveErr() = %v", m.SaveErr())
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs saved = %d, want 1", len(runs))
	}
	if runs[0].Score != 42 || runs[0].Distance != 42.5 || runs[0].TopSpeed != 0.3 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{states: []core.GameState{{}, {Playing: true}, {GameOver: true}}}
	m, _ := newTestModel(g, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	if high, _ := store.HighScore("scripted"); high != 0 {
		t.Errorf("zero-score run saved, high = %d", high)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{states: []core.GameState{{Playing: true}}}
	m, _ := newTestModel(g, nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1 (resize must not reset)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(g, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model not quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackToMenu(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		state   core.GameState
		want    bool
	}{
		{"disabled", false, core.GameState{GameOver: true}, false},
		{"while playing", true, core.GameState{Playing: true}, false},
		{"while paused", true, core.GameState{Playing: true, Paused: true}, true},
		{"after game over", true, core.GameState{GameOver: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &scriptedGame{states: []core.GameState{tt.state}}
			m, _ := newTestModel(g, nil)
			if tt.enabled {
				m = m.WithBackToMenu()
			}
			m = update(t, m, TickMsg{})
			m = update(t, m, runeKey('b'))
			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.want)
			}
		})
	}
}

func TestModelFPSOverlay(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(g, nil)

	if strings.Contains(m.View(), "FPS") {
		t.Fatal("FPS shown before toggling")
	}
	m = update(t, m, runeKey('f'))
	if !strings.Contains(m.View(), "FPS") {
		t.Error("FPS not shown after toggling")
	}
	if !strings.Contains(m.View(), "world") {
		t.Error("game not rendered")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	g := &scriptedGame{}
	m, _ := newTestModel(g, nil)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".crawl", "screenshots") {
		t.Errorf("screenshot saved to %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "scripted_") {
		t.Errorf("screenshot name = %s", filepath.Base(path))
	}
}
