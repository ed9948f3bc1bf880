package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRuns(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		run := storage.Run{GameID: gameID, Score: s, Distance: float64(s), TopSpeed: 0.2, Duration: 65 * time.Second}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestVisibleColumns(t *testing.T) {
	tests := []struct {
		width int
		want  []string
	}{
		{120, []string{"#", "Score", "Distance", "Top speed", "Time", "Date"}},
		{40, []string{"#", "Score", "Top speed", "Time"}},
	}

	for _, tt := range tests {
		cols := visibleColumns(tt.width)
		got := make([]string, len(cols))
		for i, c := range cols {
			got[i] = c.title
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("visibleColumns(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestScoreboardLoadsRunsAndStats(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "scripted", 40, 250, 90)

	m := NewScoreboardModel(store, "scripted", 120, 40)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "250" || rows[0][4] != "1:05" {
		t.Errorf("first row = %v, want rank 1 score 250 time 1:05", rows[0])
	}
	if m.stats == nil || m.stats.RunsCount != 3 || m.stats.HighScore != 250 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"BEST RUNS", "best", "250", "top speed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardNarrowDropsColumns(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "scripted", 10)

	m := NewScoreboardModel(store, "scripted", 120, 40)
	m = updateScoreboard(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})

	if got := len(m.table.Rows()[0]); got != 4 {
		t.Errorf("narrow row has %d cells, want 4", got)
	}
	if got := len(m.table.Columns()); got != 4 {
		t.Errorf("narrow table has %d columns, want 4", got)
	}
}

func TestScoreboardSwitchVariant(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "beta", 5, 6)

	m := NewScoreboardModel(store, "", 120, 40)
	m.variants = []registry.GameInfo{{ID: "alpha", Title: "Alpha"}, {ID: "beta", Title: "Beta"}}
	m.cursor = 0
	m.reload()

	if len(m.runs) != 0 {
		t.Fatalf("alpha runs = %d, want 0", len(m.runs))
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current() != "beta" || len(m.runs) != 2 {
		t.Errorf("after tab: variant=%q runs=%d, want beta with 2", m.current(), len(m.runs))
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current() != "alpha" {
		t.Errorf("tab should wrap to alpha, got %q", m.current())
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.current() != "beta" {
		t.Errorf("left should wrap to beta, got %q", m.current())
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b goes back", runeKey('b'), true, false},
		{"q quits", runeKey('q'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "", 80, 24)
			next, cmd := m.Update(tt.msg)
			sm := next.(ScoreboardModel)

			if sm.IsGoingBack() != tt.back || sm.IsQuitting() != tt.quitting {
				t.Errorf("back=%v quitting=%v, want %v %v", sm.IsGoingBack(), sm.IsQuitting(), tt.back, tt.quitting)
			}
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
		})
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "scripted", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty scoreboard should say no runs are recorded")
	}
}
