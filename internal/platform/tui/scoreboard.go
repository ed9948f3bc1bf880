package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/storage"
)

const (
	maxRuns       = 100 // runs loaded per variant
	statCardWidth = 11  // inner width of one stat card
	chromeHeight  = 14  // title, tabs, stat cards, borders and help
)

// runColumn is one scoreboard column. Columns marked wide are dropped first
// when the terminal cannot fit the full set.
type runColumn struct {
	title string
	width int
	wide  bool
	cell  func(rank int, r storage.Run) string
}

var runColumns = []runColumn{
	{"#", 4, false, func(rank int, _ storage.Run) string { return fmt.Sprintf("%d", rank) }},
	{"Score", 8, false, func(_ int, r storage.Run) string { return fmt.Sprintf("%d", r.Score) }},
	{"Distance", 9, true, func(_ int, r storage.Run) string { return fmt.Sprintf("%.0f", r.Distance) }},
	{"Top speed", 9, false, func(_ int, r storage.Run) string { return fmt.Sprintf("%.2f", r.TopSpeed) }},
	{"Time", 6, false, func(_ int, r storage.Run) string { return formatDuration(r.Duration) }},
	{"Date", 12, true, func(_ int, r storage.Run) string { return r.CreatedAt.Format("Jan 02 15:04") }},
}

// visibleColumns returns the columns that fit in width cells.
func visibleColumns(width int) []runColumn {
	total := 0
	for _, c := range runColumns {
		total += c.width + 2
	}
	if total+4 <= width {
		return runColumns
	}

	cols := make([]runColumn, 0, len(runColumns))
	for _, c := range runColumns {
		if !c.wide {
			cols = append(cols, c)
		}
	}
	return cols
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of one variant under a header of its
// lifetime stats.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	cursor    int
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. A non-empty gameID
// preselects that variant.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == gameID {
			m.cursor = i
		}
	}

	m.table = m.newTable()
	m.reload()
	return m
}

// current returns the selected variant's ID, or "" when none is registered.
func (m ScoreboardModel) current() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.cursor].ID
}

func (m ScoreboardModel) newTable() table.Model {
	cols := visibleColumns(m.width)
	columns := make([]table.Column, len(cols))
	for i, c := range cols {
		columns[i] = table.Column{Title: c.title, Width: c.width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches runs and stats for the selected variant.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.stats = nil
	if id := m.current(); id != "" && m.store != nil {
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	cols := visibleColumns(m.width)
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := make(table.Row, len(cols))
		for j, c := range cols {
			row[j] = c.cell(i+1, r)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.reload()
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Width(statCardWidth).Align(lipgloss.Center)
	sbLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	sections := []string{
		centerText(sbTitleStyle.Render("BEST RUNS"), m.width),
		centerText(m.tabs(), m.width),
		centerText(m.statsHeader(), m.width),
	}
	if len(m.runs) == 0 {
		sections = append(sections, centerText(sbEmptyStyle.Render("No runs recorded yet."), m.width))
	} else {
		sections = append(sections, centerText(sbBoxStyle.Render(m.table.View()), m.width))
	}
	sections = append(sections, sbLabelStyle.Render(m.help.View(m.keys)))

	return strings.Join(sections, "\n")
}

// tabs renders one tab per variant with the selected one highlighted.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.cursor {
			tabs[i] = sbActiveTab.Render(v.Title)
		} else {
			tabs[i] = sbTabStyle.Render(v.Title)
		}
	}
	return strings.Join(tabs, " ")
}

// statsHeader renders the variant's lifetime stats as a row of cards, or a
// single line when the cards do not fit.
func (m ScoreboardModel) statsHeader() string {
	st := m.stats
	if st == nil || st.RunsCount == 0 {
		return ""
	}

	cards := []struct{ label, value string }{
		{"best", fmt.Sprintf("%d", st.HighScore)},
		{"runs", fmt.Sprintf("%d", st.RunsCount)},
		{"average", fmt.Sprintf("%.0f", st.AvgScore)},
		{"top speed", fmt.Sprintf("%.2f", st.BestSpeed)},
		{"distance", fmt.Sprintf("%.0f", st.TotalDistance)},
		{"played", formatDuration(st.TotalPlayTime)},
	}

	if len(cards)*(statCardWidth+2) > m.width {
		parts := make([]string, len(cards))
		for i, c := range cards {
			parts[i] = c.label + " " + c.value
		}
		return sbLabelStyle.Render(strings.Join(parts, "  "))
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = sbCardStyle.Render(sbLabelStyle.Render(c.label) + "\n" + c.value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
