package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crawl/internal/core"
)

// cellStyle is the colour pair a run of cells shares.
type cellStyle struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are built once per colour pair and cached.
type ScreenRenderer struct {
	lg *lipgloss.Renderer

	mu     sync.Mutex
	styles map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to a lipgloss renderer, which
// decides the colour profile. nil means the process default (stdout).
func NewScreenRenderer(lg *lipgloss.Renderer) *ScreenRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		lg:     lg,
		styles: make(map[cellStyle]lipgloss.Style),
	}
}

func (r *ScreenRenderer) style(cs cellStyle) lipgloss.Style {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.styles[cs]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if !cs.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if !cs.bg.IsDefault() {
		st = st.Background(lipgloss.Color(cs.bg))
	}
	r.styles[cs] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			cs := cellStyle{fg: first.Fg, bg: first.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != cs.fg || cell.Bg != cs.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if cs.fg.IsDefault() && cs.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(cs).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultRenderer = sync.OnceValue(func() *ScreenRenderer {
	return NewScreenRenderer(nil)
})

// RenderScreen renders with the process-wide renderer.
func RenderScreen(s *core.Screen) string {
	return defaultRenderer().Render(s)
}
