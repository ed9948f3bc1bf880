package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/crawl/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	// An Ascii profile drops colours, so the output is the raw text.
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.Ascii)
	r := NewScreenRenderer(lg)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: 'c', Fg: core.ColorRed, Bg: core.ColorBlue})
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	if got, want := r.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.TrueColor)
	r := NewScreenRenderer(lg)

	s := core.NewScreen(10, 1)
	s.DrawText(0, 0, "aaaa", core.ColorRed)
	s.SetCell(4, 0, core.Cell{Rune: 'b', Fg: core.ColorRed, Bg: core.ColorBlue})
	s.SetCell(5, 0, core.Cell{Rune: 'b', Fg: core.ColorRed, Bg: core.ColorBlue})

	out := r.Render(s)
	if out == s.String() {
		t.Fatal("expected styled output under a true colour profile")
	}
	if len(r.styles) != 2 {
		t.Errorf("cached styles = %d, want 2 (red, red on blue)", len(r.styles))
	}

	r.Render(s)
	if len(r.styles) != 2 {
		t.Errorf("styles not reused: %d cached", len(r.styles))
	}
}
