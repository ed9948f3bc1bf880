package crawl

import (
	"strings"

	"github.com/vovakirdan/crawl/internal/core"
)

const bannerHeight = 5

// glyphs is a block font covering the letters the titles use.
var glyphs = map[rune][bannerHeight]string{
	'A': {" ███ ", "█   █", "█████", "█   █", "█   █"},
	'C': {" ████", "█    ", "█    ", "█    ", " ████"},
	'E': {"█████", "█    ", "████ ", "█    ", "█████"},
	'G': {" ████", "█    ", "█  ██", "█   █", " ████"},
	'L': {"█    ", "█    ", "█    ", "█    ", "█████"},
	'M': {"█   █", "██ ██", "█ █ █", "█   █", "█   █"},
	'N': {"█   █", "██  █", "█ █ █", "█  ██", "█   █"},
	'O': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'R': {"████ ", "█   █", "████ ", "█  █ ", "█   █"},
	'V': {"█   █", "█   █", "█   █", " █ █ ", "  █  "},
	'W': {"█   █", "█   █", "█ █ █", "██ ██", "█   █"},
	' ': {"   ", "   ", "   ", "   ", "   "},
}

// bannerRows renders text in the block font. ok is false when a letter has
// no glyph.
func bannerRows(text string) (rows [bannerHeight]string, ok bool) {
	var b [bannerHeight]strings.Builder
	for i, r := range strings.ToUpper(text) {
		g, found := glyphs[r]
		if !found {
			return rows, false
		}
		for y := range g {
			if i > 0 {
				b[y].WriteRune(' ')
			}
			b[y].WriteString(g[y])
		}
	}
	for y := range b {
		rows[y] = b[y].String()
	}
	return rows, true
}

// drawBanner draws text in the block font centred at row y, falling back to
// plain text when it does not fit.
func drawBanner(dst *core.Screen, y int, text string, fg core.Color) {
	rows, ok := bannerRows(text)
	if !ok || len([]rune(rows[0])) > dst.Width() {
		dst.DrawTextCentered(y+bannerHeight/2, strings.ToUpper(text), fg)
		return
	}
	for i, row := range rows {
		x := (dst.Width() - len([]rune(row))) / 2
		for j, r := range []rune(row) {
			if r != ' ' {
				dst.Set(x+j, y+i, r, fg)
			}
		}
	}
}
