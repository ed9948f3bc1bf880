package crawl

import (
	"fmt"

	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/entity"
	"github.com/vovakirdan/crawl/internal/hue"
	"github.com/vovakirdan/crawl/internal/scene"
)

// Floor dimensions, centred under the player.
const (
	floorWidth = 10
	floorDepth = 500
)

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	switch g.phase {
	case PhaseIntro:
		g.renderIntro(dst)
	case PhaseMenu:
		g.renderMenu(dst)
	case PhasePlaying:
		g.renderWorld(dst)
		if g.paused {
			drawPanel(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	dst.SetBackground(core.ColorBlack)
	dst.Clear()

	y := dst.Height()/2 - bannerHeight/2 - 1
	drawBanner(dst, y, g.title, core.ColorRayWhite)
	dst.DrawTextCentered(y+bannerHeight+1, "a game about cubes", core.ColorGray)

	// Loading bar fills over the intro.
	total := g.introTicks()
	if total <= 0 {
		return
	}
	barW := core.Min(40, dst.Width()-4)
	filled := barW * core.Min(g.phaseTicks, total) / total
	barX := (dst.Width() - barW) / 2
	dst.DrawHLine(barX, dst.Height()-3, barW, '─', core.ColorDarkGray)
	dst.DrawHLine(barX, dst.Height()-3, filled, '━', core.ColorRayWhite)
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.SetBackground(core.ColorRayWhite)
	dst.Clear()

	y := dst.Height()/2 - bannerHeight/2 - 2
	drawBanner(dst, y, g.title, core.ColorViolet)
	dst.DrawTextCentered(y+bannerHeight+1, "PRESS SPACE TO START", core.ColorGray)
	dst.DrawTextCentered(dst.Height()-2, "A/D or ←/→ move  P pause  F fps  Q quit", core.ColorGray)
}

func (g *Game) renderWorld(dst *core.Screen) {
	dst.SetBackground(g.background)
	dst.Clear()

	sc := scene.Begin(dst, g.camera)
	sc.DrawPlane(entity.Vec3{Y: -1, Z: g.player.Position.Z}, floorWidth, floorDepth, core.ColorRayWhite)

	wires := g.cfg.Style.Wires
	for i := g.obstacles.Len() - 1; i >= 0; i-- {
		g.obstacles.At(i).Draw(sc, wires, core.ColorBlack)
	}
	g.player.Draw(sc, wires, core.ColorBlack)

	dst.DrawText(1, dst.Height()-2, fmt.Sprintf("score: %d", int(g.score)), g.hudColor())
	if g.cfg.Style.HueCycle {
		speed := fmt.Sprintf("speed: %.1f", g.speed)
		dst.DrawText(dst.Width()-len(speed)-1, dst.Height()-2, speed, g.hudColor())
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	dst.SetBackground(core.ColorRayWhite)
	dst.Clear()

	y := dst.Height()/2 - bannerHeight/2 - 2
	drawBanner(dst, y, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(y+bannerHeight+1, "PRESS SPACE TO PLAY AGAIN", core.ColorGray)
	dst.DrawText(1, dst.Height()-2, fmt.Sprintf("score: %d", int(g.score)), core.ColorBlue)
}

// hudColor follows the hue in the neon variant.
func (g *Game) hudColor() core.Color {
	if !g.cfg.Style.HueCycle {
		return core.ColorBlue
	}
	return hue.Color(g.hue.Value(), g.cfg.Style.Saturation, g.cfg.Style.Value)
}

// drawPanel draws a boxed two-line message in the center of the screen on its
// own background so it stays readable over the scene.
func drawPanel(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := dst.Bounds().Centered(boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' ', Bg: core.ColorRayWhite})
		}
	}
	dst.DrawBox(box, core.ColorDarkGray)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorDarkGray)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorGray)
}
