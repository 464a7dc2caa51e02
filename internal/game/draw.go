package game

import (
	"fmt"

	"chosenoffset.com/raybounce/internal/render"
)

// originRadius is the size of the marker drawn at the light source
const originRadius = 4

const (
	hudMargin     = 8
	hudLineHeight = 16
)

// Draw renders the last result to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Palette.Background)

	if g.Result != nil {
		g.drawSegments(screen)
	}
	g.Renderer.FillCircle(screen, float32(g.Pointer.Pos.X), float32(g.Pointer.Pos.Y), originRadius, g.Palette.Origin)

	if g.ShowHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawSegments(screen render.Image) {
	for _, seg := range g.Result.Segments {
		g.Renderer.StrokeLine(screen,
			float32(seg.Start.X), float32(seg.Start.Y),
			float32(seg.End.X), float32(seg.End.Y),
			float32(seg.Width), g.Palette.ColorFor(seg))
	}
}

func (g *Game) drawHUD(screen render.Image) {
	density := g.Driver.Snapshot().Density
	lines := []string{
		"Hold mouse button to increase density",
		"Space: random map   H: hide help   Esc: quit",
		fmt.Sprintf("Density: %.2f deg", density),
	}
	if g.Result != nil {
		lines = append(lines, fmt.Sprintf("Rays: %d  Hits: %d  Fallbacks: %d", g.Result.Rays, g.Result.Hits, g.Result.Fallbacks))
	}

	y := hudMargin
	for _, line := range lines {
		g.Renderer.DrawText(screen, line, hudMargin, y)
		y += hudLineHeight
	}

	// Messages stack upward from the bottom edge, newest lowest
	_, h := screen.Size()
	y = h - hudMargin - hudLineHeight*len(g.Messages)
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, hudMargin, y)
		y += hudLineHeight
	}
}
