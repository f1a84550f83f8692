package rebatedor

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rebatedor/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	EdgeChar   = '▓'
	PaddleChar = '='
	BallChar   = '●'
)

// Render draws the scene through the camera onto the cell buffer, then the
// HUD and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := g.world
	for _, e := range w.Edges {
		g.drawObject(dst, e, EdgeChar)
	}
	for _, row := range w.Grid.Bricks {
		for _, b := range row {
			if b.Visible {
				g.drawObject(dst, &b.GameObject, BrickChar)
			}
		}
	}
	for _, s := range w.Paddle.Segments {
		g.drawObject(dst, s, PaddleChar)
	}
	if w.Ball.Visible {
		g.drawBall(dst)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// drawObject fills the cells covered by the object's bounds. Every object
// covers at least one cell.
func (g *Game) drawObject(dst *core.Screen, o *GameObject, glyph rune) {
	dst.DrawRect(g.cellRect(dst, o.Bounds), glyph, o.Color)
}

// drawBall puts a single glyph at the ball center so it reads as round.
func (g *Game) drawBall(dst *core.Screen) {
	b := g.world.Ball
	x, y := g.camera.Project(b.Position, float64(dst.Width()), float64(dst.Height()))
	dst.SetColored(int(math.Floor(x)), int(math.Floor(y)), BallChar, b.Color)
}

// cellRect projects a box onto the screen grid.
func (g *Game) cellRect(dst *core.Screen, box core.Box) core.Rect {
	w, h := float64(dst.Width()), float64(dst.Height())
	x0, y0 := g.camera.Project(box.Min, w, h)
	x1, y1 := g.camera.Project(box.Max, w, h)

	left := int(math.Round(x0))
	top := int(math.Round(y0))
	right := int(math.Round(x1))
	bottom := int(math.Round(y1))

	return core.NewRect(left, top, core.Max(right-left, 1), core.Max(bottom-top, 1))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score()))

	bricks := fmt.Sprintf("Bricks: %d/%d", g.world.Grid.AliveCount(), g.world.Grid.Total())
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case core.PhaseIdle:
		g.drawCenteredBox(dst, "REBATEDOR", "Click to start")

	case core.PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press SPACE to resume")

	case core.PhaseOver:
		if g.won {
			g.drawCenteredBox(dst, "CLEARED!", fmt.Sprintf("Score: %d  |  Click or R to play again", g.Score()))
		} else {
			g.drawCenteredBox(dst, "BALL LOST", fmt.Sprintf("Score: %d  |  Click or R to play again", g.Score()))
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
