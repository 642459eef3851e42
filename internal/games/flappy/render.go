package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy/internal/core"
)

// Visual characters for terminal rendering
const (
	ActorChar     = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	DebugChar     = '░'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(g.Snapshot(), dst)
}

// RenderSnapshot draws a snapshot onto a character screen, scaling the
// logical field to the screen size. Shapes are always primitives.
func RenderSnapshot(s core.Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.FieldW <= 0 || s.FieldH <= 0 {
		return
	}
	p := projection{
		sx: float64(dst.Width()) / s.FieldW,
		sy: float64(dst.Height()) / s.FieldH,
	}

	for _, o := range s.Obstacles {
		drawObstacle(dst, p, o, s.FieldH)
	}
	drawActor(dst, p, s.Actor)

	if s.Debug {
		drawDebugRect(dst, p, s.Actor.Bounds)
		for _, o := range s.Obstacles {
			drawDebugRect(dst, p, o.Upper)
			drawDebugRect(dst, p, o.Lower)
		}
	}

	// HUD
	dst.DrawTextCentered(p.row(20), fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)

	if s.Phase == core.PhaseGameOver {
		drawGameOver(dst, s.Score)
	}
}

// projection maps field coordinates to screen cells.
type projection struct {
	sx, sy float64
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y * p.sy)) }

// span returns the half-open cell range covering [a, b) on one axis.
func span(a, b, scale float64) (int, int) {
	return int(math.Floor(a * scale)), int(math.Ceil(b * scale))
}

// drawObstacle renders both pipe segments with caps at the gap edges.
func drawObstacle(dst *core.Screen, p projection, o core.ObstacleView, fieldH float64) {
	x0, x1 := span(o.X, o.X+o.Width, p.sx)

	topEnd := p.row(o.GapY)
	dst.FillRect(x0, 0, x1, topEnd, PipeChar, core.ColorGreen)
	if topEnd > 0 {
		dst.FillRect(x0, topEnd-1, x1, topEnd, PipeCapTop, core.ColorBrightGreen)
	}

	bottomStart, bottomEnd := span(o.GapY+o.GapHeight, fieldH, p.sy)
	dst.FillRect(x0, bottomStart, x1, bottomEnd, PipeChar, core.ColorGreen)
	if bottomStart < bottomEnd {
		dst.FillRect(x0, bottomStart, x1, bottomStart+1, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawActor fills the cells whose centers lie inside the actor's ellipse.
// The center cell is always drawn.
func drawActor(dst *core.Screen, p projection, a core.ActorView) {
	rx := a.Radius * p.sx
	ry := a.Radius * p.sy
	cx := a.X * p.sx
	cy := a.Y * p.sy

	x0, x1 := span(a.X-a.Radius, a.X+a.Radius, p.sx)
	y0, y1 := span(a.Y-a.Radius, a.Y+a.Radius, p.sy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				dst.SetWithColor(x, y, ActorChar, core.ColorYellow)
			}
		}
	}
	dst.SetWithColor(p.col(a.X), p.row(a.Y), ActorChar, core.ColorYellow)
}

// drawDebugRect outlines a collision rectangle.
func drawDebugRect(dst *core.Screen, p projection, r core.Rect) {
	if r.Empty() {
		return
	}
	x0, x1 := span(r.X, r.Right(), p.sx)
	y0, y1 := span(r.Y, r.Bottom(), p.sy)
	for x := x0; x < x1; x++ {
		dst.SetWithColor(x, y0, DebugChar, core.ColorRed)
		dst.SetWithColor(x, y1-1, DebugChar, core.ColorRed)
	}
	for y := y0; y < y1; y++ {
		dst.SetWithColor(x0, y, DebugChar, core.ColorRed)
		dst.SetWithColor(x1-1, y, DebugChar, core.ColorRed)
	}
}

// drawGameOver draws the final score box in the center of the screen.
func drawGameOver(dst *core.Screen, score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", score),
		"Press SPACE to restart",
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxX+boxW, boxY+boxH, core.ColorWhite)

	colors := []core.Color{core.ColorRed, core.ColorBrightWhite, core.ColorWhite}
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i*2, l, colors[i])
	}
}
