// Package scene turns a game snapshot into a flat list of things to draw in
// field coordinates. It knows nothing about Ebiten so layout can be tested
// without a display.
package scene

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/flappy/internal/core"
)

// Palette used by the window frontend.
var (
	Sky     = color.RGBA{135, 206, 235, 255}
	Pipe    = color.RGBA{0, 200, 0, 255}
	Outline = color.RGBA{0, 0, 0, 255}
	Bird    = color.RGBA{255, 255, 0, 255}
	Alert   = color.RGBA{255, 0, 0, 255}
	Label   = color.RGBA{255, 255, 255, 255}
	Hitbox  = color.RGBA{255, 0, 0, 255}
)

// Text layout constants.
const (
	TextSize    = 24
	HUDTop      = 20
	LineSpacing = 60
)

// OutlineWidth is the stroke around primitive pipes.
const OutlineWidth = 3

// Segment is one half of an obstacle. With pipe images the cap is drawn at
// the gap edge and the body is stretched to the field edge; without them
// only Full is used.
type Segment struct {
	Full core.Rect
	Cap  core.Rect
	Body core.Rect
}

// Obstacle holds both drawn segments of one obstacle.
type Obstacle struct {
	Upper Segment
	Lower Segment
}

// Actor is the drawn actor, centered on (X, Y).
type Actor struct {
	X, Y     float64
	Radius   float64
	Rotation float64 // Degrees, counter-clockwise
}

// Text is a horizontally centered line whose top edge is at Y.
type Text struct {
	S     string
	X, Y  float64
	Color color.RGBA
}

// Frame is everything drawn for one snapshot, in back-to-front order.
type Frame struct {
	W, H      float64
	Obstacles []Obstacle
	Actor     Actor
	Texts     []Text
	Hitboxes  []core.Rect // Only set with the debug overlay on
}

// Caps are the drawn cap heights of the pipe images. Zero means the
// segment has no image.
type Caps struct {
	Upper, Lower float64
}

// CapHeight returns the cap height of a pipe image scaled to pipeWidth:
// a quarter of the scaled height, truncated to whole pixels.
func CapHeight(imgW, imgH int, pipeWidth float64) float64 {
	if imgW <= 0 || imgH <= 0 {
		return 0
	}
	scaled := int(float64(imgH) * pipeWidth / float64(imgW))
	return float64(scaled / 4)
}

// Build lays out a snapshot.
func Build(s core.Snapshot, caps Caps) Frame {
	f := Frame{
		W:         s.FieldW,
		H:         s.FieldH,
		Obstacles: make([]Obstacle, 0, len(s.Obstacles)),
		Actor: Actor{
			X:        s.Actor.X,
			Y:        s.Actor.Y,
			Radius:   s.Actor.Radius,
			Rotation: s.Actor.Rotation,
		},
	}

	for _, o := range s.Obstacles {
		f.Obstacles = append(f.Obstacles, layoutObstacle(o, s.FieldH, caps))
	}

	cx := s.FieldW / 2
	f.Texts = append(f.Texts, Text{S: fmt.Sprintf("Score: %d", s.Score), X: cx, Y: HUDTop, Color: Label})
	if s.Phase == core.PhaseGameOver {
		cy := s.FieldH / 2
		f.Texts = append(f.Texts,
			Text{S: "GAME OVER", X: cx, Y: cy - LineSpacing, Color: Alert},
			Text{S: fmt.Sprintf("Final Score: %d", s.Score), X: cx, Y: cy, Color: Label},
			Text{S: "Press SPACE to restart", X: cx, Y: cy + LineSpacing, Color: Label},
		)
	}

	if s.Debug {
		f.Hitboxes = append(f.Hitboxes, s.Actor.Bounds)
		for _, o := range s.Obstacles {
			for _, r := range []core.Rect{o.Upper, o.Lower} {
				if !r.Empty() {
					f.Hitboxes = append(f.Hitboxes, r)
				}
			}
		}
	}
	return f
}

func layoutObstacle(o core.ObstacleView, fieldH float64, caps Caps) Obstacle {
	lowerTop := o.GapY + o.GapHeight

	upper := Segment{Full: core.NewRect(o.X, 0, o.Width, o.GapY)}
	if caps.Upper > 0 {
		capY := o.GapY - caps.Upper
		upper.Cap = core.NewRect(o.X, capY, o.Width, caps.Upper)
		upper.Body = core.NewRect(o.X, 0, o.Width, capY)
	}

	lower := Segment{Full: core.NewRect(o.X, lowerTop, o.Width, fieldH-lowerTop)}
	if caps.Lower > 0 {
		bodyY := lowerTop + caps.Lower
		lower.Cap = core.NewRect(o.X, lowerTop, o.Width, caps.Lower)
		lower.Body = core.NewRect(o.X, bodyY, o.Width, fieldH-bodyY)
	}

	return Obstacle{Upper: upper, Lower: lower}
}
