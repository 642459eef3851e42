// Package window provides the Ebiten frontend: an 800x600 window running
// the simulation at a fixed tick rate, with image sprites when they are
// available and primitive shapes otherwise.
package window

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/platform/window/scene"
	"github.com/vovakirdan/flappy/internal/registry"
	"github.com/vovakirdan/flappy/internal/sprite"
)

// images holds GPU copies of the resolved sprites. A nil entry means the
// primitive is drawn instead.
type images struct {
	actor      *ebiten.Image
	background *ebiten.Image

	upperCap, upperBody *ebiten.Image
	lowerCap, lowerBody *ebiten.Image
	caps                scene.Caps
}

// Window implements ebiten.Game.
type Window struct {
	game   registry.Game
	cfg    core.RuntimeConfig
	logger *log.Logger
	img    images
	face   *text.GoTextFace
	input  core.InputFrame
}

// New creates the window frontend. Sprites are converted once here and
// never re-checked per frame.
func New(game registry.Game, sprites sprite.Set, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.Default()
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	w := &Window{
		game:   game,
		cfg:    cfg,
		logger: logger,
		img:    loadImages(sprites, game.Snapshot()),
		face:   &text.GoTextFace{Source: src, Size: scene.TextSize},
		input:  core.NewInputFrame(),
	}
	logger.Debug("window sprites",
		"actor", w.img.actor != nil,
		"pipes", w.img.upperBody != nil && w.img.lowerBody != nil,
		"background", w.img.background != nil)
	return w, nil
}

// loadImages uploads image sprites and splits pipe images into cap and body.
// The upright pipe's cap is its top quarter; the upside-down pipe's cap is
// its bottom quarter.
func loadImages(set sprite.Set, s core.Snapshot) images {
	var out images
	if set.Actor.IsImage() {
		out.actor = ebiten.NewImageFromImage(set.Actor.Image)
	}
	if set.Background.IsImage() {
		out.background = ebiten.NewImageFromImage(set.Background.Image)
	}

	pipeW := 0.0
	if len(s.Obstacles) > 0 {
		pipeW = s.Obstacles[0].Width
	}
	if set.PipeUpsideDown.IsImage() && pipeW > 0 {
		img := ebiten.NewImageFromImage(set.PipeUpsideDown.Image)
		w, h := set.PipeUpsideDown.W, set.PipeUpsideDown.H
		c := h / 4
		out.upperBody = subImage(img, image.Rect(0, 0, w, h-c))
		out.upperCap = subImage(img, image.Rect(0, h-c, w, h))
		out.caps.Upper = scene.CapHeight(w, h, pipeW)
	}
	if set.PipeUpright.IsImage() && pipeW > 0 {
		img := ebiten.NewImageFromImage(set.PipeUpright.Image)
		w, h := set.PipeUpright.W, set.PipeUpright.H
		c := h / 4
		out.lowerCap = subImage(img, image.Rect(0, 0, w, c))
		out.lowerBody = subImage(img, image.Rect(0, c, w, h))
		out.caps.Lower = scene.CapHeight(w, h, pipeW)
	}
	if out.caps.Upper == 0 || out.caps.Lower == 0 {
		// Images too small to split are drawn as primitives.
		out.upperCap, out.upperBody, out.lowerCap, out.lowerBody = nil, nil, nil, nil
		out.caps = scene.Caps{}
	}
	return out
}

func subImage(img *ebiten.Image, r image.Rectangle) *ebiten.Image {
	return img.SubImage(r).(*ebiten.Image)
}

// Update polls input and advances the simulation by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.logger.Info("quit", "score", w.game.Snapshot().Score)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		w.game.ToggleDebug()
	}

	if jumpPressed() {
		w.input.Set(core.ActionJump)
	}
	result := w.game.Step(w.input)
	w.input.Clear()

	switch {
	case result.Restarted:
		w.logger.Debug("round restarted")
	case result.Ended:
		w.logger.Info("round over", "score", result.State.Score)
	}
	return nil
}

// jumpPressed reports a key-down edge of any jump key this tick.
func jumpPressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	f := scene.Build(w.game.Snapshot(), w.img.caps)

	w.drawBackground(screen, f)
	for _, o := range f.Obstacles {
		w.drawObstacle(screen, o)
	}
	w.drawActor(screen, f.Actor)

	for _, r := range f.Hitboxes {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, scene.Hitbox, false)
	}

	for _, t := range f.Texts {
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(t.Color)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, t.S, w.face, op)
	}
}

func (w *Window) drawBackground(screen *ebiten.Image, f scene.Frame) {
	if w.img.background == nil {
		screen.Fill(scene.Sky)
		return
	}
	stretch(screen, w.img.background, core.NewRect(0, 0, f.W, f.H))
}

func (w *Window) drawObstacle(screen *ebiten.Image, o scene.Obstacle) {
	if w.img.upperBody != nil {
		stretch(screen, w.img.upperBody, o.Upper.Body)
		stretch(screen, w.img.upperCap, o.Upper.Cap)
		stretch(screen, w.img.lowerCap, o.Lower.Cap)
		stretch(screen, w.img.lowerBody, o.Lower.Body)
		return
	}
	for _, r := range []core.Rect{o.Upper.Full, o.Lower.Full} {
		if r.Empty() {
			continue
		}
		x, y, rw, rh := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.DrawFilledRect(screen, x, y, rw, rh, scene.Pipe, false)
		vector.StrokeRect(screen, x, y, rw, rh, scene.OutlineWidth, scene.Outline, false)
	}
}

func (w *Window) drawActor(screen *ebiten.Image, a scene.Actor) {
	if w.img.actor == nil {
		vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), float32(a.Radius), scene.Bird, true)
		return
	}
	b := w.img.actor.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(a.Radius*2/iw, a.Radius*2/ih)
	// Screen y points down, so a counter-clockwise angle is negative here.
	op.GeoM.Rotate(-a.Rotation * math.Pi / 180)
	op.GeoM.Translate(a.X, a.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.img.actor, op)
}

// stretch draws src scaled to fill r.
func stretch(dst, src *ebiten.Image, r core.Rect) {
	if src == nil || r.Empty() {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(src, op)
}

// Layout fixes the logical screen to the field size; Ebiten scales it to
// the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.FieldW, w.cfg.FieldH
}

// Run opens the window and blocks until it is closed or the player quits.
// The game must already be Reset.
func Run(game registry.Game, sprites sprite.Set, cfg core.RuntimeConfig, logger *log.Logger) error {
	w, err := New(game, sprites, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.FieldW, cfg.FieldH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
