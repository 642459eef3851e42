// Package sprite resolves drawable images for the actor, obstacles and
// background. A sprite is either an image of known size or a primitive
// shape; the choice is made once when a frontend is built and never
// re-checked per frame.
package sprite

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG assets
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Asset identifiers understood by providers.
const (
	IDActor          = "FlappyRed"
	IDPipeUpright    = "pipe-upright"
	IDPipeUpsideDown = "pipe-upside-down"
	IDBackground     = "BackgroundFlappy"
)

// ErrUnavailable is returned by providers that have no image for an id.
var ErrUnavailable = errors.New("sprite: unavailable")

// Kind tags the Sprite variant.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindImage
)

// Shape is the primitive drawn when no image is available.
type Shape uint8

const (
	ShapeCircle Shape = iota // Actor fallback
	ShapeRect                // Obstacle fallback: filled and outlined rectangles
	ShapeFill                // Background fallback: solid color
)

// Sprite is a drawable: an Image with its pixel size, or a Primitive shape.
type Sprite struct {
	Kind  Kind
	Image image.Image // Set for KindImage
	Shape Shape       // Set for KindPrimitive
	W, H  int
}

// FromImage wraps a decoded image.
func FromImage(img image.Image) Sprite {
	b := img.Bounds()
	return Sprite{Kind: KindImage, Image: img, W: b.Dx(), H: b.Dy()}
}

// Primitive creates a shape sprite of the given size.
func Primitive(shape Shape, w, h int) Sprite {
	return Sprite{Kind: KindPrimitive, Shape: shape, W: w, H: h}
}

// IsImage reports whether the sprite carries an image.
func (s Sprite) IsImage() bool {
	return s.Kind == KindImage && s.Image != nil
}

// Provider returns images by identifier.
type Provider interface {
	Load(id string) (image.Image, error)
}

// None is a Provider with no images. The terminal frontend uses it.
type None struct{}

// Load always reports ErrUnavailable.
func (None) Load(id string) (image.Image, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnavailable, id)
}

// Dir loads PNG files from <Root>/images/<id>.png.
type Dir struct {
	Root string
}

// Load opens and decodes the image for id.
func (d Dir) Load(id string) (image.Image, error) {
	path := filepath.Join(d.Root, "images", id+".png")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
		}
		return nil, fmt.Errorf("sprite: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// Resolve loads id from p, falling back to the primitive on any failure.
// Failures are logged and never fatal.
func Resolve(p Provider, id string, fallback Sprite, logger *log.Logger) Sprite {
	if p == nil {
		return fallback
	}
	img, err := p.Load(id)
	if err != nil {
		if logger != nil {
			if errors.Is(err, ErrUnavailable) {
				logger.Debug("sprite not found, using primitive", "id", id)
			} else {
				logger.Warn("could not load sprite, using primitive", "id", id, "error", err)
			}
		}
		return fallback
	}
	if img.Bounds().Empty() {
		if logger != nil {
			logger.Warn("sprite has no pixels, using primitive", "id", id)
		}
		return fallback
	}
	return FromImage(img)
}

// Set holds every sprite a renderer needs.
type Set struct {
	Actor          Sprite
	PipeUpright    Sprite // Lower obstacle segment
	PipeUpsideDown Sprite // Upper obstacle segment
	Background     Sprite
}

// LoadSet resolves the full sprite set. actorSize is the visual diameter,
// pipeWidth the obstacle width.
func LoadSet(p Provider, actorSize, pipeWidth, fieldW, fieldH int, logger *log.Logger) Set {
	return Set{
		Actor:          Resolve(p, IDActor, Primitive(ShapeCircle, actorSize, actorSize), logger),
		PipeUpright:    Resolve(p, IDPipeUpright, Primitive(ShapeRect, pipeWidth, fieldH), logger),
		PipeUpsideDown: Resolve(p, IDPipeUpsideDown, Primitive(ShapeRect, pipeWidth, fieldH), logger),
		Background:     Resolve(p, IDBackground, Primitive(ShapeFill, fieldW, fieldH), logger),
	}
}
