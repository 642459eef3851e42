package sprite

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writePNG(t *testing.T, dir, id string, w, h int) {
	t.Helper()
	imgDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(imgDir, id+".png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDirLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, IDActor, 34, 24)

	img, err := Dir{Root: dir}.Load(IDActor)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 34 || b.Dy() != 24 {
		t.Errorf("bounds = %v, expected 34x24", b)
	}
}

func TestDirLoadMissing(t *testing.T) {
	_, err := Dir{Root: t.TempDir()}.Load(IDActor)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("missing file should be ErrUnavailable, got %v", err)
	}
}

func TestDirLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	imgDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(imgDir, IDActor+".png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Dir{Root: dir}.Load(IDActor)
	if err == nil {
		t.Fatal("corrupt file should fail to decode")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("decode failure should be distinct from unavailable")
	}
}

func TestResolveFallsBack(t *testing.T) {
	fallback := Primitive(ShapeCircle, 60, 60)

	tests := []struct {
		name     string
		provider Provider
	}{
		{"nil provider", nil},
		{"none provider", None{}},
		{"empty dir", Dir{Root: t.TempDir()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Resolve(tc.provider, IDActor, fallback, quietLogger())
			if s.IsImage() {
				t.Fatal("expected primitive fallback")
			}
			if s != fallback {
				t.Errorf("Resolve() = %+v, expected %+v", s, fallback)
			}
		})
	}
}

func TestResolveImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, IDPipeUpright, 52, 320)

	s := Resolve(Dir{Root: dir}, IDPipeUpright, Primitive(ShapeRect, 70, 600), quietLogger())
	if !s.IsImage() {
		t.Fatal("expected image sprite")
	}
	if s.W != 52 || s.H != 320 {
		t.Errorf("size = %dx%d, expected 52x320", s.W, s.H)
	}
}

func TestLoadSetMixed(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, IDBackground, 8, 6)

	set := LoadSet(Dir{Root: dir}, 60, 70, 800, 600, quietLogger())
	if !set.Background.IsImage() {
		t.Error("background should be an image")
	}
	if set.Actor.IsImage() || set.Actor.Shape != ShapeCircle || set.Actor.W != 60 {
		t.Errorf("actor should fall back to a 60px circle, got %+v", set.Actor)
	}
	if set.PipeUpright.IsImage() || set.PipeUpright.Shape != ShapeRect {
		t.Errorf("pipe should fall back to rectangles, got %+v", set.PipeUpright)
	}
}
