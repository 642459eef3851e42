package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy/internal/core"
)

type stubGame struct {
	debug bool
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) Snapshot() core.Snapshot { return core.Snapshot{Debug: g.debug} }
func (g *stubGame) ToggleDebug() { g.debug = !g.debug }
func (g *stubGame) State() core.GameState { return core.GameState{} }

// resetSlot empties the slot for the duration of a test.
func resetSlot(t *testing.T) {
	t.Helper()
	mu.Lock()
	factory, gameID = nil, ""
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		factory, gameID = nil, ""
		mu.Unlock()
	})
}

func TestRegisterAndNew(t *testing.T) {
	resetSlot(t)
	Register("stub", func() Game { return &stubGame{} })

	a, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.ID() != "stub" {
		t.Errorf("ID() = %q, expected stub", a.ID())
	}

	b, _ := New()
	a.ToggleDebug()
	if !a.Snapshot().Debug || b.Snapshot().Debug {
		t.Error("New() should return independent instances")
	}
}

func TestNewBeforeRegister(t *testing.T) {
	resetSlot(t)
	if _, err := New(); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("New() error = %v, expected ErrNotRegistered", err)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	resetSlot(t)
	Register("stub", func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("second Register should panic")
		}
	}()
	Register("other", func() Game { return &stubGame{} })
}
