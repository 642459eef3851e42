package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/core"
)

// KeyMap defines the key bindings used while playing.
// It implements help.KeyMap for the help line under the field.
type KeyMap struct {
	Jump  key.Binding
	Debug key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Debug, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Debug, k.Quit}}
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/up", "flap / restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hitboxes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// JumpRepeatWindow is the longest gap between jump key events that is still
// treated as autorepeat. Terminals report no key releases, so a held key
// arrives as a stream of presses.
const JumpRepeatWindow = 100 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	now      func() time.Time
	lastJump time.Time // Last jump key event, kept or dropped
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap(), now: time.Now}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Jump events closer than JumpRepeatWindow to the previous one are dropped.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionJump && km.repeatedJump() {
		return false
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// repeatedJump records a jump event and reports whether it followed the
// previous one within the repeat window. A held key keeps the window open.
func (km *KeyMapper) repeatedJump() bool {
	now := km.now()
	repeat := !km.lastJump.IsZero() && now.Sub(km.lastJump) < JumpRepeatWindow
	km.lastJump = now
	return repeat
}

// IsDebugToggle reports whether the key toggles the hitbox overlay.
func (km *KeyMapper) IsDebugToggle(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Debug)
}
