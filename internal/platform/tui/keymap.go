package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// DefaultHoldWindow is how long a direction key counts as held after its
// last press or auto-repeat. It must exceed the terminal's repeat interval.
const DefaultHoldWindow = 200 * time.Millisecond

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Confirm},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "h", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "l", "right"),
			key.WithHelp("d/→", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	}
	return core.ActionNone
}

// HoldTracker turns discrete key presses into held directions.
// Terminals report no key-up events, so a direction stays held until
// the hold window passes without a repeat, or the opposite direction is pressed.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a press of a held action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
	h.lastSeen[a] = now
}

// Active reports whether a is still held at now.
func (h *HoldTracker) Active(a core.Action, now time.Time) bool {
	last, ok := h.lastSeen[a]
	if !ok {
		return false
	}
	if now.Sub(last) > h.window {
		delete(h.lastSeen, a)
		return false
	}
	return true
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.lastSeen)
}

// Fill sets every held action on the frame.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.Active(a, now) {
			frame.Set(a)
		}
	}
}
