package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopit/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Retry  key.Binding
	Menu   key.Binding
	Music  key.Binding
	Sound  key.Binding
	Scores key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Retry, k.Menu},
		{k.Music, k.Sound},
		{k.Scores, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Retry: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space/r", "retry"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m/esc", "menu"),
		),
		Music: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "music"),
		),
		Sound: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "sound"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Mapped is the result of translating one key press.
type Mapped struct {
	Hold    core.Action   // Direction latched for a few frames, or ActionNone
	OneShot []core.Action // Actions delivered on the next tick only
}

// MapKey translates a key message into game actions. Start and Retry share
// the space bar; the game only reads the one valid for its phase.
func (k KeyMap) MapKey(msg tea.KeyMsg) Mapped {
	var m Mapped
	switch {
	case key.Matches(msg, k.Quit):
		m.OneShot = append(m.OneShot, core.ActionQuit)
	case key.Matches(msg, k.Left):
		m.Hold = core.ActionLeft
	case key.Matches(msg, k.Right):
		m.Hold = core.ActionRight
	case key.Matches(msg, k.Music):
		m.OneShot = append(m.OneShot, core.ActionToggleMusic)
	case key.Matches(msg, k.Sound):
		m.OneShot = append(m.OneShot, core.ActionToggleSound)
	case key.Matches(msg, k.Menu):
		m.OneShot = append(m.OneShot, core.ActionMenu)
	default:
		if key.Matches(msg, k.Start) {
			m.OneShot = append(m.OneShot, core.ActionStart)
		}
		if key.Matches(msg, k.Retry) {
			m.OneShot = append(m.OneShot, core.ActionRetry)
		}
	}
	return m
}
