package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PreviewKeyMap defines the key bindings for the border preview.
type PreviewKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns default key bindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l", "n"),
			key.WithHelp("tab/→", "next theme"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h", "p"),
			key.WithHelp("S-tab/←", "prev theme"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow box"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink box"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
