package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the carousel view.
// Prev, Next, Select and Pause only act while the engine's keyboard flag is
// on; the rest always work.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Pause  key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause/resume"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy slide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// SetNavigationEnabled greys out the navigation bindings in the help view
// when the keyboard flag is off.
func (k *KeyMap) SetNavigationEnabled(enabled bool) {
	k.Prev.SetEnabled(enabled)
	k.Next.SetEnabled(enabled)
	k.Select.SetEnabled(enabled)
	k.Pause.SetEnabled(enabled)
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select, k.Pause}, // Navigation column
		{k.Copy, k.Help, k.Quit},            // General column
	}
}

// ShortHelp returns a minimal set of bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Help, k.Quit}
}
