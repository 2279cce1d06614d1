package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview key bindings.
type KeyMap struct {
	Narrow, Widen key.Binding
	Hyphens       key.Binding
	LongWords     key.Binding
	Sentences     key.Binding
	DropSpace     key.Binding
	MaxLines      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Narrow:    key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←", "narrower")),
		Widen:     key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→", "wider")),
		Hyphens:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hyphen breaks")),
		LongWords: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "break long words")),
		Sentences: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sentence spacing")),
		DropSpace: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop whitespace")),
		MaxLines:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "max lines")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.MaxLines, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrow, k.Widen, k.MaxLines},
		{k.Hyphens, k.LongWords, k.Sentences, k.DropSpace},
		{k.Help, k.Quit},
	}
}
