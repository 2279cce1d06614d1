package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
	"github.com/an-ttt/MySpyder-sub002/internal/ui"
)

// Preview runs the interactive wrap preview for text and returns any error.
// Keys are read from the terminal so text can arrive on a pipe.
func Preview(text string, opts textwrap.Options) error {
	// Initialize global bubblezone manager for the clickable status chips.
	zone.NewGlobal()
	p := tea.NewProgram(ui.NewPreview(text, opts), tea.WithAltScreen(), tea.WithInputTTY(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
