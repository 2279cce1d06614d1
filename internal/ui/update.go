package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		// status bar chips act like their keys
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case zone.Get(zoneHyphens).InBounds(msg):
			m.opts.BreakOnHyphens = !m.opts.BreakOnHyphens
		case zone.Get(zoneLongWords).InBounds(msg):
			m.opts.BreakLongWords = !m.opts.BreakLongWords
		case zone.Get(zoneSentences).InBounds(msg):
			m.opts.FixSentenceEndings = !m.opts.FixSentenceEndings
		case zone.Get(zoneDropSpace).InBounds(msg):
			m.opts.DropWhitespace = !m.opts.DropWhitespace
		case zone.Get(zoneMaxLines).InBounds(msg):
			m.opts.MaxLines = nextMaxLines(m.opts.MaxLines)
		default:
			return m, nil
		}
		m.rewrap()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Narrow):
			if m.opts.Width > 1 {
				m.opts.Width--
			}
		case key.Matches(msg, m.keys.Widen):
			if m.opts.Width < maxWidth {
				m.opts.Width++
			}
		case key.Matches(msg, m.keys.Hyphens):
			m.opts.BreakOnHyphens = !m.opts.BreakOnHyphens
		case key.Matches(msg, m.keys.LongWords):
			m.opts.BreakLongWords = !m.opts.BreakLongWords
		case key.Matches(msg, m.keys.Sentences):
			m.opts.FixSentenceEndings = !m.opts.FixSentenceEndings
		case key.Matches(msg, m.keys.DropSpace):
			m.opts.DropWhitespace = !m.opts.DropWhitespace
		case key.Matches(msg, m.keys.MaxLines):
			m.opts.MaxLines = nextMaxLines(m.opts.MaxLines)
		default:
			return m, nil
		}
		m.rewrap()
	}
	return m, nil
}
