package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

// maxLineSteps is the cycle the max-lines key walks through; 0 is unlimited.
var maxLineSteps = []int{0, 1, 2, 3, 5, 10}

const maxWidth = 500

// Clickable status bar zones.
const (
	zoneMaxLines  = "preview.maxlines"
	zoneHyphens   = "preview.hyphens"
	zoneLongWords = "preview.longwords"
	zoneSentences = "preview.sentences"
	zoneDropSpace = "preview.dropws"
)

// model previews text wrapped with adjustable options.
type model struct {
	text string
	opts textwrap.Options

	lines []string
	err   error

	// terminal size
	width  int
	height int

	keys     KeyMap
	help     help.Model
	quitting bool
}

func newModel(text string, opts textwrap.Options) model {
	m := model{
		text: text,
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	m.rewrap()
	return m
}

// NewPreview returns the preview program model for text.
func NewPreview(text string, opts textwrap.Options) tea.Model { return newModel(text, opts) }

func (m model) Init() tea.Cmd { return nil }

// rewrap recomputes the lines for the current options. Paragraphs are
// wrapped one by one so blank lines in the input survive.
func (m *model) rewrap() {
	m.lines, m.err = nil, m.opts.Validate()
	if m.err != nil {
		return
	}
	for i, p := range textwrap.Paragraphs(m.text) {
		lines, err := textwrap.Wrap(p, m.opts)
		if err != nil {
			m.lines, m.err = nil, err
			return
		}
		if i > 0 {
			m.lines = append(m.lines, "")
		}
		m.lines = append(m.lines, lines...)
	}
}

func nextMaxLines(cur int) int {
	for i, n := range maxLineSteps {
		if n == cur {
			return maxLineSteps[(i+1)%len(maxLineSteps)]
		}
	}
	return 0
}
