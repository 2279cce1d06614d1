package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	b := &strings.Builder{}

	// inner width of the box: the wrap width, or wider when unbroken words overflow
	inner := m.opts.Width
	for _, l := range m.lines {
		if w := xansi.StringWidth(l); w > inner {
			inner = w
		}
	}
	// box border takes two columns
	avail := inner
	if m.width > 0 && m.width-2 < avail {
		avail = maxInt(1, m.width-2)
	}

	b.WriteString(" " + RulerStyle().Render(ruler(minInt(m.opts.Width, avail))) + "\n")

	var body string
	if m.err != nil {
		body = ErrorStyle().Render(m.err.Error())
	} else {
		rows := make([]string, 0, len(m.lines))
		for _, l := range m.lines {
			if xansi.StringWidth(l) > avail {
				l = xansi.Truncate(l, avail, "…")
			}
			rows = append(rows, l+strings.Repeat(" ", maxInt(0, minInt(inner, avail)-xansi.StringWidth(l))))
		}
		if len(rows) == 0 {
			rows = append(rows, strings.Repeat(" ", minInt(inner, avail)))
		}
		body = strings.Join(rows, "\n")
	}
	b.WriteString(BoxStyle().Render(body))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return zone.Scan(b.String())
}

// statusLine shows the current width, line count and toggles as chips.
// The line count and toggle chips are clickable zones.
func (m model) statusLine() string {
	onOff := func(id, name string, on bool) string {
		if on {
			return zone.Mark(id, ChipStyle(Vitesse.Blue).Render(name))
		}
		return zone.Mark(id, StatusBarBase().Padding(0, 1).Render("no "+name))
	}
	limit := "∞"
	if m.opts.MaxLines > 0 {
		limit = fmt.Sprint(m.opts.MaxLines)
	}
	parts := []string{
		ChipKeyStyle().Render(fmt.Sprintf("width %d", m.opts.Width)),
		zone.Mark(zoneMaxLines, ChipStyle(Vitesse.Yellow).Render(fmt.Sprintf("lines %d/%s", len(m.lines), limit))),
		onOff(zoneHyphens, "hyphens", m.opts.BreakOnHyphens),
		onOff(zoneLongWords, "long words", m.opts.BreakLongWords),
		onOff(zoneSentences, "sentences", m.opts.FixSentenceEndings),
		onOff(zoneDropSpace, "drop ws", m.opts.DropWhitespace),
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.width > 0 && xansi.StringWidth(line) > m.width {
		line = xansi.Truncate(line, m.width, "")
	}
	return line
}

// ruler returns a column ruler n cells wide: a digit every ten columns,
// a plus every five and dots elsewhere.
func ruler(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		switch {
		case i%10 == 0:
			sb.WriteByte(byte('0' + (i/10)%10))
		case i%5 == 0:
			sb.WriteByte('+')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
