package textwrap

import (
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
)

// MeasureFunc reports the length of s as seen by the line packer.
type MeasureFunc func(s string) int

// RuneLen counts code points. It is the default measure.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// CellWidth counts terminal columns, so wide East Asian runes take two
// cells and combining marks none.
func CellWidth(s string) int { return runewidth.StringWidth(s) }

// cut splits s so that head measures at most limit. When limit > 0 the
// head always holds at least one rune, even if that rune alone is wider.
func cut(s string, limit int, m MeasureFunc) (head, tail string) {
	if limit <= 0 {
		return "", s
	}
	end := 0
	for i, r := range s {
		next := i + utf8.RuneLen(r)
		if m(s[:next]) > limit {
			if i == 0 {
				return s[:next], s[next:]
			}
			return s[:i], s[i:]
		}
		end = next
	}
	return s[:end], s[end:]
}
