package textwrap

import (
	"regexp"
	"strings"
)

var blankLinesRe = regexp.MustCompile(`\n(?:[ \t]*\r?\n)+`)

// Paragraphs splits text on blank lines, dropping empty paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range blankLinesRe.Split(text, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FillParagraphs fills each paragraph of text on its own and separates the
// results with a blank line.
func FillParagraphs(text string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	w := New(opts)
	paras := Paragraphs(text)
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		s, err := w.Fill(p)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n\n"), nil
}
