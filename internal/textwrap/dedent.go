package textwrap

import "strings"

// Dedent removes the longest run of leading spaces and tabs shared by
// every non-blank line. Lines holding only spaces and tabs become empty.
// Tabs and spaces are not equivalent: "  hello" and "\thello" share no
// margin.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")
	margin := ""
	found := false
	for i, ln := range lines {
		body := strings.TrimLeft(ln, " \t")
		if body == "" {
			lines[i] = ""
			continue
		}
		indent := ln[:len(ln)-len(body)]
		switch {
		case !found:
			margin, found = indent, true
		case strings.HasPrefix(indent, margin):
			// deeper than the current margin
		case strings.HasPrefix(margin, indent):
			margin = indent
		default:
			margin = commonPrefix(margin, indent)
		}
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, ln := range lines {
		lines[i] = strings.TrimPrefix(ln, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

// Indent adds prefix to the start of every line for which pred returns
// true. A nil pred selects lines that contain something besides
// whitespace. Line endings are preserved.
func Indent(text, prefix string, pred func(line string) bool) string {
	if pred == nil {
		pred = func(line string) bool { return strings.TrimSpace(line) != "" }
	}
	var sb strings.Builder
	for _, ln := range strings.SplitAfter(text, "\n") {
		if ln == "" {
			continue
		}
		if pred(ln) {
			sb.WriteString(prefix)
		}
		sb.WriteString(ln)
	}
	return sb.String()
}
