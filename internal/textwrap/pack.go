package textwrap

import (
	"strings"
	"unicode"
)

func isBlank(chunk string) bool { return strings.TrimSpace(chunk) == "" }

// wrapChunks packs chunks into lines. Chunks are consumed front to back
// through the next cursor; a long word that gets broken is replaced in
// place by its unplaced remainder. The options must already be valid.
func (o Options) wrapChunks(chunks []string) []string {
	measure := o.measure()
	placeholderLen := measure(o.Placeholder)

	lines := []string{}
	next := 0
	for next < len(chunks) {
		indent := o.SubsequentIndent
		if len(lines) == 0 {
			indent = o.InitialIndent
		}
		width := o.Width - measure(indent)

		// no continuation line starts with whitespace
		if o.DropWhitespace && len(lines) > 0 && isBlank(chunks[next]) {
			next++
		}

		var cur []string
		curLen := 0
		for next < len(chunks) {
			l := measure(chunks[next])
			if curLen+l > width {
				break
			}
			cur = append(cur, chunks[next])
			curLen += l
			next++
		}

		if next < len(chunks) && measure(chunks[next]) > width {
			cur, next = o.handleLongWord(chunks, next, cur, curLen, width)
			curLen = 0
			for _, c := range cur {
				curLen += measure(c)
			}
		}

		if o.DropWhitespace && len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			curLen -= measure(cur[len(cur)-1])
			cur = cur[:len(cur)-1]
		}

		if len(cur) == 0 {
			continue
		}

		rest := chunks[next:]
		if o.MaxLines <= 0 ||
			len(lines)+1 < o.MaxLines ||
			(len(rest) == 0 || o.DropWhitespace && len(rest) == 1 && isBlank(rest[0])) && curLen <= width {
			lines = append(lines, indent+strings.Join(cur, ""))
			continue
		}

		// Last allowed line with content left over: end it with the
		// placeholder after the last word that leaves room for it.
		for len(cur) > 0 {
			last := cur[len(cur)-1]
			if !isBlank(last) && curLen+placeholderLen <= width {
				return append(lines, indent+strings.Join(cur, "")+o.Placeholder)
			}
			curLen -= measure(last)
			cur = cur[:len(cur)-1]
		}
		if len(lines) > 0 {
			prev := strings.TrimRightFunc(lines[len(lines)-1], unicode.IsSpace)
			if measure(prev)+placeholderLen <= o.Width {
				lines[len(lines)-1] = prev + o.Placeholder
				return lines
			}
		}
		return append(lines, indent+strings.TrimLeftFunc(o.Placeholder, unicode.IsSpace))
	}
	return lines
}

// handleLongWord deals with chunks[next], which is too long for any line.
// It returns the updated line and cursor.
func (o Options) handleLongWord(chunks []string, next int, cur []string, curLen, width int) ([]string, int) {
	// an indent wider than the line still has to make progress
	spaceLeft := width - curLen
	if width < 1 {
		spaceLeft = 1
	}

	if o.BreakLongWords {
		measure := o.measure()
		chunk := chunks[next]
		head, tail := cut(chunk, spaceLeft, measure)
		if o.BreakOnHyphens && measure(chunk) > spaceLeft {
			// break after the last hyphen, but only if something other
			// than hyphens precedes it
			if i := strings.LastIndexByte(head, '-'); i > 0 && strings.Trim(head[:i], "-") != "" {
				head, tail = chunk[:i+1], chunk[i+1:]
			}
		}
		cur = append(cur, head)
		if tail == "" {
			return cur, next + 1
		}
		chunks[next] = tail
		return cur, next
	}

	// Keep the word intact. It only goes on an empty line; otherwise the
	// next pass starts a fresh line for it.
	if len(cur) == 0 {
		return append(cur, chunks[next]), next + 1
	}
	return cur, next
}
