package textwrap

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const (
	whitespace   = `[\t\n\v\f\r ]`
	nowhitespace = `[^\t\n\v\f\r ]`
	wordPunct    = `[\w!"'&.,?]`
	letter       = `[^\d\W]`
)

// wordsepRe splits text into wrappable chunks. For example
//
//	Hello there -- you goof-ball, use the -b option!
//
// becomes
//
//	Hello/ /there/ /--/ /you/ /goof-/ball,/ /use/ /the/ /-b/ /option!
var wordsepRe = regexp2.MustCompile(
	`(`+
		// any whitespace
		whitespace+`+`+
		// em-dash between words
		`|(?<=`+wordPunct+`)-{2,}(?=\w)`+
		// word, possibly hyphenated
		`|`+nowhitespace+`+?(?:`+
		`-(?:(?<=`+letter+`{2}-)|(?<=`+letter+`-`+letter+`-))(?=`+letter+`-?`+letter+`)`+
		`|(?=`+whitespace+`|\z)`+
		`|(?<=`+wordPunct+`)(?=-{2,}\w)`+
		`)`+
		`)`, regexp2.None)

// wordsepSimpleRe splits on whitespace runs only, so "goof-ball" stays whole.
var wordsepSimpleRe = regexp2.MustCompile(`(`+whitespace+`+)`, regexp2.None)

var whitespaceReplacer = strings.NewReplacer(
	"\t", " ",
	"\n", " ",
	"\v", " ",
	"\f", " ",
	"\r", " ",
)

// munge expands tabs and then replaces the remaining whitespace controls
// with spaces. The order matters: expanded tabs must not be replaced twice.
func (o Options) munge(text string) string {
	if o.ExpandTabs {
		n := o.TabSize
		if n < 0 {
			n = 0
		}
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", n))
	}
	if o.ReplaceWhitespace {
		text = whitespaceReplacer.Replace(text)
	}
	return text
}

// split breaks normalized text into non-empty chunks whose concatenation
// is text.
func (o Options) split(text string) []string {
	re := wordsepSimpleRe
	if o.BreakOnHyphens {
		re = wordsepRe
	}
	return splitKeep(re, text)
}

// splitKeep returns the text between matches of re interleaved with the
// matches themselves, dropping empty pieces.
func splitKeep(re *regexp2.Regexp, text string) []string {
	chunks := []string{}
	if text == "" {
		return chunks
	}
	runes := []rune(text)
	last := 0
	// errors only come from match timeouts, which are not configured
	m, _ := re.FindRunesMatch(runes)
	for m != nil {
		if m.Index > last {
			chunks = append(chunks, string(runes[last:m.Index]))
		}
		if m.Length > 0 {
			chunks = append(chunks, string(runes[m.Index:m.Index+m.Length]))
		}
		last = m.Index + m.Length
		m, _ = re.FindNextMatch(m)
	}
	if last < len(runes) {
		chunks = append(chunks, string(runes[last:]))
	}
	return chunks
}
