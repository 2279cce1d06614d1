package textwrap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidWidth is returned when Options.Width is not positive.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrPlaceholderTooLarge is returned when MaxLines is set and the
	// placeholder cannot fit on the last allowed line.
	ErrPlaceholderTooLarge = errors.New("placeholder too large for max width")
)

// Options configures one wrapping operation.
type Options struct {
	// Width is the maximum length of a produced line, indent included.
	Width int `json:"width" yaml:"width"`
	// InitialIndent prefixes the first line.
	InitialIndent string `json:"initial_indent" yaml:"initial_indent"`
	// SubsequentIndent prefixes every line after the first.
	SubsequentIndent string `json:"subsequent_indent" yaml:"subsequent_indent"`
	// ExpandTabs replaces each tab with TabSize spaces before wrapping.
	ExpandTabs bool `json:"expand_tabs" yaml:"expand_tabs"`
	// ReplaceWhitespace turns \t \n \v \f \r into single spaces.
	ReplaceWhitespace bool `json:"replace_whitespace" yaml:"replace_whitespace"`
	// FixSentenceEndings puts two spaces after sentence-ending punctuation.
	FixSentenceEndings bool `json:"fix_sentence_endings" yaml:"fix_sentence_endings"`
	// BreakLongWords splits words longer than the line width.
	BreakLongWords bool `json:"break_long_words" yaml:"break_long_words"`
	// DropWhitespace strips whitespace chunks at line starts (after the
	// first line) and line ends.
	DropWhitespace bool `json:"drop_whitespace" yaml:"drop_whitespace"`
	// BreakOnHyphens allows breaks after hyphens in compound words.
	BreakOnHyphens bool `json:"break_on_hyphens" yaml:"break_on_hyphens"`
	TabSize        int  `json:"tab_size" yaml:"tab_size"`
	// MaxLines limits the number of produced lines; 0 means unlimited.
	MaxLines int `json:"max_lines" yaml:"max_lines"`
	// Placeholder terminates the last line when MaxLines truncates output.
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	// Measure reports string length. Nil counts runes.
	Measure MeasureFunc `json:"-" yaml:"-"`
}

// DefaultOptions returns the standard configuration: width 70, tabs
// expanded to 8 spaces, whitespace replaced and dropped at breaks, long
// words and hyphenated words broken, no line limit.
func DefaultOptions() Options {
	return Options{
		Width:             70,
		ExpandTabs:        true,
		ReplaceWhitespace: true,
		BreakLongWords:    true,
		DropWhitespace:    true,
		BreakOnHyphens:    true,
		TabSize:           8,
		Placeholder:       " [...]",
	}
}

func (o Options) measure() MeasureFunc {
	if o.Measure == nil {
		return RuneLen
	}
	return o.Measure
}

// Validate reports configuration errors without wrapping anything.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("%w %d (must be > 0)", ErrInvalidWidth, o.Width)
	}
	if o.MaxLines > 0 {
		indent := o.InitialIndent
		if o.MaxLines > 1 {
			indent = o.SubsequentIndent
		}
		m := o.measure()
		if m(indent)+m(strings.TrimLeftFunc(o.Placeholder, unicode.IsSpace)) > o.Width {
			return fmt.Errorf("%w: indent %q and placeholder %q exceed width %d",
				ErrPlaceholderTooLarge, indent, o.Placeholder, o.Width)
		}
	}
	return nil
}
