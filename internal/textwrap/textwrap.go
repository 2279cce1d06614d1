package textwrap

import "strings"

// Wrapper wraps text with a fixed set of Options.
type Wrapper struct {
	opts Options
}

// New returns a Wrapper for opts. Options are validated on each call, so
// an invalid configuration surfaces from Wrap, Fill and Shorten.
func New(opts Options) *Wrapper {
	return &Wrapper{opts: opts}
}

// Chunks returns the chunks text is split into before packing, with
// sentence endings fixed when configured.
func (w *Wrapper) Chunks(text string) []string {
	chunks := w.opts.split(w.opts.munge(text))
	if w.opts.FixSentenceEndings {
		fixSentenceEndings(chunks)
	}
	return chunks
}

// Wrap reformats text as a single paragraph and returns its lines, each
// already prefixed with the proper indent. Empty input yields no lines.
func (w *Wrapper) Wrap(text string) ([]string, error) {
	if err := w.opts.Validate(); err != nil {
		return nil, err
	}
	return w.opts.wrapChunks(w.Chunks(text)), nil
}

// Fill is Wrap with the lines joined by newlines.
func (w *Wrapper) Fill(text string) (string, error) {
	lines, err := w.Wrap(text)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Wrap wraps text with opts. See Wrapper.Wrap.
func Wrap(text string, opts Options) ([]string, error) {
	return New(opts).Wrap(text)
}

// Fill fills text with opts. See Wrapper.Fill.
func Fill(text string, opts Options) (string, error) {
	return New(opts).Fill(text)
}

// Shorten collapses whitespace runs in text to single spaces and fits the
// result on one line of the given width. Text that does not fit is cut
// after the last whole word that leaves room for opts.Placeholder.
func Shorten(text string, width int, opts Options) (string, error) {
	opts.Width = width
	opts.MaxLines = 1
	return Fill(strings.Join(strings.Fields(text), " "), opts)
}
