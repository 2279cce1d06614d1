// Package textwrap formats plain text into lines of bounded width.
//
// Text is first normalized (tab expansion, whitespace replacement), then
// split into chunks: whitespace runs, words and, when hyphen breaking is on,
// the fragments of hyphenated compounds. Chunks are packed greedily into
// lines no longer than the configured width; words that cannot fit on any
// line are broken, and a max-lines limit truncates the output with a
// placeholder.
//
// Basic usage:
//
//	opts := textwrap.DefaultOptions()
//	opts.Width = 40
//	lines, err := textwrap.Wrap(text, opts)
//
// All entry points are safe for concurrent use. The only shared state is a
// set of patterns compiled at package init and never modified afterwards.
package textwrap
