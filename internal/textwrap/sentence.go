package textwrap

import "regexp"

// lowercase letter, sentence-ending punctuation, optional closing quote,
// end of chunk
var sentenceEndRe = regexp.MustCompile(`[a-z][.!?]["']?\z`)

// fixSentenceEndings widens the single space after a sentence end to two
// spaces. "... foo.\nBar ..." normalizes to [..., "foo.", " ", "Bar", ...],
// which has one space too few.
func fixSentenceEndings(chunks []string) {
	i := 0
	for i < len(chunks)-1 {
		if chunks[i+1] == " " && sentenceEndRe.MatchString(chunks[i]) {
			chunks[i+1] = "  "
			i += 2
		} else {
			i++
		}
	}
}
