package invoice

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// leadingNoise matches a literal `\n?`, a literal `\n`, or a newline
// followed by a question mark. Alternation is leftmost-first, so the
// earliest marker in the text wins whichever form it takes.
var leadingNoise = regexp.MustCompile(`\\n\?|\\n|\n\?`)

// NormalizeLeadingNoise drops everything up to and including the first
// noise marker and trims the remainder. Text is composed to NFC first so
// accented labels extracted as combining sequences still match.
func NormalizeLeadingNoise(text string) string {
	text = norm.NFC.String(text)
	if loc := leadingNoise.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	return strings.TrimSpace(text)
}
