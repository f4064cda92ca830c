package domain

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`^[a-z](?:[a-z]|['\-\s][a-z])*$`)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeWord normalizes a headword token and reports whether it is a
// valid word: letters with internal hyphens, apostrophes or single spaces.
// Leading and trailing punctuation is rejected.
func NormalizeWord(token string) (string, bool) {
	w := NormalizeText(token)
	if w == "" || !wordRe.MatchString(w) {
		return "", false
	}
	return w, true
}
