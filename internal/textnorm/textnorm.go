// Package textnorm prepares raw extracted text for pattern matching.
//
// Both forms apply Unicode NFKC first, so ligatures, non-breaking spaces and
// full-width characters coming out of PDF extraction compare equal to their
// plain ASCII spellings.
package textnorm

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Flatten returns raw as a single line: newlines and whitespace runs become
// one space, leading and trailing whitespace is removed.
func Flatten(raw string) string {
	if raw == "" {
		return ""
	}
	out, _, err := transform.String(transform.Chain(norm.NFKC, &spaceFolder{}), raw)
	if err != nil {
		return strings.Join(strings.Fields(norm.NFKC.String(raw)), " ")
	}
	return out
}

// Lines splits raw into trimmed, non-empty lines in their original order.
// Whitespace inside a line is collapsed to single spaces.
func Lines(raw string) []string {
	if raw == "" {
		return nil
	}
	raw = norm.NFKC.String(raw)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []string
	folder := &spaceFolder{}
	for _, l := range strings.Split(raw, "\n") {
		folded, _, err := transform.String(folder, l)
		if err != nil {
			folded = strings.Join(strings.Fields(l), " ")
		}
		if folded == "" {
			continue
		}
		lines = append(lines, folded)
	}
	return lines
}
