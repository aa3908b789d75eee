// Package nlp classifies and tokenizes student questions: normalization,
// subject detection, question-type classification and keyword extraction.
// All functions are pure; Processor bundles them for the pipeline.
package nlp

import (
	"regexp"
	"strings"
)

var (
	// disallowedChars whitelists word characters, whitespace, Spanish
	// accented vowels, ñ/ü and inverted punctuation. Everything else is
	// stripped during normalization.
	disallowedChars = regexp.MustCompile(`[^\w\sáéíóúñü¿?¡!]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases the text, strips characters outside the whitelist
// and collapses whitespace runs. Idempotent; empty in, empty out.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = disallowedChars.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
