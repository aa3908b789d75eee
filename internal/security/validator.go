// Package security is the input boundary for student questions: length
// bounds, a word blocklist, injection/markup pattern checks and
// sanitization. Validation errors are typed so the request layer can
// surface a user-facing rejection instead of a generic failure.
package security

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	ErrEmpty        = errors.New("question is empty")
	ErrTooShort     = errors.New("question is too short")
	ErrTooLong      = errors.New("question is too long")
	ErrBlockedWord  = errors.New("question contains a blocked word")
	ErrSuspicious   = errors.New("question matches a suspicious pattern")
	ErrNoAlphabetic = errors.New("question contains no alphabetic characters")
)

var (
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script.*?>`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)<.*?>`),
		regexp.MustCompile(`(?i)sql.*injection`),
		regexp.MustCompile(`(?i)union.*select`),
		regexp.MustCompile(`(?i)drop.*table`),
	}

	// alphabeticChar includes the Spanish accented vowels so a question
	// written entirely with them still counts as text.
	alphabeticChar = regexp.MustCompile(`[a-záéíóúñü]`)
	controlChars   = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

type Validator struct {
	minLength    int
	maxLength    int
	blockedWords []string
}

func NewValidator(minLength, maxLength int, blockedWords []string) *Validator {
	if minLength <= 0 {
		minLength = 3
	}
	if maxLength <= 0 {
		maxLength = 500
	}

	lowered := make([]string, len(blockedWords))
	for i, w := range blockedWords {
		lowered[i] = strings.ToLower(w)
	}

	return &Validator{
		minLength:    minLength,
		maxLength:    maxLength,
		blockedWords: lowered,
	}
}

// Validate rejects empty, out-of-bounds, blocklisted, suspicious or
// purely non-alphabetic input. The returned error wraps one of the
// package sentinels.
func (v *Validator) Validate(question string) error {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return ErrEmpty
	}

	length := len([]rune(trimmed))
	if length < v.minLength {
		return fmt.Errorf("%w: %d characters, minimum %d", ErrTooShort, length, v.minLength)
	}
	if length > v.maxLength {
		return fmt.Errorf("%w: %d characters, maximum %d", ErrTooLong, length, v.maxLength)
	}

	lowered := strings.ToLower(trimmed)
	for _, word := range v.blockedWords {
		if strings.Contains(lowered, word) {
			return fmt.Errorf("%w: %q", ErrBlockedWord, word)
		}
	}

	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(lowered) {
			return ErrSuspicious
		}
	}

	if !alphabeticChar.MatchString(lowered) {
		return ErrNoAlphabetic
	}

	return nil
}

// Sanitize escapes markup-significant characters, strips control
// characters and collapses whitespace. Existing entities are unescaped
// first so the function is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	sanitized := html.EscapeString(html.UnescapeString(text))
	sanitized = controlChars.ReplaceAllString(sanitized, "")
	sanitized = whitespaceRuns.ReplaceAllString(sanitized, " ")
	return strings.TrimSpace(sanitized)
}
