package locale

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsServiceName reports whether text looks like a service name rather than
// a header, total, label, or bare number. Names must be at least three
// characters, contain something besides digits and punctuation, not start
// like a known non-service label, and begin with a letter.
func (v *Vocabulary) IsServiceName(text string) bool {
	if text == "" || utf8.RuneCountInString(text) < 3 {
		return false
	}

	if v.numericOnly.MatchString(text) {
		return false
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	for _, skip := range v.skipNames {
		if skip.MatchString(lower) {
			return false
		}
	}

	first, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLetter(first)
}
