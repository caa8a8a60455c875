package services

import (
	"strings"
	"unicode"
)

// ContentFilter rejects rating text containing any blocked word. Matching is
// case-insensitive and on whole words only. A nil or empty filter allows
// everything.
type ContentFilter struct {
	blocked map[string]struct{}
}

func NewContentFilter(words []string) *ContentFilter {
	blocked := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			blocked[w] = struct{}{}
		}
	}
	return &ContentFilter{blocked: blocked}
}

func (f *ContentFilter) Enabled() bool {
	return f != nil && len(f.blocked) > 0
}

// Allows reports whether text is free of blocked words.
func (f *ContentFilter) Allows(text string) bool {
	if !f.Enabled() {
		return true
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	for _, word := range words {
		if _, ok := f.blocked[strings.Trim(word, "'")]; ok {
			return false
		}
	}
	return true
}
