package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a title:
//   - lowercases
//   - keeps letters and digits
//   - collapses every run of whitespace and punctuation into one hyphen
//   - trims leading/trailing hyphens
//
// The function is pure and idempotent on an already-slugified string.
// Uniqueness is the caller's concern: a collision must surface as
// ErrDuplicateSlug, never be auto-suffixed.
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
