package platform

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FallbackFilename is used when a title sanitizes to nothing
const FallbackFilename = "video"

// SanitizeFilename turns a display title into a lowercase ASCII slug made of
// [a-z0-9-]. Accents are stripped (NFKD, non-ASCII dropped), whitespace is
// deleted, any other character becomes a single '-', and the slug never starts
// or ends with '-'.
func SanitizeFilename(raw string) string {
	if raw == "" {
		return FallbackFilename
	}

	decomposed := norm.NFKD.String(raw)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastDash := false
	for _, r := range decomposed {
		if r > unicode.MaxASCII || isWhitespace(r) {
			continue
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return FallbackFilename
	}
	return slug
}

// isWhitespace also treats the ASCII separators U+001C..U+001F as whitespace
func isWhitespace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
