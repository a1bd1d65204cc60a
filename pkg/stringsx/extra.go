package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s, leaving the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Truncate shortens s to at most max runes, replacing the cut tail with a
// single ellipsis rune that counts toward the limit.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}
