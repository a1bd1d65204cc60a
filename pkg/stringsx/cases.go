package stringsx

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	LowerSnakeCase = joinWords("_", perWord(strings.ToLower))
	UpperSnakeCase = joinWords("_", perWord(strings.ToUpper))
	LowerKebabCase = joinWords("-", perWord(strings.ToLower))
	UpperKebabCase = joinWords("-", perWord(strings.ToUpper))

	LowerCamelCase = joinWords("", func(w string, i int) string {
		if i == 0 {
			return strings.ToLower(w)
		}
		return titleWord(w)
	})
	UpperCamelCase = joinWords("", func(w string, i int) string {
		return titleWord(w)
	})
)

func titleWord(w string) string {
	// "ID" stays "ID" whichever way it was written
	if strings.EqualFold(w, "ID") {
		return "ID"
	}
	return cases.Title(language.Und).String(w)
}

func perWord(trans func(w string) string) func(w string, i int) string {
	return func(w string, i int) string {
		return trans(w)
	}
}

func joinWords(sep string, trans func(w string, i int) string) func(s string) string {
	return func(s string) string {
		var b strings.Builder
		i := 0

		for _, w := range Words(s) {
			if !hasAlnum(w) {
				continue
			}
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(trans(w, i))
			i++
		}

		return b.String()
	}
}

func hasAlnum(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
