package stringsx

import (
	"unicode"
	"unicode/utf8"
)

type runeClass int

const (
	classOther runeClass = iota
	classLower
	classUpper
	classDigit
)

func classOf(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	}
	return classOther
}

// Words splits src into its camel-case words. Runs of the same rune class
// stay together, digits stick to the word they follow, and a run of upper
// case letters followed by a lower case letter donates its last letter to
// the next word ("PDFLoader" -> "PDF", "Loader"). Strings that are not
// valid UTF-8 are returned unsplit.
func Words(src string) []string {
	if !utf8.ValidString(src) {
		return []string{src}
	}

	var groups [][]rune
	last := classOther

	for i, r := range src {
		c := classOf(r)

		joins := i > 0 && (c == last ||
			(c == classDigit && last != classOther) ||
			(c == classLower && last == classDigit))

		if joins {
			groups[len(groups)-1] = append(groups[len(groups)-1], r)
		} else {
			groups = append(groups, []rune{r})
		}
		last = c
	}

	// "PDFL","oader" -> "PDF","Loader"
	for i := 0; i < len(groups)-1; i++ {
		g, next := groups[i], groups[i+1]
		if unicode.IsUpper(g[0]) && unicode.IsLower(next[0]) {
			groups[i+1] = append([]rune{g[len(g)-1]}, next...)
			groups[i] = g[:len(g)-1]
		}
	}

	words := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			words = append(words, string(g))
		}
	}

	return words
}
