package inflector

import (
	"reflect"
	"strconv"

	"github.com/osteele/go-extras/pkg/inflector/internal"
)

// Number covers the built-in numeric kinds accepted by Quantify and WithCommas.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is a Number or an already rendered number string such as "$1234.5".
type Value interface {
	Number | ~string
}

// Pluralize returns the regular English plural of word.
//
// Suffix rules only, first match wins: "s"/"sh"/"ch" and "o" endings take
// "es", a "y" after a consonant becomes "ies", everything else takes "s".
// There is no irregular-noun table; callers needing "person" -> "people"
// consult their own lookup before falling back here. The rule set also works
// for weak-verb conjugation ("walk" -> "walks").
func Pluralize(word string) string {
	return internal.Defaults.Inflected(internal.Plural, word)
}

// Quantify pairs n with word, pluralized unless n is exactly 1.
// The count is rendered with thousands separators.
func Quantify[N Number](word string, n N) string {
	w := word
	if n != 1 {
		w = Pluralize(word)
	}
	return WithCommas(n) + " " + w
}

// Humanize renders a byte count with the largest applicable decimal unit
// (kB through YB) and one fixed decimal place. Counts below 1000 keep their
// integer form with a plain "B" suffix. Negative counts clamp to 0.
func Humanize(byteCount int64) string {
	return internal.HumanizeBytes(byteCount)
}

// WithCommas renders v in its canonical decimal form and inserts a comma
// every three digits through the integer portion. Signs, fractional digits
// and non-digit prefixes ("$1234.5") are preserved. String input must be an
// ungrouped canonical rendering; already grouped strings are outside the
// supported domain.
func WithCommas[V Value](v V) string {
	return internal.GroupDigits(canonical(v))
}

func canonical(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}
