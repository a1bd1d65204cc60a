package internal

import "strings"

// GroupDigits inserts a comma every three digits leftward from the decimal
// point through the integer portion of s. The fractional portion, the sign
// and any other non-digit prefix (a currency marker, say) ride along
// untouched, the prefix staying attached to the leading digit group.
//
// s must be a canonical, ungrouped rendering. Feeding an already grouped
// string back in is outside the supported domain.
func GroupDigits(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	// the trailing digit run of the integer portion is what gets grouped
	end := len(intPart)
	start := end
	for start > 0 && intPart[start-1] >= '0' && intPart[start-1] <= '9' {
		start--
	}

	if end-start <= 3 {
		return s
	}

	var b strings.Builder
	b.WriteString(intPart[:start])

	head := start + (end-start)%3
	if head > start {
		b.WriteString(intPart[start:head])
	}
	for i := head; i < end; i += 3 {
		if i > start {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	b.WriteString(frac)
	return b.String()
}
