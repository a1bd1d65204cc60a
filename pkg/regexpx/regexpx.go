// Package regexpx wraps the submatch plumbing of regexp in friendlier
// shapes.
package regexpx

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/osteele/go-extras/pkg/maybe"
)

// CompileAnchored compiles pattern so it must match the whole input.
func CompileAnchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot compile anchored pattern %q", pattern)
	}
	return re, nil
}

// FirstMatch wraps the first match of re in s in a Maybe.
func FirstMatch(re *regexp.Regexp, s string) maybe.Maybe[string] {
	if loc := re.FindStringIndex(s); loc != nil {
		return maybe.Some(s[loc[0]:loc[1]])
	}
	return maybe.None[string]()
}

// Submatches returns the submatches of the first match of re in s, without
// the leading full-match element.
func Submatches(re *regexp.Regexp, s string) ([]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Named returns the named submatches of the first match of re in s.
// Unnamed groups are skipped.
func Named(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	names := re.SubexpNames()
	out := make(map[string]string, len(names))
	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		out[name] = m[i]
	}
	return out, true
}
