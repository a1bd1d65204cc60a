package internal

import (
	"regexp"
	"sync"

	"github.com/pkg/errors"
)

type RuleType int

const (
	Plural RuleType = iota
)

// RuleItem is one suffix rule: when Pattern matches, the word is rewritten
// with Replacement.
type RuleItem struct {
	Pattern     string
	Replacement string
}

type CompiledRule struct {
	Replacement string
	Regexp      *regexp.Regexp
}

// Rule is an ordered suffix rule set. Rules are tried in order and the first
// matching pattern wins; a word matching no pattern gets Fallback appended.
type Rule struct {
	Type     RuleType
	Rules    []*RuleItem
	Fallback string

	compiledRules []*CompiledRule

	cache sync.Map
}

func (r *Rule) Inflected(s string) string {
	inflected, _ := r.cache.LoadOrStore(s, sync.OnceValue(func() string {
		return r.inflected(s)
	}))
	return inflected.(func() string)()
}

func (r *Rule) inflected(s string) string {
	for _, re := range r.compiledRules {
		if re.Regexp.MatchString(s) {
			return re.Regexp.ReplaceAllString(s, re.Replacement)
		}
	}
	return s + r.Fallback
}

func (r *Rule) Init() error {
	r.compiledRules = make([]*CompiledRule, len(r.Rules))

	for i, item := range r.Rules {
		re, err := regexp.Compile(item.Pattern)
		if err != nil {
			return errors.Wrapf(err, "invalid rule pattern %q", item.Pattern)
		}
		r.compiledRules[i] = &CompiledRule{item.Replacement, re}
	}

	return nil
}
