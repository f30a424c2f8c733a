// Package matcher ckecks input line for containing the target string, returns bool
package matcher

import "strings"

type Matcher interface {
	Match(line string) bool
}

// New returns case-sensitive or case-insensitive Matcher for the target
func New(target string, ignoreCase bool) Matcher {
	if ignoreCase { //-i
		return ignoreCaseMatcher{target: strings.ToLower(target)}
	}
	return exactMatcher{target: target}
}

type exactMatcher struct {
	target string
}

func (m exactMatcher) Match(line string) bool {
	return strings.Contains(line, m.target)
}

// target уже в нижнем регистре
type ignoreCaseMatcher struct {
	target string
}

func (m ignoreCaseMatcher) Match(line string) bool {
	return strings.Contains(strings.ToLower(line), m.target)
}
