// Package pattern decides whether a directory name is selected by a
// rule's match and exclude patterns.
//
// Patterns come in two compiled forms: a plain substring test, and a
// glob matched against the whole name. The form is fixed when the
// configuration is loaded, so a malformed pattern can never surface
// during a sweep.
package pattern

import (
	"fmt"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// Kind is the compiled form of a pattern source string.
type Kind int

const (
	// Substring matches when the pattern occurs anywhere in the name.
	Substring Kind = iota
	// Glob matches the whole name, with "*" and "?" wildcards.
	Glob
)

// Pattern is one compiled match or exclude pattern. Patterns test the
// leaf name of a directory only, never its full path.
type Pattern struct {
	kind Kind
	text string
}

// Compile picks the pattern kind from the source string: anything
// containing "*" or "?" becomes a Glob, everything else a Substring.
// Empty or blank sources are rejected.
func Compile(src string) (Pattern, error) {
	if strings.TrimSpace(src) == "" {
		return Pattern{}, fmt.Errorf("empty pattern")
	}
	if strings.ContainsAny(src, "*?") {
		return Pattern{kind: Glob, text: src}, nil
	}
	return Pattern{kind: Substring, text: src}, nil
}

func (p Pattern) Kind() Kind     { return p.kind }
func (p Pattern) String() string { return p.text }

func (p Pattern) Matches(name string) bool {
	if p.kind == Glob {
		return wildcard.Match(p.text, name)
	}
	return strings.Contains(name, p.text)
}

// RuleSet holds the compiled match and exclude patterns of one rule.
type RuleSet struct {
	match   []Pattern
	exclude []Pattern
}

// CompileSet compiles both pattern lists. The first bad pattern stops
// compilation and reports which list it came from.
func CompileSet(match, exclude []string) (RuleSet, error) {
	var rs RuleSet
	for _, src := range match {
		p, err := Compile(src)
		if err != nil {
			return RuleSet{}, fmt.Errorf("match pattern %q: %w", src, err)
		}
		rs.match = append(rs.match, p)
	}
	for _, src := range exclude {
		p, err := Compile(src)
		if err != nil {
			return RuleSet{}, fmt.Errorf("exclude pattern %q: %w", src, err)
		}
		rs.exclude = append(rs.exclude, p)
	}
	return rs, nil
}

// Excluded reports whether any exclude pattern matches name.
func (rs RuleSet) Excluded(name string) bool {
	for _, p := range rs.exclude {
		if p.Matches(name) {
			return true
		}
	}
	return false
}

// Matched reports whether name passes the match list. An empty match
// list matches every name.
func (rs RuleSet) Matched(name string) bool {
	if len(rs.match) == 0 {
		return true
	}
	for _, p := range rs.match {
		if p.Matches(name) {
			return true
		}
	}
	return false
}

// Selected reports whether name is selected by the rule set. Exclude
// always takes precedence over match: a name excluded by any pattern
// is never selected, even if the identical pattern is also in the
// match list.
func (rs RuleSet) Selected(name string) bool {
	return rs.Matched(name) && !rs.Excluded(name)
}
