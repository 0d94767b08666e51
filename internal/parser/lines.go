package parser

import (
	"regexp"
	"strings"
)

// match is the tagged result of running a matcher against one line.
type match struct {
	ok     bool
	groups []string
}

// group returns capture i, or "" when it did not participate.
func (m match) group(i int) string {
	if !m.ok || i >= len(m.groups) {
		return ""
	}
	return m.groups[i]
}

var noMatch = match{}

// matcher tests a single line.
type matcher func(line string) match

// pattern builds a matcher from an anchored regular expression.
func pattern(expr string) matcher {
	re := regexp.MustCompile(expr)
	return func(line string) match {
		groups := re.FindStringSubmatch(line)
		if groups == nil {
			return noMatch
		}
		return match{ok: true, groups: groups}
	}
}

// first scans lines in order and returns the first match.
func first(lines []string, m matcher) (match, int) {
	for i, line := range lines {
		if r := m(line); r.ok {
			return r, i
		}
	}
	return noMatch, -1
}

// last scans lines in order and returns the final match.
func last(lines []string, m matcher) (match, int) {
	for i := len(lines) - 1; i >= 0; i-- {
		if r := m(lines[i]); r.ok {
			return r, i
		}
	}
	return noMatch, -1
}

// each calls fn for every matching line.
func each(lines []string, m matcher, fn func(match)) {
	for _, line := range lines {
		if r := m(line); r.ok {
			fn(r)
		}
	}
}

// splitLines normalises line endings and trims trailing whitespace.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, " \t\r"))
	}
	return lines
}
