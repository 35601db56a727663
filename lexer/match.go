// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/dlclark/regexp2"
)

type (
	// Match exposes a rule's match to its Callback.
	Match struct {
		m   *regexp2.Match
		src *source
	}

	// source pairs the scanned string with its runes; offsets maps rune to byte positions so
	// lexemes are sliced from the original bytes, invalid UTF-8 included.
	source struct {
		text    string
		runes   []rune
		offsets []int
	}
)

func newSource(text string) *source {
	s := &source{
		text:    text,
		runes:   make([]rune, 0, len(text)),
		offsets: make([]int, 0, len(text)+1),
	}

	for offset, r := range text {
		s.runes = append(s.runes, r)
		s.offsets = append(s.offsets, offset)
	}
	s.offsets = append(s.offsets, len(text))

	return s
}

// slice retrieves the text between rune positions start & end.
func (s *source) slice(start, end int) string { return s.text[s.offsets[start]:s.offsets[end]] }

// Text retrieves the whole match.
func (m *Match) Text() string { return m.src.slice(m.m.Index, m.m.Index+m.m.Length) }

// Len retrieves the match length in runes.
func (m *Match) Len() int { return m.m.Length }

// Groups retrieves the number of capture groups, excluding the whole match.
func (m *Match) Groups() int { return m.m.GroupCount() - 1 }

// Group retrieves a numbered capture group; 0 is the whole match, a missing group is empty.
func (m *Match) Group(n int) string { return m.group(m.m.GroupByNumber(n)) }

// NamedGroup retrieves a named capture group; a missing group is empty.
func (m *Match) NamedGroup(name string) string { return m.group(m.m.GroupByName(name)) }

func (m *Match) group(g *regexp2.Group) string {
	if g == nil || g.Length == 0 {
		return ""
	}

	return m.src.slice(g.Index, g.Index+g.Length)
}
