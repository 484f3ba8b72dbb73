// Package ast defines the abstract syntax tree for parsed JSONPath
// queries. Nodes are plain values, immutable after parsing, and safe to
// share across goroutines.
package ast

import (
	"strconv"
	"strings"
)

// SelectorKind identifies what a selector matches inside a segment.
type SelectorKind uint8

const (
	// SelectorName matches a single object member by name.
	SelectorName SelectorKind = iota
	// SelectorWildcard matches every member or element.
	SelectorWildcard
	// SelectorIndex matches one array element; negative counts from the end.
	SelectorIndex
	// SelectorSlice matches an array range with Python slice semantics.
	SelectorSlice
)

// Selector is one alternative inside a bracketed segment, or the single
// selector of a dot segment. Only the fields relevant to Kind are set.
type Selector struct {
	Kind  SelectorKind
	Name  string
	Index int64

	// Slice bounds; nil means "not supplied" and follows the usual
	// defaulting rules for the step's direction.
	Start *int64
	End   *int64
	Step  *int64
}

// Segment is one navigation step of a path. A descendant segment applies
// its selectors to every node of the subtree instead of only the
// immediate children.
type Segment struct {
	Descendant bool
	Selectors  []Selector
}

// Path is the root of a parsed query. Input retains the original source
// text the path was parsed from.
type Path struct {
	Segments []Segment
	Input    string
}

// String renders the canonical bracketed normal form, e.g. $['a'][0] with
// descendant segments as ..[...]. Parsing the rendered form yields an
// equivalent path.
func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p.Segments {
		if seg.Descendant {
			b.WriteString("..")
		}
		b.WriteByte('[')
		for i, sel := range seg.Selectors {
			if i > 0 {
				b.WriteByte(',')
			}
			sel.write(&b)
		}
		b.WriteByte(']')
	}
	return b.String()
}

func (s Selector) write(b *strings.Builder) {
	switch s.Kind {
	case SelectorName:
		b.WriteByte('\'')
		b.WriteString(escapeName(s.Name))
		b.WriteByte('\'')
	case SelectorWildcard:
		b.WriteByte('*')
	case SelectorIndex:
		b.WriteString(strconv.FormatInt(s.Index, 10))
	case SelectorSlice:
		if s.Start != nil {
			b.WriteString(strconv.FormatInt(*s.Start, 10))
		}
		b.WriteByte(':')
		if s.End != nil {
			b.WriteString(strconv.FormatInt(*s.End, 10))
		}
		if s.Step != nil {
			b.WriteByte(':')
			b.WriteString(strconv.FormatInt(*s.Step, 10))
		}
	}
}

func escapeName(name string) string {
	if !strings.ContainsAny(name, `'\`) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
