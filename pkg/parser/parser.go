// Package parser implements a recursive-descent parser for JSONPath
// queries.
//
// Every grammar production is a function returning a result.Result, and
// productions compose exclusively through the result combinators: Bind
// sequences one rule into the next, TailRec drives the unbounded segment
// repetition in constant stack space, and Traverse parses bracketed
// selector lists fail-fast in source order. The parser never recovers or
// resynchronizes: the first failure is final and carries the exact offset
// at which parsing stopped.
package parser

import (
	"github.com/querylabs/gojsonpath/pkg/ast"
	"github.com/querylabs/gojsonpath/pkg/result"
)

// Options configure parsing behavior.
type Options struct {
	// StrictRoot requires the query to begin with the $ root identifier.
	// When false, a query may also begin with a bare member name, as in
	// a.b[0].
	StrictRoot bool
}

// Option configures the parser.
type Option func(*Options)

// WithStrictRoot requires the leading $ root identifier.
func WithStrictRoot() Option {
	return func(o *Options) {
		o.StrictRoot = true
	}
}

// Parse parses a JSONPath query into its AST. On failure the returned
// error is a *result.ParseError carrying the message, offset and original
// input. This is the package's unwrap boundary; callers that keep
// composing should use ParseResult instead.
func Parse(input string, opts ...Option) (*ast.Path, error) {
	return ParseResult(input, opts...).Get()
}

// ParseResult parses a JSONPath query, returning the raw result value.
func ParseResult(input string, opts ...Option) result.Result[*ast.Path] {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	return newParser(input, options).parsePath()
}
