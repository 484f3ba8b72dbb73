// Package gojsonpath parses and evaluates JSONPath queries.
//
// The parser is a hand-written recursive descent built on a composable
// success/failure result algebra: every grammar rule returns a result
// value carrying either the parsed node or an exact-position diagnostic,
// and rules chain through combinators instead of manual error checks.
// Failures report the message, the zero-based offset and the complete
// original query.
//
// # Quick Start
//
//	// Parse once, select many times
//	path, err := gojsonpath.Compile("$.store.book[0].title")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches := eval.Select(path, doc)
//
//	// Or in a single call
//	matches, err := gojsonpath.Select("$..price", doc)
//
// Compiled paths are immutable and safe for concurrent use.
package gojsonpath

import (
	"encoding/json"
	"fmt"

	"github.com/querylabs/gojsonpath/pkg/ast"
	"github.com/querylabs/gojsonpath/pkg/eval"
	"github.com/querylabs/gojsonpath/pkg/parser"
)

// Version returns the current version of gojsonpath.
func Version() string {
	return "v0.1.0-dev"
}

// Compile parses a JSONPath query for repeated evaluation. On failure the
// returned error is a *result.ParseError with the message, offset and
// original query.
func Compile(query string, opts ...parser.Option) (*ast.Path, error) {
	return parser.Parse(query, opts...)
}

// MustCompile is like Compile but panics if the query cannot be parsed.
// It simplifies safe initialization of global variables.
func MustCompile(query string, opts ...parser.Option) *ast.Path {
	path, err := Compile(query, opts...)
	if err != nil {
		panic(fmt.Sprintf("gojsonpath: Compile(%q): %v", query, err))
	}
	return path
}

// Select compiles query and returns the matched nodes of data in document
// order. For repeated selections with the same query, use Compile and
// eval.Select instead.
func Select(query string, data any, opts ...parser.Option) ([]any, error) {
	path, err := Compile(query, opts...)
	if err != nil {
		return nil, err
	}
	return eval.Select(path, data), nil
}

// SelectBytes decodes a JSON document and selects against it.
func SelectBytes(query string, doc []byte, opts ...parser.Option) ([]any, error) {
	path, err := Compile(query, opts...)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return eval.Select(path, data), nil
}
