// Package eval applies parsed JSONPath queries to decoded JSON documents.
//
// Documents are the usual encoding/json shapes: map[string]any for
// objects, []any for arrays, and scalars. Selection is pure: the input
// document is never mutated, and a missing member selects nothing rather
// than failing.
package eval

import (
	"sort"

	"github.com/querylabs/gojsonpath/pkg/ast"
)

// Select returns the nodes of data matched by p, in document order.
// Object members are visited in sorted key order so results are
// deterministic across runs.
func Select(p *ast.Path, data any) []any {
	nodes := []any{data}
	for _, seg := range p.Segments {
		nodes = applySegment(seg, nodes)
	}
	return nodes
}

func applySegment(seg ast.Segment, nodes []any) []any {
	var out []any
	for _, node := range nodes {
		if seg.Descendant {
			for _, desc := range descendants(node) {
				out = append(out, applySelectors(seg.Selectors, desc)...)
			}
			continue
		}
		out = append(out, applySelectors(seg.Selectors, node)...)
	}
	return out
}

// descendants returns node and every node below it, pre-order.
func descendants(node any) []any {
	out := []any{node}
	for _, child := range children(node) {
		out = append(out, descendants(child)...)
	}
	return out
}

// children returns the immediate child nodes: object member values in
// sorted key order, array elements in order, nothing for scalars.
func children(node any) []any {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, v[k])
		}
		return out
	case []any:
		return v
	default:
		return nil
	}
}

func applySelectors(sels []ast.Selector, node any) []any {
	var out []any
	for _, sel := range sels {
		out = append(out, applySelector(sel, node)...)
	}
	return out
}

func applySelector(sel ast.Selector, node any) []any {
	switch sel.Kind {
	case ast.SelectorName:
		if obj, ok := node.(map[string]any); ok {
			if v, ok := obj[sel.Name]; ok {
				return []any{v}
			}
		}
	case ast.SelectorWildcard:
		return children(node)
	case ast.SelectorIndex:
		if arr, ok := node.([]any); ok {
			i := sel.Index
			if i < 0 {
				i += int64(len(arr))
			}
			if i >= 0 && i < int64(len(arr)) {
				return []any{arr[i]}
			}
		}
	case ast.SelectorSlice:
		if arr, ok := node.([]any); ok {
			return applySlice(sel, arr)
		}
	}
	return nil
}

// applySlice evaluates a slice selector with the standard normalization:
// negative bounds count from the end, defaults depend on the step's
// direction, and out-of-range bounds clamp to the array.
func applySlice(sel ast.Selector, arr []any) []any {
	n := int64(len(arr))
	step := int64(1)
	if sel.Step != nil {
		step = *sel.Step
	}
	// The parser rejects a zero step; guard anyway for hand-built ASTs.
	if step == 0 {
		return nil
	}

	var start, end int64
	switch {
	case step > 0:
		start, end = 0, n
	default:
		start, end = n-1, -n-1
	}
	if sel.Start != nil {
		start = *sel.Start
	}
	if sel.End != nil {
		end = *sel.End
	}
	if sel.Start != nil && start < 0 {
		start += n
	}
	if sel.End != nil && end < 0 {
		end += n
	}

	var out []any
	if step > 0 {
		lower := clamp(start, 0, n)
		upper := clamp(end, 0, n)
		for i := lower; i < upper; i += step {
			out = append(out, arr[i])
		}
	} else {
		upper := clamp(start, -1, n-1)
		lower := clamp(end, -1, n-1)
		for i := upper; i > lower; i += step {
			out = append(out, arr[i])
		}
	}
	return out
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
