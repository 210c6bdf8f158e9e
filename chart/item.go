package chart

import "github.com/talent-works/disco-dop/grammar"

// ChartItem identifies a single (nonterminal, span) pair. It is a plain
// comparable value — Span implementations are themselves comparable
// concrete types — so ChartItem keys Go maps directly.
type ChartItem struct {
	Label grammar.Label
	Span  Span
}

// NONE is the sentinel chart item used as a backpointer placeholder for
// lexical and unary edges (no right child) and as the "no parse" goal
// result. Its Span is nil; Edge.Right.Label == grammar.Epsilon is what
// callers actually test to detect "no right child", per spec — NONE itself
// is never dereferenced for its Span.
var NONE = ChartItem{Label: grammar.Epsilon, Span: nil}

// IsNone reports whether item is the NONE sentinel.
func (item ChartItem) IsNone() bool {
	return item.Label == grammar.Epsilon && item.Span == nil
}
