// Package chart defines the shared data model the lcfrs and cfgparse
// engines build charts out of: ChartItem (a nonterminal over a span), Edge
// (one hyperedge of a derivation), the Agenda priority queue that drives
// the lcfrs CKY loop, and the packed Chart/Viterbi maps the finished parse
// returns.
//
// Two span widths exist side by side: NarrowSpan wraps a single uint64 for
// sentences under 64 tokens, WideSpan wraps a bitspan.Wide array for longer
// ones. Both satisfy the Span interface, so ChartItem, Edge, and Agenda are
// written once and work unmodified over either width — the "tagged variant
// with all operations provided as methods" shape described for LCFRS span
// polymorphism.
//
// ChartItem is a plain comparable value (Label plus a comparable Span
// implementation), so it can key a Go map directly; edges reference the
// chart items of their children by value, never by pointer, so a Chart can
// be thrown away by simply dropping the map — there is nothing else to free.
//
// This mirrors how lvlath/core keeps Vertex/Edge as small value types keyed
// by ID, and how lvlath/dijkstra and lvlath/prim_kruskal back their
// priority queues with container/heap rather than a hand-rolled heap.
package chart
