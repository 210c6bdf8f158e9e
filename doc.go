// Package discodop is a probabilistic LCFRS/CFG chart-parsing engine: an
// agenda-driven CKY parser over bitvector span encodings (package lcfrs),
// a dense-table CKY parser for the context-free special case (package
// cfgparse), and a lazy k-best derivation enumerator over the LCFRS chart
// (package kbest).
//
// Subpackages:
//
//	bitspan/  — narrow/wide bit-span primitives (union, intersect, runs)
//	grammar/  — the Grammar interface and yield-function bit-packing
//	chart/    — chart items, edges, the decrease-key agenda, whitelists
//	lcfrs/    — the full discontinuous-constituent LCFRS parser
//	cfgparse/ — the plain-CFG CKY parser (fast path, fanout 1 everywhere)
//	kbest/    — the lazy k-best derivation enumerator
//
// Parse, at the root, picks between lcfrs and cfgparse automatically and
// optionally runs k-best over the result; see its doc comment for the
// selection rule.
//
// No I/O, no concurrency: parsing is single-threaded and synchronous.
// The surrounding driver owns grammar construction and any file or
// network access.
package discodop
