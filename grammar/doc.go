// Package grammar defines the Label, Rule, and LexicalRule value types and
// the Grammar interface consumed by the lcfrs and cfgparse engines.
//
// What:
//
//   - Label is a small integer identifying a nonterminal (or the Epsilon
//     sentinel).
//   - Rule packs an LCFRS production's yield function into two machine
//     words (Args, Lengths) rather than a tuple-of-tuples, so the hot path
//     in lcfrs.concat never allocates.
//   - Grammar is the read-only interface the engine requires; grammar
//     construction, unary closure, and tokenization are the surrounding
//     driver's job (out of scope here, per the Non-goals).
//
// Why: keeping Rule a flat, comparable value (no nested slices) lets charts
// and agendas copy edges by value without touching the heap, mirroring how
// core.Edge in the teacher graph library stays a plain value type with no
// owned pointers beyond the two vertex IDs.
//
// Errors:
//
//	ErrMalformedYield - EncodeYield was given an atom outside {0,1} or an
//	                    argument with zero atoms.
//	ErrYieldTooWide   - EncodeYield's packed result would not fit in 64 bits.
package grammar

import "errors"

// Sentinel errors for yield-function encoding.
var (
	// ErrMalformedYield indicates an atom other than 0 or 1, or an empty argument.
	ErrMalformedYield = errors.New("grammar: yield function atom must be 0 or 1, arguments must be non-empty")

	// ErrYieldTooWide indicates the yield function has more atoms than fit in 64 bits.
	ErrYieldTooWide = errors.New("grammar: yield function too wide to pack into 64 bits")
)
