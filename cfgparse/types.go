package cfgparse

import (
	"errors"

	"github.com/talent-works/disco-dop/grammar"
)

// ErrNotCovered mirrors lcfrs.ErrNotCovered: a sentence token has no
// matching lexical rule (and no tag fallback either).
var ErrNotCovered = errors.New("cfgparse: not covered")

// ErrNoParse mirrors lcfrs.ErrNoParse: the chart was built but the start
// label never derives the full sentence span.
var ErrNoParse = errors.New("cfgparse: no parse")

// CFGEdge is one hyperedge of the CFG chart: a rule applied over
// [Left, Right). Mid is the split point for a binary edge, or -1 for a
// unary or lexical edge. LeftLabel/RightLabel name the children: both
// Epsilon for a lexical edge (no children, a sentence token directly
// under Left), RightLabel Epsilon for a unary edge (one child spanning
// the same [Left, Right)).
type CFGEdge struct {
	Prob       float64 // this rule's own probability
	Inside     float64 // cumulative inside cost of the whole derivation
	RuleID     int
	Left       int
	Mid        int
	Right      int
	LeftLabel  grammar.Label
	RightLabel grammar.Label
}

// IsUnary reports whether e has no right child (unary or lexical edge).
func (e CFGEdge) IsUnary() bool { return e.RightLabel == grammar.Epsilon }

// Goal identifies the parse result: the start label's derivation of the
// full sentence span, if one was found.
type Goal struct {
	Label grammar.Label
	Left  int
	Right int
	Found bool
}

// Options configures a single Parse call, mirroring lcfrs.Options's
// functional-options shape.
type Options struct {
	// Tags, if non-nil, constrains the POS choice per position exactly as
	// lcfrs.Options.Tags does.
	Tags []string
}

// Option is a functional option for Parse.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options: no tags.
func DefaultOptions() Options {
	return Options{}
}

// WithTags supplies the per-position POS constraint.
func WithTags(tags []string) Option {
	return func(o *Options) { o.Tags = tags }
}
