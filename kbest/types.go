package kbest

import "errors"

// ErrNoGoal is returned when KBest is asked to enumerate derivations for
// a goal item the parse never admitted (chart.NONE).
var ErrNoGoal = errors.New("kbest: no goal item")

// MaxDepthDefault bounds the recursive derivation walk (spec's guard
// against a malformed or cyclic chart): no well-formed derivation from a
// realistic grammar nests this deep.
const MaxDepthDefault = 100

// BacktrackMode selects how much structure explore_derivation builds
// alongside the derivation string, mirroring dtw.MemoryMode's tradeoff
// between minimal-overhead and fully-materialized output.
type BacktrackMode int

const (
	// StringOnly emits just the derivation string (default): minimal
	// allocation, the common case when only the bracketed tree text is
	// wanted.
	StringOnly BacktrackMode = iota

	// WithTree additionally builds a *Node tree alongside the string, for
	// callers that want to walk or transform the derivation structurally.
	WithTree
)

// Node is one constituent of a materialized derivation tree, built only
// when Options.Backtrack is WithTree.
type Node struct {
	Label      string
	IsTerminal bool
	Pos        int // sentence position, valid only when IsTerminal
	Children   []*Node
}

// Derivation is one ranked output of KBest: its bracketed string, total
// inside cost, and (optionally) its structured tree.
type Derivation struct {
	String string
	Inside float64
	Tree   *Node
}

// Options configures a KBest call.
type Options struct {
	// DebinarizationMarker, if non-empty, names a substring that marks a
	// label as grammar-binarization scaffolding: when a label contains it,
	// explore splices that node's children up into its parent instead of
	// wrapping them in their own parenthesized group.
	DebinarizationMarker string

	// MaxDepth caps the recursive derivation walk. Zero means
	// MaxDepthDefault.
	MaxDepth int

	// Backtrack selects whether explore also builds a *Node tree.
	Backtrack BacktrackMode
}

// Option is a functional option for KBest.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options: no debinarization
// marker, MaxDepthDefault, StringOnly.
func DefaultOptions() Options {
	return Options{MaxDepth: MaxDepthDefault}
}

// WithDebinarizationMarker installs the binarization-scaffolding marker.
func WithDebinarizationMarker(marker string) Option {
	return func(o *Options) { o.DebinarizationMarker = marker }
}

// WithMaxDepth overrides the recursion depth cap. Panics on a
// non-positive value, mirroring lcfrs.WithBeamwidth's guard against a
// structurally invalid option.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth <= 0 {
			panic("kbest: MaxDepth must be positive")
		}
		o.MaxDepth = depth
	}
}

// WithBacktrack selects the backtrack mode.
func WithBacktrack(mode BacktrackMode) Option {
	return func(o *Options) { o.Backtrack = mode }
}
