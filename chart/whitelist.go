package chart

import "github.com/talent-works/disco-dop/grammar"

// WhitelistKind distinguishes the three ways a label can be pruned, per
// spec §9 ("Split-PCFG projection"): a label with no entry at all is
// unrestricted; a plain entry restricts by exact span; a split entry
// restricts a discontinuous label component-by-component, either per
// contiguous-run position (markorigin) or pooled across positions.
type WhitelistKind int

const (
	// WhitelistNone means no restriction for this label.
	WhitelistNone WhitelistKind = iota
	// WhitelistPlain restricts by exact span equality.
	WhitelistPlain
	// WhitelistSplit restricts each contiguous run against a component-
	// indexed map (markorigin mode).
	WhitelistSplit
	// WhitelistSplitShared restricts each contiguous run against one
	// shared map regardless of its component index.
	WhitelistSplitShared
)

// LabelWhitelist is the pruning table for one label. A present entry with
// zero keys blocks every item under that label; a missing entry (the zero
// value, Kind == WhitelistNone) means unrestricted.
type LabelWhitelist struct {
	Kind        WhitelistKind
	Plain       map[Span]struct{}
	Split       []map[Span]struct{}
	SplitShared map[Span]struct{}
}

// Whitelist maps labels to their pruning table. A label absent from the map
// is unrestricted.
type Whitelist map[grammar.Label]*LabelWhitelist

// allowsPlain reports whether span passes whitelist pruning in plain mode:
// membership by exact span.
func (lw *LabelWhitelist) allowsPlain(span Span) bool {
	_, ok := lw.Plain[span]

	return ok
}

// allowsComponent reports whether one contiguous run (as its own
// component Span, plus its 0-based position among the item's runs) passes
// split-mode pruning.
func (lw *LabelWhitelist) allowsComponent(component Span, position int, markorigin bool) bool {
	if markorigin {
		if position >= len(lw.Split) {
			return false
		}
		_, ok := lw.Split[position][component]

		return ok
	}
	_, ok := lw.SplitShared[component]

	return ok
}

// Check applies whitelist pruning to item per spec §4.2 "Whitelist
// pruning". splitprune enables the discontinuous-label projection path;
// markorigin selects per-position vs. shared component lookup within it.
// fanout is the label's declared fanout (number of contiguous components a
// well-formed derivation of it has); splitprune only applies when fanout > 1.
func (w Whitelist) Check(item ChartItem, fanout int, splitprune, markorigin bool) bool {
	lw, ok := w[item.Label]
	if !ok || lw == nil || lw.Kind == WhitelistNone {
		return true
	}

	if lw.Kind == WhitelistPlain || !splitprune || fanout <= 1 {
		return lw.allowsPlain(item.Span)
	}

	for i, run := range item.Span.Runs() {
		component := item.Span.ComponentSpan(run[0], run[1])
		if !lw.allowsComponent(component, i, markorigin) {
			return false
		}
	}

	return true
}
