package chart

import "github.com/talent-works/disco-dop/grammar"

// Chart maps every derivable ChartItem to every Edge discovered for it. The
// Viterbi (best) edge is tracked separately; Chart holds the full
// derivation forest, consumed read-only by the k-best enumerator.
//
// A Chart must not be mutated once the parse that built it has returned.
type Chart map[ChartItem][]Edge

// Viterbi indexes, per label, the best (minimum-Inside) edge known for each
// ChartItem. Invariant: if item is a key of Viterbi[label], item is also a
// key of Chart and Viterbi[label][item] has the minimum Inside among
// Chart[item].
type Viterbi map[grammar.Label]map[ChartItem]Edge

// Get returns the Viterbi edge for item, if one has been recorded.
func (v Viterbi) Get(item ChartItem) (Edge, bool) {
	byItem, ok := v[item.Label]
	if !ok {
		return Edge{}, false
	}
	e, ok := byItem[item]

	return e, ok
}

// Set records edge as the Viterbi edge for item.
func (v Viterbi) Set(item ChartItem, edge Edge) {
	byItem, ok := v[item.Label]
	if !ok {
		byItem = make(map[ChartItem]Edge)
		v[item.Label] = byItem
	}
	byItem[item] = edge
}

// RankedEdge identifies "the edge Edge derives Head using the RankLeft-th
// best derivation of its left child and the RankRight-th best of its right
// child (RankRight == -1 when Edge has no right child)". It is the unit of
// work the lazy k-best enumerator ranks and memoizes.
type RankedEdge struct {
	Head      ChartItem
	Edge      Edge
	RankLeft  int
	RankRight int
}
