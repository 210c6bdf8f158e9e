// Package kbest implements the lazy k-best derivation enumerator of
// spec.md §4.4: Huang & Chiang's lazy-k-best-on-hypergraph algorithm
// specialized to a finished lcfrs.Parse chart. It never re-derives a
// chart item's edges; it only re-ranks the already-discovered ones,
// memoizing per-item "already extracted" (D) and "frontier" (cand) state
// exactly as lcfrs.runner memoizes chart/viterbi.
package kbest

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
)

// KBest enumerates up to k best derivations of goal in the finished chart
// c, under grammar g (consulted only for ToLabel, to render node names).
// Results are sorted by Inside ascending with no duplicates (spec
// testable properties 7, 8); k=1 always returns the Viterbi derivation.
func KBest(c chart.Chart, g grammar.Grammar, goal chart.ChartItem, k int, opts ...Option) ([]Derivation, error) {
	if goal.IsNone() {
		return nil, ErrNoGoal
	}
	if k <= 0 {
		return nil, nil
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth == 0 {
		options.MaxDepth = MaxDepthDefault
	}

	s := &state{
		c:        c,
		g:        g,
		opts:     options,
		D:        make(map[chart.ChartItem][]chart.RankedEdge),
		cand:     make(map[chart.ChartItem]*candHeap),
		explored: make(map[chart.RankedEdge]struct{}),
	}

	s.lazyKthBest(goal, k, k)

	derivations := make([]Derivation, 0, k)
	for i := 0; i < k && i < len(s.D[goal]); i++ {
		re := s.D[goal][i]
		str, node, ok := s.explore(re, 0)
		if !ok {
			continue
		}
		derivations = append(derivations, Derivation{String: str, Inside: re.Edge.Inside, Tree: node})
	}

	return derivations, nil
}

// state holds one KBest call's memoization tables, the same shape as
// spec §4.4 prescribes: D, cand, explored.
type state struct {
	c    chart.Chart
	g    grammar.Grammar
	opts Options

	D        map[chart.ChartItem][]chart.RankedEdge
	cand     map[chart.ChartItem]*candHeap
	explored map[chart.RankedEdge]struct{}
}

// lazyKthBest ensures D[v] holds at least min(k, reachable) entries.
func (s *state) lazyKthBest(v chart.ChartItem, k, kGlobal int) {
	if v.Label == grammar.Epsilon {
		return // terminal placeholder, not a real chart vertex
	}
	if _, ok := s.cand[v]; !ok {
		s.seed(v, kGlobal)
	}

	for len(s.D[v]) < k && s.cand[v].Len() > 0 {
		if len(s.D[v]) >= 1 {
			last := s.D[v][len(s.D[v])-1]
			s.lazyNext(last, kGlobal)
		}
		top := heap.Pop(s.cand[v]).(candEntry)
		s.D[v] = append(s.D[v], top.re)
	}
}

// seed initializes cand[v] with the kGlobal best raw edges of v, each as
// rank (0, 0-or--1).
func (s *state) seed(v chart.ChartItem, kGlobal int) {
	edges := append([]chart.Edge(nil), s.c[v]...)
	sort.Slice(edges, func(i, j int) bool { return edges[i].Inside < edges[j].Inside })
	if len(edges) > kGlobal {
		edges = edges[:kGlobal]
	}

	h := &candHeap{}
	heap.Init(h)
	s.cand[v] = h
	s.D[v] = nil

	for _, e := range edges {
		rankRight := 0
		if e.IsUnary() {
			rankRight = -1
		}
		re := chart.RankedEdge{Head: v, Edge: e, RankLeft: 0, RankRight: rankRight}
		cost, ok := s.getProb(re, kGlobal)
		if !ok {
			continue
		}
		heap.Push(h, candEntry{re: re, cost: cost})
		s.explored[re] = struct{}{}
	}
}

// lazyNext pushes ej's two rank-advanced successors (skipping the right
// side when ej has no right child) into cand[ej.Head].
func (s *state) lazyNext(ej chart.RankedEdge, kGlobal int) {
	// Left successor. A terminal left child has exactly one derivation
	// (itself), so there is no rank to advance to.
	if ej.Edge.Left.Label != grammar.Epsilon {
		newRank := ej.RankLeft + 1
		s.offerSuccessor(ej, newRank, ej.RankRight, ej.Edge.Left, newRank, kGlobal)
	}

	if ej.RankRight < 0 {
		return
	}
	// Right successor.
	newRankRight := ej.RankRight + 1
	s.offerSuccessor(ej, ej.RankLeft, newRankRight, ej.Edge.Right, newRankRight, kGlobal)
}

// offerSuccessor builds the candidate ej' = ej with one side's rank
// advanced to newRank, ensures child has newRank+1 derivations memoized
// (so index newRank is valid, if reachable at all), and pushes ej' into
// cand[ej.Head] if it clears both the explored-set check and the
// "rank < |D[child]|" check.
func (s *state) offerSuccessor(ej chart.RankedEdge, rankLeft, rankRight int, child chart.ChartItem, newRank, kGlobal int) {
	ejPrime := ej
	ejPrime.RankLeft, ejPrime.RankRight = rankLeft, rankRight

	s.lazyKthBest(child, newRank+1, kGlobal)

	if _, seen := s.explored[ejPrime]; seen {
		return
	}
	if newRank >= len(s.D[child]) {
		return
	}

	cost, ok := s.getProb(ejPrime, kGlobal)
	if !ok {
		return
	}
	heap.Push(s.cand[ej.Head], candEntry{re: ejPrime, cost: cost})
	s.explored[ejPrime] = struct{}{}
}

// getProb sums re's own rule probability plus the inside cost of its
// children at the requested ranks, recursively materializing whichever
// ranks aren't memoized yet.
func (s *state) getProb(re chart.RankedEdge, kGlobal int) (float64, bool) {
	cost := re.Edge.Prob

	leftInside, ok := s.childInside(re.Edge.Left, re.RankLeft, kGlobal)
	if !ok {
		return 0, false
	}
	cost += leftInside

	if re.RankRight >= 0 {
		rightInside, ok := s.childInside(re.Edge.Right, re.RankRight, kGlobal)
		if !ok {
			return 0, false
		}
		cost += rightInside
	}

	return cost, true
}

func (s *state) childInside(item chart.ChartItem, rank, kGlobal int) (float64, bool) {
	if item.Label == grammar.Epsilon {
		// A terminal leaf has exactly one derivation, itself, at rank 0
		// and zero cost by definition; any higher rank doesn't exist.
		return 0, rank == 0
	}
	s.lazyKthBest(item, rank+1, kGlobal)
	if rank >= len(s.D[item]) {
		return 0, false
	}

	return s.D[item][rank].Edge.Inside, true
}

// explore implements spec §4.4's explore_derivation: a recursive inorder
// walk rendering "(LABEL CHILD1 CHILD2)", terminals as their input
// position, splicing any debinarization-marked label's children into its
// parent. Returns ok=false if a required rank was never materialized
// (the caller skips that derivation, per spec's "reject ... returns
// false" contract) or the depth cap is exceeded.
func (s *state) explore(re chart.RankedEdge, depth int) (string, *Node, bool) {
	if depth > s.opts.MaxDepth {
		return "", nil, false
	}

	label := s.g.ToLabel(re.Head.Label)

	if re.Edge.Left.Label == grammar.Epsilon {
		pos := re.Edge.Left.Span.NextSet(0)
		str := fmt.Sprintf("(%s %d)", label, pos)
		var node *Node
		if s.opts.Backtrack == WithTree {
			node = &Node{Label: label, IsTerminal: true, Pos: pos}
		}

		return str, node, true
	}

	leftStr, leftNode, ok := s.exploreChild(re.Edge.Left, re.RankLeft, depth+1)
	if !ok {
		return "", nil, false
	}
	parts := []string{leftStr}
	var children []*Node
	children = appendChild(children, leftNode)

	if re.RankRight >= 0 {
		rightStr, rightNode, ok := s.exploreChild(re.Edge.Right, re.RankRight, depth+1)
		if !ok {
			return "", nil, false
		}
		parts = append(parts, rightStr)
		children = appendChild(children, rightNode)
	}

	if s.opts.DebinarizationMarker != "" && strings.Contains(label, s.opts.DebinarizationMarker) {
		var spliced *Node
		if s.opts.Backtrack == WithTree {
			spliced = &Node{Children: children} // empty Label marks a splice carrier
		}

		return strings.Join(parts, " "), spliced, true
	}

	str := "(" + label + " " + strings.Join(parts, " ") + ")"
	var node *Node
	if s.opts.Backtrack == WithTree {
		node = &Node{Label: label, Children: children}
	}

	return str, node, true
}

func (s *state) exploreChild(item chart.ChartItem, rank int, depth int) (string, *Node, bool) {
	if rank >= len(s.D[item]) {
		return "", nil, false
	}

	return s.explore(s.D[item][rank], depth)
}

// appendChild adds child to children, flattening a splice carrier (empty
// Label, from a debinarization-marked node) into its children directly.
func appendChild(children []*Node, child *Node) []*Node {
	if child == nil {
		return children
	}
	if child.Label == "" && !child.IsTerminal {
		return append(children, child.Children...)
	}

	return append(children, child)
}
