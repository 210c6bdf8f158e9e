// Package cfgparse implements the plain-CFG CKY parser spec.md §4.3
// describes as the fast path for grammars with fanout 1 everywhere: a
// dense (label, left, right) Viterbi tensor filled span-by-span, pruned
// ahead of each cell's midpoint loop by four min/max split-index
// filters, with a per-cell unary-closure agenda standing in for lcfrs's
// global agenda (unnecessary here since every span's binary combinations
// are already enumerated exhaustively by the span/left/right loop nest).
//
// Unlike lcfrs.Parse, there is no global priority queue: CFG derivations
// can only combine sub-spans into larger contiguous spans, so processing
// cells in increasing span order already visits every dependency before
// its dependents, the same invariant the ling0322 CYK reference and
// matrix.Dense's row-major layout both lean on.
package cfgparse

import (
	"fmt"
	"math"
	"strings"

	"github.com/talent-works/disco-dop/grammar"
)

// Chart is the finished CFG parse chart: a dense Viterbi tensor plus,
// per (left, right) cell, the list of CFGEdges found for each label.
type Chart struct {
	n      int
	labels int
	vit    *viterbiTensor
	cells  [][]map[grammar.Label][]CFGEdge
}

// Viterbi returns the best (lowest) inside cost for label over
// [left, right), or +Inf if label was never derived there.
func (c *Chart) Viterbi(label grammar.Label, left, right int) float64 {
	return c.vit.At(label, left, right)
}

// Edges returns every CFGEdge found for label over [left, right), in
// discovery order. Empty (nil) if label was never derived there.
func (c *Chart) Edges(label grammar.Label, left, right int) []CFGEdge {
	cell := c.cells[left][right]
	if cell == nil {
		return nil
	}

	return cell[label]
}

// Parse runs the CKY parser over sentence against g, seeking start as
// the goal label covering the full sentence span. It returns the
// finished chart, the goal (or a zero Goal on failure), and an error.
func Parse(sentence []string, g grammar.Grammar, start grammar.Label, opts ...Option) (*Chart, Goal, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	n := len(sentence)
	r := &runner{
		sentence: sentence,
		g:        g,
		start:    start,
		opts:     options,
		n:        n,
		labels:   g.Nonterminals(),
		vit:      newViterbiTensor(g.Nonterminals(), n),
		flt:      newFilters(g.Nonterminals(), n),
		cells:    makeCells(n),
	}

	return r.run()
}

func makeCells(n int) [][]map[grammar.Label][]CFGEdge {
	cells := make([][]map[grammar.Label][]CFGEdge, n+1)
	for i := range cells {
		cells[i] = make([]map[grammar.Label][]CFGEdge, n+1)
	}

	return cells
}

// runner holds one Parse call's mutable state, the same "fixed inputs
// plus state built up as we go" shape as lcfrs.runner.
type runner struct {
	sentence []string
	g        grammar.Grammar
	start    grammar.Label
	opts     Options
	n        int
	labels   int

	vit   *viterbiTensor
	flt   *filters
	cells [][]map[grammar.Label][]CFGEdge
}

func (r *runner) chart() *Chart {
	return &Chart{n: r.n, labels: r.labels, vit: r.vit, cells: r.cells}
}

func (r *runner) cell(left, right int) map[grammar.Label][]CFGEdge {
	if r.cells[left][right] == nil {
		r.cells[left][right] = make(map[grammar.Label][]CFGEdge)
	}

	return r.cells[left][right]
}

func (r *runner) run() (*Chart, Goal, error) {
	if err := r.scanLexical(); err != nil {
		return r.chart(), Goal{}, err
	}

	for span := 2; span <= r.n; span++ {
		for left := 0; left+span <= r.n; left++ {
			right := left + span
			r.combineBinary(left, right)
			r.unaryClosure(left, right)
		}
	}

	if r.n == 0 {
		return r.chart(), Goal{}, fmt.Errorf("%w: empty sentence", ErrNoParse)
	}

	if cost := r.vit.At(r.start, 0, r.n); !math.IsInf(cost, 1) {
		return r.chart(), Goal{Label: r.start, Left: 0, Right: r.n, Found: true}, nil
	}

	return r.chart(), Goal{}, ErrNoParse
}

// scanLexical implements spec §4.3's lexical step: span-1 cells, seeded
// exactly as lcfrs.runner.scan seeds its span-one chart items, followed
// by that cell's unary closure.
func (r *runner) scanLexical() error {
	for i, tok := range r.sentence {
		matched := false
		for _, lr := range r.g.Lexical(tok) {
			if !r.tagMatches(lr.LHS, i) {
				continue
			}
			matched = true
			r.admit(lr.LHS, i, i+1, CFGEdge{
				Prob: lr.Prob, Inside: lr.Prob, RuleID: -1,
				Left: i, Mid: -1, Right: i + 1,
				LeftLabel: grammar.Epsilon, RightLabel: grammar.Epsilon,
			})
		}

		if !matched && r.opts.Tags != nil {
			tagLabel := r.g.ToID(r.opts.Tags[i])
			matched = true
			r.admit(tagLabel, i, i+1, CFGEdge{
				Prob: 0, Inside: 0, RuleID: -1,
				Left: i, Mid: -1, Right: i + 1,
				LeftLabel: grammar.Epsilon, RightLabel: grammar.Epsilon,
			})
		}

		if !matched {
			return fmt.Errorf("%w: %q", ErrNotCovered, tok)
		}

		r.unaryClosure(i, i+1)
	}

	return nil
}

// tagMatches mirrors lcfrs.runner.tagMatches exactly: an exact tag match,
// or a DOP address ("TAG@...") prefixed by the required tag.
func (r *runner) tagMatches(lhs grammar.Label, i int) bool {
	if r.opts.Tags == nil {
		return true
	}
	name := r.g.ToLabel(lhs)
	tag := r.opts.Tags[i]

	return name == tag || strings.HasPrefix(name, tag+"@")
}

// admit records edge in its cell and, if it strictly improves the
// tensor's current best, updates the Viterbi tensor and (on the first
// +Inf-to-finite transition for this triple) the split filters.
func (r *runner) admit(label grammar.Label, left, right int, edge CFGEdge) {
	cell := r.cell(left, right)
	cell[label] = append(cell[label], edge)

	cur := r.vit.At(label, left, right)
	if edge.Inside < cur {
		wasInf := math.IsInf(cur, 1)
		r.vit.Set(label, left, right, edge.Inside)
		if wasInf {
			r.flt.observe(label, left, right)
		}
	}
}

// combineBinary implements spec §4.3's binary step for one (left, right)
// cell: for every binary rule A,B -> L, the min/max split filters narrow
// the midpoint search range before the O(width) loop confirms both child
// cells are actually finite.
func (r *runner) combineBinary(left, right int) {
	for _, rule := range r.g.ByLHS() {
		if rule.RHS2 == grammar.Epsilon {
			continue // unary rule, or the grammar's trailing sentinel row
		}

		a, b := rule.RHS1, rule.RHS2

		narrowR := r.flt.minsplitright.At(a, left)
		if narrowR >= right {
			continue
		}
		narrowL := r.flt.minsplitleft.At(b, right)
		if narrowL < narrowR {
			continue
		}
		wideL := r.flt.maxsplitleft.At(b, right)
		wideR := r.flt.maxsplitright.At(a, left)

		minMid := narrowR
		if wideL > minMid {
			minMid = wideL
		}
		maxMid := narrowL
		if wideR < maxMid {
			maxMid = wideR
		}
		maxMid++

		if minMid < left+1 {
			minMid = left + 1
		}
		if maxMid > right {
			maxMid = right
		}

		for mid := minMid; mid < maxMid; mid++ {
			leftCost := r.vit.At(a, left, mid)
			rightCost := r.vit.At(b, mid, right)
			if math.IsInf(leftCost, 1) || math.IsInf(rightCost, 1) {
				continue
			}
			cost := rule.Prob + leftCost + rightCost
			r.admit(rule.LHS, left, right, CFGEdge{
				Prob: rule.Prob, Inside: cost, RuleID: rule.No,
				Left: left, Mid: mid, Right: right,
				LeftLabel: a, RightLabel: b,
			})
		}
	}
}

// unaryClosure drains a labelAgenda seeded with every label currently
// finite in the (left, right) cell, relaxing unary rules until no label
// improves further, exactly as spec §4.3 describes "closure over unary
// rules per cell".
func (r *runner) unaryClosure(left, right int) {
	agenda := newLabelAgenda()
	for label := grammar.Label(1); label < grammar.Label(r.labels); label++ {
		if cost := r.vit.At(label, left, right); !math.IsInf(cost, 1) {
			agenda.Offer(label, cost)
		}
	}

	for agenda.Len() > 0 {
		label, cost := agenda.PopMin()
		for _, rule := range r.g.Unary(label) {
			if rule.RHS1 != label {
				break
			}
			newCost := rule.Prob + cost
			cur := r.vit.At(rule.LHS, left, right)
			if newCost >= cur {
				continue
			}
			wasInf := math.IsInf(cur, 1)
			r.vit.Set(rule.LHS, left, right, newCost)
			if wasInf {
				r.flt.observe(rule.LHS, left, right)
			}
			cell := r.cell(left, right)
			cell[rule.LHS] = append(cell[rule.LHS], CFGEdge{
				Prob: rule.Prob, Inside: newCost, RuleID: rule.No,
				Left: left, Mid: -1, Right: right,
				LeftLabel: label, RightLabel: grammar.Epsilon,
			})
			agenda.Offer(rule.LHS, newCost)
		}
	}
}
