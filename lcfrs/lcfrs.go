// Package lcfrs implements the agenda-driven LCFRS CKY parser: a
// single-threaded chart parser over bitvector span encodings that derives
// a packed parse forest for a weighted Linear Context-Free Rewriting
// System grammar.
//
// Parse is the public entry point. It runs a scan/expand loop over a
// chart.Agenda exactly as dijkstra.Dijkstra runs its relaxation loop over
// a node priority queue: pop the minimum-score item, record it, generate
// its successors, repeat until the agenda empties or (in first-parse
// mode) the goal item is admitted.
//
// Complexity:
//
//   - Time: each agenda pop may generate O(rules × siblings) successor
//     candidates; every successor does O(w) work in concat/fatconcat,
//     where w is the span width (one word narrow, SLOTS words wide).
//   - Space: one chart entry and one viterbi entry per distinct
//     (label, span) pair ever admitted, plus the live agenda.
//
// Errors (sentinel): ErrNotCovered, ErrNoParse, ErrSentenceTooLong. A
// non-nil error always pairs with chart.NONE as the returned goal.
package lcfrs

import (
	"fmt"
	"log"
	"strings"

	"github.com/talent-works/disco-dop/bitspan"
	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
)

// Parse runs the LCFRS CKY parser over sentence against g, seeking start
// as the goal label. It returns the finished chart, the goal item (or
// chart.NONE on failure), and diagnostic Stats.
func Parse(sentence []string, g grammar.Grammar, start grammar.Label, opts ...Option) (chart.Chart, chart.ChartItem, Stats, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if len(sentence) > bitspan.MaxWideBits {
		return nil, chart.NONE, Stats{}, fmt.Errorf("%w: %d positions", ErrSentenceTooLong, len(sentence))
	}

	r := &runner{
		sentence:      sentence,
		g:             g,
		start:         start,
		opts:          options,
		wide:          len(sentence) >= 64,
		agenda:        chart.NewAgenda(),
		c:             make(chart.Chart),
		viterbi:       make(chart.Viterbi),
		labelsTouched: make(map[grammar.Label]struct{}),
		beamCounts:    make(map[chart.Span]int),
	}

	return r.run()
}

// runner holds one Parse call's mutable state, mirroring the "walker"
// shape of dijkstra's internal loop: fixed inputs plus the agenda/chart
// being built up as items are popped and expanded.
type runner struct {
	sentence []string
	g        grammar.Grammar
	start    grammar.Label
	opts     Options
	wide     bool

	agenda        *chart.Agenda
	c             chart.Chart
	viterbi       chart.Viterbi
	labelsTouched map[grammar.Label]struct{}
	beamCounts    map[chart.Span]int
	stats         Stats
}

func (r *runner) run() (chart.Chart, chart.ChartItem, Stats, error) {
	if err := r.scan(); err != nil {
		return r.c, chart.NONE, r.stats, err
	}

	goal := chart.NONE
	full := r.fullSpan()

	for r.agenda.Len() > 0 {
		if r.agenda.Len() > r.stats.MaxAgendaSize {
			r.stats.MaxAgendaSize = r.agenda.Len()
		}

		item, edge := r.agenda.PopMin()
		r.c[item] = append(r.c[item], edge)
		r.viterbi.Set(item, edge)
		r.stats.Admitted++
		r.stats.TotalEdges++

		if item.Label == r.start && item.Span == full {
			goal = item
			if !r.opts.Exhaustive {
				break
			}
		}

		r.expandUnary(item, edge)
		r.expandBinaryLeft(item, edge)
		r.expandBinaryRight(item, edge)
	}

	r.stats.FinalAgendaSize = r.agenda.Len()
	r.stats.LabelsTouched = len(r.labelsTouched)

	if goal.IsNone() {
		return r.c, chart.NONE, r.stats, fmt.Errorf("%w: %s", ErrNoParse, r.stats.String())
	}

	return r.c, goal, r.stats, nil
}

// fullSpan returns the span covering every position of the sentence,
// contiguous and gap-free — the shape the goal item's span must match.
func (r *runner) fullSpan() chart.Span {
	if r.wide {
		var w bitspan.Wide
		for i := 0; i < len(r.sentence); i++ {
			w = bitspan.SetBitWide(w, i)
		}

		return chart.WideSpan(w)
	}

	return chart.NarrowSpan(uint64(1)<<uint(len(r.sentence)) - 1)
}

func (r *runner) spanOf(i int) chart.Span {
	if r.wide {
		return chart.WideSpanOf(i)
	}

	return chart.NarrowSpanOf(i)
}

// scan implements spec §4.2 step 1: for each position, emit every
// matching lexical item, falling back to a bare tag item when tags are
// supplied but no lexical rule matched.
func (r *runner) scan() error {
	for i, tok := range r.sentence {
		matched := false
		for _, lr := range r.g.Lexical(tok) {
			if !r.tagMatches(lr.LHS, i) {
				continue
			}
			matched = true
			r.emitLexical(lr.LHS, i, lr.Prob)
		}

		if !matched && r.opts.Tags != nil {
			tagLabel := r.g.ToID(r.opts.Tags[i])
			matched = true
			r.emitLexical(tagLabel, i, 0)
		}

		if !matched {
			return fmt.Errorf("%w: %q", ErrNotCovered, tok)
		}
	}

	return nil
}

// tagMatches reports whether label lhs is allowed to cover position i
// under the optional tag constraint: an exact match, or a DOP address
// ("TAG@...") prefixed by the required tag.
func (r *runner) tagMatches(lhs grammar.Label, i int) bool {
	if r.opts.Tags == nil {
		return true
	}
	name := r.g.ToLabel(lhs)
	tag := r.opts.Tags[i]

	return name == tag || strings.HasPrefix(name, tag+"@")
}

func (r *runner) emitLexical(lhs grammar.Label, pos int, prob float64) {
	span := r.spanOf(pos)
	item := chart.ChartItem{Label: lhs, Span: span}
	score, ok := r.computeScore(item, prob)
	if !ok {
		return
	}
	edge := chart.Edge{
		Score:  score,
		Inside: prob,
		Prob:   prob,
		RuleID: -1,
		Left:   chart.ChartItem{Label: grammar.Epsilon, Span: span},
		Right:  chart.NONE,
	}
	r.processEdge(item, edge)
}

// expandUnary implements spec §4.2 step 2 "Unary".
func (r *runner) expandUnary(item chart.ChartItem, edge chart.Edge) {
	for _, rule := range r.g.Unary(item.Label) {
		if rule.RHS1 != item.Label {
			break
		}
		succ := chart.ChartItem{Label: rule.LHS, Span: item.Span}
		if !r.beamAdmit(succ.Span) {
			continue
		}
		inside := rule.Prob + edge.Inside
		score, ok := r.computeScore(succ, inside)
		if !ok {
			continue
		}
		r.processEdge(succ, chart.Edge{
			Score: score, Inside: inside, Prob: rule.Prob, RuleID: rule.No,
			Left: item, Right: chart.NONE,
		})
	}
}

// expandBinaryLeft implements spec §4.2 step 2 "Binary-left": item is the
// freshly admitted left child; every already-Viterbi item of the
// matching right-hand label is a candidate sibling.
func (r *runner) expandBinaryLeft(item chart.ChartItem, edge chart.Edge) {
	for _, rule := range r.g.LBinary(item.Label) {
		if rule.RHS1 != item.Label {
			break
		}
		for sibling, sibEdge := range r.viterbi[rule.RHS2] {
			r.tryBinary(rule, item, edge, sibling, sibEdge)
		}
	}
}

// expandBinaryRight is the symmetric counterpart: item is the freshly
// admitted right child.
func (r *runner) expandBinaryRight(item chart.ChartItem, edge chart.Edge) {
	for _, rule := range r.g.RBinary(item.Label) {
		if rule.RHS2 != item.Label {
			break
		}
		for sibling, sibEdge := range r.viterbi[rule.RHS1] {
			r.tryBinary(rule, sibling, sibEdge, item, edge)
		}
	}
}

// tryBinary forms the successor of a binary rule given its left and
// right children, testing yield-function compatibility with concat (or
// fatconcat in the wide variant).
func (r *runner) tryBinary(rule grammar.Rule, left chart.ChartItem, leftEdge chart.Edge, right chart.ChartItem, rightEdge chart.Edge) {
	if !r.concatOK(rule, left.Span, right.Span) {
		return
	}
	succSpan := left.Span.Union(right.Span)
	if !r.beamAdmit(succSpan) {
		return
	}
	succ := chart.ChartItem{Label: rule.LHS, Span: succSpan}
	inside := rule.Prob + leftEdge.Inside + rightEdge.Inside
	score, ok := r.computeScore(succ, inside)
	if !ok {
		return
	}
	r.processEdge(succ, chart.Edge{
		Score: score, Inside: inside, Prob: rule.Prob, RuleID: rule.No,
		Left: left, Right: right,
	})
}

func (r *runner) concatOK(rule grammar.Rule, a, b chart.Span) bool {
	if r.wide {
		return FatConcat(rule, a.(chart.WideSpan), b.(chart.WideSpan))
	}

	return Concat(rule, a.(chart.NarrowSpan), b.(chart.NarrowSpan))
}

// beamAdmit implements the optional first-come beamwidth cap (spec §4.2
// "Optional beamwidth"): a first-come-first-served admission cap per
// derived span, not a score-based beam.
func (r *runner) beamAdmit(span chart.Span) bool {
	if r.opts.Beamwidth == 0 {
		return true
	}
	r.beamCounts[span]++

	return r.beamCounts[span] <= r.opts.Beamwidth
}

// computeScore applies the optional FOM estimate (spec §4.2 "Optional FOM
// estimate") to inside, returning the admissible score and whether it
// clears InfDropThreshold.
func (r *runner) computeScore(item chart.ChartItem, inside float64) (float64, bool) {
	if r.opts.Estimates == nil {
		return inside, true
	}

	var a, b, c int
	span := item.Span
	switch r.opts.Estimates.Kind {
	case SX:
		a = span.NextSet(0)
		b = span.BitLength()
	case SXlrgaps:
		length := span.PopCount()
		left := span.NextSet(0)
		gaps := span.BitLength() - length - left
		right := len(r.sentence) - length - left - gaps
		a, b, c = length, left+right, gaps
	}

	outside := r.opts.Estimates.Tensor.At(item.Label, a, b, c)
	score := inside + outside

	return score, score <= InfDropThreshold
}

// processEdge implements spec §4.2 "process_edge", the five-case
// agenda/chart arbitration.
func (r *runner) processEdge(item chart.ChartItem, edge chart.Edge) {
	inAgenda := r.agenda.Contains(item)
	_, inChart := r.c[item]

	switch {
	case !inAgenda && !inChart:
		// Case 1: brand new item.
		fanout := r.g.Fanout(item.Label)
		if !r.opts.Whitelist.Check(item, fanout, r.opts.Splitprune, r.opts.Markorigin) {
			r.stats.Blocked++
			return
		}
		r.agenda.Insert(item, edge)
		r.c[item] = []chart.Edge{}
		r.labelsTouched[item.Label] = struct{}{}

	case inAgenda && !r.opts.Exhaustive:
		// Case 2: first-parse mode, still queued.
		r.agenda.SetIfBetter(item, edge)

	case inAgenda:
		// Case 3: exhaustive mode, still queued. A strictly better edge
		// decrease-keys the agenda and demotes the old edge into the
		// chart; a dominated edge is appended to the chart as-is, since
		// exhaustive mode preserves all derivations even though the
		// item hasn't been popped yet.
		old, _ := r.agenda.Peek(item)
		if edge.Inside < old.Inside {
			r.agenda.Replace(item, edge)
			r.c[item] = append(r.c[item], old)
		} else {
			r.c[item] = append(r.c[item], edge)
		}
		r.stats.TotalEdges++

	default:
		// item already popped: in chart, not in agenda.
		vit, _ := r.viterbi.Get(item)
		if edge.Inside < vit.Inside {
			// Case 4: reentry. Theoretically unreachable under a
			// consistent FOM; retained defensively per spec §9.
			r.stats.ReentryWarnings++
			log.Printf("lcfrs: reentry: item already popped but a strictly better edge arrived (inside %g < %g)", edge.Inside, vit.Inside)
			r.agenda.Insert(item, edge)
		} else if r.opts.Exhaustive {
			// Case 5: exhaustive mode, additional suboptimal derivation.
			r.c[item] = append(r.c[item], edge)
			r.stats.TotalEdges++
		}
	}
}
