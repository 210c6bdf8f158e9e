// Package discodop is the root-level façade over the three parsing
// engines (lcfrs, cfgparse, kbest), mirroring the role algorithms plays
// in the teacher repo: a thin, documented wrapper that picks the right
// engine rather than implementing parsing itself.
package discodop

import (
	"math"

	"github.com/talent-works/disco-dop/cfgparse"
	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
	"github.com/talent-works/disco-dop/kbest"
	"github.com/talent-works/disco-dop/lcfrs"
)

// Result normalizes the outcome of Parse across whichever engine ran.
type Result struct {
	UsedCFG bool
	Found   bool
	Inside  float64

	LCFRSChart chart.Chart
	LCFRSGoal  chart.ChartItem
	LCFRSStats lcfrs.Stats

	CFGChart *cfgparse.Chart
	CFGGoal  cfgparse.Goal

	Derivations []kbest.Derivation
}

// Parse runs cfgparse when g is provably context-free from start (every
// label reachable from start, by LHS->RHS1/RHS2 expansion, has fanout 1),
// falling back to the full LCFRS engine otherwise. If k > 0 and the goal
// was found, it also runs the lazy k-best enumerator over the resulting
// chart; k-best is only meaningful for the LCFRS path, since cfgparse's
// dense chart has no RankedEdge support (spec §4.4 operates on the LCFRS
// chart shape).
func Parse(sentence []string, g grammar.Grammar, start grammar.Label, k int, lopts []lcfrs.Option, copts []cfgparse.Option, kopts []kbest.Option) (Result, error) {
	if isContextFree(g, start) {
		c, goal, err := cfgparse.Parse(sentence, g, start, copts...)
		res := Result{UsedCFG: true, CFGChart: c, CFGGoal: goal, Found: goal.Found}
		if goal.Found {
			res.Inside = c.Viterbi(goal.Label, goal.Left, goal.Right)
		}

		return res, err
	}

	c, goal, stats, err := lcfrs.Parse(sentence, g, start, lopts...)
	res := Result{LCFRSChart: c, LCFRSGoal: goal, LCFRSStats: stats, Found: !goal.IsNone()}
	if err != nil {
		return res, err
	}

	res.Inside = bestInside(c, goal)

	if k > 0 {
		derivs, derr := kbest.KBest(c, g, goal, k, kopts...)
		if derr != nil {
			return res, derr
		}
		res.Derivations = derivs
	}

	return res, nil
}

// bestInside scans a chart item's edge list for the minimum inside cost,
// since lcfrs.Parse's return shape doesn't separately expose the
// Viterbi map.
func bestInside(c chart.Chart, item chart.ChartItem) float64 {
	best := math.Inf(1)
	for _, e := range c[item] {
		if e.Inside < best {
			best = e.Inside
		}
	}

	return best
}

// isContextFree reports whether every label reachable from start via
// LHS->RHS1/RHS2 expansion has fanout 1 — the condition under which
// cfgparse (plain CKY) is equivalent to the full LCFRS engine and much
// cheaper to run.
func isContextFree(g grammar.Grammar, start grammar.Label) bool {
	byLHS := make(map[grammar.Label][]grammar.Rule)
	for _, rule := range g.ByLHS() {
		byLHS[rule.LHS] = append(byLHS[rule.LHS], rule)
	}

	seen := map[grammar.Label]bool{start: true}
	queue := []grammar.Label{start}

	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]

		if g.Fanout(l) != 1 {
			return false
		}

		for _, rule := range byLHS[l] {
			for _, child := range [2]grammar.Label{rule.RHS1, rule.RHS2} {
				if child == grammar.Epsilon || seen[child] {
					continue
				}
				seen[child] = true
				queue = append(queue, child)
			}
		}
	}

	return true
}
