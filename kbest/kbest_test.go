package kbest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
	"github.com/talent-works/disco-dop/kbest"
)

type stubGrammar struct{ names []string }

func (g stubGrammar) ToID(name string) grammar.Label {
	for i, n := range g.names {
		if n == name {
			return grammar.Label(i)
		}
	}

	return grammar.Epsilon
}
func (g stubGrammar) ToLabel(l grammar.Label) string            { return g.names[l] }
func (g stubGrammar) NumRules() int                             { return 0 }
func (g stubGrammar) Nonterminals() int                         { return len(g.names) }
func (g stubGrammar) Lexical(word string) []grammar.LexicalRule { return nil }
func (g stubGrammar) Unary(l grammar.Label) []grammar.Rule      { return nil }
func (g stubGrammar) LBinary(l grammar.Label) []grammar.Rule    { return nil }
func (g stubGrammar) RBinary(l grammar.Label) []grammar.Rule    { return nil }
func (g stubGrammar) ByLHS() []grammar.Rule                     { return nil }
func (g stubGrammar) Fanout(l grammar.Label) int                { return 1 }

// ambiguousChart builds a hand-written chart where a single label ("NP")
// covers one span via two edges of differing cost: a lexical edge directly
// over the leaf, and a unary edge over a lexical "N" item. It is the
// minimal fixture needed to exercise k>1 enumeration over two derivations
// with different trees without running a full parse.
func ambiguousChart(t *testing.T) (chart.Chart, chart.ChartItem, stubGrammar) {
	t.Helper()

	g := stubGrammar{names: []string{"Epsilon", "NP", "N"}}
	lblNP := grammar.Label(1)
	lblN := grammar.Label(2)
	span := chart.NarrowSpanOf(0)
	item := chart.ChartItem{Label: lblNP, Span: span}
	noun := chart.ChartItem{Label: lblN, Span: span}
	leaf := chart.ChartItem{Label: grammar.Epsilon, Span: span}

	c := chart.Chart{
		item: {
			{Score: 1, Inside: 1, Prob: 1, RuleID: -1, Left: leaf, Right: chart.NONE},
			{Score: 2, Inside: 2, Prob: 1, RuleID: 2, Left: noun, Right: chart.NONE},
		},
		noun: {
			{Score: 1, Inside: 1, Prob: 1, RuleID: -1, Left: leaf, Right: chart.NONE},
		},
	}

	return c, item, g
}

func TestKBestK1ReturnsViterbi(t *testing.T) {
	c, item, g := ambiguousChart(t)
	derivs, err := kbest.KBest(c, g, item, 1)
	require.NoError(t, err)
	require.Len(t, derivs, 1)
	assert.InDelta(t, 1, derivs[0].Inside, 1e-12)
	assert.Equal(t, "(NP 0)", derivs[0].String)
}

func TestKBestSortedNoDuplicates(t *testing.T) {
	c, item, g := ambiguousChart(t)
	derivs, err := kbest.KBest(c, g, item, 2)
	require.NoError(t, err)
	require.Len(t, derivs, 2)
	assert.InDelta(t, 1, derivs[0].Inside, 1e-12)
	assert.InDelta(t, 2, derivs[1].Inside, 1e-12)
	assert.NotEqual(t, derivs[0].String, derivs[1].String)
}

func TestKBestMissingGoalErrors(t *testing.T) {
	c, _, g := ambiguousChart(t)
	_, err := kbest.KBest(c, g, chart.NONE, 1)
	assert.ErrorIs(t, err, kbest.ErrNoGoal)
}

func TestKBestWithTreeBuildsStructure(t *testing.T) {
	c, item, g := ambiguousChart(t)
	derivs, err := kbest.KBest(c, g, item, 1, kbest.WithBacktrack(kbest.WithTree))
	require.NoError(t, err)
	require.Len(t, derivs, 1)
	require.NotNil(t, derivs[0].Tree)
	assert.True(t, derivs[0].Tree.IsTerminal)
	assert.Equal(t, 0, derivs[0].Tree.Pos)
}
