package cfgparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talent-works/disco-dop/cfgparse"
	"github.com/talent-works/disco-dop/grammar"
)

// cfgGrammar is the spec.md §8 scenario 6 fixture: a context-free (fanout
// 1 everywhere) grammar with one unary chain, "S -> D", above a binary
// rule "D -> NP VP" and two lexical rules, parsing "mary walks".
type cfgGrammar struct {
	names   []string
	lexical map[string][]grammar.LexicalRule
	unary   map[grammar.Label][]grammar.Rule
	all     []grammar.Rule
}

const (
	cfgEpsilon grammar.Label = iota
	cfgS
	cfgD
	cfgNP
	cfgVP
)

func newCFGGrammar(t *testing.T) *cfgGrammar {
	t.Helper()

	g := &cfgGrammar{
		names: []string{cfgEpsilon: "Epsilon", cfgS: "S", cfgD: "D", cfgNP: "NP", cfgVP: "VP"},
		lexical: map[string][]grammar.LexicalRule{
			"mary":  {{LHS: cfgNP, Prob: 0}},
			"walks": {{LHS: cfgVP, Prob: 0}},
		},
		unary: map[grammar.Label][]grammar.Rule{},
	}

	sUnary := grammar.Rule{LHS: cfgS, RHS1: cfgD, RHS2: grammar.Epsilon, Prob: -math.Log(1), No: 1}
	dBinary := grammar.Rule{LHS: cfgD, RHS1: cfgNP, RHS2: cfgVP, Prob: -math.Log(0.5), No: 2}

	g.unary[cfgD] = []grammar.Rule{sUnary}
	g.all = []grammar.Rule{dBinary, sUnary, {LHS: grammar.Label(len(g.names))}}

	return g
}

func (g *cfgGrammar) ToID(name string) grammar.Label {
	for i, n := range g.names {
		if n == name {
			return grammar.Label(i)
		}
	}

	return grammar.Epsilon
}
func (g *cfgGrammar) ToLabel(l grammar.Label) string            { return g.names[l] }
func (g *cfgGrammar) NumRules() int                             { return len(g.all) - 1 }
func (g *cfgGrammar) Nonterminals() int                         { return len(g.names) }
func (g *cfgGrammar) Lexical(word string) []grammar.LexicalRule { return g.lexical[word] }
func (g *cfgGrammar) Unary(l grammar.Label) []grammar.Rule      { return g.unary[l] }
func (g *cfgGrammar) LBinary(l grammar.Label) []grammar.Rule    { return nil }
func (g *cfgGrammar) RBinary(l grammar.Label) []grammar.Rule    { return nil }
func (g *cfgGrammar) ByLHS() []grammar.Rule                     { return g.all }
func (g *cfgGrammar) Fanout(l grammar.Label) int                { return 1 }

func TestParseScenario6UnaryOverBinary(t *testing.T) {
	g := newCFGGrammar(t)
	c, goal, err := cfgparse.Parse([]string{"mary", "walks"}, g, cfgS)
	require.NoError(t, err)
	require.True(t, goal.Found)
	assert.Equal(t, 0, goal.Left)
	assert.Equal(t, 2, goal.Right)

	assert.False(t, math.IsInf(c.Viterbi(cfgS, 0, 2), 1))

	dEdges := c.Edges(cfgD, 0, 2)
	require.Len(t, dEdges, 1)
	assert.Equal(t, 1, dEdges[0].Mid)
	assert.Equal(t, cfgNP, dEdges[0].LeftLabel)
	assert.Equal(t, cfgVP, dEdges[0].RightLabel)

	sEdges := c.Edges(cfgS, 0, 2)
	require.Len(t, sEdges, 1)
	assert.Equal(t, -1, sEdges[0].Mid)
	assert.Equal(t, cfgD, sEdges[0].LeftLabel)
	assert.Equal(t, grammar.Epsilon, sEdges[0].RightLabel)

	assert.InDelta(t, -math.Log(0.5), c.Viterbi(cfgS, 0, 2), 1e-9)
}

func TestParseNotCovered(t *testing.T) {
	g := newCFGGrammar(t)
	_, goal, err := cfgparse.Parse([]string{"xyz"}, g, cfgS)
	assert.ErrorIs(t, err, cfgparse.ErrNotCovered)
	assert.False(t, goal.Found)
}

func TestParseNoParseWrongStart(t *testing.T) {
	g := newCFGGrammar(t)
	_, goal, err := cfgparse.Parse([]string{"mary", "walks"}, g, cfgNP)
	assert.ErrorIs(t, err, cfgparse.ErrNoParse)
	assert.False(t, goal.Found)
}

func TestParseTagsConstrainLexicalChoice(t *testing.T) {
	g := newCFGGrammar(t)
	_, goal, err := cfgparse.Parse([]string{"mary", "walks"}, g, cfgS, cfgparse.WithTags([]string{"NP", "VP"}))
	require.NoError(t, err)
	assert.True(t, goal.Found)
}
