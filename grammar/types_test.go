package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talent-works/disco-dop/grammar"
)

// fakeGrammar is the minimal Grammar implementation used to confirm the
// interface shape is satisfiable with plain slices and maps.
type fakeGrammar struct {
	names   []string
	lexical map[string][]grammar.LexicalRule
	unary   map[grammar.Label][]grammar.Rule
	lbinary map[grammar.Label][]grammar.Rule
	rbinary map[grammar.Label][]grammar.Rule
	all     []grammar.Rule
	fanout  map[grammar.Label]int
}

func (g *fakeGrammar) ToID(name string) grammar.Label {
	for i, n := range g.names {
		if n == name {
			return grammar.Label(i)
		}
	}

	return grammar.Epsilon
}
func (g *fakeGrammar) ToLabel(l grammar.Label) string   { return g.names[l] }
func (g *fakeGrammar) NumRules() int                    { return len(g.all) }
func (g *fakeGrammar) Nonterminals() int                { return len(g.names) }
func (g *fakeGrammar) Lexical(w string) []grammar.LexicalRule { return g.lexical[w] }
func (g *fakeGrammar) Unary(l grammar.Label) []grammar.Rule   { return g.unary[l] }
func (g *fakeGrammar) LBinary(l grammar.Label) []grammar.Rule { return g.lbinary[l] }
func (g *fakeGrammar) RBinary(l grammar.Label) []grammar.Rule { return g.rbinary[l] }
func (g *fakeGrammar) ByLHS() []grammar.Rule                  { return g.all }
func (g *fakeGrammar) Fanout(l grammar.Label) int             { return g.fanout[l] }

func TestGrammarInterfaceSatisfiable(t *testing.T) {
	var g grammar.Grammar = &fakeGrammar{names: []string{"Epsilon", "S"}}
	assert.Equal(t, grammar.Label(0), g.ToID("Epsilon"))
	assert.Equal(t, "S", g.ToLabel(1))
}

func TestEpsilonIsZero(t *testing.T) {
	assert.Equal(t, grammar.Label(0), grammar.Epsilon)
}
