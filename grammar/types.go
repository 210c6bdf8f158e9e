package grammar

// Label identifies a grammar nonterminal. Epsilon is the reserved sentinel
// returned by Grammar.ToID("Epsilon").
type Label int

// Epsilon is the sentinel label reserved for the empty nonterminal.
const Epsilon Label = 0

// Rule is a single LCFRS production: LHS -> RHS1 [RHS2], with a yield
// function packed into Args/Lengths (see EncodeYield) and a log-probability
// Prob stored as -log(p), so lower is better.
//
// Binary rules have RHS2 != Epsilon; unary rules have RHS2 == Epsilon.
// No is the rule's identifier, used only by callers that want to recover
// the originating Rule value from an Edge.RuleID.
type Rule struct {
	LHS, RHS1, RHS2 Label
	Args, Lengths   uint64
	Prob            float64
	No              int
}

// LexicalRule attaches a probability to a nonterminal rewriting a single
// input word.
type LexicalRule struct {
	LHS  Label
	Prob float64
}

// Grammar is the read-only contract the parsing engine consumes. It is
// implemented by whatever grammar-construction code the surrounding driver
// uses; this package only describes the shape the engine needs.
//
// Unary(label) and LBinary(label)/RBinary(label) must each return a
// contiguous run of rules: callers stop iterating at the first rule whose
// RHS1 (for Unary, LBinary) or RHS2 (for RBinary) differs from the query
// label. ByLHS returns every rule, terminated by a sentinel Rule whose LHS
// equals Nonterminals().
type Grammar interface {
	ToID(name string) Label
	ToLabel(l Label) string
	NumRules() int
	Nonterminals() int
	Lexical(word string) []LexicalRule
	Unary(label Label) []Rule
	LBinary(label Label) []Rule
	RBinary(label Label) []Rule
	ByLHS() []Rule
	Fanout(label Label) int
}
