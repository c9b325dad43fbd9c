package rcst

import "github.com/Rigidity/rue-lang/pkg/token"

// Node is either a token.Token leaf or a *Tree interior node. Both satisfy
// Span so a child slot never needs a type switch just to find its extent.
type Node interface {
	Span() (start, stop int)
}

// Tree is a CST interior node: a grammar production's result, covering the
// byte span of everything it consumed and holding its children in source
// order.
type Tree struct {
	Kind     Kind
	Start    int
	Stop     int
	Children []Node
}

// Span implements Node.
func (t *Tree) Span() (start, stop int) {
	return t.Start, t.Stop
}

// New builds a Tree, trusting the caller to have computed Start/Stop from
// the cursor positions that bracket the production's consumption.
func New(kind Kind, start, stop int, children []Node) *Tree {
	return &Tree{Kind: kind, Start: start, Stop: stop, Children: children}
}

// Tokens flattens every token.Token leaf reachable from t, in source order.
// Used by callers that want the raw token sequence a subtree covers (e.g.
// to re-lex a fragment, or for leaf-only diffing in tests).
func (t *Tree) Tokens() []token.Token {
	var out []token.Token
	var walk func(n Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case token.Token:
			out = append(out, v)
		case *Tree:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(t)
	return out
}
