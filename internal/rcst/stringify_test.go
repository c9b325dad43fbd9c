package rcst

import (
	"strings"
	"testing"

	"github.com/Rigidity/rue-lang/pkg/token"
)

func tok(kind token.Kind, text string, start, stop int) token.Token {
	return token.Token{Kind: kind, Text: text, Start: start, Stop: stop}
}

func TestStringifyCollapsesSingleChild(t *testing.T) {
	leaf := tok(token.IntLiteral, "5", 0, 1)
	wrapper := New(Unary, 0, 1, []Node{leaf})
	outer := New(Reference, 0, 1, []Node{wrapper})

	got := Stringify(outer)
	want := leaf.String() + "\n"
	if got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestStringifyMultiChildIndents(t *testing.T) {
	one := tok(token.IntLiteral, "1", 0, 1)
	plus := tok(token.Plus, "+", 2, 3)
	two := tok(token.IntLiteral, "2", 4, 5)
	term := New(Term, 0, 5, []Node{one, plus, two})

	got := Stringify(term)
	if !strings.HasPrefix(got, "Term (0-5)\n") {
		t.Errorf("Stringify() = %q, want prefix %q", got, "Term (0-5)\n")
	}
	for _, want := range []string{one.String(), plus.String(), two.String()} {
		if !strings.Contains(got, want) {
			t.Errorf("Stringify() missing child %q in %q", want, got)
		}
	}
}

func TestTreeTokensFlattensLeaves(t *testing.T) {
	one := tok(token.IntLiteral, "1", 0, 1)
	plus := tok(token.Plus, "+", 2, 3)
	two := tok(token.IntLiteral, "2", 4, 5)
	inner := New(Factor, 4, 5, []Node{two})
	term := New(Term, 0, 5, []Node{one, plus, inner})

	got := term.Tokens()
	if len(got) != 3 || got[0] != one || got[1] != plus || got[2] != two {
		t.Errorf("Tokens() = %v, want [%v %v %v]", got, one, plus, two)
	}
}
