package rparser

import (
	"testing"

	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/internal/rlex"
)

func parseSource(t *testing.T, src string) (*rcst.Tree, *diag.ParseError) {
	t.Helper()
	tokens, lexErr := rlex.Lex([]byte(src))
	if lexErr != nil {
		t.Fatalf("Lex(%q) error: %v", src, lexErr)
	}
	return Parse(tokens, []byte(src))
}

func mustParse(t *testing.T, src string) *rcst.Tree {
	t.Helper()
	tree, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return tree
}

// findKind walks n depth-first and returns the first Tree of the given
// kind it finds, or nil.
func findKind(n rcst.Node, kind rcst.Kind) *rcst.Tree {
	tree, ok := n.(*rcst.Tree)
	if !ok {
		return nil
	}
	if tree.Kind == kind {
		return tree
	}
	for _, c := range tree.Children {
		if found := findKind(c, kind); found != nil {
			return found
		}
	}
	return nil
}

func TestParseFieldDeclaration(t *testing.T) {
	tree := mustParse(t, "val x = 5;")
	if tree.Kind != rcst.Body {
		t.Fatalf("top-level kind = %s, want Body", tree.Kind)
	}
	field := findKind(tree, rcst.Field)
	if field == nil {
		t.Fatal("no Field node found")
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	tree := mustParse(t, "1 + 2 * 3;")
	term := findKind(tree, rcst.Term)
	if term == nil {
		t.Fatal("no Term node found")
	}
	if len(term.Children) != 3 {
		t.Fatalf("Term has %d children, want 3 (operand, '+', Factor)", len(term.Children))
	}
	factor := findKind(term, rcst.Factor)
	if factor == nil {
		t.Fatal("no nested Factor(2 * 3) found under Term")
	}
}

func TestParseAssignmentRejectsChain(t *testing.T) {
	if _, err := parseSource(t, "a = b;"); err != nil {
		t.Errorf("a = b; should parse, got error: %v", err)
	}
	_, err := parseSource(t, "a = b = c;")
	if err == nil {
		t.Fatal("a = b = c; should be rejected at the outermost assignment")
	}
}

func TestParseDanglingElse(t *testing.T) {
	tree := mustParse(t, "if (a) if (b) x; else y;")
	outerIf := findKind(tree, rcst.If)
	if outerIf == nil {
		t.Fatal("no If node found")
	}
	// The outer If's "then" branch (a Statement wrapping another If) must
	// itself contain the else, meaning the outer If has no trailing else
	// of its own (only 5 children: if ( cond ) then-statement).
	if len(outerIf.Children) != 5 {
		t.Fatalf("outer If has %d children, want 5 (no else attached to outer if)", len(outerIf.Children))
	}
	innerIf := findKind(outerIf.Children[4], rcst.If)
	if innerIf == nil {
		t.Fatal("no inner If found inside outer If's then-branch")
	}
	if len(innerIf.Children) != 7 {
		t.Fatalf("inner If has %d children, want 7 (if, (, cond, ), then, else, else-stmt)", len(innerIf.Children))
	}
}

func TestParseCastVsParenthesizedExpression(t *testing.T) {
	tree := mustParse(t, "(int)x;")
	if findKind(tree, rcst.TypeCast) == nil {
		t.Error("(int)x; should parse as TypeCast")
	}

	tree2 := mustParse(t, "(x);")
	if findKind(tree2, rcst.TypeCast) != nil {
		t.Error("(x); should not parse as TypeCast")
	}
}

func TestParseErrorLocality(t *testing.T) {
	_, err := parseSource(t, "val x = ;")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	eqPos := len("val x ")
	if err.Start < eqPos {
		t.Errorf("error span starts at %d, want on or after the '=' at %d", err.Start, eqPos)
	}
}

func TestParseRangeSidesAreOptional(t *testing.T) {
	for _, src := range []string{"a..;", "..b;", "..;"} {
		if _, err := parseSource(t, src); err != nil {
			t.Errorf("%q should parse, got error: %v", src, err)
		}
	}
}

func TestParseReferenceChain(t *testing.T) {
	tree := mustParse(t, "a.b?.c[0](x, y);")
	ref := findKind(tree, rcst.Reference)
	if ref == nil {
		t.Fatal("no Reference node found")
	}
	// a, .b, ?.c, [0], (x,y)
	if len(ref.Children) != 5 {
		t.Fatalf("Reference has %d children, want 5", len(ref.Children))
	}
	if findKind(ref, rcst.PropertyAccess) == nil {
		t.Error("missing PropertyAccess")
	}
	if findKind(ref, rcst.OptionalPropertyAccess) == nil {
		t.Error("missing OptionalPropertyAccess")
	}
	if findKind(ref, rcst.ArrayIndex) == nil {
		t.Error("missing ArrayIndex")
	}
	if findKind(ref, rcst.MethodCall) == nil {
		t.Error("missing MethodCall")
	}
}

func TestParseDefWithParameters(t *testing.T) {
	tree := mustParse(t, "def f(a: int, b: int): int { return a + b; }")
	def := findKind(tree, rcst.Def)
	if def == nil {
		t.Fatal("no Def node found")
	}
	params := findKind(def, rcst.Parameters)
	if params == nil {
		t.Fatal("no Parameters node found")
	}
	count := 0
	for _, c := range params.Children {
		if t2, ok := c.(*rcst.Tree); ok && t2.Kind == rcst.Parameter {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Parameters has %d Parameter children, want 2", count)
	}
	if findKind(def, rcst.Block) == nil {
		t.Error("missing Block body")
	}
	if findKind(def, rcst.Return) == nil {
		t.Error("missing Return inside block")
	}
}

func TestParseMatchFallbackBody(t *testing.T) {
	tree := mustParse(t, "match (n) { 1 => a; 2 => b; c; }")
	match := findKind(tree, rcst.Match)
	if match == nil {
		t.Fatal("no Match node found")
	}
	count := 0
	for _, c := range match.Children {
		if t2, ok := c.(*rcst.Tree); ok && t2.Kind == rcst.MatchOption {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Match has %d MatchOption children, want 2", count)
	}
	if findKind(match, rcst.Body) == nil {
		t.Error("missing fallback Body")
	}
}

func TestParseLabeledStatement(t *testing.T) {
	tree := mustParse(t, "outer: while (true) { break outer; }")
	if findKind(tree, rcst.Labeled) == nil {
		t.Error("missing Labeled node")
	}
}

func TestParseTrailingTokenIsUnexpected(t *testing.T) {
	_, err := parseSource(t, "val x = 5; )")
	if err == nil {
		t.Fatal("expected an error for trailing ')'")
	}
	if err.Code != diag.ErrUnexpectedToken {
		t.Errorf("got code %s, want %s", err.Code, diag.ErrUnexpectedToken)
	}
}

func TestParseComparisonWithTypeOperator(t *testing.T) {
	tree := mustParse(t, "a is int;")
	if findKind(tree, rcst.Comparison) == nil {
		t.Error("missing Comparison node for 'is' form")
	}
}

func TestParseGenericAndArrayType(t *testing.T) {
	tree := mustParse(t, "val x: List<int>[] = y;")
	if findKind(tree, rcst.GenericType) == nil {
		t.Error("missing GenericType")
	}
	if findKind(tree, rcst.ArrayType) == nil {
		t.Error("missing ArrayType")
	}
}

func TestParseArrayInitializer(t *testing.T) {
	tree := mustParse(t, "val x = [1, 2, 3];")
	if findKind(tree, rcst.ArrayInitializer) == nil {
		t.Error("missing ArrayInitializer")
	}
}
