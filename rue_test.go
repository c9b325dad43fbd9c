package rue

import (
	"strings"
	"testing"
)

func TestLexThenParseRoundTrip(t *testing.T) {
	src := []byte("val x = 1 + 2;")
	tokens, lexErr := Lex(src)
	if lexErr != nil {
		t.Fatalf("Lex() error: %v", lexErr)
	}
	tree, parseErr := Parse(tokens, src)
	if parseErr != nil {
		t.Fatalf("Parse() error: %v", parseErr)
	}
	if tree == nil {
		t.Fatal("Parse() returned a nil tree with no error")
	}
}

func TestParseSourceLexFailure(t *testing.T) {
	tree, lexErr, parseErr := ParseSource([]byte("val x = @;"), nil, nil)
	if lexErr == nil {
		t.Fatal("expected a LexError for an illegal character")
	}
	if parseErr != nil {
		t.Error("ParseSource should not also report a ParseError on lex failure")
	}
	if tree != nil {
		t.Error("ParseSource should return a nil tree on lex failure")
	}
}

func TestParseSourceParseFailure(t *testing.T) {
	tree, lexErr, parseErr := ParseSource([]byte("val x = ;"), nil, nil)
	if lexErr != nil {
		t.Fatal("did not expect a LexError")
	}
	if parseErr == nil {
		t.Fatal("expected a ParseError for a missing expression")
	}
	if tree != nil {
		t.Error("ParseSource should return a nil tree on parse failure")
	}
}

func TestRenderErrorMentionsFilename(t *testing.T) {
	_, lexErr, _ := ParseSource([]byte("val x = @;"), nil, nil)
	if lexErr == nil {
		t.Fatal("expected a LexError")
	}
	out := RenderError(lexErr, "main.rue", []byte("val x = @;"))
	if !strings.HasPrefix(out, "main.rue:1\n") {
		t.Errorf("RenderError output = %q, want prefix %q", out, "main.rue:1\n")
	}
}

func TestStringifyTree(t *testing.T) {
	tree, _, parseErr := ParseSource([]byte("val x = 1;"), nil, nil)
	if parseErr != nil {
		t.Fatalf("unexpected ParseError: %v", parseErr)
	}
	out := Stringify(tree)
	if !strings.Contains(out, "Field") {
		t.Errorf("Stringify(tree) = %q, want it to mention Field", out)
	}
}

func TestStringifyTokens(t *testing.T) {
	tokens, lexErr := Lex([]byte("val x;"))
	if lexErr != nil {
		t.Fatalf("unexpected LexError: %v", lexErr)
	}
	out := Stringify(tokens)
	if !strings.Contains(out, "val") {
		t.Errorf("Stringify(tokens) = %q, want it to mention the 'val' lexeme", out)
	}
}

func TestWithMaxRecursionDepthOption(t *testing.T) {
	src := []byte(strings.Repeat("(", 2000) + "1" + strings.Repeat(")", 2000) + ";")
	tokens, lexErr := Lex(src)
	if lexErr != nil {
		t.Fatalf("unexpected LexError: %v", lexErr)
	}
	_, parseErr := Parse(tokens, src, WithMaxRecursionDepth(16))
	if parseErr == nil {
		t.Fatal("expected a recursion-limit ParseError with a shallow max depth")
	}
}
