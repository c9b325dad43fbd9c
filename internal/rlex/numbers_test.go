package rlex

import (
	"testing"

	"github.com/Rigidity/rue-lang/pkg/token"
)

func TestScanNumberForms(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"0x1F", token.HexadecimalLiteral, "0x1F"},
		{"0X1f", token.HexadecimalLiteral, "0X1f"},
		{"0o17", token.OctalLiteral, "0o17"},
		{"0b1010", token.BinaryLiteral, "0b1010"},
		{"3.14", token.FloatLiteral, "3.14"},
		{"3.14e10", token.FloatLiteral, "3.14e10"},
		{"3.14e+10", token.FloatLiteral, "3.14e+10"},
		{"42", token.IntLiteral, "42"},
		{"42e5", token.IntLiteral, "42e5"},
		{"42e", token.IntLiteral, "42"}, // malformed exponent left unconsumed
	}
	for _, tt := range tests {
		toks, err := Lex([]byte(tt.input))
		if err != nil {
			t.Fatalf("Lex(%q) error: %v", tt.input, err)
		}
		if toks[0].Kind != tt.kind || toks[0].Text != tt.text {
			t.Errorf("Lex(%q)[0] = %s(%q), want %s(%q)", tt.input, toks[0].Kind, toks[0].Text, tt.kind, tt.text)
		}
	}
}

// "0x1F" must tokenize as one HexadecimalLiteral, not IntLiteral "0"
// followed by an identifier "x1F".
func TestHexLiteralIsOneToken(t *testing.T) {
	toks, err := Lex([]byte("0x1F"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
	}
}

func TestZeroWithoutPrefixIsInteger(t *testing.T) {
	toks, err := Lex([]byte("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.IntLiteral {
		t.Errorf("got %v, want single IntLiteral", toks)
	}
}
