// Package rue is the public façade over the Rue language front-end: lex
// source into tokens, parse tokens into a concrete syntax tree, and render
// either a tree or a diagnostic back into human-readable text. Internal
// packages hold the actual lexer, parser, and CST implementations; this
// package only wires them together.
package rue

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/internal/rlex"
	"github.com/Rigidity/rue-lang/internal/rparser"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	Token      = token.Token
	Kind       = token.Kind
	Tree       = rcst.Tree
	Node       = rcst.Node
	TreeKind   = rcst.Kind
	Diagnostic = diag.Diagnostic
	LexError   = diag.LexError
	ParseError = diag.ParseError
)

// LexOption configures Lex. ParseOption configures Parse.
type LexOption = rlex.Option
type ParseOption = rparser.Option

var (
	// WithTokenCapacityHint is a LexOption.
	WithTokenCapacityHint = rlex.WithTokenCapacityHint
	// WithMaxRecursionDepth is a ParseOption.
	WithMaxRecursionDepth = rparser.WithMaxRecursionDepth
)

// Lex tokenizes source in full. The returned token sequence omits
// whitespace and comments.
func Lex(source []byte, opts ...LexOption) ([]Token, *LexError) {
	return rlex.Lex(source, opts...)
}

// Parse consumes a token sequence already produced by Lex and returns the
// top-level Body node, or the furthest diagnostic recorded during
// backtracking. source must be the original source the tokens were lexed
// from, used to report a position once every token has been consumed.
func Parse(tokens []Token, source []byte, opts ...ParseOption) (*Tree, *ParseError) {
	return rparser.Parse(tokens, source, opts...)
}

// ParseSource is a convenience wrapper chaining Lex and Parse over the same
// source. On a lex failure the returned ParseError is nil and the
// LexError is non-nil; exactly one of the two error returns is non-nil on
// any failure.
func ParseSource(source []byte, lexOpts []LexOption, parseOpts []ParseOption) (*Tree, *LexError, *ParseError) {
	tokens, lexErr := Lex(source, lexOpts...)
	if lexErr != nil {
		return nil, lexErr, nil
	}
	tree, parseErr := Parse(tokens, source, parseOpts...)
	return tree, nil, parseErr
}

// RenderError formats a diagnostic (lex or parse) as a multi-line message
// with file, source excerpt, caret underline, and position.
func RenderError(d *Diagnostic, filename string, source []byte) string {
	return diag.Render(d, filename, source)
}

// Stringify debug-prints a tree, a token slice, or a single token.
func Stringify(v any) string {
	return rcst.Stringify(v)
}
