// Package rlex implements the Rue lexer: a longest-match tokenizer over
// keyword, identifier, numeric, string, and operator lexemes. It is a
// small struct advancing a cursor over the source, configured through
// functional options applied in newLexer, and walks the source byte-by-byte
// rather than rune-by-rune, since Rue identifiers are ASCII-only and every
// multi-byte payload (string/char literal content) is handled opaquely.
package rlex

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// Option configures the lexer that Lex constructs via newLexer.
type Option func(*lexer)

// WithTokenCapacityHint preallocates the returned token slice, avoiding
// reallocation churn for callers who know roughly how many tokens a source
// produces.
func WithTokenCapacityHint(n int) Option {
	return func(l *lexer) {
		if n > 0 {
			l.capacityHint = n
		}
	}
}

type lexer struct {
	src          []byte
	pos          int
	capacityHint int
}

func newLexer(src []byte, opts ...Option) *lexer {
	l := &lexer{src: src}
	// Skip a UTF-8 BOM if present; token offsets still index the original
	// source, BOM included.
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		l.pos = 3
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex tokenizes source in full, returning the ordered, trivia-free token
// sequence or the diagnostic for the first offending byte.
func Lex(source []byte, opts ...Option) ([]token.Token, *diag.LexError) {
	l := newLexer(source, opts...)

	var tokens []token.Token
	if l.capacityHint > 0 {
		tokens = make([]token.Token, 0, l.capacityHint)
	}

	for {
		l.skipTrivia()
		if l.pos >= len(l.src) {
			break
		}
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(offset int) byte {
	p := l.pos + offset
	if p < 0 || p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isAlnum(c byte) bool  { return isDigit(c) || isLetter(c) }

// skipTrivia consumes whitespace, line comments, and block comments, in a
// loop so that e.g. a comment followed by more whitespace is fully
// skipped before scanning the next real token.
func (l *lexer) skipTrivia() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			l.pos++
			continue
		}
		if l.peek() == '/' && l.peekAt(1) == '/' {
			l.pos += 2
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		if l.peek() == '/' && l.peekAt(1) == '*' {
			l.pos += 2
			for l.pos < len(l.src) && !(l.src[l.pos] == '*' && l.peekAt(1) == '/') {
				l.pos++
			}
			if l.pos < len(l.src) {
				l.pos += 2 // consume closing "*/"
			}
			continue
		}
		return
	}
}

// scanToken dispatches to the priority-ordered lexical rules in §4.1:
// identifier/keyword, numeric literal, string/char literal, then the
// operator table, falling back to UnexpectedCharacter.
func (l *lexer) scanToken() (token.Token, *diag.LexError) {
	c := l.peek()

	if isLetter(c) {
		return l.scanIdentifier(), nil
	}
	if isDigit(c) {
		return l.scanNumber(), nil
	}
	if c == '\'' || c == '"' {
		return l.scanString(c)
	}
	if tok, ok := l.scanOperator(); ok {
		return tok, nil
	}

	start := l.pos
	l.pos++
	return token.Token{}, diag.NewWithContent(diag.Lex, diag.ErrUnexpectedCharacter,
		"Unexpected character", c, start, start+1)
}

func (l *lexer) scanIdentifier() token.Token {
	start := l.pos
	l.pos++ // first letter already confirmed by caller
	for {
		if isAlnum(l.peek()) {
			for isAlnum(l.peek()) {
				l.pos++
			}
			continue
		}
		if l.peek() == '_' && isAlnum(l.peekAt(1)) {
			l.pos++ // consume '_'
			for isAlnum(l.peek()) {
				l.pos++
			}
			continue
		}
		break
	}
	text := string(l.src[start:l.pos])
	return token.Token{Kind: token.Lookup(text), Text: text, Start: start, Stop: l.pos}
}

func (l *lexer) scanOperator() (token.Token, bool) {
	rest := l.src[l.pos:]
	for _, op := range token.Operators {
		if len(op.Lexeme) <= len(rest) && string(rest[:len(op.Lexeme)]) == op.Lexeme {
			start := l.pos
			l.pos += len(op.Lexeme)
			return token.Token{Kind: op.Kind, Text: op.Lexeme, Start: start, Stop: l.pos}, true
		}
	}
	return token.Token{}, false
}
