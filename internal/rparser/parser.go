// Package rparser implements the Rue parser: a hand-written,
// recursive-descent parser with speculative execution for every
// production, built around a cursor stack of token-slice views. Every
// production pushes a speculative view, attempts to match, and either
// commits (propagating its consumption to the parent) or abandons
// (leaving the parent untouched) — this lets Rue backtrack far more
// aggressively than a single-cursor parser, since alternatives like
// cast-vs-parenthesized-expression require trying one production fully
// before falling back to another.
package rparser

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// DefaultMaxRecursionDepth bounds nested speculative descent (nested
// parens, blocks, generics...) so pathological input fails with a
// diagnostic instead of overflowing the goroutine stack.
const DefaultMaxRecursionDepth = 512

// Option configures a Parser constructed via New.
type Option func(*Parser)

// WithMaxRecursionDepth overrides DefaultMaxRecursionDepth.
func WithMaxRecursionDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser holds the cursor stack and the single "furthest error" slot.
type Parser struct {
	stack     [][]token.Token
	sourceLen int
	furthest  *diag.ParseError
	depth     int
	maxDepth  int
}

// New builds a Parser over tokens (already lexed, trivia-free). source is
// the original source the tokens were lexed from; only its length is
// needed, as the cursor position once every token has been consumed.
func New(tokens []token.Token, source []byte, opts ...Option) *Parser {
	p := &Parser{
		stack:     [][]token.Token{tokens},
		sourceLen: len(source),
		maxDepth:  DefaultMaxRecursionDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the top-level Body production and, on success, verifies no
// tokens remain.
func Parse(tokens []token.Token, source []byte, opts ...Option) (*rcst.Tree, *diag.ParseError) {
	p := New(tokens, source, opts...)
	body, ok := p.parseBody()
	if !ok {
		return nil, p.furthest
	}
	if tok, has := p.current(); has {
		p.fail(tok.Start, tok.Stop, diag.ErrUnexpectedToken, "Unexpected token")
		return nil, p.furthest
	}
	return body, nil
}

// --- cursor stack -----------------------------------------------------

func (p *Parser) top() []token.Token {
	return p.stack[len(p.stack)-1]
}

// begin pushes a speculative copy of the current view. Since a Go slice
// header copy shares the same backing array, this is O(1) — a cheap view
// clone.
func (p *Parser) begin() {
	p.stack = append(p.stack, p.top())
}

// commit pops the speculative view and installs it as the new top,
// propagating every token it consumed to the parent.
func (p *Parser) commit() {
	v := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.stack[len(p.stack)-1] = v
}

// abandon pops the speculative view without propagating its consumption;
// the parent view is left exactly as it was before begin().
func (p *Parser) abandon() {
	p.stack = p.stack[:len(p.stack)-1]
}

// pos returns the byte offset a new production starting here would use as
// its Start: the next unconsumed token's start, or end-of-source if the
// current view is empty.
func (p *Parser) pos() int {
	v := p.top()
	if len(v) == 0 {
		return p.sourceLen
	}
	return v[0].Start
}

func (p *Parser) current() (token.Token, bool) {
	v := p.top()
	if len(v) == 0 {
		return token.Token{}, false
	}
	return v[0], true
}

func (p *Parser) peekKind() (token.Kind, bool) {
	t, ok := p.current()
	if !ok {
		return 0, false
	}
	return t.Kind, true
}

// advance consumes and returns the current token. Callers must only call
// this when current() reports a token present.
func (p *Parser) advance() token.Token {
	v := p.top()
	t := v[0]
	p.stack[len(p.stack)-1] = v[1:]
	return t
}

// is reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) is(kind token.Kind) bool {
	k, ok := p.peekKind()
	return ok && k == kind
}

// isAny reports whether the current token has any of the given kinds.
func (p *Parser) isAny(kinds ...token.Kind) bool {
	k, ok := p.peekKind()
	if !ok {
		return false
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches kind, recording a
// furthest-error failure (with the given label in the message) otherwise.
func (p *Parser) expect(kind token.Kind, label string) (token.Token, bool) {
	if p.is(kind) {
		return p.advance(), true
	}
	p.failHere(diag.ErrExpectedToken, "Expected "+label)
	return token.Token{}, false
}

// failHere records a furthest-error diagnostic pointing at the current
// token's span, or a zero-width span at end-of-source if no token remains.
func (p *Parser) failHere(code diag.Code, message string) {
	if tok, ok := p.current(); ok {
		p.fail(tok.Start, tok.Stop, code, message)
		return
	}
	p.fail(p.sourceLen, p.sourceLen, code, message)
}

// fail updates the single furthest-error slot per the "furthest-match-wins"
// policy: a later failure replaces an earlier one outright, and a failure
// at the same start position also replaces the stored one (later wins on
// ties).
func (p *Parser) fail(start, stop int, code diag.Code, message string) {
	candidate := diag.New(diag.Parse, code, message, start, stop)
	p.furthest = diag.Furthest(p.furthest, candidate)
}

// speculate is the generic production wrapper: push a view, run body, and
// either commit with a Tree spanning [entryPos, exitPos) or abandon and
// report failure. body itself is responsible for calling
// fail()/failHere() at the actual point of failure so the furthest-error
// slot reflects how far the parser actually got.
func (p *Parser) speculate(kind rcst.Kind, body func() ([]rcst.Node, bool)) (*rcst.Tree, bool) {
	start := p.pos()
	p.begin()
	children, ok := body()
	if !ok {
		p.abandon()
		return nil, false
	}
	stop := p.pos()
	p.commit()
	return rcst.New(kind, start, stop, children), true
}

// enterRecursion guards against pathological nesting depth.
// Callers must defer p.leaveRecursion() after a successful enter.
func (p *Parser) enterRecursion() bool {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		p.failHere(diag.ErrRecursionLimit, "Recursion limit exceeded")
		return false
	}
	return true
}

func (p *Parser) leaveRecursion() {
	p.depth--
}
