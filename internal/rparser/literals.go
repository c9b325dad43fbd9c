package rparser

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

var literalTokenKinds = []token.Kind{
	token.Identifier, token.StringLiteral, token.IntLiteral, token.FloatLiteral,
	token.BinaryLiteral, token.OctalLiteral, token.HexadecimalLiteral, token.BoolLiteral,
	token.Null, token.This, token.Super,
}

// parseLiteralValue := ArrayInitializer | Identifier | StringLiteral | IntLiteral
//                    | FloatLiteral | BinaryLiteral | OctalLiteral | HexLiteral
//                    | BoolLiteral | 'null' | 'this' | 'super'
//                    | Cast
//                    | '(' ExpressionSequence ')'
//
// Cast is tried after every bare-token atom but before the raw parenthesized
// fallback: "(x)" only reaches the fallback once "(UnaryType)LiteralValue"
// has failed to find a LiteralValue after the closing paren.
func (p *Parser) parseLiteralValue() (*rcst.Tree, bool) {
	if !p.enterRecursion() {
		return nil, false
	}
	defer p.leaveRecursion()
	return p.speculate(rcst.LiteralValue, func() ([]rcst.Node, bool) {
		if arr, ok := p.parseArrayInitializer(); ok {
			return []rcst.Node{arr}, true
		}
		if tok, ok := p.current(); ok {
			if kindIn(tok.Kind, literalTokenKinds) {
				return []rcst.Node{p.advance()}, true
			}
		}
		if cast, ok := p.parseCast(); ok {
			return []rcst.Node{cast}, true
		}
		if p.is(token.OpenParenthesis) {
			lp := p.advance()
			seq, ok := p.parseExpressionSequence()
			if !ok {
				return nil, false
			}
			rp, ok := p.expect(token.CloseParenthesis, "')'")
			if !ok {
				return nil, false
			}
			return []rcst.Node{lp, seq, rp}, true
		}
		p.failHere(diag.ErrExpectedExpression, "expression")
		return nil, false
	})
}

func kindIn(k token.Kind, set []token.Kind) bool {
	for _, w := range set {
		if k == w {
			return true
		}
	}
	return false
}

// parseCast := '(' UnaryType ')' LiteralValue
//
// Backtracks as a whole if the trailing LiteralValue is absent, so "(x)"
// with nothing following falls through to the plain parenthesized
// expression in parseLiteralValue.
func (p *Parser) parseCast() (*rcst.Tree, bool) {
	return p.speculate(rcst.TypeCast, func() ([]rcst.Node, bool) {
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		ty, ok := p.parseUnaryType()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		val, ok := p.parseLiteralValue()
		if !ok {
			return nil, false
		}
		return []rcst.Node{lp, ty, rp, val}, true
	})
}

// parseArrayInitializer := '[' (ArrayValue (',' ArrayValue)*)? ']'
func (p *Parser) parseArrayInitializer() (*rcst.Tree, bool) {
	return p.speculate(rcst.ArrayInitializer, func() ([]rcst.Node, bool) {
		lb, ok := p.expect(token.OpenBracket, "'['")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lb}
		if !p.is(token.CloseBracket) {
			val, ok := p.parseArrayValue()
			if !ok {
				return nil, false
			}
			children = append(children, val)
			for p.is(token.Comma) {
				comma := p.advance()
				val, ok := p.parseArrayValue()
				if !ok {
					return nil, false
				}
				children = append(children, comma, val)
			}
		}
		rb, ok := p.expect(token.CloseBracket, "']'")
		if !ok {
			return nil, false
		}
		children = append(children, rb)
		return children, true
	})
}

func (p *Parser) parseArrayValue() (*rcst.Tree, bool) {
	return p.speculate(rcst.ArrayValue, func() ([]rcst.Node, bool) {
		expr, ok := p.parseAssignmentExpression()
		if !ok {
			return nil, false
		}
		return []rcst.Node{expr}, true
	})
}
