package rparser

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

var assignOps = []token.Kind{
	token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
	token.PercentAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign, token.QuestionAssign,
	token.LeftShiftAssign, token.RightShiftAssign, token.UnsignedRightShiftAssign,
}

// parseExpressionSequence := AssignmentExpression (',' AssignmentExpression)*
func (p *Parser) parseExpressionSequence() (*rcst.Tree, bool) {
	return p.chain(rcst.ExpressionSequence, p.parseAssignmentExpression, token.Comma)
}

// parseAssignmentExpression := TernaryExpression (AssignOp TernaryExpression)?
//
// Exactly one assignment step: the right-hand side is a TernaryExpression,
// not another AssignmentExpression, so "a = b = c" is rejected here by
// construction rather than by a later check.
func (p *Parser) parseAssignmentExpression() (*rcst.Tree, bool) {
	if !p.enterRecursion() {
		return nil, false
	}
	defer p.leaveRecursion()
	return p.speculate(rcst.Assignment, func() ([]rcst.Node, bool) {
		lhs, ok := p.parseTernaryExpression()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lhs}
		if p.isAny(assignOps...) {
			opTok := p.advance()
			rhs, ok := p.parseTernaryExpression()
			if !ok {
				return nil, false
			}
			children = append(children, opTok, rhs)
		}
		return children, true
	})
}

// parseTernaryExpression := CoalesceExpression ('?' AssignmentExpression ':' AssignmentExpression)?
func (p *Parser) parseTernaryExpression() (*rcst.Tree, bool) {
	return p.speculate(rcst.Ternary, func() ([]rcst.Node, bool) {
		cond, ok := p.parseCoalesceExpression()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{cond}
		if p.is(token.Question) {
			q := p.advance()
			thenExpr, ok := p.parseAssignmentExpression()
			if !ok {
				return nil, false
			}
			colon, ok := p.expect(token.Colon, "':'")
			if !ok {
				return nil, false
			}
			elseExpr, ok := p.parseAssignmentExpression()
			if !ok {
				return nil, false
			}
			children = append(children, q, thenExpr, colon, elseExpr)
		}
		return children, true
	})
}

func (p *Parser) parseCoalesceExpression() (*rcst.Tree, bool) {
	return p.chain(rcst.Coalesce, p.parseLogicalOr, token.Coalesce)
}

func (p *Parser) parseLogicalOr() (*rcst.Tree, bool) {
	return p.chain(rcst.LogicalOr, p.parseLogicalAnd, token.Or)
}

func (p *Parser) parseLogicalAnd() (*rcst.Tree, bool) {
	return p.chain(rcst.LogicalAnd, p.parseBitwiseOr, token.And)
}

func (p *Parser) parseBitwiseOr() (*rcst.Tree, bool) {
	return p.chain(rcst.BitwiseOr, p.parseBitwiseXor, token.Pipe)
}

func (p *Parser) parseBitwiseXor() (*rcst.Tree, bool) {
	return p.chain(rcst.BitwiseXor, p.parseBitwiseAnd, token.Caret)
}

func (p *Parser) parseBitwiseAnd() (*rcst.Tree, bool) {
	return p.chain(rcst.BitwiseAnd, p.parseEquality, token.Amp)
}

func (p *Parser) parseEquality() (*rcst.Tree, bool) {
	return p.chain(rcst.Equality, p.parseComparison, token.Equal, token.NotEqual)
}

// parseComparison := Shift (('<='|'>='|'<'|'>'|'in') Shift | ('as'|'is') UnaryType)*
//
// The two arms produce the same flat Comparison node; only the shape of
// the right-hand operand differs (another Shift, or a type).
func (p *Parser) parseComparison() (*rcst.Tree, bool) {
	return p.speculate(rcst.Comparison, func() ([]rcst.Node, bool) {
		first, ok := p.parseShift()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{first}
		for {
			switch {
			case p.isAny(token.LessEqual, token.GreaterEqual, token.Less, token.Greater, token.In):
				opTok := p.advance()
				rhs, ok := p.parseShift()
				if !ok {
					return nil, false
				}
				children = append(children, opTok, rhs)
			case p.isAny(token.As, token.Is):
				opTok := p.advance()
				rhs, ok := p.parseUnaryType()
				if !ok {
					return nil, false
				}
				children = append(children, opTok, rhs)
			default:
				return children, true
			}
		}
	})
}

func (p *Parser) parseShift() (*rcst.Tree, bool) {
	return p.chain(rcst.Shift, p.parseTerm, token.LeftShift, token.RightShift, token.UnsignedRightShift)
}

func (p *Parser) parseTerm() (*rcst.Tree, bool) {
	return p.chain(rcst.Term, p.parseFactor, token.Plus, token.Minus)
}

func (p *Parser) parseFactor() (*rcst.Tree, bool) {
	return p.chain(rcst.Factor, p.parseRange, token.Star, token.Slash, token.Percent)
}

// parseRange := Unary? (('..'|'...') Unary?)?  -- an operand or the operator required
//
// Both the leading and trailing Unary are optional once an operator is
// present (so "..", "a..", "..b" are all valid); with no operator at all,
// a present Unary degenerates Range to a single-child wrapper, and an
// absent one is an outright failure (nothing matched).
func (p *Parser) parseRange() (*rcst.Tree, bool) {
	return p.speculate(rcst.Range, func() ([]rcst.Node, bool) {
		var children []rcst.Node
		lhs, hasLHS := p.parseUnary()
		if hasLHS {
			children = append(children, lhs)
		}
		if p.isAny(token.Ellipsis, token.DotDot) {
			opTok := p.advance()
			children = append(children, opTok)
			if rhs, ok := p.parseUnary(); ok {
				children = append(children, rhs)
			}
			return children, true
		}
		if !hasLHS {
			p.failHere(diag.ErrExpectedExpression, "expression")
			return nil, false
		}
		return children, true
	})
}

var unaryPrefixOps = []token.Kind{token.Not, token.Tilde, token.Plus, token.Minus, token.Star, token.Amp}

// parseUnary := ('not'|'~'|'+'|'-'|'*'|'&')* Reference
func (p *Parser) parseUnary() (*rcst.Tree, bool) {
	return p.speculate(rcst.Unary, func() ([]rcst.Node, bool) {
		var children []rcst.Node
		for p.isAny(unaryPrefixOps...) {
			children = append(children, p.advance())
		}
		ref, ok := p.parseReference()
		if !ok {
			return nil, false
		}
		children = append(children, ref)
		return children, true
	})
}

// parseReference := LiteralValue (PropertyAccess | OptionalAccess | ArrayIndex | Call)*
func (p *Parser) parseReference() (*rcst.Tree, bool) {
	return p.speculate(rcst.Reference, func() ([]rcst.Node, bool) {
		lit, ok := p.parseLiteralValue()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lit}
		for {
			switch {
			case p.is(token.Dot):
				pa, ok := p.parsePropertyAccess()
				if !ok {
					return nil, false
				}
				children = append(children, pa)
			case p.is(token.OptionalDot):
				oa, ok := p.parseOptionalAccess()
				if !ok {
					return nil, false
				}
				children = append(children, oa)
			case p.is(token.OpenBracket):
				idx, ok := p.parseArrayIndex()
				if !ok {
					return nil, false
				}
				children = append(children, idx)
			case p.is(token.OpenParenthesis):
				call, ok := p.parseCall()
				if !ok {
					return nil, false
				}
				children = append(children, call)
			default:
				return children, true
			}
		}
	})
}

func (p *Parser) parsePropertyAccess() (*rcst.Tree, bool) {
	return p.speculate(rcst.PropertyAccess, func() ([]rcst.Node, bool) {
		dot, ok := p.expect(token.Dot, "'.'")
		if !ok {
			return nil, false
		}
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		return []rcst.Node{dot, ident}, true
	})
}

// parseOptionalAccess := '?.' (Identifier | ArrayIndex | Call)
func (p *Parser) parseOptionalAccess() (*rcst.Tree, bool) {
	return p.speculate(rcst.OptionalPropertyAccess, func() ([]rcst.Node, bool) {
		qdot, ok := p.expect(token.OptionalDot, "'?.'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{qdot}
		switch {
		case p.is(token.OpenBracket):
			idx, ok := p.parseArrayIndex()
			if !ok {
				return nil, false
			}
			children = append(children, idx)
		case p.is(token.OpenParenthesis):
			call, ok := p.parseCall()
			if !ok {
				return nil, false
			}
			children = append(children, call)
		default:
			ident, ok := p.expect(token.Identifier, "identifier")
			if !ok {
				return nil, false
			}
			children = append(children, ident)
		}
		return children, true
	})
}

func (p *Parser) parseArrayIndex() (*rcst.Tree, bool) {
	return p.speculate(rcst.ArrayIndex, func() ([]rcst.Node, bool) {
		lb, ok := p.expect(token.OpenBracket, "'['")
		if !ok {
			return nil, false
		}
		seq, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		rb, ok := p.expect(token.CloseBracket, "']'")
		if !ok {
			return nil, false
		}
		return []rcst.Node{lb, seq, rb}, true
	})
}

func (p *Parser) parseCall() (*rcst.Tree, bool) {
	return p.speculate(rcst.MethodCall, func() ([]rcst.Node, bool) {
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lp}
		if !p.is(token.CloseParenthesis) {
			arg, ok := p.parseMethodCallArgument()
			if !ok {
				return nil, false
			}
			children = append(children, arg)
			for p.is(token.Comma) {
				comma := p.advance()
				arg, ok := p.parseMethodCallArgument()
				if !ok {
					return nil, false
				}
				children = append(children, comma, arg)
			}
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		children = append(children, rp)
		return children, true
	})
}

func (p *Parser) parseMethodCallArgument() (*rcst.Tree, bool) {
	return p.speculate(rcst.MethodCallArgument, func() ([]rcst.Node, bool) {
		expr, ok := p.parseAssignmentExpression()
		if !ok {
			return nil, false
		}
		return []rcst.Node{expr}, true
	})
}
