package rparser

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// parseBody := Statement*
//
// Can never fail: a Body with zero statements is legal, which is what lets
// it also serve as Match's trailing "optional" body (see parseMatch).
func (p *Parser) parseBody() (*rcst.Tree, bool) {
	return p.speculate(rcst.Body, func() ([]rcst.Node, bool) {
		var children []rcst.Node
		for {
			stmt, ok := p.parseStatement()
			if !ok {
				break
			}
			children = append(children, stmt)
		}
		return children, true
	})
}

// statementAlternatives lists the Statement production's alternatives in
// a fixed order. First match wins — this is
// what makes a bare "ident:" a Labeled statement rather than, say, an
// expression statement gone wrong.
func (p *Parser) statementAlternatives() []func() (*rcst.Tree, bool) {
	return []func() (*rcst.Tree, bool){
		p.parseLabeled,
		p.parseField,
		p.parseExprStatement,
		p.parseDef,
		p.parseIf,
		p.parseWhile,
		p.parseMatch,
		p.parseDo,
		p.parseFor,
		p.parseReturn,
		p.parseContinue,
		p.parseBreak,
		p.parseBlock,
		p.parseEmpty,
	}
}

// parseStatement tries every alternative and wraps the first that matches
// in a Statement node, so the CST always has a uniform "one statement slot"
// shape regardless of which alternative actually fired.
func (p *Parser) parseStatement() (*rcst.Tree, bool) {
	if !p.enterRecursion() {
		return nil, false
	}
	defer p.leaveRecursion()
	return p.speculate(rcst.Statement, func() ([]rcst.Node, bool) {
		for _, alt := range p.statementAlternatives() {
			if tree, ok := alt(); ok {
				return []rcst.Node{tree}, true
			}
		}
		p.failHere(diag.ErrExpectedStatement, "statement")
		return nil, false
	})
}

// parseLabeled := Identifier ':' Statement
//
// Because this is tried before every other alternative, an identifier
// immediately followed by ':' is always a label — including when that
// identifier lexeme happens to be a keyword's spelling elsewhere in the
// grammar but was tokenized as Identifier (e.g. "else" itself is never
// reachable here since the lexer always emits it as the Else keyword, so
// "else: foo;" cannot be parsed as a label; this mirrors the reference
// behavior faithfully rather than papering over it).
func (p *Parser) parseLabeled() (*rcst.Tree, bool) {
	return p.speculate(rcst.Labeled, func() ([]rcst.Node, bool) {
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		colon, ok := p.expect(token.Colon, "':'")
		if !ok {
			return nil, false
		}
		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return []rcst.Node{ident, colon, stmt}, true
	})
}

// parseField := ('val'|'var') Identifier (':' UnionType)? ('=' AssignmentExpression)? ';'
func (p *Parser) parseField() (*rcst.Tree, bool) {
	return p.speculate(rcst.Field, func() ([]rcst.Node, bool) {
		var kw token.Token
		var ok bool
		if p.isAny(token.Val, token.Var) {
			kw = p.advance()
		} else {
			p.failHere(diag.ErrExpectedToken, "Expected 'val' or 'var'")
			return nil, false
		}
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw, ident}
		if p.is(token.Colon) {
			colon := p.advance()
			ty, ok := p.parseUnionType()
			if !ok {
				return nil, false
			}
			children = append(children, colon, ty)
		}
		if p.is(token.Assign) {
			eq := p.advance()
			val, ok := p.parseAssignmentExpression()
			if !ok {
				return nil, false
			}
			children = append(children, eq, val)
		}
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		children = append(children, semi)
		return children, true
	})
}

// parseExprStatement := ExpressionSequence ';'
func (p *Parser) parseExprStatement() (*rcst.Tree, bool) {
	return p.speculate(rcst.Expression, func() ([]rcst.Node, bool) {
		seq, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		return []rcst.Node{seq, semi}, true
	})
}

// parseDef := 'def' Identifier Parameters (':' UnaryType)? (Block | Empty)
func (p *Parser) parseDef() (*rcst.Tree, bool) {
	return p.speculate(rcst.Def, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Def, "'def'")
		if !ok {
			return nil, false
		}
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		params, ok := p.parseParameters()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw, ident, params}
		if p.is(token.Colon) {
			colon := p.advance()
			ret, ok := p.parseUnaryType()
			if !ok {
				return nil, false
			}
			children = append(children, colon, ret)
		}
		if block, ok := p.parseBlock(); ok {
			return append(children, block), true
		}
		if empty, ok := p.parseEmpty(); ok {
			return append(children, empty), true
		}
		p.failHere(diag.ErrExpectedToken, "Expected '{' or ';'")
		return nil, false
	})
}

// parseParameters := '(' (Parameter (',' Parameter)*)? ')'
func (p *Parser) parseParameters() (*rcst.Tree, bool) {
	return p.speculate(rcst.Parameters, func() ([]rcst.Node, bool) {
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lp}
		if !p.is(token.CloseParenthesis) {
			param, ok := p.parseParameter()
			if !ok {
				return nil, false
			}
			children = append(children, param)
			for p.is(token.Comma) {
				comma := p.advance()
				param, ok := p.parseParameter()
				if !ok {
					return nil, false
				}
				children = append(children, comma, param)
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

// parseParameter := Identifier ':' UnaryType | '...'
func (p *Parser) parseParameter() (*rcst.Tree, bool) {
	return p.speculate(rcst.Parameter, func() ([]rcst.Node, bool) {
		if p.is(token.Ellipsis) {
			return []rcst.Node{p.advance()}, true
		}
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		colon, ok := p.expect(token.Colon, "':'")
		if !ok {
			return nil, false
		}
		ty, ok := p.parseUnaryType()
		if !ok {
			return nil, false
		}
		return []rcst.Node{ident, colon, ty}, true
	})
}

// parseIf := 'if' '(' ExpressionSequence ')' Statement ('else' Statement)?
//
// Dangling else resolves correctly for free: the inner if's own Statement
// parse greedily consumes a trailing "else" before control ever returns to
// an enclosing if, so "if (a) if (b) x; else y;" attaches the else to the
// innermost if.
func (p *Parser) parseIf() (*rcst.Tree, bool) {
	return p.speculate(rcst.If, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.If, "'if'")
		if !ok {
			return nil, false
		}
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		cond, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		then, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw, lp, cond, rp, then}
		if p.is(token.Else) {
			elseKw := p.advance()
			elseStmt, ok := p.parseStatement()
			if !ok {
				return nil, false
			}
			children = append(children, elseKw, elseStmt)
		}
		return children, true
	})
}

// parseWhile := 'while' '(' ExpressionSequence ')' Statement
func (p *Parser) parseWhile() (*rcst.Tree, bool) {
	return p.speculate(rcst.While, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.While, "'while'")
		if !ok {
			return nil, false
		}
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		cond, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		body, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return []rcst.Node{kw, lp, cond, rp, body}, true
	})
}

// parseDo := 'do' Statement 'while' '(' ExpressionSequence ')'
func (p *Parser) parseDo() (*rcst.Tree, bool) {
	return p.speculate(rcst.Do, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Do, "'do'")
		if !ok {
			return nil, false
		}
		body, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		whileKw, ok := p.expect(token.While, "'while'")
		if !ok {
			return nil, false
		}
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		cond, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		return []rcst.Node{kw, body, whileKw, lp, cond, rp}, true
	})
}

// parseFor := 'for' '(' Identifier 'in' AssignmentExpression ')' Statement
func (p *Parser) parseFor() (*rcst.Tree, bool) {
	return p.speculate(rcst.For, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.For, "'for'")
		if !ok {
			return nil, false
		}
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		ident, ok := p.expect(token.Identifier, "identifier")
		if !ok {
			return nil, false
		}
		inKw, ok := p.expect(token.In, "'in'")
		if !ok {
			return nil, false
		}
		iter, ok := p.parseAssignmentExpression()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		body, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return []rcst.Node{kw, lp, ident, inKw, iter, rp, body}, true
	})
}

// parseReturn := 'return' ExpressionSequence? ';'
func (p *Parser) parseReturn() (*rcst.Tree, bool) {
	return p.speculate(rcst.Return, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Return, "'return'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw}
		if !p.is(token.Semicolon) {
			seq, ok := p.parseExpressionSequence()
			if !ok {
				return nil, false
			}
			children = append(children, seq)
		}
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		children = append(children, semi)
		return children, true
	})
}

// parseContinue := 'continue' Identifier? ';'
func (p *Parser) parseContinue() (*rcst.Tree, bool) {
	return p.speculate(rcst.Continue, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Continue, "'continue'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw}
		if p.is(token.Identifier) {
			children = append(children, p.advance())
		}
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		children = append(children, semi)
		return children, true
	})
}

// parseBreak := 'break' Identifier? ';'
func (p *Parser) parseBreak() (*rcst.Tree, bool) {
	return p.speculate(rcst.Break, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Break, "'break'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw}
		if p.is(token.Identifier) {
			children = append(children, p.advance())
		}
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		children = append(children, semi)
		return children, true
	})
}

// parseBlock := '{' Statement* '}'
func (p *Parser) parseBlock() (*rcst.Tree, bool) {
	if !p.enterRecursion() {
		return nil, false
	}
	defer p.leaveRecursion()
	return p.speculate(rcst.Block, func() ([]rcst.Node, bool) {
		lb, ok := p.expect(token.OpenBrace, "'{'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lb}
		for {
			stmt, ok := p.parseStatement()
			if !ok {
				break
			}
			children = append(children, stmt)
		}
		rb, ok := p.expect(token.CloseBrace, "'}'")
		if !ok {
			return nil, false
		}
		children = append(children, rb)
		return children, true
	})
}

// parseEmpty := ';'
func (p *Parser) parseEmpty() (*rcst.Tree, bool) {
	return p.speculate(rcst.Empty, func() ([]rcst.Node, bool) {
		semi, ok := p.expect(token.Semicolon, "';'")
		if !ok {
			return nil, false
		}
		return []rcst.Node{semi}, true
	})
}

// parseMatch := 'match' '(' ExpressionSequence ')' '{' MatchOption* Body? '}'
//
// The reference's fallback-body check never actually fires on a dedicated
// flag, so in practice a Match is always zero or more MatchOptions
// followed by an (always-present, possibly-empty) Body — parseBody never
// fails, so that's exactly what calling it unconditionally after the
// MatchOption loop gives us.
func (p *Parser) parseMatch() (*rcst.Tree, bool) {
	return p.speculate(rcst.Match, func() ([]rcst.Node, bool) {
		kw, ok := p.expect(token.Match, "'match'")
		if !ok {
			return nil, false
		}
		lp, ok := p.expect(token.OpenParenthesis, "'('")
		if !ok {
			return nil, false
		}
		subject, ok := p.parseExpressionSequence()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.CloseParenthesis, "')'")
		if !ok {
			return nil, false
		}
		lb, ok := p.expect(token.OpenBrace, "'{'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{kw, lp, subject, rp, lb}
		for {
			opt, ok := p.parseMatchOption()
			if !ok {
				break
			}
			children = append(children, opt)
		}
		body, ok := p.parseBody()
		if ok {
			children = append(children, body)
		}
		rb, ok := p.expect(token.CloseBrace, "'}'")
		if !ok {
			return nil, false
		}
		children = append(children, rb)
		return children, true
	})
}

// parseMatchOption := AssignmentExpression '=>' Statement
func (p *Parser) parseMatchOption() (*rcst.Tree, bool) {
	return p.speculate(rcst.MatchOption, func() ([]rcst.Node, bool) {
		pattern, ok := p.parseAssignmentExpression()
		if !ok {
			return nil, false
		}
		arrow, ok := p.expect(token.FatArrow, "'=>'")
		if !ok {
			return nil, false
		}
		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return []rcst.Node{pattern, arrow, stmt}, true
	})
}
