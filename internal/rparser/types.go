package rparser

import (
	"github.com/Rigidity/rue-lang/internal/diag"
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// parseUnionType := IntersectionType ('|' IntersectionType)*
func (p *Parser) parseUnionType() (*rcst.Tree, bool) {
	return p.chain(rcst.UnionType, p.parseIntersectionType, token.Pipe)
}

// parseIntersectionType := UnaryType ('&' UnaryType)*
func (p *Parser) parseIntersectionType() (*rcst.Tree, bool) {
	return p.chain(rcst.IntersectionType, p.parseUnaryType, token.Amp)
}

// parseUnaryType := TypeBase (GenericType | ArrayType | '*' | '?')*
//
// The '<' that opens a GenericType is only attempted here, never from an
// expression context, so it never competes with '<' as a comparison
// operator: Comparison's 'as'/'is' arm and Cast's parenthesized type are
// the only bridges from expression grammar into type grammar, and both
// land here directly.
func (p *Parser) parseUnaryType() (*rcst.Tree, bool) {
	if !p.enterRecursion() {
		return nil, false
	}
	defer p.leaveRecursion()
	return p.speculate(rcst.UnaryType, func() ([]rcst.Node, bool) {
		base, ok := p.parseTypeBase()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{base}
		for {
			if p.is(token.Less) {
				g, ok := p.parseGenericType()
				if !ok {
					break
				}
				children = append(children, g)
				continue
			}
			if p.is(token.OpenBracket) {
				arr, ok := p.parseArrayType()
				if !ok {
					break
				}
				children = append(children, arr)
				continue
			}
			if p.isAny(token.Star, token.Question) {
				children = append(children, p.advance())
				continue
			}
			break
		}
		return children, true
	})
}

// parseTypeBase matches a bare type-name token: an identifier (class/enum
// name) or one of the collapsed built-in type kinds. It is not itself a
// CST production — TypeBase contributes a single leaf token, not a
// wrapping Tree.
func (p *Parser) parseTypeBase() (token.Token, bool) {
	if tok, ok := p.current(); ok {
		switch tok.Kind {
		case token.Identifier, token.VoidType, token.IntegerType, token.UnsignedIntegerType,
			token.FloatType, token.BooleanType, token.StringType:
			return p.advance(), true
		}
	}
	p.failHere(diag.ErrExpectedType, "type")
	return token.Token{}, false
}

// parseGenericType := '<' UnionType (',' UnionType)* '>'
func (p *Parser) parseGenericType() (*rcst.Tree, bool) {
	return p.speculate(rcst.GenericType, func() ([]rcst.Node, bool) {
		lt, ok := p.expect(token.Less, "'<'")
		if !ok {
			return nil, false
		}
		children := []rcst.Node{lt}
		first, ok := p.parseUnionType()
		if !ok {
			return nil, false
		}
		children = append(children, first)
		for p.is(token.Comma) {
			comma := p.advance()
			next, ok := p.parseUnionType()
			if !ok {
				return nil, false
			}
			children = append(children, comma, next)
		}
		gt, ok := p.expect(token.Greater, "'>'")
		if !ok {
			return nil, false
		}
		children = append(children, gt)
		return children, true
	})
}

// parseArrayType := '[' ']'
func (p *Parser) parseArrayType() (*rcst.Tree, bool) {
	return p.speculate(rcst.ArrayType, func() ([]rcst.Node, bool) {
		lb, ok := p.expect(token.OpenBracket, "'['")
		if !ok {
			return nil, false
		}
		rb, ok := p.expect(token.CloseBracket, "']'")
		if !ok {
			return nil, false
		}
		return []rcst.Node{lb, rb}, true
	})
}
