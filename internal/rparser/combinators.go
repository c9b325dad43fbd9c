package rparser

import (
	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/Rigidity/rue-lang/pkg/token"
)

// chain implements the common "Tier := Operand (op Operand)*" shape shared
// by most of the expression and type grammar's precedence tiers: a single
// flat node of kind, with children [operand, op, operand, op, operand...]
// — left-associativity is represented by this flat ordering, not by
// nested binary subtrees. "1 + 2 * 3" therefore produces a Term with
// children 1, +, Factor(2 * 3), not a binary tree of Terms.
func (p *Parser) chain(kind rcst.Kind, operand func() (*rcst.Tree, bool), ops ...token.Kind) (*rcst.Tree, bool) {
	return p.speculate(kind, func() ([]rcst.Node, bool) {
		first, ok := operand()
		if !ok {
			return nil, false
		}
		children := []rcst.Node{first}
		for p.isAny(ops...) {
			opTok := p.advance()
			next, ok := operand()
			if !ok {
				return nil, false
			}
			children = append(children, opTok, next)
		}
		return children, true
	})
}
