package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseTypeReference is the Type production: `[` recurses into an inner
// type and wraps it as a ListType, otherwise a NamedType is parsed; either
// form is wrapped as a NonNullType if a trailing `!` follows. A NonNullType
// can never directly wrap another NonNullType - there is no call path that
// would apply the `!` check twice to the same node.
func (p *Parser) parseTypeReference() (ast.Type, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.leaveRecursion()

	start := p.stream.Token()

	var typ ast.Type
	if p.peek(token.BRACKET_L) {
		if _, err := p.stream.Advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTypeReference()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		typ = &ast.ListType{Type: inner, Loc: p.loc(start)}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typ = named
	}

	bang, err := p.skip(token.BANG)
	if err != nil {
		return nil, err
	}
	if bang {
		return &ast.NonNullType{Type: typ, Loc: p.loc(start)}, nil
	}
	return typ, nil
}

func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	start := p.stream.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Name: name, Loc: p.loc(start)}, nil
}
