package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseFragment handles the `...` production: a fragment spread when the
// next token is a NAME other than "on", otherwise an inline fragment with
// an optional `on NamedType` type condition.
func (p *Parser) parseFragment() (ast.Selection, error) {
	start := p.stream.Token()
	if _, err := p.expect(token.SPREAD); err != nil {
		return nil, err
	}

	cur := p.stream.Token()
	if cur.Kind == token.NAME && cur.Value != "on" {
		name, err := p.parseFragmentName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: p.loc(start)}, nil
	}

	var typeCondition *ast.NamedType
	if cur.Kind == token.NAME && cur.Value == "on" {
		if _, err := p.expectKeyword("on"); err != nil {
			return nil, err
		}
		var err error
		typeCondition, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           p.loc(start),
	}, nil
}

// parseFragmentName parses a Name that must not be the identifier "on" -
// that spelling is reserved for the type-condition keyword.
func (p *Parser) parseFragmentName() (*ast.Name, error) {
	if p.stream.Token().Value == "on" {
		return nil, p.unexpected(nil)
	}
	return p.parseName()
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.stream.Token()
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           p.loc(start),
	}, nil
}
