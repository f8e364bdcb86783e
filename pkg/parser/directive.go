package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseDirectives parses zero or more `@name(args?)` directives in a row.
// isConst threads through to the directive's own argument list.
func (p *Parser) parseDirectives(isConst bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(token.AT) {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

func (p *Parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.stream.Token()
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{Name: name, Arguments: arguments, Loc: p.loc(start)}, nil
}
