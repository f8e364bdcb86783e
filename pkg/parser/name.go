package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

func (p *Parser) parseName() (*ast.Name, error) {
	start := p.stream.Token()
	tok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Value: tok.Value, Loc: p.loc(start)}, nil
}
