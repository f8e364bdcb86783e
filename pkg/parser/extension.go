package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseTypeExtension handles `extend <keyword> ...`. Only `extend type` is
// recognized (ast.ObjectTypeExtension); scalar, interface, union, enum,
// input, and schema extensions all raise unexpected at the keyword.
func (p *Parser) parseTypeExtension() (ast.Definition, error) {
	start := p.stream.Token()
	if _, err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	keywordTok := p.stream.Token()
	if keywordTok.Kind != token.NAME {
		return nil, p.unexpected(&keywordTok)
	}
	switch keywordTok.Value {
	case "type":
		return p.parseObjectTypeExtension(start)
	case "scalar", "interface", "union", "enum", "input", "schema":
		return nil, p.unexpected(&keywordTok)
	}
	return nil, p.unexpected(&keywordTok)
}

// parseObjectTypeExtension parses the remainder of `extend type Name ...`
// once `extend` has already been consumed by the caller. At least one of
// implements/directives/fields must be present.
func (p *Parser) parseObjectTypeExtension(start token.Token) (*ast.ObjectTypeExtension, error) {
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(nil)
	}
	return &ast.ObjectTypeExtension{
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
		Loc:        p.loc(start),
	}, nil
}
