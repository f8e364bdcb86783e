package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseDocument is the Document production: `many(SOF, parseDefinition,
// EOF)`, which is also why an empty input fails - the first parseDefinition
// call has nothing to match and many requires at least one item.
func (p *Parser) parseDocument() (*ast.Document, error) {
	start := p.stream.Token()
	defs, err := parseMany(p, token.SOF, token.EOF, p.parseDefinition)
	if err != nil {
		return nil, err
	}
	return &ast.Document{Definitions: defs, Loc: p.loc(start)}, nil
}

// parseDefinition dispatches on the current token: `{` is a shorthand
// operation, a NAME switches on its keyword value, and a description string
// must be followed by a type-system keyword.
func (p *Parser) parseDefinition() (ast.Definition, error) {
	if p.peek(token.BRACE_L) {
		return p.parseOperationDefinition()
	}
	if p.peek(token.NAME) {
		switch p.stream.Token().Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition()
		case "extend":
			return p.parseTypeExtension()
		}
	}
	if p.peek(token.STRING) || p.peek(token.BLOCK_STRING) {
		return p.parseTypeSystemDefinition()
	}
	return nil, p.unexpected(nil)
}

// parseTypeSystemDefinition dispatches on the definition's keyword, looking
// one token ahead when the current token is a description string.
func (p *Parser) parseTypeSystemDefinition() (ast.Definition, error) {
	keywordTok := p.stream.Token()
	if keywordTok.Kind == token.STRING || keywordTok.Kind == token.BLOCK_STRING {
		la, err := p.stream.Lookahead()
		if err != nil {
			return nil, err
		}
		keywordTok = la
	}
	if keywordTok.Kind != token.NAME {
		return nil, p.unexpected(&keywordTok)
	}
	switch keywordTok.Value {
	case "schema":
		return p.parseSchemaDefinition()
	case "scalar":
		return p.parseScalarTypeDefinition()
	case "type":
		return p.parseObjectTypeDefinition()
	case "interface":
		return p.parseInterfaceTypeDefinition()
	case "union":
		return p.parseUnionTypeDefinition()
	case "enum":
		return p.parseEnumTypeDefinition()
	case "input":
		return p.parseInputObjectTypeDefinition()
	case "directive":
		return p.parseDirectiveDefinition()
	}
	return nil, p.unexpected(&keywordTok)
}

// parseDescription consumes an optional string or block-string literal
// preceding a type-system definition.
func (p *Parser) parseDescription() (*ast.StringValue, error) {
	if p.peek(token.STRING) || p.peek(token.BLOCK_STRING) {
		return p.parseStringLiteral()
	}
	return nil, nil
}
