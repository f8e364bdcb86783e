package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseValueLiteral dispatches on the current token's kind. isConst rejects
// `$variable` references - default values, directive arguments on
// type-system definitions, and directive arguments on variable definitions
// are parsed with isConst true, everything else (field arguments and the
// remaining directive arguments in executable documents) with isConst false.
// Guarded by the recursion-depth counter since list/object values recurse.
func (p *Parser) parseValueLiteral(isConst bool) (ast.Value, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.leaveRecursion()

	tok := p.stream.Token()
	switch tok.Kind {
	case token.BRACKET_L:
		return p.parseList(isConst)
	case token.BRACE_L:
		return p.parseObject(isConst)
	case token.INT:
		if _, err := p.stream.Advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Value: tok.Value, Loc: p.loc(tok)}, nil
	case token.FLOAT:
		if _, err := p.stream.Advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Value: tok.Value, Loc: p.loc(tok)}, nil
	case token.STRING, token.BLOCK_STRING:
		return p.parseStringLiteral()
	case token.NAME:
		switch tok.Value {
		case "true", "false":
			if _, err := p.stream.Advance(); err != nil {
				return nil, err
			}
			return &ast.BooleanValue{Value: tok.Value == "true", Loc: p.loc(tok)}, nil
		case "null":
			if _, err := p.stream.Advance(); err != nil {
				return nil, err
			}
			return &ast.NullValue{Loc: p.loc(tok)}, nil
		default:
			if _, err := p.stream.Advance(); err != nil {
				return nil, err
			}
			return &ast.EnumValue{Value: tok.Value, Loc: p.loc(tok)}, nil
		}
	case token.DOLLAR:
		if !isConst {
			return p.parseVariable()
		}
		return nil, p.unexpected(nil)
	}
	return nil, p.unexpected(nil)
}

func (p *Parser) parseStringLiteral() (*ast.StringValue, error) {
	tok := p.stream.Token()
	if _, err := p.stream.Advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{Value: tok.Value, Block: tok.Kind == token.BLOCK_STRING, Loc: p.loc(tok)}, nil
}

// parseList accepts the empty form `[]`, unlike parseSelectionSet.
func (p *Parser) parseList(isConst bool) (*ast.ListValue, error) {
	start := p.stream.Token()
	item := func() (ast.Value, error) { return p.parseValueLiteral(isConst) }
	values, err := parseAny(p, token.BRACKET_L, token.BRACKET_R, item)
	if err != nil {
		return nil, err
	}
	return &ast.ListValue{Values: values, Loc: p.loc(start)}, nil
}

// parseObject accepts the empty form `{}`, unlike parseSelectionSet.
func (p *Parser) parseObject(isConst bool) (*ast.ObjectValue, error) {
	start := p.stream.Token()
	item := func() (*ast.ObjectField, error) { return p.parseObjectField(isConst) }
	fields, err := parseAny(p, token.BRACE_L, token.BRACE_R, item)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectValue{Fields: fields, Loc: p.loc(start)}, nil
}

func (p *Parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.stream.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{Name: name, Value: value, Loc: p.loc(start)}, nil
}
