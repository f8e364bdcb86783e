package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseOperationDefinition parses either the shorthand form (a bare
// selection set, yielding operation=query, name=nil, empty variables and
// directives) or the full form with an explicit operation keyword.
func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.stream.Token()
	if p.peek(token.BRACE_L) {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Operation:    ast.OperationTypeQuery,
			SelectionSet: selectionSet,
			Loc:          p.loc(start),
		}, nil
	}

	operation, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}

	var name *ast.Name
	if p.peek(token.NAME) {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	variableDefinitions, err := p.parseVariableDefinitionsOpt()
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

	return &ast.OperationDefinition{
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 p.loc(start),
	}, nil
}

func (p *Parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return 0, err
	}
	switch tok.Value {
	case "query":
		return ast.OperationTypeQuery, nil
	case "mutation":
		return ast.OperationTypeMutation, nil
	case "subscription":
		return ast.OperationTypeSubscription, nil
	}
	return 0, p.unexpected(&tok)
}

// parseVariableDefinitionsOpt parses the optional `($x: T, ...)` list. The
// parenthesized form, once begun, must hold at least one definition.
func (p *Parser) parseVariableDefinitionsOpt() ([]*ast.VariableDefinition, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	return parseMany(p, token.PAREN_L, token.PAREN_R, p.parseVariableDefinition)
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.stream.Token()
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	hasDefault, err := p.skip(token.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		defaultValue, err = p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Variable:     variable,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          p.loc(start),
	}, nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.stream.Token()
	if _, err := p.expect(token.DOLLAR); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name, Loc: p.loc(start)}, nil
}
