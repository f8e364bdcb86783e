package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// parseSelectionSet is the one production that always requires at least one
// selection - it is guarded by the recursion-depth counter because it
// recurses into itself via Field and InlineFragment's nested selection sets.
func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.leaveRecursion()

	start := p.stream.Token()
	selections, err := parseMany(p, token.BRACE_L, token.BRACE_R, p.parseSelection)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{Selections: selections, Loc: p.loc(start)}, nil
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	if p.peek(token.SPREAD) {
		return p.parseFragment()
	}
	return p.parseField()
}

// parseField parses a single field: if a `:` follows the first name, that
// name was an alias and a second name follows as the real field name.
func (p *Parser) parseField() (*ast.Field, error) {
	start := p.stream.Token()
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	hasAlias, err := p.skip(token.COLON)
	if err != nil {
		return nil, err
	}
	if hasAlias {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	arguments, err := p.parseArguments(false)
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	var selectionSet *ast.SelectionSet
	if p.peek(token.BRACE_L) {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
		Loc:          p.loc(start),
	}, nil
}

// parseArguments parses the optional `(name: value, ...)` list attached to a
// Field or Directive. isConst selects whether the argument values reject
// `$variable` references (directive arguments on type-system definitions).
func (p *Parser) parseArguments(isConst bool) ([]*ast.Argument, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	item := p.parseArgument
	if isConst {
		item = p.parseConstArgument
	}
	return parseMany(p, token.PAREN_L, token.PAREN_R, item)
}

func (p *Parser) parseArgument() (*ast.Argument, error) { return p.parseArgumentImpl(false) }

func (p *Parser) parseConstArgument() (*ast.Argument, error) { return p.parseArgumentImpl(true) }

func (p *Parser) parseArgumentImpl(isConst bool) (*ast.Argument, error) {
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
	return &ast.Argument{Name: name, Value: value, Loc: p.loc(start)}, nil
}
