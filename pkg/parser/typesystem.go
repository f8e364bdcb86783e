package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/token"
)

func (p *Parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	operationTypes, err := parseMany(p, token.BRACE_L, token.BRACE_R, p.parseOperationTypeDefinition)
	if err != nil {
		return nil, err
	}
	return &ast.SchemaDefinition{
		Description:    description,
		Directives:     directives,
		OperationTypes: operationTypes,
		Loc:            p.loc(start),
	}, nil
}

func (p *Parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.stream.Token()
	operation, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{Operation: operation, Type: typ, Loc: p.loc(start)}, nil
}

func (p *Parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{Description: description, Name: name, Directives: directives, Loc: p.loc(start)}, nil
}

func (p *Parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
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
	return &ast.ObjectTypeDefinition{
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

// parseImplementsInterfaces consumes the optional `implements A B ...`
// clause. This grammar has no AMP token, so interface names are separated by
// continuation (another NAME) rather than by `&`.
func (p *Parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	cur := p.stream.Token()
	if cur.Kind != token.NAME || cur.Value != "implements" {
		return nil, nil
	}
	if _, err := p.expectKeyword("implements"); err != nil {
		return nil, err
	}
	first, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	interfaces := []*ast.NamedType{first}
	for p.peek(token.NAME) {
		next, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, next)
	}
	return interfaces, nil
}

// parseFieldsDefinition consumes the optional `{ field... }` block attached
// to an object or interface type definition. Absent entirely (no `{`), it
// returns a nil slice rather than an empty one.
func (p *Parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return parseMany(p, token.BRACE_L, token.BRACE_R, p.parseFieldDefinition)
}

func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArgumentsDefinition()
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
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        typ,
		Directives:  directives,
		Loc:         p.loc(start),
	}, nil
}

// parseArgumentsDefinition consumes the optional `(name: Type = default, ...)`
// list attached to a field or directive definition.
func (p *Parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	return parseMany(p, token.PAREN_L, token.PAREN_R, p.parseInputValueDefinition)
}

func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
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

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          p.loc(start),
	}, nil
}

func (p *Parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
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
	return &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

func (p *Parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	var types []*ast.NamedType
	hasTypes, err := p.skip(token.EQUALS)
	if err != nil {
		return nil, err
	}
	if hasTypes {
		types, err = p.parseUnionMemberTypes()
		if err != nil {
			return nil, err
		}
	}
	return &ast.UnionTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Types:       types,
		Loc:         p.loc(start),
	}, nil
}

// parseUnionMemberTypes parses `[|] NamedType (| NamedType)*`: an optional
// leading pipe, then one or more pipe-separated names.
func (p *Parser) parseUnionMemberTypes() ([]*ast.NamedType, error) {
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	first, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	types := []*ast.NamedType{first}
	for {
		ok, err := p.skip(token.PIPE)
		if err != nil {
			return nil, err
		}
		if !ok {
			return types, nil
		}
		next, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, next)
	}
}

func (p *Parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.EnumTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Values:      values,
		Loc:         p.loc(start),
	}, nil
}

func (p *Parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return parseMany(p, token.BRACE_L, token.BRACE_R, p.parseEnumValueDefinition)
}

func (p *Parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.EnumValueDefinition{Description: description, Name: name, Directives: directives, Loc: p.loc(start)}, nil
}

func (p *Parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InputObjectTypeDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
		Loc:         p.loc(start),
	}, nil
}

func (p *Parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return parseMany(p, token.BRACE_L, token.BRACE_R, p.parseInputValueDefinition)
}

func (p *Parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.stream.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return &ast.DirectiveDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Locations:   locations,
		Loc:         p.loc(start),
	}, nil
}

// parseDirectiveLocations has the same pipe-separated shape as union member
// types, but each name must be a member of ast.DirectiveLocations.
func (p *Parser) parseDirectiveLocations() ([]string, error) {
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	first, err := p.parseDirectiveLocation()
	if err != nil {
		return nil, err
	}
	locations := []string{first}
	for {
		ok, err := p.skip(token.PIPE)
		if err != nil {
			return nil, err
		}
		if !ok {
			return locations, nil
		}
		next, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, next)
	}
}

func (p *Parser) parseDirectiveLocation() (string, error) {
	start := p.stream.Token()
	tok, err := p.expect(token.NAME)
	if err != nil {
		return "", err
	}
	if !ast.IsDirectiveLocation(tok.Value) {
		return "", p.unexpected(&start)
	}
	return tok.Value, nil
}
