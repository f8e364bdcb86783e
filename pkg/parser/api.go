package parser

import (
	"errors"

	"github.com/tonyteate/gqlcore/internal/lexer"
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/source"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// ErrInvalidSource is returned by Parse, ParseValue, and ParseType when the
// input is neither a string nor a *source.Source - a caller-bug usage error
// distinct from the gqlerrors.Error family every other failure in this
// module produces.
var ErrInvalidSource = errors.New("parser: input must be a string or *source.Source")

// Input is anything Parse, ParseValue, and ParseType accept: raw text, which
// is wrapped in a source.Source with default name and location offset, or a
// pre-constructed *source.Source.
type Input interface{}

func toSource(input Input) (*source.Source, error) {
	switch v := input.(type) {
	case string:
		return source.New(v), nil
	case *source.Source:
		return v, nil
	default:
		return nil, ErrInvalidSource
	}
}

// Parse drives the grammar from the initial SOF marker to EOF, producing a
// Document. It is the sole entry point that accepts a full document - a
// request, a schema file, a mix of executable and type-system definitions.
func Parse(input Input, opts options.Options) (*ast.Document, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(src, opts))
	return p.parseDocument()
}

// ParseValue wraps input, consumes SOF, parses a single non-const value
// literal, and consumes EOF - useful for tools that receive a lone literal
// (e.g. a default value fragment) rather than a full document.
func ParseValue(input Input, opts options.Options) (ast.Value, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(src, opts))
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return value, nil
}

// ParseType wraps input, consumes SOF, parses a single type reference, and
// consumes EOF.
func ParseType(input Input, opts options.Options) (ast.Type, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := New(lexer.New(src, opts))
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return typ, nil
}
