package parser

import (
	"fmt"

	"github.com/tonyteate/gqlcore/pkg/gqlerrors"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// peek is a current-token kind test with no state change.
func (p *Parser) peek(kind token.Kind) bool {
	return p.stream.Token().Kind == kind
}

// skip advances past the current token and returns true if it matches kind,
// otherwise it leaves stream state untouched and returns false.
func (p *Parser) skip(kind token.Kind) (bool, error) {
	if !p.peek(kind) {
		return false, nil
	}
	if _, err := p.stream.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// expect advances past the current token if it matches kind, returning it;
// otherwise it raises a syntax error pinned to the current token's start.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	cur := p.stream.Token()
	if cur.Kind == kind {
		if _, err := p.stream.Advance(); err != nil {
			return token.Token{}, err
		}
		return cur, nil
	}
	return token.Token{}, gqlerrors.Syntax(p.stream.Source(), cur.Start,
		fmt.Sprintf("Expected %s, found %s", kind, cur.Desc()))
}

// expectKeyword is like expect(NAME) but additionally requires the token's
// string value to equal value - GraphQL has no reserved words, only NAME
// tokens that grammar productions interpret positionally as keywords.
func (p *Parser) expectKeyword(value string) (token.Token, error) {
	cur := p.stream.Token()
	if cur.Kind == token.NAME && cur.Value == value {
		if _, err := p.stream.Advance(); err != nil {
			return token.Token{}, err
		}
		return cur, nil
	}
	return token.Token{}, gqlerrors.Syntax(p.stream.Source(), cur.Start,
		fmt.Sprintf("Expected %q, found %s", value, cur.Desc()))
}

// unexpected builds (but does not itself return from the caller) a syntax
// error at tok, or at the current token when tok is nil. Every call site
// must still `return nil, p.unexpected(tok)` (or the zero value equivalent)
// to unwind.
func (p *Parser) unexpected(tok *token.Token) *gqlerrors.Error {
	t := p.stream.Token()
	if tok != nil {
		t = *tok
	}
	return gqlerrors.Syntax(p.stream.Source(), t.Start, fmt.Sprintf("Unexpected %s", t.Desc()))
}

// parseAny consumes open, then zero or more items produced by item until
// close matches - the bracketed-list helper for productions that may be
// empty (list values, object values).
func parseAny[T any](p *Parser, open, closeKind token.Kind, item func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	items := []T{}
	for {
		ok, err := p.skip(closeKind)
		if err != nil {
			return nil, err
		}
		if ok {
			return items, nil
		}
		v, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

// parseMany consumes open, one required item, then zero or more further
// items until close matches - the bracketed-list helper for productions
// that must hold at least one element (selection sets, field/value/input
// definition blocks).
func parseMany[T any](p *Parser, open, closeKind token.Kind, item func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	first, err := item()
	if err != nil {
		return nil, err
	}
	items := []T{first}
	for {
		ok, err := p.skip(closeKind)
		if err != nil {
			return nil, err
		}
		if ok {
			return items, nil
		}
		v, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}
