package parser

import (
	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/gqlerrors"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// Parser drives a TokenStream through the GraphQL grammar's mutually
// recursive productions and assembles the resulting ast.Document, ast.Value,
// or ast.Type. A Parser is used by exactly one goroutine at a time; it holds
// no package-level mutable state, so independent Parser values may run
// concurrently as long as each owns its own TokenStream.
type Parser struct {
	stream TokenStream
	opts   options.Options
	depth  int
}

// New constructs a Parser over stream. stream.Options() is normalized (zero
// MaxDepth filled in with options.DefaultMaxDepth) before use.
func New(stream TokenStream) *Parser {
	return &Parser{stream: stream, opts: stream.Options().Normalize()}
}

// enterRecursion and leaveRecursion bracket every mutually-recursive
// production (values, types, selection sets) with a depth counter, guarding
// against stack exhaustion on pathological inputs like deeply nested list
// values - Go has no tail-call optimization to fall back on.
func (p *Parser) enterRecursion() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		tok := p.stream.Token()
		return gqlerrors.Syntax(p.stream.Source(), tok.Start, "Recursion depth exceeded.")
	}
	return nil
}

func (p *Parser) leaveRecursion() {
	p.depth--
}

// loc builds a *ast.Location spanning from start to the most recently
// consumed token, or returns nil when NoLocation is set.
func (p *Parser) loc(start token.Token) *ast.Location {
	if p.opts.NoLocation {
		return nil
	}
	startCopy, lastCopy := start, p.stream.LastToken()
	return &ast.Location{
		Start:      startCopy.Start,
		End:        lastCopy.End,
		StartToken: &startCopy,
		EndToken:   &lastCopy,
		Source:     p.stream.Source(),
	}
}
