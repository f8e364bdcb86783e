package parser

import (
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/source"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// TokenStream is the narrow interface every grammar production in this
// package consumes. internal/lexer.Lexer is the only implementation in this
// repository; the grammar productions never reach past this interface, and
// only the public entry points in api.go construct a Lexer. A Parser built
// with New can be given any other stream (e.g. one that checks a
// context.Context for cancellation on Advance/Lookahead).
type TokenStream interface {
	// Token returns the current token, initially the synthetic SOF.
	Token() token.Token
	// LastToken returns the most recently consumed token, used to bound
	// Location.End.
	LastToken() token.Token
	// Source returns the originating source, for error reporting.
	Source() *source.Source
	// Options returns the options the stream was constructed with.
	Options() options.Options
	// Advance consumes the current token, scans the next, and returns it.
	Advance() (token.Token, error)
	// Lookahead returns the token one step past Token() without advancing
	// stream state, skipping interleaved COMMENT tokens.
	Lookahead() (token.Token, error)
}
