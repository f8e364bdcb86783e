// Package parser is the grammar engine: a recursive-descent parser over the
// GraphQL query and schema-definition language, built as one method per
// grammar production on *Parser. The productions read tokens only through
// the narrow TokenStream interface (internal/lexer.Lexer is this module's
// sole implementation, constructed by the entry points) and the package
// exposes exactly three entry points - Parse, ParseValue, and ParseType.
package parser
