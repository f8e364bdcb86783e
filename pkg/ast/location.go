package ast

import (
	"encoding/json"

	"github.com/tonyteate/gqlcore/pkg/source"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// Location points an AST node back at the token range it was built from. It
// is attached to every node unless the parser's NoLocation option is set, in
// which case every node's Loc field is left nil.
//
// Location holds non-owning references into the source and token stream:
// Go's garbage collector keeps Source.Body's backing array alive for as long
// as any Location in the resulting tree references it, so no copying is
// needed for the Document to outlive the parse call.
type Location struct {
	Start      int
	End        int
	StartToken *token.Token
	EndToken   *token.Token
	Source     *source.Source
}

// locationJSON mirrors graphql-js: a Location serializes to {start, end}
// only, never the token pointers or the source.
type locationJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MarshalJSON implements json.Marshaler, serializing only Start and End.
func (l *Location) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	return json.Marshal(locationJSON{Start: l.Start, End: l.End})
}
