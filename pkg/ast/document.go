package ast

// Document is the top-level parse product: a non-empty ordered list of
// definitions. Parse never returns a Document with zero Definitions - an
// empty input fails at the first parseDefinition call instead.
type Document struct {
	Definitions []Definition
	Loc         *Location
}

func (d *Document) GetLoc() *Location { return d.Loc }
func (d *Document) Kind() string      { return "Document" }
