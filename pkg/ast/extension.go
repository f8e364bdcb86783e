package ast

// ObjectTypeExtension is an `extend type Name ...` definition - the only
// type extension this parser recognizes (the parser package's
// parseTypeExtension rejects the other six extension kinds - scalar,
// interface, union, enum, input, schema - as unexpected tokens).
type ObjectTypeExtension struct {
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
	Loc        *Location
}

func (d *ObjectTypeExtension) GetLoc() *Location { return d.Loc }
func (d *ObjectTypeExtension) Kind() string      { return "ObjectTypeExtension" }
func (d *ObjectTypeExtension) isDefinition()     {}

var _ Definition = (*ObjectTypeExtension)(nil)
