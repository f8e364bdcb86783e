package ast

// SchemaDefinition is a `schema { query: Q, mutation: M }` definition.
type SchemaDefinition struct {
	Description    *StringValue // nil if absent
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
	Loc            *Location
}

func (d *SchemaDefinition) GetLoc() *Location { return d.Loc }
func (d *SchemaDefinition) Kind() string      { return "SchemaDefinition" }
func (d *SchemaDefinition) isDefinition()     {}

// OperationTypeDefinition is one `query: Q` entry inside a SchemaDefinition.
// It is not itself a Definition.
type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
	Loc       *Location
}

func (d *OperationTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *OperationTypeDefinition) Kind() string      { return "OperationTypeDefinition" }

// ScalarTypeDefinition is a `scalar Name` definition.
type ScalarTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Loc         *Location
}

func (d *ScalarTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *ScalarTypeDefinition) Kind() string      { return "ScalarTypeDefinition" }
func (d *ScalarTypeDefinition) isDefinition()     {}

// ObjectTypeDefinition is a `type Name implements I J { fields }`
// definition (interface names are whitespace-separated; `&` is not accepted).
type ObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
	Loc         *Location
}

func (d *ObjectTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *ObjectTypeDefinition) Kind() string      { return "ObjectTypeDefinition" }
func (d *ObjectTypeDefinition) isDefinition()     {}

// FieldDefinition is one `name(args): Type` entry inside an
// ObjectTypeDefinition or InterfaceTypeDefinition. It is not itself a
// Definition.
type FieldDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
	Loc         *Location
}

func (d *FieldDefinition) GetLoc() *Location { return d.Loc }
func (d *FieldDefinition) Kind() string      { return "FieldDefinition" }

// InputValueDefinition is one `name: Type = default` entry inside a field's
// argument list, a directive's argument list, or an
// InputObjectTypeDefinition's field list. It is not itself a Definition.
type InputValueDefinition struct {
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value // nil if absent, always a const value when present
	Directives   []*Directive
	Loc          *Location
}

func (d *InputValueDefinition) GetLoc() *Location { return d.Loc }
func (d *InputValueDefinition) Kind() string      { return "InputValueDefinition" }

// InterfaceTypeDefinition is an `interface Name { fields }` definition.
type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*FieldDefinition
	Loc         *Location
}

func (d *InterfaceTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *InterfaceTypeDefinition) Kind() string      { return "InterfaceTypeDefinition" }
func (d *InterfaceTypeDefinition) isDefinition()     {}

// UnionTypeDefinition is a `union Name = A | B` definition.
type UnionTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
	Loc         *Location
}

func (d *UnionTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *UnionTypeDefinition) Kind() string      { return "UnionTypeDefinition" }
func (d *UnionTypeDefinition) isDefinition()     {}

// EnumTypeDefinition is an `enum Name { VALUES }` definition.
type EnumTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
	Loc         *Location
}

func (d *EnumTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *EnumTypeDefinition) Kind() string      { return "EnumTypeDefinition" }
func (d *EnumTypeDefinition) isDefinition()     {}

// EnumValueDefinition is one member of an EnumTypeDefinition's value list.
// Name holds the enum value's identifier. It is not itself a Definition.
type EnumValueDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Loc         *Location
}

func (d *EnumValueDefinition) GetLoc() *Location { return d.Loc }
func (d *EnumValueDefinition) Kind() string      { return "EnumValueDefinition" }

// InputObjectTypeDefinition is an `input Name { fields }` definition.
type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
	Loc         *Location
}

func (d *InputObjectTypeDefinition) GetLoc() *Location { return d.Loc }
func (d *InputObjectTypeDefinition) Kind() string      { return "InputObjectTypeDefinition" }
func (d *InputObjectTypeDefinition) isDefinition()     {}

// DirectiveDefinition is a `directive @name(args) on LOCATION | LOCATION`
// definition. Locations holds the closed-set location names, validated at
// parse time (see directive_location.go).
type DirectiveDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Locations   []string
	Loc         *Location
}

func (d *DirectiveDefinition) GetLoc() *Location { return d.Loc }
func (d *DirectiveDefinition) Kind() string      { return "DirectiveDefinition" }
func (d *DirectiveDefinition) isDefinition()     {}

var (
	_ Definition = (*SchemaDefinition)(nil)
	_ Definition = (*ScalarTypeDefinition)(nil)
	_ Definition = (*ObjectTypeDefinition)(nil)
	_ Definition = (*InterfaceTypeDefinition)(nil)
	_ Definition = (*UnionTypeDefinition)(nil)
	_ Definition = (*EnumTypeDefinition)(nil)
	_ Definition = (*InputObjectTypeDefinition)(nil)
	_ Definition = (*DirectiveDefinition)(nil)
)
