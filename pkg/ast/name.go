package ast

// Name is a GraphQL identifier: a field name, a type name, an argument name,
// an alias, and so on. It is not itself a Value or Type - productions that
// need one embed a *Name field directly.
type Name struct {
	Value string
	Loc   *Location
}

func (n *Name) GetLoc() *Location { return n.Loc }
func (n *Name) Kind() string      { return "Name" }

// Variable is a `$name` reference. It implements Value so it can appear
// anywhere a non-const value is expected (field arguments, directive
// arguments); const contexts (default values, directive arguments on
// type-system definitions) reject it at parse time.
type Variable struct {
	Name *Name
	Loc  *Location
}

func (v *Variable) GetLoc() *Location { return v.Loc }
func (v *Variable) Kind() string      { return "Variable" }
func (v *Variable) isValue()          {}

var _ Value = (*Variable)(nil)
