package ast

// FragmentDefinition is a `fragment Name on Type { ... }` top-level
// definition. Name is never the identifier "on" - the parser rejects that
// before constructing the node.
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           *Location
}

func (f *FragmentDefinition) GetLoc() *Location { return f.Loc }
func (f *FragmentDefinition) Kind() string      { return "FragmentDefinition" }
func (f *FragmentDefinition) isDefinition()     {}

var _ Definition = (*FragmentDefinition)(nil)

// FragmentSpread is a `...Name` selection. Like FragmentDefinition.Name, it
// is never the identifier "on" (that spelling instead dispatches to
// InlineFragment parsing).
type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
	Loc        *Location
}

func (f *FragmentSpread) GetLoc() *Location { return f.Loc }
func (f *FragmentSpread) Kind() string      { return "FragmentSpread" }
func (f *FragmentSpread) isSelection()      {}

var _ Selection = (*FragmentSpread)(nil)

// InlineFragment is a `... [on Type] { ... }` selection. TypeCondition is
// nil when the `on Type` clause is omitted.
type InlineFragment struct {
	TypeCondition *NamedType // nil if absent
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           *Location
}

func (f *InlineFragment) GetLoc() *Location { return f.Loc }
func (f *InlineFragment) Kind() string      { return "InlineFragment" }
func (f *InlineFragment) isSelection()      {}

var _ Selection = (*InlineFragment)(nil)
