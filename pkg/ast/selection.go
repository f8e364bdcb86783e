package ast

// SelectionSet is a brace-delimited, non-empty list of selections. Unlike
// ObjectValue's `{}` loop, a SelectionSet can never be empty - `many` enforces
// at least one selection before allowing `}`.
type SelectionSet struct {
	Selections []Selection
	Loc        *Location
}

func (s *SelectionSet) GetLoc() *Location { return s.Loc }
func (s *SelectionSet) Kind() string      { return "SelectionSet" }

// Field is a selection naming a (possibly aliased) field, its arguments,
// directives, and nested selection set. Alias is nil when no alias is
// present - in that case Name alone is both the queried field and the
// response key.
type Field struct {
	Alias        *Name // nil if absent
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // nil for leaf fields
	Loc          *Location
}

func (f *Field) GetLoc() *Location { return f.Loc }
func (f *Field) Kind() string      { return "Field" }
func (f *Field) isSelection()      {}

var _ Selection = (*Field)(nil)

// Argument is one `name: value` pair attached to a Field or Directive.
type Argument struct {
	Name  *Name
	Value Value
	Loc   *Location
}

func (a *Argument) GetLoc() *Location { return a.Loc }
func (a *Argument) Kind() string      { return "Argument" }

// Directive is an `@name(args?)` annotation. It is not itself a Selection or
// Definition; it is attached as a slice field on whichever production allows
// it.
type Directive struct {
	Name      *Name
	Arguments []*Argument
	Loc       *Location
}

func (d *Directive) GetLoc() *Location { return d.Loc }
func (d *Directive) Kind() string      { return "Directive" }
