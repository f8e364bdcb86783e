package ast

// OperationType is the closed set {query, mutation, subscription}. The
// shorthand form `{ ... }` always yields OperationTypeQuery.
type OperationType int

const (
	OperationTypeQuery OperationType = iota
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// OperationDefinition is a query, mutation, or subscription, either written
// in shorthand (selection set only - Name is nil, VariableDefinitions and
// Directives are empty, Operation is OperationTypeQuery) or with an explicit
// operation keyword.
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name // nil for the shorthand form
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Loc                 *Location
}

func (o *OperationDefinition) GetLoc() *Location { return o.Loc }
func (o *OperationDefinition) Kind() string      { return "OperationDefinition" }
func (o *OperationDefinition) isDefinition()     {}

var _ Definition = (*OperationDefinition)(nil)

// VariableDefinition is one `$name: Type = default` entry in an operation's
// variable list. DefaultValue, when present, is parsed as a const value -
// variables are not allowed inside it.
type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value // nil if absent
	Directives   []*Directive
	Loc          *Location
}

func (v *VariableDefinition) GetLoc() *Location { return v.Loc }
func (v *VariableDefinition) Kind() string      { return "VariableDefinition" }
