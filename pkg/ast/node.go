package ast

// Node is implemented by every AST node. It is the closest thing this tree
// has to a common base, deliberately thin: callers are expected to type
// switch on the sealed category interfaces below (Definition, Selection,
// Value, Type) or on the concrete node types themselves, not to dispatch
// generically off Node.
type Node interface {
	// GetLoc returns the node's source location, or nil if the parser was
	// run with NoLocation set.
	GetLoc() *Location
	// Kind returns the node's grammar-production tag, e.g. "Field" or
	// "IntValue".
	Kind() string
}

// Definition is the sealed category of top-level Document members: the two
// executable definitions, the eight type-system definitions, and the one
// supported type extension. The unexported isDefinition method closes the
// set to this package - no external package can add a new variant.
type Definition interface {
	Node
	isDefinition()
}

// Selection is the sealed category of SelectionSet members: Field,
// FragmentSpread, InlineFragment.
type Selection interface {
	Node
	isSelection()
}

// Value is the sealed category of value literals: the scalar value kinds,
// ListValue, ObjectValue, and Variable (only valid in non-const contexts).
type Value interface {
	Node
	isValue()
}

// Type is the sealed category of type references: NamedType, ListType,
// NonNullType.
type Type interface {
	Node
	isType()
}
