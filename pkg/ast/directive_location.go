package ast

// DirectiveLocations is the closed set a DirectiveDefinition's locations must
// be drawn from. A name outside this set is a syntax error, raised by the
// parser at the offending name's start token.
var DirectiveLocations = map[string]bool{
	// Executable locations.
	"QUERY":               true,
	"MUTATION":            true,
	"SUBSCRIPTION":        true,
	"FIELD":               true,
	"FRAGMENT_DEFINITION": true,
	"FRAGMENT_SPREAD":     true,
	"INLINE_FRAGMENT":     true,
	"VARIABLE_DEFINITION": true,

	// Type-system locations.
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

// IsDirectiveLocation reports whether name is a member of the closed set of
// directive locations.
func IsDirectiveLocation(name string) bool {
	return DirectiveLocations[name]
}
