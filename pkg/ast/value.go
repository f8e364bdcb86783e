package ast

// IntValue carries a numeric literal exactly as it appeared in the source -
// no coercion to an int64 occurs here, per the "no mutate/normalize" rule.
type IntValue struct {
	Value string
	Loc   *Location
}

func (v *IntValue) GetLoc() *Location { return v.Loc }
func (v *IntValue) Kind() string      { return "IntValue" }
func (v *IntValue) isValue()          {}

// FloatValue carries a numeric literal exactly as it appeared in the source.
type FloatValue struct {
	Value string
	Loc   *Location
}

func (v *FloatValue) GetLoc() *Location { return v.Loc }
func (v *FloatValue) Kind() string      { return "FloatValue" }
func (v *FloatValue) isValue()          {}

// StringValue carries a decoded string literal. Block distinguishes
// `"""..."""` (true) from `"..."` (false); Value already has escapes decoded
// and, for block strings, common indentation stripped.
type StringValue struct {
	Value string
	Block bool
	Loc   *Location
}

func (v *StringValue) GetLoc() *Location { return v.Loc }
func (v *StringValue) Kind() string      { return "StringValue" }
func (v *StringValue) isValue()          {}

// BooleanValue carries `true` or `false`.
type BooleanValue struct {
	Value bool
	Loc   *Location
}

func (v *BooleanValue) GetLoc() *Location { return v.Loc }
func (v *BooleanValue) Kind() string      { return "BooleanValue" }
func (v *BooleanValue) isValue()          {}

// NullValue carries the `null` literal. It has no payload beyond its
// location.
type NullValue struct {
	Loc *Location
}

func (v *NullValue) GetLoc() *Location { return v.Loc }
func (v *NullValue) Kind() string      { return "NullValue" }
func (v *NullValue) isValue()          {}

// EnumValue carries a bare NAME that is neither `true`, `false`, nor `null`.
// Whether it names a real enum member is a semantic question this parser
// does not answer.
type EnumValue struct {
	Value string
	Loc   *Location
}

func (v *EnumValue) GetLoc() *Location { return v.Loc }
func (v *EnumValue) Kind() string      { return "EnumValue" }
func (v *EnumValue) isValue()          {}

// ListValue is a `[...]` value literal. Unlike SelectionSet, it may be
// empty.
type ListValue struct {
	Values []Value
	Loc    *Location
}

func (v *ListValue) GetLoc() *Location { return v.Loc }
func (v *ListValue) Kind() string      { return "ListValue" }
func (v *ListValue) isValue()          {}

// ObjectValue is a `{...}` value literal. Like ListValue, and unlike
// SelectionSet, it may be empty.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    *Location
}

func (v *ObjectValue) GetLoc() *Location { return v.Loc }
func (v *ObjectValue) Kind() string      { return "ObjectValue" }
func (v *ObjectValue) isValue()          {}

// ObjectField is one `name: value` pair inside an ObjectValue. It is not
// itself a Value.
type ObjectField struct {
	Name  *Name
	Value Value
	Loc   *Location
}

func (f *ObjectField) GetLoc() *Location { return f.Loc }
func (f *ObjectField) Kind() string      { return "ObjectField" }

var (
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)
