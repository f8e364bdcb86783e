package ast

// NamedType is a bare type reference, e.g. `Int` or `User`.
type NamedType struct {
	Name *Name
	Loc  *Location
}

func (t *NamedType) GetLoc() *Location { return t.Loc }
func (t *NamedType) Kind() string      { return "NamedType" }
func (t *NamedType) isType()           {}

// ListType is a `[Type]` type reference.
type ListType struct {
	Type Type
	Loc  *Location
}

func (t *ListType) GetLoc() *Location { return t.Loc }
func (t *ListType) Kind() string      { return "ListType" }
func (t *ListType) isType()           {}

// NonNullType is a `Type!` type reference. Type is always a *NamedType or
// *ListType - the grammar prevents a NonNullType from directly wrapping
// another NonNullType by construction (there is no production that would
// produce `Type!!`).
type NonNullType struct {
	Type Type
	Loc  *Location
}

func (t *NonNullType) GetLoc() *Location { return t.Loc }
func (t *NonNullType) Kind() string      { return "NonNullType" }
func (t *NonNullType) isType()           {}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)
