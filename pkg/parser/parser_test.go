package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyteate/gqlcore/pkg/ast"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/parser"
)

func mustParse(t *testing.T, input string) *ast.Document {
	t.Helper()
	doc, err := parser.Parse(input, options.Default())
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestParse_ShorthandQuery(t *testing.T) {
	doc := mustParse(t, "{ a b }")
	require.Len(t, doc.Definitions, 1)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	assert.Equal(t, ast.OperationTypeQuery, op.Operation)
	assert.Nil(t, op.Name)
	assert.Empty(t, op.VariableDefinitions)
	assert.Empty(t, op.Directives)

	require.Len(t, op.SelectionSet.Selections, 2)
	f0 := op.SelectionSet.Selections[0].(*ast.Field)
	f1 := op.SelectionSet.Selections[1].(*ast.Field)
	assert.Equal(t, "a", f0.Name.Value)
	assert.Nil(t, f0.Alias)
	assert.Equal(t, "b", f1.Name.Value)
}

func TestParse_AliasAndArguments(t *testing.T) {
	doc := mustParse(t, `{ alias: field(arg: 1, arg2: "s") }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)

	require.NotNil(t, field.Alias)
	assert.Equal(t, "alias", field.Alias.Value)
	assert.Equal(t, "field", field.Name.Value)

	require.Len(t, field.Arguments, 2)
	assert.Equal(t, "arg", field.Arguments[0].Name.Value)
	iv, ok := field.Arguments[0].Value.(*ast.IntValue)
	require.True(t, ok)
	assert.Equal(t, "1", iv.Value)

	assert.Equal(t, "arg2", field.Arguments[1].Name.Value)
	sv, ok := field.Arguments[1].Value.(*ast.StringValue)
	require.True(t, ok)
	assert.Equal(t, "s", sv.Value)
	assert.False(t, sv.Block)
}

func TestParse_FragmentSpreadVsInline(t *testing.T) {
	doc := mustParse(t, "{ ...A ... on T { x } ... { y } }")
	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, op.SelectionSet.Selections, 3)

	spread, ok := op.SelectionSet.Selections[0].(*ast.FragmentSpread)
	require.True(t, ok)
	assert.Equal(t, "A", spread.Name.Value)

	onT, ok := op.SelectionSet.Selections[1].(*ast.InlineFragment)
	require.True(t, ok)
	require.NotNil(t, onT.TypeCondition)
	assert.Equal(t, "T", onT.TypeCondition.Name.Value)
	require.Len(t, onT.SelectionSet.Selections, 1)
	assert.Equal(t, "x", onT.SelectionSet.Selections[0].(*ast.Field).Name.Value)

	bare, ok := op.SelectionSet.Selections[2].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Nil(t, bare.TypeCondition)
	assert.Equal(t, "y", bare.SelectionSet.Selections[0].(*ast.Field).Name.Value)
}

func TestParseValue_NonConstVariants(t *testing.T) {
	v, err := parser.ParseValue(`[1, 2.5, true, null, ENUM, $v, "s", {k: 1}]`, options.Default())
	require.NoError(t, err)

	list, ok := v.(*ast.ListValue)
	require.True(t, ok)
	require.Len(t, list.Values, 8)

	assert.Equal(t, "1", list.Values[0].(*ast.IntValue).Value)
	assert.Equal(t, "2.5", list.Values[1].(*ast.FloatValue).Value)
	assert.True(t, list.Values[2].(*ast.BooleanValue).Value)
	_, isNull := list.Values[3].(*ast.NullValue)
	assert.True(t, isNull)
	assert.Equal(t, "ENUM", list.Values[4].(*ast.EnumValue).Value)
	assert.Equal(t, "v", list.Values[5].(*ast.Variable).Name.Value)

	sv := list.Values[6].(*ast.StringValue)
	assert.Equal(t, "s", sv.Value)
	assert.False(t, sv.Block)

	obj := list.Values[7].(*ast.ObjectValue)
	require.Len(t, obj.Fields, 1)
	assert.Equal(t, "k", obj.Fields[0].Name.Value)
	assert.Equal(t, "1", obj.Fields[0].Value.(*ast.IntValue).Value)
}

func TestParseValue_VariableInNonConstContextSucceeds(t *testing.T) {
	v, err := parser.ParseValue("$x", options.Default())
	require.NoError(t, err)
	variable, ok := v.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "x", variable.Name.Value)
}

func TestParse_ConstContextRejectsVariable(t *testing.T) {
	_, err := parser.Parse("query Q($x: Int = $y) { f }", options.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected")
}

func TestParseType_Nesting(t *testing.T) {
	typ, err := parser.ParseType("[Int!]!", options.Default())
	require.NoError(t, err)

	outer, ok := typ.(*ast.NonNullType)
	require.True(t, ok)
	list, ok := outer.Type.(*ast.ListType)
	require.True(t, ok)
	inner, ok := list.Type.(*ast.NonNullType)
	require.True(t, ok)
	named, ok := inner.Type.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "Int", named.Name.Value)
}

func TestParse_EmptyInputFails(t *testing.T) {
	_, err := parser.Parse("", options.Default())
	require.Error(t, err)
}

func TestParse_DescriptionPrecedesDefinition(t *testing.T) {
	doc := mustParse(t, `"doc" scalar S`)
	def := doc.Definitions[0].(*ast.ScalarTypeDefinition)
	require.NotNil(t, def.Description)
	assert.Equal(t, "doc", def.Description.Value)
	assert.Equal(t, "S", def.Name.Value)
}

func TestParse_InvalidSourceType(t *testing.T) {
	_, err := parser.Parse(42, options.Default())
	assert.ErrorIs(t, err, parser.ErrInvalidSource)
}

func TestParse_NoLocationOption(t *testing.T) {
	doc, err := parser.Parse("{ a }", options.Options{NoLocation: true})
	require.NoError(t, err)
	assert.Nil(t, doc.Loc)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Nil(t, op.Loc)
	assert.Nil(t, op.SelectionSet.Loc)
}

func TestParse_SchemaAndTypeSystemDocument(t *testing.T) {
	input := `
schema {
  query: Query
  mutation: Mutation
}

"""
A user in the system.
"""
type User implements Node Named {
  id: ID!
  name: String
  friends(first: Int = 10): [User!]
}

interface Node {
  id: ID!
}

union SearchResult = User | Post

enum Status {
  ACTIVE
  INACTIVE
}

input UserFilter {
  nameContains: String = "a"
}

directive @cacheControl(maxAge: Int) on FIELD_DEFINITION | OBJECT

extend type User @deprecated
`
	doc := mustParse(t, input)
	assert.Len(t, doc.Definitions, 8)

	schema := doc.Definitions[0].(*ast.SchemaDefinition)
	require.Len(t, schema.OperationTypes, 2)
	assert.Equal(t, ast.OperationTypeQuery, schema.OperationTypes[0].Operation)
	assert.Equal(t, "Query", schema.OperationTypes[0].Type.Name.Value)

	user := doc.Definitions[1].(*ast.ObjectTypeDefinition)
	require.NotNil(t, user.Description)
	assert.Contains(t, user.Description.Value, "A user")
	require.Len(t, user.Interfaces, 2)
	assert.Equal(t, "Node", user.Interfaces[0].Name.Value)
	assert.Equal(t, "Named", user.Interfaces[1].Name.Value)
	require.Len(t, user.Fields, 3)
	friends := user.Fields[2]
	require.Len(t, friends.Arguments, 1)
	assert.Equal(t, "first", friends.Arguments[0].Name.Value)
	require.NotNil(t, friends.Arguments[0].DefaultValue)

	union := doc.Definitions[3].(*ast.UnionTypeDefinition)
	require.Len(t, union.Types, 2)
	assert.Equal(t, "User", union.Types[0].Name.Value)
	assert.Equal(t, "Post", union.Types[1].Name.Value)

	enum := doc.Definitions[4].(*ast.EnumTypeDefinition)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "ACTIVE", enum.Values[0].Name.Value)

	directiveDef := doc.Definitions[6].(*ast.DirectiveDefinition)
	assert.Equal(t, "cacheControl", directiveDef.Name.Value)
	require.Len(t, directiveDef.Locations, 2)
	assert.Equal(t, "FIELD_DEFINITION", directiveDef.Locations[0])
	assert.Equal(t, "OBJECT", directiveDef.Locations[1])

	ext := doc.Definitions[7].(*ast.ObjectTypeExtension)
	assert.Equal(t, "User", ext.Name.Value)
	require.Len(t, ext.Directives, 1)
	assert.Equal(t, "deprecated", ext.Directives[0].Name.Value)
}

func TestParse_ObjectTypeExtensionRequiresContent(t *testing.T) {
	_, err := parser.Parse("extend type User", options.Default())
	require.Error(t, err)
}

func TestParse_ExtensionKindOtherThanTypeRejected(t *testing.T) {
	_, err := parser.Parse("extend scalar Foo", options.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected")
}

func TestParse_DirectiveLocationMustBeInClosedSet(t *testing.T) {
	_, err := parser.Parse("directive @x on NOT_A_LOCATION", options.Default())
	require.Error(t, err)
}

func TestParse_FragmentNameCannotBeOn(t *testing.T) {
	_, err := parser.Parse("fragment on on T { x }", options.Default())
	require.Error(t, err)
}

func TestParse_RecursionDepthGuard(t *testing.T) {
	depth := 600
	input := ""
	for i := 0; i < depth; i++ {
		input += "["
	}
	input += "0"
	for i := 0; i < depth; i++ {
		input += "]"
	}
	_, err := parser.ParseValue(input, options.Options{MaxDepth: 512})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Recursion depth exceeded")
}

func TestParseValue_ListMatchesEmbeddedArgumentValue(t *testing.T) {
	standalone, err := parser.ParseValue("[42]", options.Default())
	require.NoError(t, err)

	doc, err := parser.Parse("{x(a: [42])}", options.Default())
	require.NoError(t, err)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	embedded := field.Arguments[0].Value

	standaloneList := standalone.(*ast.ListValue)
	embeddedList := embedded.(*ast.ListValue)
	require.Len(t, standaloneList.Values, 1)
	require.Len(t, embeddedList.Values, 1)
	assert.Equal(t,
		standaloneList.Values[0].(*ast.IntValue).Value,
		embeddedList.Values[0].(*ast.IntValue).Value,
	)
}

func TestParse_IdempotentOnEqualInputs(t *testing.T) {
	input := `query Q($x: Int = 1) @skip(if: true) { field(arg: $x) { nested } }`
	first := mustParse(t, input)
	second := mustParse(t, input)
	assert.Equal(t, len(first.Definitions), len(second.Definitions))

	f1 := first.Definitions[0].(*ast.OperationDefinition)
	f2 := second.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, f1.Name.Value, f2.Name.Value)
	assert.Equal(t, f1.Operation, f2.Operation)
}
