package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyteate/gqlcore/pkg/ast"
)

func TestLocation_MarshalJSON_StartEndOnly(t *testing.T) {
	loc := &ast.Location{Start: 3, End: 9}
	out, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":3,"end":9}`, string(out))
}

func TestLocation_MarshalJSON_Nil(t *testing.T) {
	var loc *ast.Location
	out, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestIsDirectiveLocation(t *testing.T) {
	assert.True(t, ast.IsDirectiveLocation("FIELD"))
	assert.True(t, ast.IsDirectiveLocation("INPUT_FIELD_DEFINITION"))
	assert.False(t, ast.IsDirectiveLocation("NOT_A_LOCATION"))
	assert.False(t, ast.IsDirectiveLocation(""))
}
