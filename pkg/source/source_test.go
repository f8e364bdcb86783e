package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonyteate/gqlcore/pkg/source"
)

func TestNew_Defaults(t *testing.T) {
	src := source.New("{ a }")
	assert.Equal(t, source.DefaultName, src.Name)
	assert.Equal(t, source.DefaultLocationOffset, src.LocationOffset)
}

func TestNewWithName(t *testing.T) {
	src := source.NewWithName("{ a }", "schema.graphql")
	assert.Equal(t, "schema.graphql", src.Name)
}

func TestNormalize_FillsZeroValues(t *testing.T) {
	src := &source.Source{Body: "{ a }"}
	src.Normalize()
	assert.Equal(t, source.DefaultName, src.Name)
	assert.Equal(t, source.DefaultLocationOffset, src.LocationOffset)
}

func TestNormalize_PreservesExplicitValues(t *testing.T) {
	src := &source.Source{
		Body:           "{ a }",
		Name:           "custom.graphql",
		LocationOffset: source.LocationOffset{Line: 5, Column: 2},
	}
	src.Normalize()
	assert.Equal(t, "custom.graphql", src.Name)
	assert.Equal(t, 5, src.LocationOffset.Line)
	assert.Equal(t, 2, src.LocationOffset.Column)
}
