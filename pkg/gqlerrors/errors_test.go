package gqlerrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonyteate/gqlcore/pkg/gqlerrors"
	"github.com/tonyteate/gqlcore/pkg/source"
)

func TestSyntax_LineAndColumn(t *testing.T) {
	src := source.New("line1\nline2\nline3")
	// Offset 6 is the 'l' starting "line2".
	err := gqlerrors.Syntax(src, 6, "Unexpected Name \"line2\"")
	assert.Equal(t, 2, err.Line())
	assert.Equal(t, 1, err.Column())
	assert.Equal(t, 6, err.Offset())
	assert.Equal(t, "Unexpected Name \"line2\"", err.Message())
	assert.Equal(t, "GraphQL", err.SourceName())
}

func TestSyntax_ErrorStringIncludesCaret(t *testing.T) {
	src := source.New("{ a(: 1) }")
	err := gqlerrors.Syntax(src, 4, `Expected Name, found ":"`)
	msg := err.Error()
	assert.Contains(t, msg, "Syntax Error:")
	assert.Contains(t, msg, "{ a(: 1) }")
	assert.Contains(t, msg, "^")
}

func TestSyntax_OffsetAtEndOfSource(t *testing.T) {
	src := source.New("abc")
	err := gqlerrors.Syntax(src, 3, "Expected Name, found <EOF>")
	assert.Equal(t, 1, err.Line())
	assert.Equal(t, 4, err.Column())
}
