package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonyteate/gqlcore/pkg/options"
)

func TestNormalize_FillsZeroMaxDepth(t *testing.T) {
	o := options.Options{}.Normalize()
	assert.Equal(t, options.DefaultMaxDepth, o.MaxDepth)
}

func TestNormalize_PreservesExplicitMaxDepth(t *testing.T) {
	o := options.Options{MaxDepth: 10}.Normalize()
	assert.Equal(t, 10, o.MaxDepth)
}

func TestDefault(t *testing.T) {
	o := options.Default()
	assert.False(t, o.NoLocation)
	assert.Equal(t, options.DefaultMaxDepth, o.MaxDepth)
}
