package parser_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/parser"
)

// TestParse_IdempotentOnEqualInput parses the same document twice with
// NoLocation set and asserts the resulting trees are deeply equal. With
// NoLocation every node's Loc field is nil, so there are no *token.Token or
// *source.Source pointers left in the tree for cmp to stumble over; without
// that option two otherwise-identical parses would disagree on location
// pointer identity even though the trees describe the same document.
func TestParse_IdempotentOnEqualInput(t *testing.T) {
	const input = `
		query Greeting($name: String = "world") @cached(ttl: 60) {
			hello(name: $name) {
				... on Greeter {
					message
				}
				...Extra
			}
		}
	`
	opts := options.Options{NoLocation: true}

	first, err := parser.Parse(input, opts)
	require.NoError(t, err)
	second, err := parser.Parse(input, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated parse of identical input diverged (-first +second):\n%s\n\nfirst:\n%s\n\nsecond:\n%s",
			diff, spew.Sdump(first), spew.Sdump(second))
	}
}
