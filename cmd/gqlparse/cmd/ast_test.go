package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestAstCmd_ShorthandField runs the real "ast" command end to end against a
// one-field shorthand query and compares the printed JSON against a golden
// fixture, pinning output shape rather than re-deriving it field by field.
func TestAstCmd_ShorthandField(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.graphql")
	require.NoError(t, os.WriteFile(docPath, []byte("{ a }"), 0o644))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"ast", docPath})

	require.NoError(t, rootCmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "ast-shorthand-field", out.Bytes())
}
