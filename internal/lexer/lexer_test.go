package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyteate/gqlcore/internal/lexer"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/source"
	"github.com/tonyteate/gqlcore/pkg/token"
)

func scanAll(t *testing.T, body string) []token.Token {
	t.Helper()
	lx := lexer.New(source.New(body), options.Default())
	var toks []token.Token
	for {
		tok, err := lx.Advance()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexer_Punctuators(t *testing.T) {
	toks := scanAll(t, "! $ ( ) ... : = @ [ ] { | }")
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.BANG, token.DOLLAR, token.PAREN_L, token.PAREN_R, token.SPREAD,
		token.COLON, token.EQUALS, token.AT, token.BRACKET_L, token.BRACKET_R,
		token.BRACE_L, token.PIPE, token.BRACE_R,
	}, kinds)
}

func TestLexer_NamesAndKeywords(t *testing.T) {
	toks := scanAll(t, "query _private Foo123")
	require.Len(t, toks, 4)
	for i, want := range []string{"query", "_private", "Foo123"} {
		assert.Equal(t, token.NAME, toks[i].Kind)
		assert.Equal(t, want, toks[i].Value)
	}
}

func TestLexer_Numbers(t *testing.T) {
	toks := scanAll(t, "0 -1 3.14 2e10 -1.5e-3")
	require.Len(t, toks, 6)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, "0", toks[0].Value)
	assert.Equal(t, token.INT, toks[1].Kind)
	assert.Equal(t, "-1", toks[1].Value)
	assert.Equal(t, token.FLOAT, toks[2].Kind)
	assert.Equal(t, "3.14", toks[2].Value)
	assert.Equal(t, token.FLOAT, toks[3].Kind)
	assert.Equal(t, "2e10", toks[3].Value)
	assert.Equal(t, token.FLOAT, toks[4].Kind)
	assert.Equal(t, "-1.5e-3", toks[4].Value)
}

func TestLexer_LeadingZeroRejected(t *testing.T) {
	lx := lexer.New(source.New("01"), options.Default())
	_, err := lx.Advance()
	assert.Error(t, err)
}

func TestLexer_SingleLineStringEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nbA\"c"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nbA\"c", toks[0].Value)
}

func TestLexer_UnterminatedStringErrors(t *testing.T) {
	lx := lexer.New(source.New(`"unterminated`), options.Default())
	_, err := lx.Advance()
	assert.Error(t, err)
}

func TestLexer_BlockStringIndentationStripping(t *testing.T) {
	toks := scanAll(t, "\"\"\"\n  a\n  b\n  \"\"\"")
	require.Len(t, toks, 2)
	require.Equal(t, token.BLOCK_STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Value)
}

func TestLexer_CommentsSkippedByAdvanceAndLookahead(t *testing.T) {
	lx := lexer.New(source.New("a # a comment\nb"), options.Default())
	first, err := lx.Advance()
	require.NoError(t, err)
	assert.Equal(t, token.NAME, first.Kind)
	assert.Equal(t, "a", first.Value)

	la, err := lx.Lookahead()
	require.NoError(t, err)
	assert.Equal(t, token.NAME, la.Kind)
	assert.Equal(t, "b", la.Value)

	second, err := lx.Advance()
	require.NoError(t, err)
	assert.Equal(t, "b", second.Value)
}

func TestLexer_UnrecognizedCharacterErrors(t *testing.T) {
	lx := lexer.New(source.New("&"), options.Default())
	_, err := lx.Advance()
	assert.Error(t, err)
}

func TestLexer_CommasAndWhitespaceIgnored(t *testing.T) {
	toks := scanAll(t, "a,\tb,\n  c")
	require.Len(t, toks, 4)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, toks[i].Value)
	}
}
