// Package token defines the closed set of lexical token kinds the lexer
// emits and the Token struct that carries one token's worth of data between
// the lexer and the grammar engine.
package token

import "fmt"

// Kind is the closed set of token kinds a Lexer can produce. Grammar
// productions switch over Kind exclusively; no production inspects a raw
// rune.
type Kind int

const (
	// SOF is the synthetic start-of-file token every stream begins with, so
	// the parser always has a "current token" to bind Location.Start to.
	SOF Kind = iota
	EOF

	BANG
	DOLLAR
	PAREN_L
	PAREN_R
	SPREAD
	COLON
	EQUALS
	AT
	BRACKET_L
	BRACKET_R
	BRACE_L
	PIPE
	BRACE_R

	NAME
	INT
	FLOAT
	STRING
	BLOCK_STRING
	COMMENT
)

var kindNames = map[Kind]string{
	SOF:          "<SOF>",
	EOF:          "<EOF>",
	BANG:         "!",
	DOLLAR:       "$",
	PAREN_L:      "(",
	PAREN_R:      ")",
	SPREAD:       "...",
	COLON:        ":",
	EQUALS:       "=",
	AT:           "@",
	BRACKET_L:    "[",
	BRACKET_R:    "]",
	BRACE_L:      "{",
	PIPE:         "|",
	BRACE_R:      "}",
	NAME:         "Name",
	INT:          "Int",
	FLOAT:        "Float",
	STRING:       "String",
	BLOCK_STRING: "BlockString",
	COMMENT:      "Comment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit produced by the lexer: a kind, a byte offset
// range into the originating Source.Body, a human line/column, and - for
// NAME, INT, FLOAT, STRING, BLOCK_STRING and COMMENT - the decoded value.
type Token struct {
	Kind   Kind
	Start  int // inclusive byte offset into Source.Body
	End    int // exclusive byte offset into Source.Body
	Line   int
	Column int
	Value  string
	Prev   *Token
}

// Desc renders a human-readable description of the token suitable for
// "Expected X, found <desc>" error messages.
func (t Token) Desc() string {
	if t.Value != "" {
		switch t.Kind {
		case NAME, INT, FLOAT:
			return fmt.Sprintf("%s \"%s\"", t.Kind, t.Value)
		case STRING, BLOCK_STRING:
			return fmt.Sprintf("%s \"%s\"", t.Kind, t.Value)
		}
	}
	return t.Kind.String()
}

func (t Token) String() string {
	return fmt.Sprintf("%s %d:%d", t.Desc(), t.Line, t.Column)
}
