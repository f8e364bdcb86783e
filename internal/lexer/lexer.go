// Package lexer is a hand-rolled tokenizer, kept as an external collaborator
// behind the parser.TokenStream interface rather than folded into the parser
// itself: rune-at-a-time scanning with an explicit Advance/Lookahead shape,
// producing token.Token values rather than byte-slice references into the
// source. Its only importer is pkg/parser's entry points (api.go).
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tonyteate/gqlcore/pkg/gqlerrors"
	"github.com/tonyteate/gqlcore/pkg/options"
	"github.com/tonyteate/gqlcore/pkg/source"
	"github.com/tonyteate/gqlcore/pkg/token"
)

// Lexer scans a source.Source into a linear token.Token sequence with
// one-token lookahead. It holds no shared mutable state across instances, so
// independent Lexer values may run on independent goroutines concurrently.
type Lexer struct {
	src  *source.Source
	body string
	opts options.Options

	// cursor: the scan position immediately after `current`.
	pos, line, col int

	current token.Token
	last    token.Token

	peeked                      *token.Token
	peekedPos, peekedLine, peekedCol int
}

// New constructs a Lexer over src. src is normalized in place (defaults
// filled in for Name/LocationOffset) if it hasn't been already.
func New(src *source.Source, opts options.Options) *Lexer {
	src.Normalize()
	sof := token.Token{
		Kind:   token.SOF,
		Line:   src.LocationOffset.Line,
		Column: src.LocationOffset.Column,
	}
	return &Lexer{
		src:     src,
		body:    src.Body,
		opts:    opts,
		pos:     0,
		line:    src.LocationOffset.Line,
		col:     src.LocationOffset.Column,
		current: sof,
	}
}

func (l *Lexer) Token() token.Token          { return l.current }
func (l *Lexer) LastToken() token.Token      { return l.last }
func (l *Lexer) Source() *source.Source      { return l.src }
func (l *Lexer) Options() options.Options    { return l.opts }

// Advance consumes the current token, scans the next "real" (non-COMMENT)
// token, makes it current, and returns it.
func (l *Lexer) Advance() (token.Token, error) {
	var tok token.Token
	if l.peeked != nil {
		tok = *l.peeked
		l.pos, l.line, l.col = l.peekedPos, l.peekedLine, l.peekedCol
		l.peeked = nil
	} else {
		var err error
		tok, err = l.nextRealToken()
		if err != nil {
			return token.Token{}, err
		}
	}
	prev := l.current
	tok.Prev = &prev
	l.last = l.current
	l.current = tok
	return tok, nil
}

// Lookahead returns the token one step past the current token without
// advancing lexer state, skipping interleaved COMMENT tokens exactly like
// Advance does - both route through nextRealToken.
func (l *Lexer) Lookahead() (token.Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	savedPos, savedLine, savedCol := l.pos, l.line, l.col
	tok, err := l.nextRealToken()
	if err != nil {
		l.pos, l.line, l.col = savedPos, savedLine, savedCol
		return token.Token{}, err
	}
	l.peeked = &tok
	l.peekedPos, l.peekedLine, l.peekedCol = l.pos, l.line, l.col
	l.pos, l.line, l.col = savedPos, savedLine, savedCol
	return tok, nil
}

// nextRealToken scans tokens from the cursor until it finds one that isn't a
// COMMENT, discarding comments along the way.
func (l *Lexer) nextRealToken() (token.Token, error) {
	for {
		tok, err := l.scanOne()
		if err != nil {
			return token.Token{}, err
		}
		if tok.Kind != token.COMMENT {
			return tok, nil
		}
	}
}

func (l *Lexer) errf(format string, args ...interface{}) error {
	return gqlerrors.Syntax(l.src, l.pos, fmt.Sprintf(format, args...))
}

func (l *Lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.body) {
		return 0, false
	}
	return l.body[l.pos], true
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.body) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(l.body[l.pos:])
	return r, size
}

// advanceByte consumes exactly one byte, updating line/column. It must only
// be used for bytes already known to be single-byte ASCII (punctuators,
// digits, letters, whitespace).
func (l *Lexer) advanceByte() byte {
	b := l.body[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func (l *Lexer) skipIgnored() error {
	for {
		b, ok := l.peekByte()
		if !ok {
			return nil
		}
		switch {
		case b == ' ' || b == '\t' || b == ',':
			l.advanceByte()
		case b == '\n':
			l.advanceByte()
		case b == '\r':
			// \r and \r\n both count as a single line terminator.
			l.pos++
			if nb, ok := l.peekByte(); ok && nb == '\n' {
				l.pos++
			}
			l.line++
			l.col = 1
		case b == 0xEF && strings.HasPrefix(l.body[l.pos:], "\xEF\xBB\xBF"):
			l.pos += 3
		default:
			return nil
		}
	}
}

func (l *Lexer) scanOne() (token.Token, error) {
	if err := l.skipIgnored(); err != nil {
		return token.Token{}, err
	}

	startPos, startLine, startCol := l.pos, l.line, l.col

	b, ok := l.peekByte()
	if !ok {
		return token.Token{Kind: token.EOF, Start: startPos, End: startPos, Line: startLine, Column: startCol}, nil
	}

	mk := func(kind token.Kind) token.Token {
		return token.Token{Kind: kind, Start: startPos, End: l.pos, Line: startLine, Column: startCol}
	}

	switch b {
	case '!':
		l.advanceByte()
		return mk(token.BANG), nil
	case '$':
		l.advanceByte()
		return mk(token.DOLLAR), nil
	case '(':
		l.advanceByte()
		return mk(token.PAREN_L), nil
	case ')':
		l.advanceByte()
		return mk(token.PAREN_R), nil
	case ':':
		l.advanceByte()
		return mk(token.COLON), nil
	case '=':
		l.advanceByte()
		return mk(token.EQUALS), nil
	case '@':
		l.advanceByte()
		return mk(token.AT), nil
	case '[':
		l.advanceByte()
		return mk(token.BRACKET_L), nil
	case ']':
		l.advanceByte()
		return mk(token.BRACKET_R), nil
	case '{':
		l.advanceByte()
		return mk(token.BRACE_L), nil
	case '|':
		l.advanceByte()
		return mk(token.PIPE), nil
	case '}':
		l.advanceByte()
		return mk(token.BRACE_R), nil
	case '.':
		if strings.HasPrefix(l.body[l.pos:], "...") {
			l.advanceByte()
			l.advanceByte()
			l.advanceByte()
			return mk(token.SPREAD), nil
		}
		return token.Token{}, l.errf("Unexpected character: \".\"")
	case '#':
		return l.scanComment(startPos, startLine, startCol)
	case '"':
		return l.scanString(startPos, startLine, startCol)
	}

	if b == '-' || isDigit(b) {
		return l.scanNumber(startPos, startLine, startCol)
	}
	if isNameStart(b) {
		return l.scanName(startPos, startLine, startCol)
	}

	r, _ := l.peekRune()
	return token.Token{}, l.errf("Unexpected character: %q", r)
}

func (l *Lexer) scanComment(startPos, startLine, startCol int) (token.Token, error) {
	l.advanceByte() // '#'
	contentStart := l.pos
	for {
		b, ok := l.peekByte()
		if !ok || b == '\n' || b == '\r' {
			break
		}
		l.advanceByte()
	}
	return token.Token{
		Kind:   token.COMMENT,
		Start:  startPos,
		End:    l.pos,
		Line:   startLine,
		Column: startCol,
		Value:  l.body[contentStart:l.pos],
	}, nil
}

func (l *Lexer) scanName(startPos, startLine, startCol int) (token.Token, error) {
	for {
		b, ok := l.peekByte()
		if !ok || !isNameContinue(b) {
			break
		}
		l.advanceByte()
	}
	return token.Token{
		Kind:   token.NAME,
		Start:  startPos,
		End:    l.pos,
		Line:   startLine,
		Column: startCol,
		Value:  l.body[startPos:l.pos],
	}, nil
}

func isDigit(b byte) bool       { return b >= '0' && b <= '9' }
func isNameStart(b byte) bool   { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isNameContinue(b byte) bool {
	return isNameStart(b) || isDigit(b)
}
