package lexer

import (
	"strconv"
	"strings"

	"github.com/tonyteate/gqlcore/pkg/token"
)

// scanString dispatches to the block-string or single-line-string scanner
// depending on whether the opening quote is immediately followed by two more
// quotes.
func (l *Lexer) scanString(startPos, startLine, startCol int) (token.Token, error) {
	if strings.HasPrefix(l.body[l.pos:], `"""`) {
		return l.scanBlockString(startPos, startLine, startCol)
	}
	return l.scanSingleLineString(startPos, startLine, startCol)
}

func (l *Lexer) scanSingleLineString(startPos, startLine, startCol int) (token.Token, error) {
	l.advanceByte() // opening quote

	var value strings.Builder
	for {
		b, ok := l.peekByte()
		if !ok {
			return token.Token{}, l.errf("Unterminated string.")
		}
		if b == '"' {
			l.advanceByte()
			break
		}
		if b == '\n' || b == '\r' {
			return token.Token{}, l.errf("Unterminated string.")
		}
		if b < 0x20 && b != '\t' {
			return token.Token{}, l.errf("Invalid character within String: %q", rune(b))
		}
		if b == '\\' {
			l.advanceByte()
			if err := l.scanEscape(&value); err != nil {
				return token.Token{}, err
			}
			continue
		}
		value.WriteByte(b)
		l.advanceByte()
	}

	return token.Token{
		Kind:   token.STRING,
		Start:  startPos,
		End:    l.pos,
		Line:   startLine,
		Column: startCol,
		Value:  value.String(),
	}, nil
}

func (l *Lexer) scanEscape(value *strings.Builder) error {
	b, ok := l.peekByte()
	if !ok {
		return l.errf("Unterminated string.")
	}
	switch b {
	case '"':
		value.WriteByte('"')
		l.advanceByte()
	case '\\':
		value.WriteByte('\\')
		l.advanceByte()
	case '/':
		value.WriteByte('/')
		l.advanceByte()
	case 'b':
		value.WriteByte('\b')
		l.advanceByte()
	case 'f':
		value.WriteByte('\f')
		l.advanceByte()
	case 'n':
		value.WriteByte('\n')
		l.advanceByte()
	case 'r':
		value.WriteByte('\r')
		l.advanceByte()
	case 't':
		value.WriteByte('\t')
		l.advanceByte()
	case 'u':
		l.advanceByte()
		r, err := l.scanUnicodeEscape()
		if err != nil {
			return err
		}
		value.WriteRune(r)
	default:
		return l.errf("Invalid character escape sequence: \"\\%c\".", b)
	}
	return nil
}

func (l *Lexer) scanUnicodeEscape() (rune, error) {
	if l.pos+4 > len(l.body) {
		return 0, l.errf("Invalid character escape sequence: \"\\u%s\".", l.body[l.pos:])
	}
	hex := l.body[l.pos : l.pos+4]
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, l.errf("Invalid character escape sequence: \"\\u%s\".", hex)
	}
	for i := 0; i < 4; i++ {
		l.advanceByte()
	}
	return rune(n), nil
}

// scanBlockString scans a `"""..."""` literal, decoding the escaped `\"""`
// sequence and applying the standard GraphQL block-string indentation /
// blank-line stripping algorithm to the raw content.
func (l *Lexer) scanBlockString(startPos, startLine, startCol int) (token.Token, error) {
	l.advanceByte()
	l.advanceByte()
	l.advanceByte() // opening """

	var raw strings.Builder
	for {
		if strings.HasPrefix(l.body[l.pos:], `\"""`) {
			raw.WriteString(`"""`)
			for i := 0; i < 4; i++ {
				l.advanceByte()
			}
			continue
		}
		if strings.HasPrefix(l.body[l.pos:], `"""`) {
			l.advanceByte()
			l.advanceByte()
			l.advanceByte()
			break
		}
		b, ok := l.peekByte()
		if !ok {
			return token.Token{}, l.errf("Unterminated string.")
		}
		if b == '\r' {
			// Normalize \r and \r\n to \n in the raw buffer, matching the
			// line-terminator handling used everywhere else.
			l.pos++
			if nb, ok := l.peekByte(); ok && nb == '\n' {
				l.pos++
			}
			l.line++
			l.col = 1
			raw.WriteByte('\n')
			continue
		}
		raw.WriteByte(b)
		l.advanceByte()
	}

	return token.Token{
		Kind:   token.BLOCK_STRING,
		Start:  startPos,
		End:    l.pos,
		Line:   startLine,
		Column: startCol,
		Value:  blockStringValue(raw.String()),
	}, nil
}

// blockStringValue implements the GraphQL spec's BlockStringValue(rawValue)
// algorithm: strip the common leading indentation from every line but the
// first, then trim leading and trailing blank lines.
func blockStringValue(raw string) string {
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue // blank line, doesn't count
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && isBlankLine(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlankLine(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlankLine(line string) bool {
	return leadingWhitespace(line) == len(line)
}
