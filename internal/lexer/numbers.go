package lexer

import "github.com/tonyteate/gqlcore/pkg/token"

// scanNumber scans an IntValue or FloatValue token starting at a '-' or
// digit byte, per the GraphQL number grammar: an optional '-', an IntPart
// with no leading zeros (except a bare "0"), an optional FractionalPart, and
// an optional ExponentPart. The literal text is preserved verbatim in
// Value - no numeric normalization is performed.
func (l *Lexer) scanNumber(startPos, startLine, startCol int) (token.Token, error) {
	isFloat := false

	if b, ok := l.peekByte(); ok && b == '-' {
		l.advanceByte()
	}

	if err := l.scanIntPart(); err != nil {
		return token.Token{}, err
	}

	if b, ok := l.peekByte(); ok && b == '.' {
		isFloat = true
		l.advanceByte()
		if err := l.scanDigits(); err != nil {
			return token.Token{}, err
		}
	}

	if b, ok := l.peekByte(); ok && (b == 'e' || b == 'E') {
		isFloat = true
		l.advanceByte()
		if b, ok := l.peekByte(); ok && (b == '+' || b == '-') {
			l.advanceByte()
		}
		if err := l.scanDigits(); err != nil {
			return token.Token{}, err
		}
	}

	if b, ok := l.peekByte(); ok && (isNameStart(b) || isDigit(b)) {
		return token.Token{}, l.errf("Invalid number, expected digit but got: %q", rune(b))
	}

	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	return token.Token{
		Kind:   kind,
		Start:  startPos,
		End:    l.pos,
		Line:   startLine,
		Column: startCol,
		Value:  l.body[startPos:l.pos],
	}, nil
}

// scanIntPart scans the IntPart grammar (the digits following an optional
// leading '-'): a single "0", or a nonzero digit followed by zero or more
// digits. No leading zeros are allowed before further digits.
func (l *Lexer) scanIntPart() error {
	b, ok := l.peekByte()
	if !ok || !isDigit(b) {
		return l.errf("Invalid number, expected digit but got: %s", l.eofOr(ok, b))
	}
	if b == '0' {
		l.advanceByte()
		if nb, ok := l.peekByte(); ok && isDigit(nb) {
			return l.errf("Invalid number, unexpected digit after 0: %q", rune(nb))
		}
		return nil
	}
	return l.scanDigits()
}

// scanDigits scans one or more digits.
func (l *Lexer) scanDigits() error {
	b, ok := l.peekByte()
	if !ok || !isDigit(b) {
		return l.errf("Invalid number, expected digit but got: %s", l.eofOr(ok, b))
	}
	for {
		b, ok := l.peekByte()
		if !ok || !isDigit(b) {
			return nil
		}
		l.advanceByte()
	}
}

func (l *Lexer) eofOr(ok bool, b byte) string {
	if !ok {
		return "<EOF>"
	}
	return string(rune(b))
}
