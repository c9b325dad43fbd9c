package rlex

import "github.com/Rigidity/rue-lang/pkg/token"

// scanNumber tries the numeric forms in the exact order §4.1 mandates —
// hex, octal, binary, float, integer — since that order is what makes
// "0x1F" resolve as one HexadecimalLiteral instead of an IntLiteral "0"
// followed by an identifier "x1F".
func (l *lexer) scanNumber() token.Token {
	start := l.pos

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		if n := l.digitRunAt(l.pos+2, isHexDigit); n > 0 {
			l.pos += 2 + n
			return l.numberToken(token.HexadecimalLiteral, start)
		}
	}
	if l.peek() == '0' && (l.peekAt(1) == 'o' || l.peekAt(1) == 'O') {
		if n := l.digitRunAt(l.pos+2, isOctalDigit); n > 0 {
			l.pos += 2 + n
			return l.numberToken(token.OctalLiteral, start)
		}
	}
	if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		if n := l.digitRunAt(l.pos+2, isBinaryDigit); n > 0 {
			l.pos += 2 + n
			return l.numberToken(token.BinaryLiteral, start)
		}
	}

	intLen := l.digitRunAt(l.pos, isDigit)

	if l.peekAt(intLen) == '.' {
		fracLen := l.digitRunAt(l.pos+intLen+1, isDigit)
		if fracLen > 0 {
			l.pos += intLen + 1 + fracLen
			l.consumeExponent()
			return l.numberToken(token.FloatLiteral, start)
		}
	}

	l.pos += intLen
	l.consumeExponent()
	return l.numberToken(token.IntLiteral, start)
}

func (l *lexer) numberToken(kind token.Kind, start int) token.Token {
	return token.Token{Kind: kind, Text: string(l.src[start:l.pos]), Start: start, Stop: l.pos}
}

// consumeExponent consumes a trailing [eE][+-]?[0-9]+ suffix if one is
// present in full; a malformed exponent (e.g. a lone trailing "e") is left
// unconsumed rather than erroring, so it becomes its own token.
func (l *lexer) consumeExponent() {
	if l.peek() != 'e' && l.peek() != 'E' {
		return
	}
	offset := 1
	if l.peekAt(offset) == '+' || l.peekAt(offset) == '-' {
		offset++
	}
	n := l.digitRunAt(l.pos+offset, isDigit)
	if n == 0 {
		return
	}
	l.pos += offset + n
}

// digitRunAt counts a run of bytes matching pred starting at pos, without
// moving the cursor.
func (l *lexer) digitRunAt(pos int, pred func(byte) bool) int {
	n := 0
	for pos+n < len(l.src) && pred(l.src[pos+n]) {
		n++
	}
	return n
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isOctalDigit(c byte) bool  { return c >= '0' && c <= '7' }
func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
