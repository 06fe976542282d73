package kaka

import (
	"errors"
	"strconv"
)

// readString scans to the next unescaped quote. Escapes are kept verbatim:
// a backslash only stops the following quote from closing the literal.
func (l *lexer) readString(pos Position) (Token, error) {
	start := l.currentOffset()
	l.readRune()
	for {
		switch {
		case l.atEnd():
			return Token{}, newError(LexicalError, pos, "unterminated string")
		case l.ch == '\\':
			l.readRune()
			l.readRune()
		case l.ch == '"':
			l.readRune()
			lexeme := l.input[start:l.currentOffset()]
			return Token{Kind: TokenString, Lexeme: lexeme, Value: lexeme[1 : len(lexeme)-1], Pos: pos}, nil
		default:
			l.readRune()
		}
	}
}

// readNumber accumulates digits and at most one decimal point. A second
// point is an error rather than the end of the literal.
func (l *lexer) readNumber(pos Position) (Token, error) {
	start := l.currentOffset()
	seenDot := false
	for !l.atEnd() && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if seenDot {
				return Token{}, newError(LexicalError, l.pos(), "malformed number %q: more than one decimal point", l.input[start:l.currentOffset()+1])
			}
			seenDot = true
		}
		l.readRune()
	}

	text := l.input[start:l.currentOffset()]
	if !seenDot {
		if value, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Token{Kind: TokenInteger, Lexeme: text, Value: value, Pos: pos}, nil
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return Token{}, newError(LexicalError, pos, "malformed number %q", text)
		}
	}
	return Token{Kind: TokenFloat, Lexeme: text, Value: value, Pos: pos}, nil
}
