package kaka

import (
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune

	tokens []Token
}

// Scan converts source text into a flat token stream terminated by EOF. It
// measures leading whitespace after each newline but leaves its meaning to
// Normalize.
func Scan(source string) ([]Token, error) {
	l := newLexer(source)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == "" {
			continue
		}
		l.tokens = append(l.tokens, tok)
		if tok.Kind == TokenEOF {
			return l.tokens, nil
		}
	}
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 1}
	l.decode()
	return l
}

// decode loads the rune at offset into ch without moving the line counters.
func (l *lexer) decode() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.offset:])
}

func (l *lexer) readRune() {
	if l.width == 0 {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.offset += l.width
	l.decode()
}

func (l *lexer) atEnd() bool {
	return l.width == 0
}

func (l *lexer) peekRune() rune {
	next := l.offset + l.width
	if next >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[next:])
	return r
}

func (l *lexer) currentOffset() int {
	return l.offset
}

func (l *lexer) pos() Position {
	return Position{Offset: l.currentOffset(), Line: l.line, Column: l.column}
}

// NextToken returns the next token. A token with an empty Kind means input
// was consumed without producing anything, such as a trailing blank line.
func (l *lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	pos := l.pos()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	switch l.ch {
	case '(':
		return l.single(TokenLeftParen, pos), nil
	case ')':
		return l.single(TokenRightParen, pos), nil
	case '{':
		return l.single(TokenLeftBrace, pos), nil
	case '}':
		return l.single(TokenRightBrace, pos), nil
	case '[':
		return l.single(TokenLeftBracket, pos), nil
	case ']':
		return l.single(TokenRightBracket, pos), nil
	case ',':
		return l.single(TokenComma, pos), nil
	case '+':
		return l.single(TokenPlus, pos), nil
	case '-':
		return l.single(TokenMinus, pos), nil
	case '*':
		return l.single(TokenStar, pos), nil
	case '/':
		return l.single(TokenSlash, pos), nil
	case ';':
		return l.single(TokenSemicolon, pos), nil
	case '|':
		return l.single(TokenPipe, pos), nil
	case '!':
		return l.oneOrTwo(TokenBang, TokenBangEqual, pos), nil
	case '=':
		return l.oneOrTwo(TokenEqual, TokenEqualEqual, pos), nil
	case '<':
		return l.oneOrTwo(TokenLess, TokenLessEqual, pos), nil
	case '>':
		return l.oneOrTwo(TokenGreater, TokenGreaterEqual, pos), nil
	case '@':
		if l.peekRune() != '{' {
			return Token{}, newError(LexicalError, pos, "invalid character '@'")
		}
		l.readRune()
		l.readRune()
		return Token{Kind: TokenBlockOpen, Lexeme: "@{", Pos: pos}, nil
	case '\n':
		return l.readNewline(pos), nil
	case '#':
		return l.readComment(pos), nil
	case '"':
		return l.readString(pos)
	case '.':
		if isDigit(l.peekRune()) {
			return l.readNumber(pos)
		}
		return l.single(TokenDot, pos), nil
	}

	switch {
	case isIdentifierStart(l.ch):
		return l.readIdentifier(pos), nil
	case isDigit(l.ch):
		return l.readNumber(pos)
	default:
		return Token{}, newError(LexicalError, pos, "invalid character %q", l.ch)
	}
}

func (l *lexer) single(kind TokenKind, pos Position) Token {
	l.readRune()
	return Token{Kind: kind, Lexeme: string(kind), Pos: pos}
}

func (l *lexer) oneOrTwo(one, two TokenKind, pos Position) Token {
	if l.peekRune() == '=' {
		l.readRune()
		l.readRune()
		return Token{Kind: two, Lexeme: string(two), Pos: pos}
	}
	return l.single(one, pos)
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readRune()
		default:
			return
		}
	}
}

// readNewline folds the indentation of the following line into the NEWLINE
// lexeme. A run of whitespace that reaches end of input produces no token.
func (l *lexer) readNewline(pos Position) Token {
	start := l.currentOffset()
	l.readRune()
	tokPos := Position{Offset: pos.Offset, Line: l.line, Column: 1}
	for !l.atEnd() && (l.ch == ' ' || l.ch == '\t') {
		l.readRune()
	}
	if l.atEnd() {
		return Token{}
	}
	return Token{Kind: TokenNewline, Lexeme: l.input[start:l.currentOffset()], Pos: tokPos}
}

func (l *lexer) readComment(pos Position) Token {
	start := l.currentOffset()
	for !l.atEnd() && l.ch != '\n' {
		l.readRune()
	}
	return Token{Kind: TokenComment, Lexeme: l.input[start:l.currentOffset()], Pos: pos}
}

func (l *lexer) readIdentifier(pos Position) Token {
	start := l.currentOffset()
	for !l.atEnd() && isIdentifierRune(l.ch) {
		l.readRune()
	}
	name := l.input[start:l.currentOffset()]
	if !l.atEnd() && l.ch == ':' {
		l.readRune()
		return Token{Kind: TokenKeyword, Lexeme: name + ":", Value: name, Pos: pos}
	}
	return Token{Kind: lookupIdent(name), Lexeme: name, Pos: pos}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
