package kaka

import "fmt"

// TokenKind identifies the lexical category of a token. Operator and
// delimiter kinds are spelled exactly like their lexeme.
type TokenKind string

const (
	TokenLeftParen    TokenKind = "("
	TokenRightParen   TokenKind = ")"
	TokenLeftBrace    TokenKind = "{"
	TokenRightBrace   TokenKind = "}"
	TokenLeftBracket  TokenKind = "["
	TokenRightBracket TokenKind = "]"
	TokenBlockOpen    TokenKind = "@{"

	TokenPlus  TokenKind = "+"
	TokenMinus TokenKind = "-"
	TokenStar  TokenKind = "*"
	TokenSlash TokenKind = "/"

	TokenBang         TokenKind = "!"
	TokenBangEqual    TokenKind = "!="
	TokenEqual        TokenKind = "="
	TokenEqualEqual   TokenKind = "=="
	TokenLess         TokenKind = "<"
	TokenLessEqual    TokenKind = "<="
	TokenGreater      TokenKind = ">"
	TokenGreaterEqual TokenKind = ">="

	TokenDot       TokenKind = "."
	TokenComma     TokenKind = ","
	TokenSemicolon TokenKind = ";"
	TokenPipe      TokenKind = "|"

	TokenIdentifier TokenKind = "IDENTIFIER"
	TokenString     TokenKind = "STRING"
	TokenInteger    TokenKind = "INTEGER"
	TokenFloat      TokenKind = "FLOAT"
	TokenKeyword    TokenKind = "KEYWORD"

	TokenClass TokenKind = "CLASS"
	TokenSelf  TokenKind = "SELF"
	TokenUsing TokenKind = "USING"

	TokenComment TokenKind = "COMMENT"
	TokenNewline TokenKind = "NEWLINE"
	TokenIndent  TokenKind = "INDENT"
	TokenDedent  TokenKind = "DEDENT"
	TokenEOF     TokenKind = "EOF"
)

// Token captures lexical information for the later stages. Value holds the
// decoded literal: int64, float64 or string, or nil when there is none.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Value  any
	Pos    Position
}

// Position identifies a location in the source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Indentation returns the column count carried by a NEWLINE token.
func (t Token) Indentation() int {
	if t.Kind != TokenNewline || len(t.Lexeme) == 0 {
		return 0
	}
	return len(t.Lexeme) - 1
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier, TokenInteger, TokenFloat, TokenString, TokenKeyword:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	default:
		return string(t.Kind)
	}
}

func lookupIdent(ident string) TokenKind {
	switch ident {
	case "class":
		return TokenClass
	case "self":
		return TokenSelf
	case "using":
		return TokenUsing
	}
	return TokenIdentifier
}

func isBinarySelector(kind TokenKind) bool {
	switch kind {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash,
		TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual,
		TokenEqualEqual, TokenBangEqual:
		return true
	default:
		return false
	}
}
