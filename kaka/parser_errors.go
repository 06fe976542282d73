package kaka

import (
	"fmt"
	"strings"
)

func (p *parser) errorExpected(tok Token, expected string) {
	p.fail(tok.Pos, "expected %s, got %s", expected, describeToken(tok))
}

func (p *parser) errorUnexpected(tok Token) {
	p.fail(tok.Pos, "unexpected %s", describeToken(tok))
}

// fail records the first syntax error. Later calls are ignored so callers can
// unwind without checking at every step.
func (p *parser) fail(pos Position, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = newError(SyntaxError, pos, format, args...)
}

func describeToken(tok Token) string {
	if tok.Kind == TokenKeyword {
		return fmt.Sprintf("keyword %q", tok.Lexeme)
	}
	return tokenLabel(tok.Kind)
}

func tokenLabel(kind TokenKind) string {
	switch kind {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return "identifier"
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenKeyword:
		return "keyword"
	case TokenClass:
		return "'class'"
	case TokenSelf:
		return "'self'"
	case TokenUsing:
		return "'using'"
	case TokenComment:
		return "comment"
	case TokenNewline:
		return "newline"
	case TokenIndent:
		return "indent"
	case TokenDedent:
		return "dedent"
	case "":
		return "invalid token"
	default:
		return fmt.Sprintf("%q", strings.ToLower(string(kind)))
	}
}
