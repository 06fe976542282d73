package kaka

import (
	"slices"
	"strings"
)

type indentFamily int

const (
	indentUnknown indentFamily = iota
	indentSpaces
	indentTabs
)

func (f indentFamily) String() string {
	switch f {
	case indentSpaces:
		return "spaces"
	case indentTabs:
		return "tabs"
	default:
		return "unknown"
	}
}

// indenter rewrites raw NEWLINE tokens into INDENT/DEDENT tokens. It holds
// all per-unit state, so each call to Normalize starts from scratch.
type indenter struct {
	input   []Token
	output  []Token
	current int

	stack  []int
	family indentFamily
}

// Normalize turns the scanner's NEWLINE tokens into block structure:
//   - a NEWLINE followed by another NEWLINE, a COMMENT or EOF is dropped;
//   - a deeper line becomes a single INDENT;
//   - a line at the same depth keeps its NEWLINE as a separator;
//   - a shallower line becomes one DEDENT per closed level, and must land
//     on a depth seen before.
//
// Indentation must use spaces or tabs consistently within one source unit.
// Levels still open at end of input are closed before EOF.
func Normalize(tokens []Token) ([]Token, error) {
	in := &indenter{
		input:  tokens,
		output: make([]Token, 0, len(tokens)),
		stack:  []int{0},
	}
	return in.run()
}

func (in *indenter) run() ([]Token, error) {
	for in.current < len(in.input) {
		tok := in.advance()
		switch tok.Kind {
		case TokenNewline:
			if err := in.processNewline(tok); err != nil {
				return nil, err
			}
		case TokenEOF:
			in.closeLevels(tok)
			in.output = append(in.output, tok)
			return in.output, nil
		default:
			in.output = append(in.output, tok)
		}
	}

	eof := Token{Kind: TokenEOF}
	if n := len(in.input); n > 0 {
		eof.Pos = in.input[n-1].Pos
	}
	in.closeLevels(eof)
	in.output = append(in.output, eof)
	return in.output, nil
}

func (in *indenter) advance() Token {
	tok := in.input[in.current]
	in.current++
	return tok
}

func (in *indenter) peek() Token {
	if in.current >= len(in.input) {
		return Token{Kind: TokenEOF}
	}
	return in.input[in.current]
}

func (in *indenter) top() int {
	return in.stack[len(in.stack)-1]
}

func (in *indenter) processNewline(tok Token) error {
	// Blank and comment-only lines defer the decision to the next real line.
	// Trailing blank lines have none; EOF closes whatever is open.
	if next := in.peek(); next.Kind == TokenNewline || next.Kind == TokenComment || next.Kind == TokenEOF {
		return nil
	}

	if err := in.checkFamily(tok); err != nil {
		return err
	}

	column := tok.Indentation()
	switch {
	case column > in.top():
		in.stack = append(in.stack, column)
		in.output = append(in.output, retype(tok, TokenIndent))
	case column == in.top():
		in.output = append(in.output, tok)
	default:
		if !slices.Contains(in.stack, column) {
			return newError(IndentationError, tok.Pos, "dedent to column %d does not match any outer indentation level", column)
		}
		for in.top() != column {
			in.stack = in.stack[:len(in.stack)-1]
			in.output = append(in.output, retype(tok, TokenDedent))
		}
	}
	return nil
}

// checkFamily fixes the unit's indentation family on the first indented line
// and rejects the other family from then on.
func (in *indenter) checkFamily(tok Token) error {
	if len(tok.Lexeme) <= 1 {
		return nil
	}
	ws := tok.Lexeme[1:]

	if in.family == indentUnknown {
		switch ws[0] {
		case ' ':
			in.family = indentSpaces
		case '\t':
			in.family = indentTabs
		default:
			return newError(IndentationError, tok.Pos, "invalid indentation character %q", ws[0])
		}
	}

	other := " "
	if in.family == indentSpaces {
		other = "\t"
	}
	if strings.Contains(ws, other) {
		return newError(IndentationError, tok.Pos, "mixed tabs and spaces in indentation (file indents with %s)", in.family)
	}
	return nil
}

func (in *indenter) closeLevels(at Token) {
	for len(in.stack) > 1 {
		in.stack = in.stack[:len(in.stack)-1]
		in.output = append(in.output, Token{Kind: TokenDedent, Pos: at.Pos})
	}
}

func retype(tok Token, kind TokenKind) Token {
	return Token{Kind: kind, Lexeme: tok.Lexeme, Value: tok.Value, Pos: tok.Pos}
}
