package kaka

// DefaultMaxNesting bounds how deeply parentheses, collections and blocks
// may nest when no Config says otherwise.
const DefaultMaxNesting = 256

type parser struct {
	tokens []Token
	next   int

	prevToken Token
	curToken  Token
	peekToken Token

	err *Error

	depth      int
	maxNesting int

	// owed counts INDENTs opened inside brackets whose DEDENTs have not been
	// seen yet. They are consumed at the next statement boundary.
	owed int
}

// Parse builds the statement list of one program from a normalized token
// stream. COMMENT tokens are ignored. The first error aborts the parse.
func Parse(tokens []Token) ([]Statement, error) {
	p := newParser(tokens, DefaultMaxNesting)
	stmts := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return stmts, nil
}

func newParser(tokens []Token, maxNesting int) *parser {
	filtered := make([]Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Kind == TokenComment {
			continue
		}
		filtered = append(filtered, tok)
	}
	if n := len(filtered); n == 0 || filtered[n-1].Kind != TokenEOF {
		eof := Token{Kind: TokenEOF}
		if n > 0 {
			eof.Pos = filtered[n-1].Pos
		}
		filtered = append(filtered, eof)
	}
	if maxNesting <= 0 {
		maxNesting = DefaultMaxNesting
	}

	p := &parser{tokens: filtered, maxNesting: maxNesting}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *parser) pull() Token {
	if p.next >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	tok := p.tokens[p.next]
	p.next++
	return tok
}

func (p *parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken = p.pull()
}

func (p *parser) curIs(kind TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *parser) peekIs(kind TokenKind) bool {
	return p.peekToken.Kind == kind
}

func (p *parser) failed() bool {
	return p.err != nil
}

// expect consumes the current token when it has the given kind.
func (p *parser) expect(kind TokenKind, what string) bool {
	if !p.curIs(kind) {
		p.errorExpected(p.curToken, what)
		return false
	}
	p.nextToken()
	return true
}

func (p *parser) enter(pos Position) bool {
	p.depth++
	if p.depth > p.maxNesting {
		p.fail(pos, "nesting exceeds the maximum depth of %d", p.maxNesting)
		return false
	}
	return true
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseProgram() []Statement {
	return p.parseStatements(TokenEOF, false, p.parseTopStatement)
}

func (p *parser) parseTopStatement() Statement {
	if p.curIs(TokenClass) {
		return p.parseClassDeclaration()
	}
	return p.parseStatement()
}

// parseStatements reads statements up to, but not including, closer.
// Inside brackets every layout token counts as a separator.
func (p *parser) parseStatements(closer TokenKind, inBrackets bool, parse func() Statement) []Statement {
	var stmts []Statement
	p.skipSeparators(inBrackets)
	for !p.failed() && !p.atCloser(closer) {
		if p.curIs(TokenEOF) {
			p.errorExpected(p.curToken, tokenLabel(closer))
			return nil
		}

		stmt := parse()
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)

		// A statement that closed its own indented body needs no separator.
		ended := p.prevToken.Kind == TokenDedent
		separated := p.skipSeparators(inBrackets)
		if p.failed() || p.atCloser(closer) {
			break
		}
		if p.curIs(TokenEOF) {
			p.errorExpected(p.curToken, tokenLabel(closer))
			return nil
		}
		if !separated && !ended {
			p.errorExpected(p.curToken, "end of statement")
			return nil
		}
	}
	return stmts
}

func (p *parser) atCloser(closer TokenKind) bool {
	if !p.curIs(closer) {
		return false
	}
	return closer != TokenDedent || p.owed == 0
}

// skipSeparators consumes statement separators and reports whether it saw
// any. Owed DEDENTs always count as separators.
func (p *parser) skipSeparators(inBrackets bool) bool {
	seen := false
	for {
		switch {
		case p.curIs(TokenNewline), p.curIs(TokenDot):
			p.nextToken()
		case p.curIs(TokenDedent) && p.owed > 0:
			p.owed--
			p.nextToken()
		case inBrackets && p.curIs(TokenIndent):
			p.owed++
			p.nextToken()
		default:
			return seen
		}
		seen = true
	}
}

// skipLayout consumes line structure between the elements of a bracketed
// construct. A DEDENT that closes an INDENT opened outside the bracket is
// left in place for the caller to reject.
func (p *parser) skipLayout() {
	for {
		switch {
		case p.curIs(TokenNewline):
			p.nextToken()
		case p.curIs(TokenIndent):
			p.owed++
			p.nextToken()
		case p.curIs(TokenDedent) && p.owed > 0:
			p.owed--
			p.nextToken()
		default:
			return
		}
	}
}

func (p *parser) parseStatement() Statement {
	if p.curIs(TokenIdentifier) {
		switch {
		case p.peekIs(TokenEqual):
			return p.parseAssignment()
		case endsDeclaration(p.peekToken.Kind):
			target := p.parseIdentifier()
			return &Assignment{Target: target, position: target.position}
		}
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return expr
}

func endsDeclaration(kind TokenKind) bool {
	switch kind {
	case TokenNewline, TokenDot, TokenEOF, TokenIndent, TokenDedent, TokenRightBrace:
		return true
	default:
		return false
	}
}

func (p *parser) parseAssignment() Statement {
	target := p.parseIdentifier()
	p.nextToken()

	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return &Assignment{Target: target, Value: value, position: target.position}
}
