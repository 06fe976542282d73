package kaka

// parseExpression parses the widest expression form. Unary sends bind
// tightest, binary sends share one left-associative level, and keyword sends
// bind loosest.
func (p *parser) parseExpression() Expression {
	return p.parseKeywordSend()
}

// parseKeywordSend collects every keyword/argument pair following the
// receiver into a single send. The pair list ends at the first token after
// an argument that is not a keyword.
func (p *parser) parseKeywordSend() Expression {
	receiver := p.parseBinarySend()
	if receiver == nil || !p.curIs(TokenKeyword) {
		return receiver
	}

	send := &KeywordSend{Receiver: receiver, position: receiver.Pos()}
	for p.curIs(TokenKeyword) {
		keyword := &KeywordMessage{Keyword: keywordName(p.curToken), position: p.curToken.Pos}
		p.nextToken()

		arg := p.parseBinarySend()
		if arg == nil {
			return nil
		}
		send.Pairs = append(send.Pairs, KeywordPair{Keyword: keyword, Argument: arg})
	}
	return send
}

func (p *parser) parseBinarySend() Expression {
	left := p.parseUnarySend()
	for left != nil && isBinarySelector(p.curToken.Kind) {
		message := &Message{Selector: p.curToken.Lexeme, position: p.curToken.Pos}
		p.nextToken()

		right := p.parseUnarySend()
		if right == nil {
			return nil
		}
		left = &BinarySend{Receiver: left, Message: message, Argument: right, position: left.Pos()}
	}
	return left
}

func (p *parser) parseUnarySend() Expression {
	receiver := p.parsePrimary()
	for receiver != nil && p.curIs(TokenIdentifier) {
		message := &Message{Selector: p.curToken.Lexeme, position: p.curToken.Pos}
		p.nextToken()
		receiver = &UnarySend{Receiver: receiver, Message: message, position: receiver.Pos()}
	}
	return receiver
}

func (p *parser) parsePrimary() Expression {
	if p.failed() {
		return nil
	}

	switch p.curToken.Kind {
	case TokenInteger:
		return p.parseIntegerLiteral()
	case TokenFloat:
		return p.parseFloatLiteral()
	case TokenMinus:
		return p.parseNegativeLiteral()
	case TokenString:
		return p.parseStringLiteral()
	case TokenIdentifier:
		return p.parseIdentifier()
	case TokenSelf:
		return p.parseSelf()
	case TokenLeftParen:
		return p.parseGroupedExpression()
	case TokenLeftBracket:
		return p.parseListLiteral()
	case TokenLeftBrace:
		return p.parseMapLiteral()
	case TokenBlockOpen:
		return p.parseBlockLiteral()
	case TokenSemicolon, TokenBang:
		p.errorUnexpected(p.curToken)
		return nil
	case TokenUsing:
		p.fail(p.curToken.Pos, "'using' is reserved and cannot be used here")
		return nil
	case TokenClass:
		p.fail(p.curToken.Pos, "class declarations are only allowed at top level")
		return nil
	default:
		p.errorExpected(p.curToken, "expression")
		return nil
	}
}

func (p *parser) parseGroupedExpression() Expression {
	open := p.curToken
	if !p.enter(open.Pos) {
		return nil
	}
	defer p.leave()

	p.nextToken()
	p.skipLayout()
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	p.skipLayout()
	if !p.expect(TokenRightParen, `")"`) {
		return nil
	}
	return expr
}

func keywordName(tok Token) string {
	if name, ok := tok.Value.(string); ok {
		return name
	}
	if n := len(tok.Lexeme); n > 0 && tok.Lexeme[n-1] == ':' {
		return tok.Lexeme[:n-1]
	}
	return tok.Lexeme
}
