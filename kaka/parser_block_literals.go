package kaka

// parseBlockLiteral parses @{ |a, b| statements }. The parameter list is
// optional and statements may be split by "." or by line breaks.
func (p *parser) parseBlockLiteral() Expression {
	open := p.curToken
	if !p.enter(open.Pos) {
		return nil
	}
	defer p.leave()

	block := &BlockLiteral{position: open.Pos}
	p.nextToken()

	if p.curIs(TokenPipe) {
		params, ok := p.parseBlockParams()
		if !ok {
			return nil
		}
		block.Params = params
	}

	block.Body = p.parseStatements(TokenRightBrace, true, p.parseStatement)
	if p.failed() {
		return nil
	}
	if !p.expect(TokenRightBrace, `"}"`) {
		return nil
	}
	return block
}

func (p *parser) parseBlockParams() ([]*Identifier, bool) {
	p.nextToken()

	var params []*Identifier
	for !p.curIs(TokenPipe) {
		if !p.curIs(TokenIdentifier) {
			p.errorExpected(p.curToken, "block parameter name")
			return nil, false
		}
		params = append(params, p.parseIdentifier())

		if !p.curIs(TokenComma) {
			break
		}
		p.nextToken()
	}

	if !p.expect(TokenPipe, `"," or "|"`) {
		return nil, false
	}
	return params, true
}
