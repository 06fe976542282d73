package kaka

// parseListLiteral parses [a, b, c]. A trailing comma is allowed and line
// breaks may appear between elements.
func (p *parser) parseListLiteral() Expression {
	open := p.curToken
	if !p.enter(open.Pos) {
		return nil
	}
	defer p.leave()

	list := &ListLiteral{position: open.Pos}
	p.nextToken()
	p.skipLayout()

	for !p.curIs(TokenRightBracket) {
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		list.Elements = append(list.Elements, elem)

		p.skipLayout()
		if !p.curIs(TokenComma) {
			break
		}
		p.nextToken()
		p.skipLayout()
	}

	if !p.expect(TokenRightBracket, `"," or "]"`) {
		return nil
	}
	return list
}

// parseMapLiteral parses {key = value, ...}. Entries keep source order and
// duplicate keys are left for later stages to judge.
func (p *parser) parseMapLiteral() Expression {
	open := p.curToken
	if !p.enter(open.Pos) {
		return nil
	}
	defer p.leave()

	mapping := &MapLiteral{position: open.Pos}
	p.nextToken()
	p.skipLayout()

	for !p.curIs(TokenRightBrace) {
		key := p.parseExpression()
		if key == nil {
			return nil
		}
		p.skipLayout()
		if !p.expect(TokenEqual, `"=" after map key`) {
			return nil
		}
		p.skipLayout()
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		mapping.Entries = append(mapping.Entries, MapEntry{Key: key, Value: value})

		p.skipLayout()
		if !p.curIs(TokenComma) {
			break
		}
		p.nextToken()
		p.skipLayout()
	}

	if !p.expect(TokenRightBrace, `"," or "}"`) {
		return nil
	}
	return mapping
}
