package kaka

// parseClassDeclaration parses
//
//	class Point: Object
//	    x = 0
//	    y
//	    norm
//	        (x * x) + (y * y)
//	    + other
//	        Point x: x + other x y: y + other y
//	    at: i put: v
//	        v
//
// The scanner reads "Point:" as a keyword, which is how the parent clause is
// recognized. Without an indented body the class is empty.
func (p *parser) parseClassDeclaration() Statement {
	pos := p.curToken.Pos
	p.nextToken()

	decl := &ClassDeclaration{position: pos}
	switch p.curToken.Kind {
	case TokenIdentifier:
		decl.Name = p.parseIdentifier()
	case TokenKeyword:
		decl.Name = &Identifier{Name: keywordName(p.curToken), position: p.curToken.Pos}
		p.nextToken()
		if !p.curIs(TokenIdentifier) {
			p.errorExpected(p.curToken, "parent class name")
			return nil
		}
		decl.Parent = p.parseIdentifier()
	default:
		p.errorExpected(p.curToken, "class name")
		return nil
	}

	if !p.curIs(TokenIndent) {
		return decl
	}
	p.nextToken()

	for !p.failed() {
		if !p.parseClassMember(decl) {
			return nil
		}

		ended := p.prevToken.Kind == TokenDedent
		separated := p.skipSeparators(false)
		if p.atCloser(TokenDedent) {
			p.nextToken()
			break
		}
		if !separated && !ended {
			p.errorExpected(p.curToken, "end of class member")
			return nil
		}
	}
	if p.failed() {
		return nil
	}
	return decl
}

func (p *parser) parseClassMember(decl *ClassDeclaration) bool {
	tok := p.curToken
	switch {
	case tok.Kind == TokenIdentifier:
		name := p.parseIdentifier()
		switch {
		case p.curIs(TokenEqual):
			p.nextToken()
			value := p.parseExpression()
			if value == nil {
				return false
			}
			return p.addField(decl, &Field{Name: name, Default: value, position: name.position})
		case p.curIs(TokenIndent):
			body, ok := p.parseMethodBody()
			if !ok {
				return false
			}
			method := &UnaryMethod{
				Selector: &Message{Selector: name.Name, position: name.position},
				Body:     body,
				position: name.position,
			}
			return p.addMethod(decl, UnaryMethodKind, method)
		case endsMember(p.curToken.Kind):
			return p.addField(decl, &Field{Name: name, position: name.position})
		default:
			p.errorExpected(p.curToken, `"=", a method body or end of member`)
			return false
		}

	case isBinarySelector(tok.Kind):
		p.nextToken()
		if !p.curIs(TokenIdentifier) {
			p.errorExpected(p.curToken, "parameter name")
			return false
		}
		param := p.parseIdentifier()
		body, ok := p.parseMethodBody()
		if !ok {
			return false
		}
		method := &BinaryMethod{
			Selector: &Message{Selector: tok.Lexeme, position: tok.Pos},
			Param:    param,
			Body:     body,
			position: tok.Pos,
		}
		return p.addMethod(decl, BinaryMethodKind, method)

	case tok.Kind == TokenKeyword:
		method := &KeywordMethod{position: tok.Pos}
		for p.curIs(TokenKeyword) {
			method.Keywords = append(method.Keywords, &KeywordMessage{Keyword: keywordName(p.curToken), position: p.curToken.Pos})
			p.nextToken()
			if !p.curIs(TokenIdentifier) {
				p.errorExpected(p.curToken, "parameter name")
				return false
			}
			method.Params = append(method.Params, p.parseIdentifier())
		}
		body, ok := p.parseMethodBody()
		if !ok {
			return false
		}
		method.Body = body
		return p.addMethod(decl, KeywordMethodKind, method)

	default:
		p.errorExpected(tok, "field or method definition")
		return false
	}
}

func endsMember(kind TokenKind) bool {
	switch kind {
	case TokenNewline, TokenDot, TokenDedent, TokenEOF:
		return true
	default:
		return false
	}
}

// parseMethodBody parses an indented statement list and consumes the DEDENT
// that closes it.
func (p *parser) parseMethodBody() ([]Statement, bool) {
	if !p.curIs(TokenIndent) {
		p.errorExpected(p.curToken, "indented method body")
		return nil, false
	}
	p.nextToken()

	body := p.parseStatements(TokenDedent, false, p.parseStatement)
	if p.failed() {
		return nil, false
	}
	if !p.expect(TokenDedent, "end of method body") {
		return nil, false
	}
	return body, true
}

func (p *parser) addField(decl *ClassDeclaration, field *Field) bool {
	if _, exists := decl.Field(field.Name.Name); exists {
		p.fail(field.position, "duplicate field %q in class %s", field.Name.Name, decl.Name.Name)
		return false
	}
	decl.Fields = append(decl.Fields, field)
	return true
}

func (p *parser) addMethod(decl *ClassDeclaration, kind MethodKind, body MethodBody) bool {
	def, err := NewMethodDef(kind, body)
	if err != nil {
		p.fail(body.Pos(), "%s", err.Error())
		return false
	}
	selector := def.Selector()
	if _, exists := decl.Method(selector); exists {
		p.fail(body.Pos(), "duplicate method %q in class %s", selector, decl.Name.Name)
		return false
	}
	decl.Methods = append(decl.Methods, def)
	return true
}
