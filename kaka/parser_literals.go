package kaka

import (
	"strconv"
	"strings"
)

func (p *parser) parseIdentifier() *Identifier {
	ident := &Identifier{Name: p.curToken.Lexeme, position: p.curToken.Pos}
	p.nextToken()
	return ident
}

func (p *parser) parseSelf() Expression {
	ident := &Identifier{Name: "self", position: p.curToken.Pos}
	p.nextToken()
	return ident
}

func (p *parser) parseIntegerLiteral() Expression {
	tok := p.curToken
	value, ok := tok.Value.(int64)
	if !ok {
		p.fail(tok.Pos, "invalid integer literal %q", tok.Lexeme)
		return nil
	}
	p.nextToken()
	return &IntegerLiteral{Value: value, position: tok.Pos}
}

func (p *parser) parseFloatLiteral() Expression {
	tok := p.curToken
	value, ok := tok.Value.(float64)
	if !ok {
		p.fail(tok.Pos, "invalid float literal %q", tok.Lexeme)
		return nil
	}
	p.nextToken()
	return &FloatLiteral{Value: value, position: tok.Pos}
}

// parseNegativeLiteral folds a minus sign written directly against a number
// into the literal. A minus anywhere else cannot start an expression.
func (p *parser) parseNegativeLiteral() Expression {
	minus := p.curToken
	number := p.peekToken
	adjacent := number.Pos.Offset == minus.Pos.Offset+len(minus.Lexeme)
	if !adjacent || (number.Kind != TokenInteger && number.Kind != TokenFloat) {
		p.errorExpected(minus, "expression")
		return nil
	}

	p.nextToken()
	// 9223372036854775808 only fits once negated.
	if number.Kind == TokenFloat && !strings.Contains(number.Lexeme, ".") {
		if value, err := strconv.ParseInt("-"+number.Lexeme, 10, 64); err == nil {
			p.nextToken()
			return &IntegerLiteral{Value: value, position: minus.Pos}
		}
	}

	switch lit := p.parsePrimary().(type) {
	case *IntegerLiteral:
		lit.Value = -lit.Value
		lit.position = minus.Pos
		return lit
	case *FloatLiteral:
		lit.Value = -lit.Value
		lit.position = minus.Pos
		return lit
	default:
		return nil
	}
}

func (p *parser) parseStringLiteral() Expression {
	tok := p.curToken
	value, ok := tok.Value.(string)
	if !ok {
		value = trimQuotes(tok.Lexeme)
	}
	p.nextToken()
	return &StringLiteral{Value: value, position: tok.Pos}
}

func trimQuotes(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
