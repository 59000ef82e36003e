package parser

import (
	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// parseExpression parses:
//
//	expression := IDENT '=' expression    -- only when peekToken after IDENT is '='
//	            | logical
//
// Assignment is checked first, with one token of lookahead past the
// identifier, before falling through to the logical-or-lower precedence
// chain, matching the grammar exactly.
func (p *Parser) parseExpression() ast.Expression {
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		tok := p.curToken
		name := p.curToken.Literal
		p.advance() // consume IDENT
		p.advance() // consume '='
		value := p.parseExpression()
		if p.err != nil {
			return nil
		}
		return &ast.Assign{Token: tok, Target: name, Value: value}
	}
	return p.parseLogical()
}

// parseLogical parses: equality ( ('va'|'ya') equality )*
func (p *Parser) parseLogical() ast.Expression {
	left := p.parseEquality()
	if p.err != nil {
		return nil
	}
	for p.curIs(token.VA) || p.curIs(token.YA) {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseEquality()
		if p.err != nil {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parseEquality parses: comparison ( ('=='|'!=') comparison )*
func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	if p.err != nil {
		return nil
	}
	for p.curIs(token.EQ) || p.curIs(token.NOT_EQ) {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseComparison()
		if p.err != nil {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parseComparison parses: term ( ('<'|'>'|'<='|'>=') term )*
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseTerm()
	if p.err != nil {
		return nil
	}
	for p.curIs(token.LT) || p.curIs(token.GT) || p.curIs(token.LT_EQ) || p.curIs(token.GT_EQ) {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseTerm()
		if p.err != nil {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parseTerm parses: factor ( ('+'|'-') factor )*
func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	if p.err != nil {
		return nil
	}
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseFactor()
		if p.err != nil {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parseFactor parses: unary ( ('*'|'/') unary )*
func (p *Parser) parseFactor() ast.Expression {
	left := p.parseUnary()
	if p.err != nil {
		return nil
	}
	for p.curIs(token.ASTERISK) || p.curIs(token.SLASH) {
		tok := p.curToken
		op := tok.Literal
		p.advance()
		right := p.parseUnary()
		if p.err != nil {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
	}
	return left
}

// parseUnary parses: ('-') unary | primary
func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(token.MINUS) {
		tok := p.curToken
		p.advance()
		operand := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return &ast.Unary{Token: tok, Operator: "-", Operand: operand}
	}
	return p.parsePrimary()
}

// parsePrimary parses: INT | FLOAT | STRING | CHAR | IDENT | '(' expression ')'
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.curToken

	switch tok.Type {
	case token.INT:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.IntLiteral, IntValue: tok.IntValue}
	case token.FLOAT:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.FloatLiteral, FloatVal: tok.FloatVal}
	case token.STRING:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.StringLiteral, StrValue: tok.Literal}
	case token.CHAR:
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.CharLiteral, CharValue: tok.CharValue}
	case token.IDENT:
		p.advance()
		return &ast.VarRef{Token: tok, Name: tok.Literal}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		if p.err != nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr
	default:
		p.fail("expected an expression, got " + tok.Type.String())
		return nil
	}
}
