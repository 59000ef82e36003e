package parser

import (
	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// parseIf parses:
//
//	'age' '(' expression ')' statement
//	  ( 'vali' ( 'age' '(' expression ')' statement   -- else-if
//	           | statement )                          -- else
//	  | 'vagarna' statement )?
//
// A dangling alternative always binds to the nearest preceding 'age',
// which this method's own recursive structure guarantees without any
// extra disambiguation.
func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken
	p.advance() // consume 'age'

	if !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	consequence := p.parseStatement()
	if p.err != nil {
		return nil
	}

	stmt := &ast.If{Token: tok, Condition: cond, Consequence: consequence}

	switch p.curToken.Type {
	case token.VALI:
		p.advance()
		if p.curIs(token.AGE) {
			stmt.Alternative = p.parseIf() // else-if chains via nested If
		} else {
			stmt.Alternative = p.parseStatement()
		}
	case token.VAGARNA:
		p.advance()
		stmt.Alternative = p.parseStatement()
	}

	return stmt
}

// parseWhile parses: 'vaghti' '(' expression ')' statement
func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken
	p.advance()

	if !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	body := p.parseStatement()
	if p.err != nil {
		return nil
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

// parseFor parses:
//
//	'baraye' '(' (varDecl | exprStmt) expression ';' expression ')' statement
//
// A bare 'ta' token is tolerated and skipped if it appears where the
// condition expression is expected, per the reserved-but-unused connective
// rule; any other unexpected token there is a syntax error.
func (p *Parser) parseFor() ast.Statement {
	tok := p.curToken
	p.advance() // consume 'baraye'

	if !p.expect(token.LPAREN) {
		return nil
	}

	var init ast.Statement
	switch p.curToken.Type {
	case token.SAHIH, token.ASHAR, token.HARF:
		init = p.parseVarDecl()
	default:
		init = p.parseExprStmt()
	}
	if p.err != nil {
		return nil
	}

	if p.curIs(token.TA) {
		p.advance()
	}

	cond := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}

	incr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	body := p.parseStatement()
	if p.err != nil {
		return nil
	}

	return &ast.For{Token: tok, Init: init, Condition: cond, Increment: incr, Body: body}
}
