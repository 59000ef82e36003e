package parser

import (
	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// parseStatement dispatches to the parse method matching curToken, per the
// grammar's `statement` production.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.SAHIH, token.ASHAR, token.HARF:
		return p.parseVarDecl()
	case token.BEGIR:
		return p.parseInput()
	case token.BENVIS:
		return p.parseOutput()
	case token.AGE:
		return p.parseIf()
	case token.BARAYE:
		return p.parseFor()
	case token.VAGHTI:
		return p.parseWhile()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func declTypeFor(t token.Type) ast.DeclType {
	switch t {
	case token.ASHAR:
		return ast.FloatType
	case token.HARF:
		return ast.CharType
	default:
		return ast.IntType
	}
}

// parseVarDecl parses: ('sahih'|'ashar'|'harf') IDENT ('=' expression)? ';'
func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.curToken
	declType := declTypeFor(tok.Type)
	p.advance() // consume type keyword

	if !p.curIs(token.IDENT) {
		p.fail("expected identifier after type keyword")
		return nil
	}
	name := p.curToken.Literal
	p.advance()

	var init ast.Expression
	if p.curIs(token.ASSIGN) {
		p.advance()
		init = p.parseExpression()
		if p.err != nil {
			return nil
		}
	}

	if !p.expect(token.SEMICOLON) {
		return nil
	}

	return &ast.VarDecl{Token: tok, Type: declType, Name: name, Init: init}
}

// parseInput parses: 'begir' '(' IDENT ')' ';'
func (p *Parser) parseInput() ast.Statement {
	tok := p.curToken
	p.advance()

	if !p.expect(token.LPAREN) {
		return nil
	}
	if !p.curIs(token.IDENT) {
		p.fail("expected identifier in begir(...)")
		return nil
	}
	name := p.curToken.Literal
	p.advance()
	if !p.expect(token.RPAREN) {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Input{Token: tok, Name: name}
}

// parseOutput parses: 'benvis' '(' expression ')' ';'
func (p *Parser) parseOutput() ast.Statement {
	tok := p.curToken
	p.advance()

	if !p.expect(token.LPAREN) {
		return nil
	}
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Output{Token: tok, Expr: expr}
}

// parseBlock parses: '{' statement* '}'
func (p *Parser) parseBlock() *ast.Block {
	tok := p.curToken
	p.advance() // consume '{'

	block := &ast.Block{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return block
}

// parseExprStmt parses: expression ';'
func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.ExprStmt{Token: tok, Expr: expr}
}
