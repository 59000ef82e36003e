// Package parser implements a recursive-descent parser for AkbarLang.
//
// The grammar has no ambiguity requiring backtracking: every production
// needs at most one token of lookahead, so precedence and associativity
// fall out directly from the nesting order of the parse* methods (logical
// -> equality -> comparison -> term -> factor -> unary -> primary). The
// parser fails fast: the first missing-expected-token error halts parsing
// and is returned to the caller, never accumulated or recovered from.
package parser

import (
	"fmt"

	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
	"github.com/Itshossein128/akbarLangCompiler/internal/lexer"
	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// Error is a syntactic error: a missing or unexpected token.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser consumes a token stream from a *lexer.Lexer and produces an
// *ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	err error
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

// advance shifts curToken/peekToken forward by one token. A lexical error
// encountered while doing so is recorded, peekToken becomes token.EOF, and
// every later advance call does nothing, so callers unwind on p.err
// instead of looping.
func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.err = err
		p.peekToken = token.Token{Type: token.EOF}
		return
	}
	p.peekToken = tok
}

func (p *Parser) curIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekToken.Type == t }

// expect advances past curToken if it has type t, otherwise records a
// syntax error naming what was expected.
func (p *Parser) expect(t token.Type) bool {
	if p.err != nil {
		return false
	}
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.fail(fmt.Sprintf("expected %s, got %s", t, p.curToken.Type))
	return false
}

func (p *Parser) fail(msg string) {
	if p.err == nil {
		p.err = &Error{Message: msg, Pos: p.curToken.Pos}
	}
}

// Err returns the first error encountered during parsing, or nil.
func (p *Parser) Err() error { return p.err }

// ParseProgram parses the full token stream into a Program. On the first
// lexical or syntactic error it stops and returns the error; the partial
// Program returned alongside it should not be used.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return prog, p.err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	if p.err != nil {
		return prog, p.err
	}
	return prog, nil
}
