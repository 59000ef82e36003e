// Package semantic implements the AkbarLang semantic analyzer: symbol
// table construction and type-compatibility checking over the AST.
package semantic

import (
	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
)

// Analyzer walks a Program, building a SymbolTable and collecting every
// Error it finds along the way.
type Analyzer struct {
	symbols *SymbolTable
	errors  []*Error
}

// NewAnalyzer creates an Analyzer with a fresh, empty symbol table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Errors returns every diagnostic collected by the most recent Analyze call.
func (a *Analyzer) Errors() []*Error { return a.errors }

// Symbols returns the symbol table built by the most recent Analyze call.
func (a *Analyzer) Symbols() *SymbolTable { return a.symbols }

// Analyze traverses prog, returning nil on success or the batch of every
// Error found if any construct failed a check. The AST itself is never
// mutated; the caller re-traverses it in later stages using the symbol
// table from Symbols() if it needs declared types.
func (a *Analyzer) Analyze(prog *ast.Program) []*Error {
	for _, stmt := range prog.Statements {
		a.analyzeStatement(stmt)
	}
	return a.errors
}

func (a *Analyzer) report(msg string, pos ast.Node) {
	a.errors = append(a.errors, &Error{Message: msg, Pos: pos.Pos()})
}
