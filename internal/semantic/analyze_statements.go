package semantic

import "github.com/Itshossein128/akbarLangCompiler/internal/ast"

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(s)
	case *ast.Input:
		a.analyzeInput(s)
	case *ast.Output:
		a.analyzeExpression(s.Expr)
	case *ast.ExprStmt:
		a.analyzeExpression(s.Expr)
	case *ast.If:
		a.analyzeExpression(s.Condition)
		a.analyzeStatement(s.Consequence)
		if s.Alternative != nil {
			a.analyzeStatement(s.Alternative)
		}
	case *ast.While:
		a.analyzeExpression(s.Condition)
		a.analyzeStatement(s.Body)
	case *ast.For:
		a.analyzeStatement(s.Init)
		a.analyzeExpression(s.Condition)
		a.analyzeExpression(s.Increment)
		a.analyzeStatement(s.Body)
	case *ast.Block:
		for _, inner := range s.Statements {
			a.analyzeStatement(inner)
		}
	}
}

// analyzeVarDecl checks that Name is not already declared and, if present,
// that Init's type is compatible with the declared type.
func (a *Analyzer) analyzeVarDecl(vd *ast.VarDecl) {
	if a.symbols.Has(vd.Name) {
		a.report("variable '"+vd.Name+"' is already declared", vd)
		// Still analyze the initializer for further diagnostics, but do
		// not re-declare: the first declaration wins the symbol table.
		if vd.Init != nil {
			a.analyzeExpression(vd.Init)
		}
		return
	}

	initialized := false
	if vd.Init != nil {
		vt := a.analyzeExpression(vd.Init)
		if vt != unknownType && !compatible(vd.Type, vt) {
			a.report("cannot initialize "+vd.Type.String()+" variable '"+vd.Name+"' with a "+vt.String()+" value", vd.Init)
		}
		initialized = true
	}

	a.symbols.Declare(vd.Name, vd.Type, initialized)
}

// analyzeInput checks Name is declared, then flags it initialized.
func (a *Analyzer) analyzeInput(in *ast.Input) {
	if !a.symbols.Has(in.Name) {
		a.report("undeclared variable '"+in.Name+"'", in)
		return
	}
	a.symbols.MarkInitialized(in.Name)
}
