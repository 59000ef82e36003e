package semantic

import "github.com/Itshossein128/akbarLangCompiler/internal/ast"

// analyzeExpression type-checks expr and returns its inferred valueType, or
// unknownType when that type cannot be determined (an undeclared name, or an
// operator whose operand check failed), so callers higher in the tree do not
// cascade a second error from the same root cause. A variable used before
// initialization, or assigned an incompatible value, is reported but still
// yields its declared type.
func (a *Analyzer) analyzeExpression(expr ast.Expression) valueType {
	switch e := expr.(type) {
	case *ast.Literal:
		return a.analyzeLiteral(e)
	case *ast.VarRef:
		return a.analyzeVarRef(e)
	case *ast.Assign:
		return a.analyzeAssign(e)
	case *ast.Binary:
		return a.analyzeBinary(e)
	case *ast.Unary:
		return a.analyzeUnary(e)
	default:
		return unknownType
	}
}

func (a *Analyzer) analyzeLiteral(lit *ast.Literal) valueType {
	switch lit.Kind {
	case ast.IntLiteral:
		return intType
	case ast.FloatLiteral:
		return floatType
	case ast.CharLiteral:
		return charType
	case ast.StringLiteral:
		return stringType
	default:
		return unknownType
	}
}

func (a *Analyzer) analyzeVarRef(ref *ast.VarRef) valueType {
	sym := a.symbols.Lookup(ref.Name)
	if sym == nil {
		a.report("undeclared variable '"+ref.Name+"'", ref)
		return unknownType
	}
	if !sym.Initialized {
		a.report("variable '"+ref.Name+"' used before being initialized", ref)
	}
	return declToValue(sym.Type)
}

func (a *Analyzer) analyzeAssign(as *ast.Assign) valueType {
	vt := a.analyzeExpression(as.Value)

	sym := a.symbols.Lookup(as.Target)
	if sym == nil {
		a.report("undeclared variable '"+as.Target+"'", as)
		return unknownType
	}
	if vt != unknownType && !compatible(sym.Type, vt) {
		a.report("cannot assign a "+vt.String()+" value to "+sym.Type.String()+" variable '"+as.Target+"'", as.Value)
	}
	a.symbols.MarkInitialized(as.Target)
	return declToValue(sym.Type)
}
