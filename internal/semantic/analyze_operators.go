package semantic

import "github.com/Itshossein128/akbarLangCompiler/internal/ast"

// analyzeBinary checks operand types for +,-,*,/ (both numeric, result
// widens to float if either operand is float), <,>,<=,>= (both numeric,
// result int), and ==,!= (operand types compatible with each other, result
// int). 'va'/'ya' (AND/OR) follow the same "result int" shape as the
// comparison operators; §4.3 does not further constrain their operand
// types beyond being some value, matching the deliberately permissive
// treatment of conditions.
func (a *Analyzer) analyzeBinary(b *ast.Binary) valueType {
	lt := a.analyzeExpression(b.Left)
	rt := a.analyzeExpression(b.Right)

	switch b.Operator {
	case "+", "-", "*", "/":
		if lt == unknownType || rt == unknownType {
			return unknownType
		}
		if !isNumeric(lt) || !isNumeric(rt) {
			a.report("operator '"+b.Operator+"' requires numeric operands", b)
			return unknownType
		}
		if lt == floatType || rt == floatType {
			return floatType
		}
		return intType

	case "<", ">", "<=", ">=":
		if lt == unknownType || rt == unknownType {
			return unknownType
		}
		if !isNumeric(lt) || !isNumeric(rt) {
			a.report("operator '"+b.Operator+"' requires numeric operands", b)
			return unknownType
		}
		return intType

	case "==", "!=":
		if lt == unknownType || rt == unknownType {
			return unknownType
		}
		if lt != rt && !(isNumeric(lt) && isNumeric(rt)) {
			a.report("operator '"+b.Operator+"' requires operands of compatible type", b)
			return unknownType
		}
		return intType

	case "va", "ya":
		return intType

	default:
		return unknownType
	}
}

// analyzeUnary checks the sole unary operator, '-': the operand must be
// numeric, and the result type equals the operand's type.
func (a *Analyzer) analyzeUnary(u *ast.Unary) valueType {
	ot := a.analyzeExpression(u.Operand)
	if ot == unknownType {
		return unknownType
	}
	if !isNumeric(ot) {
		a.report("unary '-' requires a numeric operand", u)
		return unknownType
	}
	return ot
}
