package semantic

import "github.com/Itshossein128/akbarLangCompiler/internal/ast"

// valueType is the inferred type of an expression during analysis. It is a
// superset of ast.DeclType: expressions can also be string-valued (which
// has no declared-type counterpart) or unknown (once an error has already
// been reported for the subexpression, to avoid cascading diagnostics).
type valueType int

const (
	unknownType valueType = iota
	intType
	floatType
	charType
	stringType
)

func (v valueType) String() string {
	switch v {
	case intType:
		return "int"
	case floatType:
		return "float"
	case charType:
		return "char"
	case stringType:
		return "string"
	default:
		return "unknown"
	}
}

func isNumeric(v valueType) bool {
	return v == intType || v == floatType
}

func declToValue(d ast.DeclType) valueType {
	switch d {
	case ast.FloatType:
		return floatType
	case ast.CharType:
		return charType
	default:
		return intType
	}
}

// compatible reports whether a value of type v may be stored into a
// declaration of type declared, per §4.3's type-compatibility rules:
// reflexive compatibility for int/float/char, integer widening into a
// float declaration, and no compatibility at all between char and numeric
// types. Strings are never compatible with a declared type.
func compatible(declared ast.DeclType, v valueType) bool {
	switch declared {
	case ast.IntType:
		return v == intType
	case ast.FloatType:
		return v == intType || v == floatType
	case ast.CharType:
		return v == charType
	default:
		return false
	}
}
