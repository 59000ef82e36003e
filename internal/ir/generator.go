package ir

import (
	"fmt"
	"strconv"

	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
)

// generator lowers a Program into a flat Instruction list. Its temp and
// label counters are local to one Generate call so that repeated runs of
// the pipeline over different inputs never share state (§9, "Shared
// monotonic counters").
type generator struct {
	instrs   []Instruction
	tempNum  int
	labelNum int
}

// Generate walks prog and returns the lowered instruction list. It never
// fails: the semantic analyzer is the last stage that rejects input, and a
// Program that reached this point is assumed well-formed.
func Generate(prog *ast.Program) ([]Instruction, error) {
	g := &generator{}
	g.emit(INCLUDE, "iostream")
	g.emit(INCLUDE, "string")
	g.emit(MAIN_BEGIN)
	for _, stmt := range prog.Statements {
		g.lowerStatement(stmt)
	}
	g.emit(MAIN_END)
	return g.instrs, nil
}

func (g *generator) emit(op OpCode, operands ...string) {
	g.instrs = append(g.instrs, New(op, operands...))
}

func (g *generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempNum)
	g.tempNum++
	return t
}

func (g *generator) newLabel(prefix string) string {
	l := fmt.Sprintf("%s%d", prefix, g.labelNum)
	g.labelNum++
	return l
}

// declTypeName renders a DeclType as the C-style type keyword DECLARE and
// DECLARE_INIT carry as their first operand.
func declTypeName(t ast.DeclType) string {
	switch t {
	case ast.FloatType:
		return "float"
	case ast.CharType:
		return "char"
	default:
		return "int"
	}
}

func (g *generator) lowerStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		g.lowerVarDecl(s)
	case *ast.Input:
		g.emit(INPUT, s.Name)
	case *ast.Output:
		place := g.lowerExpression(s.Expr)
		g.emit(OUTPUT, place)
	case *ast.ExprStmt:
		if s.Expr != nil {
			g.lowerExpression(s.Expr)
		}
	case *ast.If:
		g.lowerIf(s)
	case *ast.While:
		g.lowerWhile(s)
	case *ast.For:
		g.lowerFor(s)
	case *ast.Block:
		g.emit(SCOPE_BEGIN)
		for _, inner := range s.Statements {
			g.lowerStatement(inner)
		}
		g.emit(SCOPE_END)
	}
}

func (g *generator) lowerVarDecl(vd *ast.VarDecl) {
	typ := declTypeName(vd.Type)
	if vd.Init == nil {
		g.emit(DECLARE, typ, vd.Name)
		return
	}
	place := g.lowerExpression(vd.Init)
	g.emit(DECLARE_INIT, typ, vd.Name, place)
}

func (g *generator) lowerIf(i *ast.If) {
	cond := g.lowerExpression(i.Condition)
	elseLabel := g.newLabel("else")
	endLabel := g.newLabel("end")
	g.emit(JUMP_IF_FALSE, cond, elseLabel)
	g.lowerStatement(i.Consequence)
	g.emit(JUMP, endLabel)
	g.emit(LABEL, elseLabel)
	if i.Alternative != nil {
		g.lowerStatement(i.Alternative)
	}
	g.emit(LABEL, endLabel)
}

func (g *generator) lowerWhile(w *ast.While) {
	topLabel := g.newLabel("top")
	endLabel := g.newLabel("end")
	g.emit(LABEL, topLabel)
	cond := g.lowerExpression(w.Condition)
	g.emit(JUMP_IF_FALSE, cond, endLabel)
	g.lowerStatement(w.Body)
	g.emit(JUMP, topLabel)
	g.emit(LABEL, endLabel)
}

// lowerFor renders the for-loop header as three literal C++ fragments
// built from the actual AST fields, per §9 Open Question 2: the source
// AkbarLang compiler this is modeled on hard-codes these fragments
// regardless of the real loop header, which is a bug. This implementation
// deliberately does not preserve that bug.
func (g *generator) lowerFor(f *ast.For) {
	initFrag := renderInit(f.Init)
	condFrag := renderExprSource(f.Condition)
	incrFrag := renderExprSource(f.Increment)
	g.emit(FOR_LOOP_START, initFrag, condFrag, incrFrag)
	// A block body is lowered statement by statement: FOR_LOOP_START
	// already opens the C++ scope, so no extra SCOPE_BEGIN/SCOPE_END.
	if body, ok := f.Body.(*ast.Block); ok {
		for _, inner := range body.Statements {
			g.lowerStatement(inner)
		}
	} else {
		g.lowerStatement(f.Body)
	}
	g.emit(FOR_LOOP_END)
}

// renderInit produces the C++ text for a for-loop's init clause, which is
// grammatically either a VarDecl or an expression statement.
func renderInit(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		out := declTypeName(s.Type) + " " + s.Name
		if s.Init != nil {
			out += " = " + renderExprSource(s.Init)
		}
		return out
	case *ast.ExprStmt:
		if s.Expr != nil {
			return renderExprSource(s.Expr)
		}
		return ""
	default:
		return ""
	}
}

// renderExprSource renders expr as a C++ source fragment, reusing the
// same operator spellings the emitter's instruction table uses.
func renderExprSource(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return renderLiteral(e)
	case *ast.VarRef:
		return e.Name
	case *ast.Assign:
		return e.Target + " = " + renderExprSource(e.Value)
	case *ast.Unary:
		return "(-" + renderExprSource(e.Operand) + ")"
	case *ast.Binary:
		return "(" + renderExprSource(e.Left) + " " + cppOperator(e.Operator) + " " + renderExprSource(e.Right) + ")"
	default:
		return ""
	}
}

func cppOperator(op string) string {
	switch op {
	case "va":
		return "&&"
	case "ya":
		return "||"
	default:
		return op
	}
}

func renderLiteral(lit *ast.Literal) string {
	switch lit.Kind {
	case ast.StringLiteral:
		return strconv.Quote(lit.StrValue)
	case ast.CharLiteral:
		return "'" + string(lit.CharValue) + "'"
	default:
		return lit.Token.Literal
	}
}

// lowerExpression lowers expr, returning its place: the name of a variable,
// a fresh temporary, or a literal operand string (§4.4).
func (g *generator) lowerExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return g.lowerLiteral(e)
	case *ast.VarRef:
		return e.Name
	case *ast.Assign:
		return g.lowerAssign(e)
	case *ast.Binary:
		return g.lowerBinary(e)
	case *ast.Unary:
		return g.lowerUnary(e)
	default:
		return ""
	}
}

func (g *generator) lowerLiteral(lit *ast.Literal) string {
	dest := g.newTemp()
	g.emit(LOAD, dest, renderLiteral(lit))
	return dest
}

func (g *generator) lowerAssign(as *ast.Assign) string {
	value := g.lowerExpression(as.Value)
	g.emit(ASSIGN, as.Target, value)
	return as.Target
}

var binaryOpcodes = map[string]OpCode{
	"+": ADD, "-": SUB, "*": MUL, "/": DIV,
	"==": EQ, "!=": NEQ, "<": LT, ">": GT, "<=": LE, ">=": GE,
	"va": AND, "ya": OR,
}

func (g *generator) lowerBinary(b *ast.Binary) string {
	left := g.lowerExpression(b.Left)
	right := g.lowerExpression(b.Right)
	dest := g.newTemp()
	g.emit(binaryOpcodes[b.Operator], dest, left, right)
	return dest
}

func (g *generator) lowerUnary(u *ast.Unary) string {
	operand := g.lowerExpression(u.Operand)
	dest := g.newTemp()
	g.emit(NEG, dest, operand)
	return dest
}
