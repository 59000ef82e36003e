// Package emitter translates an optimized IR instruction list into a
// standalone C++ translation unit (§4.6).
package emitter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Itshossein128/akbarLangCompiler/internal/ir"
)

var tempPattern = regexp.MustCompile(`^t\d+$`)

// cppType tags the inferred C++ type of a temporary.
type cppType int

const (
	typeInt cppType = iota
	typeDouble
	typeString
)

func (t cppType) String() string {
	switch t {
	case typeDouble:
		return "double"
	case typeString:
		return "std::string"
	default:
		return "int"
	}
}

// rank orders types so that a later, more specific inference (string or
// double) overrides an earlier int default when the same temporary's type
// is set more than once (§4.6 Scan).
func (t cppType) rank() int {
	switch t {
	case typeInt:
		return 0
	default:
		return 1
	}
}

// Emit runs the two-pass emission described in §4.6 and returns the
// generated C++ source text. instrs is expected to already be optimized;
// Emit is a total function over any IR satisfying §3's invariants.
func Emit(instrs []ir.Instruction) string {
	temps, vars := scan(instrs)
	return render(instrs, temps, vars)
}

// scan is the first pass: it infers a C++ type for every temporary and
// collects every program variable name, in first-seen order.
func scan(instrs []ir.Instruction) (tempOrder []string, progVars []string) {
	tempType := map[string]cppType{}
	seenTemp := map[string]bool{}
	seenVar := map[string]bool{}

	addVar := func(name string) {
		if name != "" && !seenVar[name] {
			seenVar[name] = true
			progVars = append(progVars, name)
		}
	}
	setTempType := func(name string, t cppType) {
		if !tempPattern.MatchString(name) {
			return
		}
		if !seenTemp[name] {
			seenTemp[name] = true
			tempOrder = append(tempOrder, name)
			tempType[name] = t
			return
		}
		if t.rank() > tempType[name].rank() {
			tempType[name] = t
		}
	}

	for _, instr := range instrs {
		switch instr.Op {
		case ir.LOAD:
			dest, lit := instr.Operands[0], instr.Operands[1]
			setTempType(dest, inferLiteralType(lit))
		case ir.DECLARE:
			addVar(instr.Operands[1])
		case ir.DECLARE_INIT:
			addVar(instr.Operands[1])
		case ir.INPUT:
			addVar(instr.Operands[0])
		}
		if instr.Op.IsArithmetic() || instr.Op.IsComparison() || instr.Op.IsLogical() || instr.Op == ir.NEG {
			dest := instr.Operands[0]
			setTempType(dest, typeInt)
		}
	}

	return tempOrder, progVars
}

func inferLiteralType(lit string) cppType {
	if strings.HasPrefix(lit, "\"") {
		return typeString
	}
	if strings.Contains(lit, ".") {
		return typeDouble
	}
	return typeInt
}

// render is the second pass: it emits the fixed preamble, the declaration
// block, and a translated line per instruction.
func render(instrs []ir.Instruction, tempOrder, progVars []string) string {
	tempType := map[string]cppType{}
	for _, instr := range instrs {
		if instr.Op == ir.LOAD {
			dest := instr.Operands[0]
			if tempPattern.MatchString(dest) {
				t := inferLiteralType(instr.Operands[1])
				if cur, ok := tempType[dest]; !ok || t.rank() > cur.rank() {
					tempType[dest] = t
				}
			}
		}
		if instr.Op.IsArithmetic() || instr.Op.IsComparison() || instr.Op.IsLogical() || instr.Op == ir.NEG {
			dest := instr.Operands[0]
			if _, ok := tempType[dest]; !ok {
				tempType[dest] = typeInt
			}
		}
	}

	var out strings.Builder
	out.WriteString("#include <iostream>\n")
	out.WriteString("#include <string>\n\n")
	out.WriteString("int main() {\n")

	// Every program variable is declared int: the type operand of DECLARE
	// and DECLARE_INIT is not consulted, so float and char variables are
	// emitted as int too.
	for _, v := range progVars {
		out.WriteString("  int " + v + ";\n")
	}
	for _, t := range tempOrder {
		out.WriteString("  " + tempType[t].String() + " " + t + ";\n")
	}
	out.WriteString("\n")

	indent := 1
	for _, instr := range instrs {
		line, delta := translate(instr)
		if instr.Op == ir.SCOPE_END || instr.Op == ir.FOR_LOOP_END {
			indent += delta
		}
		if line != "" {
			out.WriteString(strings.Repeat("  ", indent))
			out.WriteString(line)
			out.WriteString("\n")
		}
		if instr.Op == ir.SCOPE_BEGIN || instr.Op == ir.FOR_LOOP_START {
			indent += delta
		}
	}

	out.WriteString("  return 0;\n")
	out.WriteString("}\n")
	return out.String()
}

// translate renders a single instruction's C++ line per the table in
// §4.6, along with the indent delta it causes (+1 on open, -1 on close, 0
// otherwise). INCLUDE, MAIN_BEGIN and MAIN_END are skipped: the preamble
// is fixed and does not consult them.
func translate(instr ir.Instruction) (line string, indentDelta int) {
	ops := instr.Operands
	switch instr.Op {
	case ir.INCLUDE, ir.MAIN_BEGIN, ir.MAIN_END:
		return "", 0
	case ir.DECLARE:
		return "", 0
	case ir.DECLARE_INIT:
		return ops[1] + " = " + ops[2] + ";", 0
	case ir.ASSIGN:
		return ops[0] + " = " + ops[1] + ";", 0
	case ir.LOAD:
		return ops[0] + " = " + ops[1] + ";", 0
	case ir.ADD:
		return ops[0] + " = " + ops[1] + " + " + ops[2] + ";", 0
	case ir.SUB:
		return ops[0] + " = " + ops[1] + " - " + ops[2] + ";", 0
	case ir.MUL:
		return ops[0] + " = " + ops[1] + " * " + ops[2] + ";", 0
	case ir.DIV:
		return ops[0] + " = " + ops[1] + " / " + ops[2] + ";", 0
	case ir.EQ:
		return ops[0] + " = (" + ops[1] + " == " + ops[2] + ");", 0
	case ir.NEQ:
		return ops[0] + " = (" + ops[1] + " != " + ops[2] + ");", 0
	case ir.LT:
		return ops[0] + " = (" + ops[1] + " < " + ops[2] + ");", 0
	case ir.GT:
		return ops[0] + " = (" + ops[1] + " > " + ops[2] + ");", 0
	case ir.LE:
		return ops[0] + " = (" + ops[1] + " <= " + ops[2] + ");", 0
	case ir.GE:
		return ops[0] + " = (" + ops[1] + " >= " + ops[2] + ");", 0
	case ir.AND:
		return ops[0] + " = (" + ops[1] + " && " + ops[2] + ");", 0
	case ir.OR:
		return ops[0] + " = (" + ops[1] + " || " + ops[2] + ");", 0
	case ir.NEG:
		return ops[0] + " = -" + ops[1] + ";", 0
	case ir.INPUT:
		return "std::cin >> " + ops[0] + ";", 0
	case ir.OUTPUT:
		return "std::cout << " + ops[0] + " << std::endl;", 0
	case ir.LABEL:
		return ops[0] + ":", 0
	case ir.JUMP:
		return "goto " + ops[0] + ";", 0
	case ir.JUMP_IF_FALSE:
		return "if (!(" + ops[0] + ")) goto " + ops[1] + ";", 0
	case ir.SCOPE_BEGIN:
		return "{", 1
	case ir.SCOPE_END:
		return "}", -1
	case ir.FOR_LOOP_START:
		return fmt.Sprintf("for (%s; %s; %s) {", ops[0], ops[1], ops[2]), 1
	case ir.FOR_LOOP_END:
		return "}", -1
	default:
		return "// unknown opcode " + instr.Op.String(), 0
	}
}
