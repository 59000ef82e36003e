package ir

import (
	"testing"

	"github.com/Itshossein128/akbarLangCompiler/internal/lexer"
	"github.com/Itshossein128/akbarLangCompiler/internal/parser"
)

func generate(t *testing.T, src string) []Instruction {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	instrs, err := Generate(prog)
	if err != nil {
		t.Fatalf("unexpected generate error: %v", err)
	}
	return instrs
}

func TestGenerateStartsWithIncludesAndMainBegin(t *testing.T) {
	instrs := generate(t, `benvis("hi");`)
	if instrs[0].Op != INCLUDE || instrs[1].Op != INCLUDE || instrs[2].Op != MAIN_BEGIN {
		t.Fatalf("unexpected preamble: %+v", instrs[:3])
	}
	if instrs[len(instrs)-1].Op != MAIN_END {
		t.Fatalf("expected MAIN_END as last instruction, got %v", instrs[len(instrs)-1].Op)
	}
}

// destOpcodes are the opcodes whose first operand is a value-producing
// destination rather than a use of an already-defined place.
var destOpcodes = map[OpCode]bool{
	LOAD: true, ADD: true, SUB: true, MUL: true, DIV: true,
	EQ: true, NEQ: true, LT: true, GT: true, LE: true, GE: true,
	AND: true, OR: true, NEG: true,
}

func TestEveryTempOperandHasAnEarlierDestination(t *testing.T) {
	instrs := generate(t, `sahih x = 2 + 3 * 4; benvis(x);`)
	defined := map[string]bool{}
	for _, instr := range instrs {
		for i, operand := range instr.Operands {
			if !tempPatternForTest(operand) {
				continue
			}
			if i == 0 && destOpcodes[instr.Op] {
				defined[operand] = true
				continue
			}
			if !defined[operand] {
				t.Fatalf("temp %q used before being defined in %+v", operand, instr)
			}
		}
	}
}

func tempPatternForTest(s string) bool {
	if len(s) < 2 || s[0] != 't' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func TestVarDeclWithoutInitializerEmitsDeclare(t *testing.T) {
	instrs := generate(t, `sahih x;`)
	found := false
	for _, instr := range instrs {
		if instr.Op == DECLARE && instr.Operands[1] == "x" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a DECLARE instruction for x")
	}
}

func TestForLoopLowersActualHeaderFragments(t *testing.T) {
	instrs := generate(t, `baraye (sahih i = 1; i <= 5; i = i + 1) { benvis(i); }`)
	var start *Instruction
	for i := range instrs {
		if instrs[i].Op == FOR_LOOP_START {
			start = &instrs[i]
			break
		}
	}
	if start == nil {
		t.Fatal("expected a FOR_LOOP_START instruction")
	}
	if start.Operands[0] != "int i = 1" {
		t.Fatalf("expected init fragment from actual AST, got %q", start.Operands[0])
	}
	if start.Operands[1] != "(i <= 5)" {
		t.Fatalf("expected cond fragment from actual AST, got %q", start.Operands[1])
	}
}
