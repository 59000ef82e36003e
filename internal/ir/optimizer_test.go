package ir

import "testing"

func TestConstantFoldingCollapsesArithmetic(t *testing.T) {
	// sahih x = 2 + 3 * 4; benvis(x);
	instrs := []Instruction{
		New(LOAD, "t0", "2"),
		New(LOAD, "t1", "3"),
		New(LOAD, "t2", "4"),
		New(MUL, "t3", "t1", "t2"),
		New(ADD, "t4", "t0", "t3"),
		New(DECLARE_INIT, "int", "x", "t4"),
		New(OUTPUT, "x"),
	}

	out := Optimize(instrs)

	// Folding rewrites the ADD into LOAD t4, 14; DECLARE_INIT keeps t4 as
	// its value operand.
	loads := map[string]string{}
	foundDeclare := false
	for _, instr := range out {
		if instr.Op == LOAD {
			loads[instr.Operands[0]] = instr.Operands[1]
		}
		if instr.Op == DECLARE_INIT {
			foundDeclare = true
			if loads[instr.Operands[2]] != "14" {
				t.Fatalf("expected folded value 14 loaded into %q, got %q", instr.Operands[2], loads[instr.Operands[2]])
			}
		}
		if instr.Op == MUL || instr.Op == ADD {
			t.Fatalf("expected arithmetic to be folded away, found %v", instr.Op)
		}
	}
	if !foundDeclare {
		t.Fatal("expected a DECLARE_INIT instruction to survive")
	}
}

func TestDeadDeclareIsRemoved(t *testing.T) {
	instrs := []Instruction{
		New(DECLARE, "int", "unused"),
		New(DECLARE_INIT, "int", "x", "1"),
		New(OUTPUT, "x"),
	}
	out := Optimize(instrs)
	for _, instr := range out {
		if instr.Op == DECLARE && instr.Operands[1] == "unused" {
			t.Fatal("expected unused DECLARE to be removed")
		}
	}
}

func TestUnreachableCodeAfterJumpIsRemoved(t *testing.T) {
	instrs := []Instruction{
		New(JUMP, "end"),
		New(OUTPUT, "\"unreachable\""),
		New(LABEL, "end"),
	}
	out := Optimize(instrs)
	for _, instr := range out {
		if instr.Op == OUTPUT {
			t.Fatal("expected unreachable OUTPUT to be removed")
		}
	}
}

func TestUnreferencedLabelIsDropped(t *testing.T) {
	instrs := []Instruction{
		New(OUTPUT, "\"x\""),
		New(LABEL, "never_jumped_to"),
	}
	out := Optimize(instrs)
	for _, instr := range out {
		if instr.Op == LABEL {
			t.Fatal("expected unreferenced LABEL to be dropped")
		}
	}
}

func TestJumpToImmediatelyFollowingLabelIsDropped(t *testing.T) {
	instrs := []Instruction{
		New(JUMP, "next"),
		New(LABEL, "next"),
		New(OUTPUT, "\"x\""),
	}
	out := Optimize(instrs)
	for _, instr := range out {
		if instr.Op == JUMP {
			t.Fatal("expected JUMP-to-next-label to be dropped")
		}
	}
}

func TestOptimizationIsIdempotent(t *testing.T) {
	instrs := []Instruction{
		New(LOAD, "t0", "1"),
		New(LOAD, "t1", "2"),
		New(ADD, "t2", "t0", "t1"),
		New(DECLARE_INIT, "int", "x", "t2"),
		New(OUTPUT, "x"),
	}
	once := Optimize(instrs)
	twice := Optimize(once)

	if len(once) != len(twice) {
		t.Fatalf("expected idempotence, got %d then %d instructions", len(once), len(twice))
	}
	for i := range once {
		if once[i].Op != twice[i].Op {
			t.Fatalf("instruction %d opcode diverged: %v vs %v", i, once[i].Op, twice[i].Op)
		}
	}
}
