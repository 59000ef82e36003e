package ir

import (
	"strconv"
	"strings"
)

// Optimize runs the three conservative passes described in §4.5 in order,
// each producing a fresh instruction slice rather than mutating in place.
// The passes never change the observable behavior of valid input and are
// idempotent: Optimize(Optimize(r)) == Optimize(r).
func Optimize(instrs []Instruction) []Instruction {
	instrs = foldConstants(instrs)
	instrs = removeDeadCode(instrs)
	instrs = simplifyControlFlow(instrs)
	return instrs
}

// knownValue is a compile-time-known scalar discovered during constant
// folding, kept as its literal C++ source text alongside a numeric view
// used for evaluating arithmetic and comparisons.
type knownValue struct {
	text     string
	num      float64
	isNum    bool
	isString bool
}

func literalValue(text string) knownValue {
	if strings.HasPrefix(text, "\"") {
		return knownValue{text: text, isString: true}
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return knownValue{text: text, num: n, isNum: true}
	}
	return knownValue{text: text}
}

// foldConstants implements Pass 1: arithmetic, comparison and NEG
// instructions whose operands are literals or names already known at
// compile time are replaced by a LOAD of the folded result. The known-value
// map is cleared at every LABEL, FOR_LOOP_START and FOR_LOOP_END, so no
// value is carried across a point where control flow can arrive from
// elsewhere.
func foldConstants(instrs []Instruction) []Instruction {
	known := map[string]knownValue{}
	out := make([]Instruction, 0, len(instrs))

	resolve := func(operand string) (knownValue, bool) {
		if kv, ok := known[operand]; ok {
			return kv, true
		}
		if operand == "" {
			return knownValue{}, false
		}
		if operand[0] == '"' || operand[0] == '\'' || isNumericLiteralText(operand) {
			return literalValue(operand), true
		}
		return knownValue{}, false
	}

	for _, instr := range instrs {
		switch {
		case instr.Op == LABEL || instr.Op == FOR_LOOP_START || instr.Op == FOR_LOOP_END:
			known = map[string]knownValue{}
			out = append(out, instr)

		case instr.Op == LOAD:
			dest, lit := instr.Operands[0], instr.Operands[1]
			known[dest] = literalValue(lit)
			out = append(out, instr)

		case instr.Op == ASSIGN:
			name, value := instr.Operands[0], instr.Operands[1]
			if kv, ok := resolve(value); ok {
				known[name] = kv
			} else {
				delete(known, name)
			}
			out = append(out, instr)

		case instr.Op.IsArithmetic() || instr.Op.IsComparison():
			dest, left, right := instr.Operands[0], instr.Operands[1], instr.Operands[2]
			lv, lok := resolve(left)
			rv, rok := resolve(right)
			if lok && rok && lv.isNum && rv.isNum {
				if folded, ok := evalBinary(instr.Op, lv.num, rv.num); ok {
					known[dest] = literalValue(folded)
					out = append(out, New(LOAD, dest, folded))
					continue
				}
			}
			delete(known, dest)
			out = append(out, instr)

		case instr.Op == NEG:
			dest, operand := instr.Operands[0], instr.Operands[1]
			if ov, ok := resolve(operand); ok && ov.isNum {
				folded := formatNumber(-ov.num, operand)
				known[dest] = literalValue(folded)
				out = append(out, New(LOAD, dest, folded))
				continue
			}
			delete(known, dest)
			out = append(out, instr)

		default:
			if len(instr.Operands) > 0 {
				delete(known, instr.Operands[0])
			}
			out = append(out, instr)
		}
	}
	return out
}

func isNumericLiteralText(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// formatNumber renders a folded numeric result, preferring an integer
// spelling unless the source operand text was itself floating-point.
func formatNumber(v float64, sourceText string) string {
	if strings.Contains(sourceText, ".") || v != float64(int64(v)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v), 10)
}

// evalBinary folds one arithmetic or comparison opcode over two known
// numeric operands. Comparisons yield 1 for true, 0 for false (§4.5).
// Division by a known-zero divisor is not special-cased: Go's float
// division of a finite value by zero yields +/-Inf or NaN, and that text
// is passed straight through, matching the source behavior.
func evalBinary(op OpCode, l, r float64) (string, bool) {
	switch op {
	case ADD:
		return formatNumber(l+r, mixedText(l, r)), true
	case SUB:
		return formatNumber(l-r, mixedText(l, r)), true
	case MUL:
		return formatNumber(l*r, mixedText(l, r)), true
	case DIV:
		return strconv.FormatFloat(l/r, 'g', -1, 64), true
	case EQ:
		return boolLiteral(l == r), true
	case NEQ:
		return boolLiteral(l != r), true
	case LT:
		return boolLiteral(l < r), true
	case GT:
		return boolLiteral(l > r), true
	case LE:
		return boolLiteral(l <= r), true
	case GE:
		return boolLiteral(l >= r), true
	default:
		return "", false
	}
}

func boolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// mixedText reports whether either operand looks floating-point, so ADD/
// SUB/MUL can decide between an integer or floating-point spelling for
// their folded result.
func mixedText(l, r float64) string {
	if l != float64(int64(l)) || r != float64(int64(r)) {
		return "."
	}
	return ""
}

// removeDeadCode implements Pass 2: drop DECLAREs for names never used,
// and drop unreachable non-LABEL instructions.
func removeDeadCode(instrs []Instruction) []Instruction {
	usedNames := map[string]bool{}
	usedLabels := map[string]bool{}

	for _, instr := range instrs {
		switch instr.Op {
		case OUTPUT:
			usedNames[instr.Operands[0]] = true
		case ASSIGN:
			usedNames[instr.Operands[1]] = true
		case JUMP:
			usedLabels[instr.Operands[0]] = true
		case JUMP_IF_FALSE:
			usedLabels[instr.Operands[1]] = true
		}
	}

	out := make([]Instruction, 0, len(instrs))
	reachable := true
	for _, instr := range instrs {
		if instr.Op == LABEL {
			if usedLabels[instr.Operands[0]] {
				reachable = true
			}
			out = append(out, instr)
			continue
		}
		if !reachable {
			continue
		}
		if instr.Op == DECLARE && !usedNames[instr.Operands[1]] {
			continue
		}
		out = append(out, instr)
		if instr.Op == JUMP {
			reachable = false
		}
	}
	return out
}

// simplifyControlFlow implements Pass 3: drop unreferenced labels, drop a
// JUMP immediately followed by its own target LABEL, and thread one-hop
// jumps whose target label is immediately followed by another JUMP.
func simplifyControlFlow(instrs []Instruction) []Instruction {
	usedLabels := map[string]bool{}
	for _, instr := range instrs {
		switch instr.Op {
		case JUMP:
			usedLabels[instr.Operands[0]] = true
		case JUMP_IF_FALSE:
			usedLabels[instr.Operands[1]] = true
		}
	}

	// labelFollowedByJump maps a label name to the target of the
	// unconditional JUMP that immediately follows its LABEL instruction —
	// the one-hop jump-threading target.
	labelFollowedByJump := map[string]string{}
	for i := 0; i+1 < len(instrs); i++ {
		if instrs[i].Op == LABEL && instrs[i+1].Op == JUMP {
			labelFollowedByJump[instrs[i].Operands[0]] = instrs[i+1].Operands[0]
		}
	}

	threaded := make([]Instruction, len(instrs))
	copy(threaded, instrs)
	for i, instr := range threaded {
		switch instr.Op {
		case JUMP:
			if target, ok := labelFollowedByJump[instr.Operands[0]]; ok && target != instr.Operands[0] {
				threaded[i] = New(JUMP, target)
			}
		case JUMP_IF_FALSE:
			if target, ok := labelFollowedByJump[instr.Operands[1]]; ok && target != instr.Operands[1] {
				threaded[i] = New(JUMP_IF_FALSE, instr.Operands[0], target)
			}
		}
	}

	// Recompute usedLabels after threading: a thread may have retargeted
	// every reference away from some label, making it safe to drop.
	usedLabels = map[string]bool{}
	for _, instr := range threaded {
		switch instr.Op {
		case JUMP:
			usedLabels[instr.Operands[0]] = true
		case JUMP_IF_FALSE:
			usedLabels[instr.Operands[1]] = true
		}
	}

	out := make([]Instruction, 0, len(threaded))
	for i, instr := range threaded {
		if instr.Op == LABEL {
			if !usedLabels[instr.Operands[0]] {
				continue
			}
			out = append(out, instr)
			continue
		}
		if instr.Op == JUMP && i+1 < len(threaded) &&
			threaded[i+1].Op == LABEL && threaded[i+1].Operands[0] == instr.Operands[0] {
			continue
		}
		out = append(out, instr)
	}
	return out
}
