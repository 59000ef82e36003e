package akbarlang

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func compileOK(t *testing.T, src string) Result {
	t.Helper()
	res, errs := Compile(src, "test.akbar")
	if len(errs) != 0 {
		t.Fatalf("unexpected compile errors for %q: %v", src, errs)
	}
	return res
}

func TestHelloWorld(t *testing.T) {
	res := compileOK(t, `benvis("Hello, World!");`)
	if !strings.Contains(res.CPP, `"Hello, World!"`) {
		t.Fatalf("expected greeting literal in output, got:\n%s", res.CPP)
	}
	snaps.MatchSnapshot(t, "hello_world", res.CPP)
}

func TestArithmeticFolding(t *testing.T) {
	res := compileOK(t, `sahih x = 2 + 3 * 4; benvis(x);`)
	// The optimizer folds the arithmetic into LOAD t, 14 and DECLARE_INIT
	// keeps t as its value operand.
	loads := map[string]string{}
	found := false
	for _, instr := range res.Optimized {
		if instr.Op.String() == "LOAD" {
			loads[instr.Operands[0]] = instr.Operands[1]
		}
		if instr.Op.String() == "DECLARE_INIT" && loads[instr.Operands[2]] == "14" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected folded value 14 in optimized IR, got: %+v", res.Optimized)
	}
	snaps.MatchSnapshot(t, "arithmetic_folding", res.CPP)
}

func TestConditional(t *testing.T) {
	res := compileOK(t, `sahih a = 10; age (a > 5) { benvis("big"); } vagarna { benvis("small"); }`)
	snaps.MatchSnapshot(t, "conditional", res.CPP)
}

func TestWhileLoop(t *testing.T) {
	res := compileOK(t, `sahih n = 3; vaghti (n > 0) { benvis(n); n = n - 1; }`)
	snaps.MatchSnapshot(t, "while_loop", res.CPP)
}

func TestForLoopWithInput(t *testing.T) {
	res := compileOK(t, `sahih n; begir(n); sahih f = 1; baraye (sahih i = 1; i <= n; i = i + 1) { f = f * i; } benvis(f);`)
	snaps.MatchSnapshot(t, "for_loop_with_input", res.CPP)
}

func TestSemanticErrorBatching(t *testing.T) {
	errs := Check(`benvis(x); sahih x = 1; sahih x = 2;`, "test.akbar")
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 batched semantic errors, got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if !strings.HasPrefix(e.Error(), "semantic error at line") {
			t.Fatalf("unexpected diagnostic format: %s", e.Error())
		}
	}
}

func TestLexicalErrorStopsBeforeSemantic(t *testing.T) {
	_, errs := Compile(`sahih x = 1 @; `, "test.akbar")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 fail-fast lexical error, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs[0].Error(), "lexical error at line") {
		t.Fatalf("unexpected diagnostic format: %s", errs[0].Error())
	}
}

// A lone '!' is an unknown token, not a lexer failure, so it surfaces as a
// syntax error once the parser rejects it in place of an expected token.
func TestLoneBangSurfacesAsSyntaxError(t *testing.T) {
	_, errs := Compile(`sahih x = 1 !; `, "test.akbar")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs[0].Error(), "syntax error at line") {
		t.Fatalf("unexpected diagnostic format: %s", errs[0].Error())
	}
}
