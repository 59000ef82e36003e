package parser

import (
	"testing"

	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
)

func exprOf(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog := parseProgram(t, src)
	es, ok := prog.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", prog.Statements[0])
	}
	return es.Expr
}

func TestPrecedenceMultiplicationBeforeAddition(t *testing.T) {
	expr := exprOf(t, "2 + 3 * 4;")
	b, ok := expr.(*ast.Binary)
	if !ok || b.Operator != "+" {
		t.Fatalf("expected top-level '+', got %#v", expr)
	}
	right, ok := b.Right.(*ast.Binary)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected right operand to be '*', got %#v", b.Right)
	}
}

func TestLeftAssociativity(t *testing.T) {
	expr := exprOf(t, "10 - 3 - 2;")
	b, ok := expr.(*ast.Binary)
	if !ok || b.Operator != "-" {
		t.Fatalf("expected top-level '-', got %#v", expr)
	}
	left, ok := b.Left.(*ast.Binary)
	if !ok || left.Operator != "-" {
		t.Fatalf("expected left-associative nesting, got %#v", b.Left)
	}
}

func TestAssignmentRequiresLookaheadOnIdentifier(t *testing.T) {
	expr := exprOf(t, "x = 1;")
	if _, ok := expr.(*ast.Assign); !ok {
		t.Fatalf("expected *ast.Assign, got %#v", expr)
	}
}

func TestUnaryMinus(t *testing.T) {
	expr := exprOf(t, "-x;")
	if _, ok := expr.(*ast.Unary); !ok {
		t.Fatalf("expected *ast.Unary, got %#v", expr)
	}
}

func TestParenthesizedExpression(t *testing.T) {
	expr := exprOf(t, "(1 + 2) * 3;")
	b := expr.(*ast.Binary)
	if b.Operator != "*" {
		t.Fatalf("expected top-level '*', got %#v", expr)
	}
	if _, ok := b.Left.(*ast.Binary); !ok {
		t.Fatalf("expected parenthesized left operand, got %#v", b.Left)
	}
}

func TestLogicalOperators(t *testing.T) {
	expr := exprOf(t, "a va b;")
	b, ok := expr.(*ast.Binary)
	if !ok || b.Operator != "va" {
		t.Fatalf("expected 'va' binary, got %#v", expr)
	}
}
