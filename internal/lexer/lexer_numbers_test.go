package lexer

import (
	"testing"

	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

func TestIntegerLiterals(t *testing.T) {
	l := New("123 0 7")

	tests := []struct {
		literal string
		value   int64
	}{
		{"123", 123},
		{"0", 0},
		{"7", 7},
	}

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != token.INT {
			t.Fatalf("tests[%d] - type wrong. got=%s", i, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
		if tok.IntValue != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%d, got=%d", i, tt.value, tok.IntValue)
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	l := New("3.14 0.5 10.0")

	tests := []struct {
		literal string
		value   float64
	}{
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"10.0", 10.0},
	}

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != token.FLOAT {
			t.Fatalf("tests[%d] - type wrong. got=%s", i, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
		if tok.FloatVal != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v", i, tt.value, tok.FloatVal)
		}
	}
}

// A dot not followed by a digit does not extend the number into a float:
// '3.' lexes as INT "3" followed by an unrecognised '.' character error.
func TestDotWithoutTrailingDigitStaysInteger(t *testing.T) {
	l := New("3.x")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.INT || tok.Literal != "3" {
		t.Fatalf("expected INT 3, got %s %q", tok.Type, tok.Literal)
	}

	_, err = l.NextToken()
	if err == nil {
		t.Fatalf("expected a lexical error for the bare '.'")
	}
}
