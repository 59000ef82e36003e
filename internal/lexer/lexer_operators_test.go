package lexer

import (
	"testing"

	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

func TestOperatorsAndPunctuation(t *testing.T) {
	input := `( ) { } ; , + - * / = == < <= > >= !=`

	expected := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMICOLON,
		token.COMMA, token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.ASSIGN, token.EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ, token.NOT_EQ,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %s, got %s", i, want, tok.Type)
		}
	}
}

// A lone '!' with no trailing '=' has no meaning of its own and lexes to
// an unknown token rather than failing, per the language's deliberate lack
// of a logical-not operator.
func TestLoneBangIsAnUnknownToken(t *testing.T) {
	l := New("!")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error for a lone '!': %v", err)
	}
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected token.ILLEGAL, got %s", tok.Type)
	}
	if tok.Literal != "!" {
		t.Fatalf("expected literal %q, got %q", "!", tok.Literal)
	}
}

func TestKeywordLongestPrefixResolution(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"va", token.VA},
		{"vali", token.VALI},
		{"vagarna", token.VAGARNA},
		{"vaghti", token.VAGHTI},
		{"ya", token.YA},
		{"variable", token.IDENT},
		{"yek", token.IDENT},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.input, tt.want, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Fatalf("%q: expected literal %q, got %q", tt.input, tt.input, tok.Literal)
		}
	}
}
