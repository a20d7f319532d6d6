package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chalkline/loxwalk/token"
)

type wantToken struct {
	typ    token.Type
	lexeme string
	line   int
}

func TestScanTokensPunctuationAndKeywords(t *testing.T) {
	input := "var a = 1;\nif (a == 1) { print a; }"
	toks, errs := New(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}

	want := []wantToken{
		{token.VAR, "var", 1},
		{token.IDENTIFIER, "a", 1},
		{token.EQUAL, "=", 1},
		{token.NUMBER, "1", 1},
		{token.SEMICOLON, ";", 1},
		{token.IF, "if", 2},
		{token.LEFT_PAREN, "(", 2},
		{token.IDENTIFIER, "a", 2},
		{token.EQUAL_EQUAL, "==", 2},
		{token.NUMBER, "1", 2},
		{token.RIGHT_PAREN, ")", 2},
		{token.LEFT_BRACE, "{", 2},
		{token.PRINT, "print", 2},
		{token.IDENTIFIER, "a", 2},
		{token.SEMICOLON, ";", 2},
		{token.RIGHT_BRACE, "}", 2},
		{token.EOF, "", 2},
	}

	got := make([]wantToken, len(toks))
	for i, tok := range toks {
		got[i] = wantToken{tok.Type, tok.Lexeme, tok.Line}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTokensStringAndNumberLiterals(t *testing.T) {
	toks, errs := New(`"hello" 3.5 3`).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	if toks[0].Literal != "hello" {
		t.Errorf("string literal = %v, want %q", toks[0].Literal, "hello")
	}
	if toks[1].Literal != 3.5 {
		t.Errorf("number literal = %v, want 3.5", toks[1].Literal)
	}
	if toks[2].Literal != float64(3) {
		t.Errorf("number literal = %v, want 3", toks[2].Literal)
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one lex error, got %v", errs)
	}
}

func TestScanTokensLineComment(t *testing.T) {
	toks, errs := New("1 // a comment\n2").ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3 (two numbers plus EOF)", len(toks))
	}
	if toks[1].Line != 2 {
		t.Errorf("second number's line = %d, want 2", toks[1].Line)
	}
}
