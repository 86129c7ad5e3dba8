package lexer

import (
	"testing"

	"github.com/forgelang/forge/internal/token"
)

func TestTokenizeLiteralsAndWords(t *testing.T) {
	toks, err := Tokenize(`1 2 add print`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.Int, token.Int, token.Word, token.Word, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeFloatRequiresDecimalPoint(t *testing.T) {
	toks, err := Tokenize(`3 3.5 -4 -4.0`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKinds := []token.Kind{token.Int, token.Float, token.Int, token.Float, token.EOF}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := Tokenize(`"hello world" print`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.String || toks[0].Literal != "hello world" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeStripsComments(t *testing.T) {
	toks, err := Tokenize("1 # this is a comment\n2 add")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 { // 1, 2, add, EOF
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"never closes`)
	if err == nil {
		t.Fatal("expected an error")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Pos.Line != 1 {
		t.Fatalf("got line %d, want 1", lexErr.Pos.Line)
	}
}

func TestTokenizeUnicodeColumns(t *testing.T) {
	toks, err := Tokenize(`"Δ" store`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Literal != "Δ" {
		t.Fatalf("got %q", toks[0].Literal)
	}
	// "store" begins after the 3-rune string token + space, regardless of
	// Δ's multi-byte encoding.
	if toks[1].Pos.Column != 5 {
		t.Fatalf("got column %d, want 5", toks[1].Pos.Column)
	}
}
