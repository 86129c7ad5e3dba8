package resolver

import (
	"testing"

	"github.com/forgelang/forge/internal/lexer"
	"github.com/forgelang/forge/internal/token"
)

func resolveSrc(t *testing.T, src string) *Program {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	p, err := Resolve(toks)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	return p
}

func TestResolveIfElseEnd(t *testing.T) {
	p := resolveSrc(t, `1 if "T" else "F" end`)
	// token indices: 0:1 1:if 2:"T" 3:else 4:"F" 5:end 6:EOF
	entry, ok := p.Jumps[1]
	if !ok {
		t.Fatal("missing jump entry for if")
	}
	if entry.Else != 3 || entry.End != 5 {
		t.Fatalf("got %+v", entry)
	}
}

func TestResolveIfWithoutElse(t *testing.T) {
	p := resolveSrc(t, `1 if "T" end`)
	entry := p.Jumps[1]
	if entry.Else != 0 {
		t.Fatalf("expected no else, got %+v", entry)
	}
	if entry.End != 3 {
		t.Fatalf("got %+v", entry)
	}
}

func TestResolveNestedBlocks(t *testing.T) {
	p := resolveSrc(t, `1 if 1 while 0 end end`)
	// 0:1 1:if 2:1 3:while 4:0 5:end 6:end 7:EOF
	if p.Jumps[3].End != 5 {
		t.Fatalf("while end: got %+v", p.Jumps[3])
	}
	if p.Jumps[1].End != 6 {
		t.Fatalf("if end: got %+v", p.Jumps[1])
	}
}

func TestResolveProcedureBody(t *testing.T) {
	p := resolveSrc(t, `def f 1 add end`)
	// 0:def 1:f 2:1 3:add 4:end 5:EOF
	rng, ok := p.Procedures["f"]
	if !ok {
		t.Fatal("expected procedure f")
	}
	if rng.Start != 2 || rng.End != 3 {
		t.Fatalf("got %+v", rng)
	}
}

func TestResolveStrayElse(t *testing.T) {
	_, err := Resolve(tokensOf(t, `else end`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveStrayEnd(t *testing.T) {
	_, err := Resolve(tokensOf(t, `end`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveUnclosedBlock(t *testing.T) {
	_, err := Resolve(tokensOf(t, `1 if "T"`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveDefWithoutName(t *testing.T) {
	_, err := Resolve(tokensOf(t, `def end`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func tokensOf(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	return toks
}
