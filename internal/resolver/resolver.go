// Package resolver performs the single forward pass over the token stream
// that pairs each control-flow opener (if/while/for/times/def) with its
// matching else (if any) and end. The evaluator consults the resulting
// jump table to move its program counter in O(1) per opener instead of
// re-scanning the token stream on every branch.
package resolver

import (
	"fmt"

	"github.com/forgelang/forge/internal/token"
)

// JumpEntry records where execution continues from a block opener: Else is
// 0 when the block (an if without an else) has none.
type JumpEntry struct {
	Else int
	End  int
}

// ProcRange is the token-index span of a procedure body, exclusive of the
// `def NAME` opener and the closing `end`.
type ProcRange struct {
	Start int
	End   int
}

// Program is the resolved form of a token stream: the tokens themselves
// plus the jump table and procedure table the evaluator dispatches through.
type Program struct {
	Tokens     []token.Token
	Jumps      map[int]JumpEntry
	Procedures map[string]ProcRange

	// Owners maps an else-token-index or end-token-index back to its
	// opener's token index, the reverse of Jumps. The evaluator needs this
	// at dispatch time, when the PC naturally lands on an else or end token
	// and must find its way back to the construct that opened it.
	Owners map[int]int
}

// ResolveError reports a structural error in the block nesting.
type ResolveError struct {
	Pos     token.Position
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve error at %s: %s", e.Pos, e.Message)
}

type frameKind int

const (
	frameIf frameKind = iota
	frameWhile
	frameFor
	frameTimes
	frameDef
)

type frame struct {
	kind  frameKind
	index int // token index of the opener
	name  string
	elseI int
}

// Resolve scans tokens once, building the jump table and procedure table.
// tokens must end with an EOF token (as produced by lexer.Tokenize).
func Resolve(tokens []token.Token) (*Program, error) {
	p := &Program{
		Tokens:     tokens,
		Jumps:      make(map[int]JumpEntry),
		Procedures: make(map[string]ProcRange),
		Owners:     make(map[int]int),
	}

	var stack []frame

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != token.Word {
			continue
		}
		switch tok.Literal {
		case token.KwIf:
			stack = append(stack, frame{kind: frameIf, index: i})
		case token.KwWhile:
			stack = append(stack, frame{kind: frameWhile, index: i})
		case token.KwFor:
			stack = append(stack, frame{kind: frameFor, index: i})
		case token.KwTimes:
			stack = append(stack, frame{kind: frameTimes, index: i})
		case token.KwDef:
			if i+1 >= len(tokens) || tokens[i+1].Kind != token.Word || token.IsOpener(tokens[i+1].Literal) || tokens[i+1].Literal == token.KwEnd || tokens[i+1].Literal == token.KwElse {
				return nil, &ResolveError{Pos: tok.Pos, Message: "def must be followed by a procedure name"}
			}
			name := tokens[i+1].Literal
			stack = append(stack, frame{kind: frameDef, index: i, name: name})
			i++ // consume the name token; it is not itself dispatched
		case token.KwElse:
			if len(stack) == 0 || stack[len(stack)-1].kind != frameIf {
				return nil, &ResolveError{Pos: tok.Pos, Message: "stray else with no open if"}
			}
			stack[len(stack)-1].elseI = i
			p.Owners[i] = stack[len(stack)-1].index
		case token.KwEnd:
			if len(stack) == 0 {
				return nil, &ResolveError{Pos: tok.Pos, Message: "stray end with no open block"}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p.Jumps[top.index] = JumpEntry{Else: top.elseI, End: i}
			p.Owners[i] = top.index
			if top.kind == frameDef {
				p.Procedures[top.name] = ProcRange{Start: top.index + 2, End: i - 1}
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &ResolveError{Pos: tokens[top.index].Pos, Message: "unexpected end of input: unclosed block"}
	}

	return p, nil
}
