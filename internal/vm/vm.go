// Package vm implements Forge's stack-VM evaluator: the PC-driven dispatch
// loop over a flat, resolved token stream, the built-in word library, and
// the runtime error model.
//
// A VM owns an operand stack, a flat variable store, and a builtins map
// dispatched by word name. There is no compile step and no lexical
// scoping: procedures are index ranges into the token stream, and a call
// frame is nothing more than a saved return program counter.
package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/forgelang/forge/internal/lexer"
	"github.com/forgelang/forge/internal/resolver"
	"github.com/forgelang/forge/internal/token"
	"github.com/forgelang/forge/internal/value"
)

// BuiltinWord implements one built-in word. It pops its own operands from
// and pushes its own results onto the VM's stack; each word has its own
// fixed or count-driven stack effect, so there is no uniform arity to
// pre-pop on its behalf.
type BuiltinWord func(vm *VM) error

type loopKind int

const (
	loopWhile loopKind = iota
	loopFor
	loopTimes
)

type loopFrame struct {
	kind      loopKind
	openerIdx int
	hi        int64
	cur       int64
	remaining int64
}

// VM is one isolated Forge evaluator: its own stack, variable store, call
// stack, and loop-frame stack. Two VMs share no state.
type VM struct {
	history []token.Token
	program *resolver.Program
	pc      int
	curTok  token.Token

	stack []value.Value
	vars  map[string]value.Value

	callStack []int
	loops     []loopFrame

	builtins map[string]BuiltinWord

	Out io.Writer
	In  *bufio.Reader

	halted bool
}

// New creates a VM wired to stdout/stdin by default; use WithOutput/
// WithInput to redirect.
func New(opts ...Option) *VM {
	vm := &VM{
		vars:     make(map[string]value.Value),
		builtins: make(map[string]BuiltinWord),
		Out:      os.Stdout,
		In:       bufio.NewReader(os.Stdin),
	}
	vm.registerBuiltins()
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Option configures a VM at construction time.
type Option func(*VM)

func WithOutput(w io.Writer) Option {
	return func(vm *VM) { vm.Out = w }
}

func WithInput(r io.Reader) Option {
	return func(vm *VM) { vm.In = bufio.NewReader(r) }
}

// WithInputReader installs an already-buffered reader directly, so a caller
// that needs to read lines from the same stream itself (the REPL prompt
// loop) can share one buffer with the VM's `input` word instead of each
// wrapping the underlying stream separately.
func WithInputReader(r *bufio.Reader) Option {
	return func(vm *VM) { vm.In = r }
}

func (vm *VM) curPos() token.Position {
	return vm.curTok.Pos
}

// StackHeight reports the current operand stack depth, used by the REPL
// to decide whether evaluating a line implicitly produced a new result.
func (vm *VM) StackHeight() int { return len(vm.stack) }

// Top returns the top-of-stack value, for the REPL's implicit-print
// behavior.
func (vm *VM) Top() (value.Value, bool) {
	if len(vm.stack) == 0 {
		return value.None(), false
	}
	return vm.stack[len(vm.stack)-1], true
}

// Run appends src's tokens to the VM's accumulated token history,
// re-resolves the whole stream, and evaluates only the new tokens. Keeping
// every token ever evaluated is what lets a procedure defined on one REPL
// line stay callable from a later one: procedure bodies are index ranges
// into the history, and the jump table covers old and new tokens alike.
// The stack and variable store persist across calls as well.
func (vm *VM) Run(src string) error {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	// Strip the trailing EOF so histories concatenate cleanly.
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}

	start := len(vm.history)
	combined := make([]token.Token, 0, start+len(toks))
	combined = append(combined, vm.history...)
	combined = append(combined, toks...)

	prog, err := resolver.Resolve(combined)
	if err != nil {
		return err
	}

	vm.history = combined
	vm.program = prog
	vm.pc = start
	vm.callStack = vm.callStack[:0]
	vm.loops = vm.loops[:0]
	vm.halted = false
	return vm.exec()
}

// Halted reports whether the last Run was stopped by the exit word.
func (vm *VM) Halted() bool { return vm.halted }
