package vm

import (
	"fmt"

	"github.com/forgelang/forge/internal/token"
)

// ErrorKind classifies a RuntimeError for CLI exit-code mapping and REPL
// diagnostics.
type ErrorKind int

const (
	ErrStack ErrorKind = iota
	ErrType
	ErrName
	ErrArithmetic
	ErrIndex
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrStack:
		return "StackError"
	case ErrType:
		return "TypeError"
	case ErrName:
		return "NameError"
	case ErrArithmetic:
		return "ArithmeticError"
	case ErrIndex:
		return "IndexError"
	case ErrIO:
		return "IOError"
	default:
		return "Error"
	}
}

// RuntimeError is a failure raised while dispatching a word: an ErrorKind
// tag for exit-code mapping plus the offending token's source position for
// REPL and file diagnostics.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Pos     token.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

func (vm *VM) errAt(pos token.Position, kind ErrorKind, format string, args ...interface{}) error {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (vm *VM) stackError(format string, args ...interface{}) error {
	return vm.errAt(vm.curPos(), ErrStack, format, args...)
}

func (vm *VM) typeError(context, expected, actual string) error {
	return vm.errAt(vm.curPos(), ErrType, "%s expects %s but got %s", context, expected, actual)
}

func (vm *VM) nameError(format string, args ...interface{}) error {
	return vm.errAt(vm.curPos(), ErrName, format, args...)
}

func (vm *VM) arithError(format string, args ...interface{}) error {
	return vm.errAt(vm.curPos(), ErrArithmetic, format, args...)
}

func (vm *VM) indexError(format string, args ...interface{}) error {
	return vm.errAt(vm.curPos(), ErrIndex, format, args...)
}

func (vm *VM) ioError(format string, args ...interface{}) error {
	return vm.errAt(vm.curPos(), ErrIO, format, args...)
}

// ExitCode maps an error's kind to a process exit code for file-mode runs.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	rerr, ok := err.(*RuntimeError)
	if !ok {
		return 1
	}
	switch rerr.Kind {
	case ErrStack:
		return 2
	case ErrType:
		return 3
	case ErrName:
		return 4
	case ErrArithmetic:
		return 5
	case ErrIndex:
		return 6
	case ErrIO:
		return 7
	default:
		return 1
	}
}
