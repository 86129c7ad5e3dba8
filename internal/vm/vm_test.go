package vm

import (
	"bytes"
	"strings"
	"testing"
)

func runVM(t *testing.T, src string) (string, *VM) {
	t.Helper()
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(src); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return buf.String(), machine
}

func TestArithmeticAndPrint(t *testing.T) {
	out, _ := runVM(t, `1 2 add print`)
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestIfElseFalseConditionSelectsElseBranch(t *testing.T) {
	out, _ := runVM(t, `1 2 gt if "G" else "S" end print`)
	if out != "S\n" {
		t.Fatalf("got %q", out)
	}
}

func TestTruthinessSelectsFalseBranchOnZero(t *testing.T) {
	out, _ := runVM(t, `0 if "T" else "F" end print`)
	if out != "F\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWhileLoopCounter(t *testing.T) {
	out, _ := runVM(t, `0 "c" store
		"c" load 3 lt
		while
			"c" load 1 add "c" store
			"c" load 3 lt
		end
		"c" load print`)
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForLoopSum(t *testing.T) {
	out, _ := runVM(t, `0 "acc" store
		1 3 for
			dup "acc" load add "acc" store
		end
		"acc" load print`)
	if out != "6\n" {
		t.Fatalf("got %q", out)
	}
}

func TestTimesLoop(t *testing.T) {
	out, _ := runVM(t, `0 "n" store
		5 times
			"n" load 1 add "n" store
		end
		"n" load print`)
	if out != "5\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRecursiveFactorial(t *testing.T) {
	out, _ := runVM(t, `
		def fact
			dup 1 gt
			if
				dup 1 sub fact mul
			else
				drop 1
			end
		end
		5 fact print`)
	if out != "120\n" {
		t.Fatalf("got %q", out)
	}
}

func TestListAppendAndLen(t *testing.T) {
	out, _ := runVM(t, `1 2 3 3 list "xs" store
		"xs" load 4 list_append
		"xs" load list_len print`)
	if out != "4\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDictGetMissingIsNone(t *testing.T) {
	out, _ := runVM(t, `"k" "v" 1 dict "d" store
		"d" load "k" dict_get print
		"d" load "missing" dict_get print`)
	if out != "v\nnone\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStoreLoadAliasingThroughList(t *testing.T) {
	out, _ := runVM(t, `1 2 2 list "a" store
		"a" load "b" store
		"a" load 3 list_append
		"b" load list_len print`)
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStackUnderflowReportsStackError(t *testing.T) {
	machine := New(WithOutput(&bytes.Buffer{}))
	err := machine.Run(`add`)
	if err == nil {
		t.Fatal("expected error")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != ErrStack {
		t.Fatalf("expected StackError, got %v", err)
	}
	if ExitCode(err) != 2 {
		t.Fatalf("expected exit code 2, got %d", ExitCode(err))
	}
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	machine := New(WithOutput(&bytes.Buffer{}))
	err := machine.Run(`1 0 div`)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != ErrArithmetic {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestUnboundNameIsNameError(t *testing.T) {
	machine := New(WithOutput(&bytes.Buffer{}))
	err := machine.Run(`"nope" load`)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != ErrName {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestStrUpperIdempotent(t *testing.T) {
	out1, _ := runVM(t, `"hello" str_upper print`)
	out2, _ := runVM(t, `"hello" str_upper str_upper print`)
	if out1 != out2 {
		t.Fatalf("expected idempotence, got %q vs %q", out1, out2)
	}
	if out1 != "HELLO\n" {
		t.Fatalf("got %q", out1)
	}
}

func TestInputReadsOneLine(t *testing.T) {
	var buf bytes.Buffer
	machine := New(WithOutput(&buf), WithInput(strings.NewReader("hi there\n")))
	if err := machine.Run(`input print`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if buf.String() != "hi there\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReplStatePersistsAcrossRuns(t *testing.T) {
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(`1 "x" store`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if err := machine.Run(`"x" load print`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if buf.String() != "1\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReplControlFlowAfterEarlierProcedureDef(t *testing.T) {
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(`def double dup add end`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if err := machine.Run(`1 2 gt if "G" else "S" end print`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if buf.String() != "S\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReplProcedureCallableFromLaterRun(t *testing.T) {
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(`def double dup add end`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if err := machine.Run(`21 double print`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if buf.String() != "42\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestExitWordStopsEvaluation(t *testing.T) {
	var buf bytes.Buffer
	machine := New(WithOutput(&buf))
	if err := machine.Run(`1 print exit 2 print`); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !machine.Halted() {
		t.Fatal("expected the VM to report halted")
	}
	if buf.String() != "1\n" {
		t.Fatalf("expected evaluation to stop at exit, got %q", buf.String())
	}
}

func TestMemoryPrimitivesAreStubbed(t *testing.T) {
	machine := New(WithOutput(&bytes.Buffer{}))
	err := machine.Run(`alloc`)
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != ErrName {
		t.Fatalf("expected NameError stub, got %v", err)
	}
}
