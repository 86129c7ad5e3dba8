package vm

import (
	"fmt"
	"strings"

	"github.com/forgelang/forge/internal/value"
)

// registerIOBuiltins wires print/input through the VM's injected
// io.Writer/*bufio.Reader rather than hard-coded os.Stdout/os.Stdin,
// which is what makes the VM testable without touching real stdio.
func (vm *VM) registerIOBuiltins() {
	vm.builtins["print"] = (*VM).wordPrint
	vm.builtins["input"] = (*VM).wordInput
}

// wordPrint pops and writes the formatted value followed by a newline.
func (vm *VM) wordPrint() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(vm.Out, v.String()); err != nil {
		return vm.ioError("print: %s", err)
	}
	return nil
}

// wordInput reads one line from the configured reader (newline stripped)
// and pushes it as Str.
func (vm *VM) wordInput() error {
	line, err := vm.In.ReadString('\n')
	if err != nil && line == "" {
		return vm.ioError("input: %s", err)
	}
	vm.push(value.Str(strings.TrimRight(line, "\r\n")))
	return nil
}
