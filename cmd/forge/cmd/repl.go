package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/forgelang/forge/internal/vm"
)

// runRepl reads one line at a time, evaluating it against a persistent VM
// so that stores, procedure defs, and the operand stack all survive across
// lines. An error leaves the stack intact and returns to the
// prompt; the REPL itself only exits on the `exit` word or EOF.
//
// The prompt loop and the VM's `input` word share a single bufio.Reader
// over in, so a program that calls input from the REPL reads the next
// actual line of stdin rather than racing a second, independently buffered
// reader over the same stream.
func runRepl(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	machine := vm.New(vm.WithOutput(out), vm.WithInputReader(reader))

	fmt.Fprint(out, "forge> ")
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		if line != "" {
			before := machine.StackHeight()
			if runErr := machine.Run(line); runErr != nil {
				fmt.Fprintf(out, "error: %v\n", runErr)
			} else if top, ok := machine.Top(); ok && machine.StackHeight() > before {
				fmt.Fprintln(out, top.String())
			}
			if machine.Halted() {
				return nil
			}
		}

		if err != nil {
			return nil // EOF (or a read error): exit the REPL quietly
		}
		fmt.Fprint(out, "forge> ")
	}
}
