// Command forge is the Forge language REPL and script runner.
package main

import (
	"fmt"
	"os"

	"github.com/forgelang/forge/cmd/forge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
