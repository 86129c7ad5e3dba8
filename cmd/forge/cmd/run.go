package cmd

import (
	"fmt"
	"os"

	"github.com/forgelang/forge/internal/vm"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Forge file or expression",
	Long: `Execute a Forge program from a file or inline expression.

Examples:
  # Run a script file
  forge run program.fg

  # Evaluate an inline expression
  forge run -e "1 2 add print"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRunCmd,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runRunCmd(_ *cobra.Command, args []string) error {
	if evalExpr != "" {
		runSource(evalExpr, "<eval>")
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
	runFile(args[0])
	return nil
}

// runFile reads and evaluates path once, exiting the process with a code
// derived from the error's RuntimeError kind on failure.
func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError("failed to read file %s: %v", path, err)
	}
	runSource(string(content), path)
}

func runSource(src, filename string) {
	machine := vm.New(vm.WithOutput(os.Stdout), vm.WithInput(os.Stdin))
	if err := machine.Run(src); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(vm.ExitCode(err))
	}
}
