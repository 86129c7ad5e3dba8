package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "forge [file]",
	Short: "Forge: a stack-based RPN language evaluator",
	Long: `forge runs programs written in Forge, a small dynamically typed,
stack-based language evaluated in Reverse Polish Notation.

With no file argument, forge starts an interactive REPL. With one, it
evaluates that file once and exits, mapping any uncaught error to a
non-zero exit code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRootCmd,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.Version = Version

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func runRootCmd(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		runFile(args[0])
		return nil
	}
	return runRepl(os.Stdin, os.Stdout)
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
