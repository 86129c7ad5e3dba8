package cmd

import (
	"fmt"
	"os"

	"github.com/forgelang/forge/internal/lexer"
	"github.com/forgelang/forge/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Forge file or expression",
	Long: `Tokenize (lex) a Forge program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Forge source code is tokenized.

Examples:
  # Tokenize a script file
  forge lex program.fg

  # Tokenize an inline expression
  forge lex -e "1 2 add print"

  # Show token types and positions
  forge lex --show-type --show-pos program.fg

  # Show only lex errors
  forge lex --only-errors program.fg`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only lex errors")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	toks, err := lexer.Tokenize(input)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if !onlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-6s]", tok.Kind.String())
	}

	if tok.Kind == token.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %s", tok.String())
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos.String())
	}

	fmt.Println(output)
}
