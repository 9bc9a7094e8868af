package cmd

import (
	"fmt"
	"os"

	"github.com/bprog-lang/bprog/internal/token"
	"github.com/spf13/cobra"
)

var showCount bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens a source file splits into",
	Long: `Tokenize a program and print the resulting tokens, one per line.

This is a debugging aid: the tokenizer is a single "split on any
whitespace run" pass, so this command mostly exists to show exactly
where token boundaries fall.

Examples:
  bprog tokens script.bprog
  bprog tokens --count script.bprog`,
	Args: cobra.ExactArgs(1),
	RunE: tokensScript,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&showCount, "count", false, "print the total token count instead of the tokens")
}

func tokensScript(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	toks := token.Tokenize(string(content))
	out := cmd.OutOrStdout()
	if showCount {
		fmt.Fprintln(out, len(toks))
		return nil
	}
	for _, tok := range toks {
		fmt.Fprintln(out, tok)
	}
	return nil
}
