package cmd

import (
	"fmt"
	"os"

	"github.com/bprog-lang/bprog/internal/eval"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program file",
	Long: `Read a source file, evaluate it as one Block, and print the final
stack's single remaining value.

Examples:
  bprog run script.bprog`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	out := cmd.OutOrStdout()
	e := eval.New(out, nil)
	if err := e.Exec(string(content)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	values := e.Stack.Values()
	if len(values) != 1 {
		return fmt.Errorf("%s: program left %d value(s) on the stack, expected exactly one", filename, len(values))
	}
	fmt.Fprintln(out, values[0].Display(e.Variables))
	return nil
}
