package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bprog",
	Short: "A whitespace-delimited, stack-based language interpreter",
	Long: `bprog runs programs written in a small concatenative, stack-based
language: whitespace-delimited tokens are evaluated left to right
against one shared stack, with arithmetic, comparison, stack-shuffle,
list, I/O and control-flow words plus ":=" / "fun" bindings.

Run a file:   bprog run script.bprog
Start a REPL: bprog
Inspect the tokenizer or the final environment with "bprog tokens" and
"bprog env".`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.OutOrStdout())
	},
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

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
