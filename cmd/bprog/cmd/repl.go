package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bprog-lang/bprog/internal/eval"
)

// runREPL implements the interactive driver: read a line, evaluate it
// against one persistent Evaluator, print the stack on success or the
// error on failure, loop until EOF. Per spec.md §4.7: the REPL catches
// the error and continues rather than terminating.
func runREPL(out io.Writer) error {
	return runREPLWithInput(out, os.Stdin)
}

// runREPLWithInput is the testable core of runREPL: REPL line-reading
// and the `read` operator's blocking line-read share one *bufio.Reader
// over in, since two independent readers over the same stream would
// race for input.
func runREPLWithInput(out io.Writer, in io.Reader) error {
	buffered := bufio.NewReader(in)
	e := eval.New(out, buffered)
	for {
		line, err := buffered.ReadString('\n')
		if line != "" {
			if execErr := e.Exec(line); execErr != nil {
				fmt.Fprintf(out, "Error: %s\n", execErr)
			} else {
				fmt.Fprintf(out, "Stack: %s\n", e.Stack.Display(e.Variables))
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
