// Command bprog runs the concatenative stack-language interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/bprog-lang/bprog/cmd/bprog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
