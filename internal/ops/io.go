package ops

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bprog-lang/bprog/internal/rterr"
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/value"
)

// IO bundles the input/output handles the print/println/read operators
// need. Grounded on the teacher's interp.New(output io.Writer)
// threading pattern, extended with an input side since this language
// (unlike DWScript's interpreter core) has a blocking `read` word
// (spec §5: "The only suspension point is the read operator").
type IO struct {
	Out io.Writer
	In  *bufio.Reader
}

// Print pops a value and writes its Display form without a trailing
// newline.
func Print(s *stack.Stack, io_ IO, vars value.Lookup) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	fmt.Fprint(io_.Out, v.Display(vars))
	return nil
}

// Println pops a value and writes its Display form followed by a
// newline.
func Println(s *stack.Stack, io_ IO, vars value.Lookup) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(io_.Out, v.Display(vars))
	return nil
}

// Read blocks on io_.In for one line and pushes it as a String, with
// the trailing newline stripped.
func Read(s *stack.Stack, io_ IO) error {
	if io_.In == nil {
		return rterr.New(rterr.MalformedControl, "read requires an input source")
	}
	line, err := io_.In.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return rterr.New(rterr.MalformedControl, "read past end of input")
		}
		return rterr.New(rterr.MalformedControl, "read failed: %v", err)
	}
	s.Push(value.String{V: strings.TrimRight(line, "\r\n")})
	return nil
}
