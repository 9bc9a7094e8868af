// Package ops adapts the bprog dispatch tokens to the primitives in
// internal/value and internal/stack. These are the non-lookahead
// operators: they pop their operands, compute, and push a result, with
// no need to consult the shared token iterator (control-flow operators,
// which run popped Blocks through the evaluator, live in internal/eval
// instead). Grounded on
// original_source/bprog/src/types.rs's `exec` match arms, each of which
// is a thin one-line call into an `operations::*` module, and on the
// teacher's internal/builtins package split (one file per concern).
package ops

import (
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/value"
)

// binaryArith pops b then a (a was pushed first, b second) and pushes
// fn(a, b) — spec §9: "both pop b then a and compute a op b".
func binaryArith(s *stack.Stack, fn func(a, b value.Value) (value.Value, error)) error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	result, err := fn(a, b)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// Add implements +.
func Add(s *stack.Stack) error { return binaryArith(s, value.Add) }

// Sub implements -.
func Sub(s *stack.Stack) error { return binaryArith(s, value.Sub) }

// Mul implements *.
func Mul(s *stack.Stack) error { return binaryArith(s, value.Mul) }

// Div implements /.
func Div(s *stack.Stack) error { return binaryArith(s, value.Div) }

// IntDiv implements div.
func IntDiv(s *stack.Stack) error { return binaryArith(s, value.IntDiv) }
