package ops

import (
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/value"
)

// Lt implements <: pops b then a, pushes Boolean(a < b).
func Lt(s *stack.Stack) error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	less, err := value.Less(a, b)
	if err != nil {
		return err
	}
	s.Push(value.Bool{V: less})
	return nil
}

// Gt implements >: pops b then a, pushes Boolean(a > b). Implemented as
// b < a to reuse the same ordering rule and error shape.
func Gt(s *stack.Stack) error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	greater, err := value.Less(b, a)
	if err != nil {
		return err
	}
	s.Push(value.Bool{V: greater})
	return nil
}

// Eq implements ==: pops b then a, pushes Boolean(a == b). Mixed-type
// compares are always false, never an error (spec §3).
func Eq(s *stack.Stack) error {
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}
	s.Push(value.Bool{V: value.Equal(a, b)})
	return nil
}
