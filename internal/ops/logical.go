package ops

import (
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/value"
)

// And implements &&.
func And(s *stack.Stack) error { return binaryArith(s, value.And) }

// Or implements ||.
func Or(s *stack.Stack) error { return binaryArith(s, value.Or) }

// Not implements not: pops a, pushes !a.
func Not(s *stack.Stack) error {
	a, err := s.Pop()
	if err != nil {
		return err
	}
	result, err := value.Not(a)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}
