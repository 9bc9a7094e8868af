package ops

import "github.com/bprog-lang/bprog/internal/stack"

// Dup duplicates the top of the stack.
func Dup(s *stack.Stack) error { return s.Dup() }

// Swap exchanges the top two values.
func Swap(s *stack.Stack) error { return s.Swap() }

// Pop discards the top value.
func Pop(s *stack.Stack) error {
	_, err := s.Pop()
	return err
}
