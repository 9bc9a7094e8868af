package ops

import (
	"github.com/bprog-lang/bprog/internal/stack"
	"github.com/bprog-lang/bprog/internal/value"
)

func unary(s *stack.Stack, fn func(value.Value) (value.Value, error)) error {
	a, err := s.Pop()
	if err != nil {
		return err
	}
	result, err := fn(a)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// Head replaces the top List/String with its first element/code point.
func Head(s *stack.Stack) error { return unary(s, value.Head) }

// Tail replaces the top List/String with all but its first element.
func Tail(s *stack.Stack) error { return unary(s, value.Tail) }

// Empty replaces the top List/String with a Boolean.
func Empty(s *stack.Stack) error { return unary(s, value.Empty) }

// Length replaces the top List/String with its element/code-point count.
func Length(s *stack.Stack) error { return unary(s, value.Length) }

// Words replaces the top String with a List of its whitespace-split words.
func Words(s *stack.Stack) error { return unary(s, value.Words) }

// ParseInteger replaces the top String with its parsed Int value.
func ParseInteger(s *stack.Stack) error { return unary(s, value.ParseInt) }

// ParseFloatOp replaces the top String with its parsed Float value.
func ParseFloatOp(s *stack.Stack) error { return unary(s, value.ParseFloat) }

// Cons pops a value then a list, pushes the value consed to the list's
// front. Spec's operand order for cons is: the list is pushed first,
// then the value to prepend, e.g. `[ 2 3 ] 1 cons` -> `[ 1 2 3 ]`.
func Cons(s *stack.Stack) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}
	list, err := s.Pop()
	if err != nil {
		return err
	}
	result, err := value.Cons(list, v)
	if err != nil {
		return err
	}
	s.Push(result)
	return nil
}

// Append pops b then a (both Lists) and pushes their concatenation.
func Append(s *stack.Stack) error { return binaryArith(s, value.Append) }
