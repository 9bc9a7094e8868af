// Package stack implements the LIFO operand store shared by every
// recursive evaluation within one top-level bprog evaluation (spec §3,
// §5). Grounded on original_source/bprog/src/stack.rs, generalized with
// Dup/Swap/Display.
package stack

import (
	"strings"

	"github.com/bprog-lang/bprog/internal/rterr"
	"github.com/bprog-lang/bprog/internal/value"
)

// Stack is an ordered sequence of Values with LIFO discipline. The zero
// value is an empty, ready-to-use stack.
type Stack struct {
	items []value.Value
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// Push adds v to the top of the stack. The stack takes ownership of v;
// callers must Clone values read from an Env before pushing them.
func (s *Stack) Push(v value.Value) { s.items = append(s.items, v) }

// Pop removes and returns the top value. Underflow is a runtime error.
func (s *Stack) Pop() (value.Value, error) {
	if len(s.items) == 0 {
		return nil, rterr.New(rterr.Underflow, "pop from an empty stack")
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (value.Value, error) {
	if len(s.items) == 0 {
		return nil, rterr.New(rterr.Underflow, "peek at an empty stack")
	}
	return s.items[len(s.items)-1], nil
}

// Dup duplicates the top value.
func (s *Stack) Dup() error {
	top, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(top)
	return nil
}

// Swap exchanges the top two values. Underflow if fewer than two items.
func (s *Stack) Swap() error {
	if len(s.items) < 2 {
		return rterr.New(rterr.Underflow, "swap requires at least two values, has %d", len(s.items))
	}
	n := len(s.items)
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
	return nil
}

// Len returns the number of values currently on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Values returns the stack's contents bottom-first. The returned slice
// is a copy; callers may not mutate the stack through it.
func (s *Stack) Values() []value.Value {
	out := make([]value.Value, len(s.items))
	copy(out, s.items)
	return out
}

// Display renders the stack as `[v1 v2 … vN]`, leftmost is the bottom
// (spec §6).
func (s *Stack) Display(vars value.Lookup) string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = v.Display(vars)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
