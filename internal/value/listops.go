package value

import (
	"strings"

	"github.com/bprog-lang/bprog/internal/rterr"
)

// Head returns the first element of a List, or the first code point of
// a String as a single-character String.
func Head(v Value) (Value, error) {
	switch x := v.(type) {
	case List:
		if len(x.V) == 0 {
			return nil, rterr.New(rterr.EmptySequence, "head of an empty list")
		}
		return x.V[0], nil
	case String:
		r := []rune(x.V)
		if len(r) == 0 {
			return nil, rterr.New(rterr.EmptySequence, "head of an empty string")
		}
		return String{V: string(r[0])}, nil
	}
	return nil, rterr.WithOperands(rterr.TypeMismatch,
		"head requires a List or String operand", v.Display(nil))
}

// Tail returns all but the first element of a List, or all but the
// first code point of a String.
func Tail(v Value) (Value, error) {
	switch x := v.(type) {
	case List:
		if len(x.V) == 0 {
			return nil, rterr.New(rterr.EmptySequence, "tail of an empty list")
		}
		rest := make([]Value, len(x.V)-1)
		copy(rest, x.V[1:])
		return List{V: rest}, nil
	case String:
		r := []rune(x.V)
		if len(r) == 0 {
			return nil, rterr.New(rterr.EmptySequence, "tail of an empty string")
		}
		return String{V: string(r[1:])}, nil
	}
	return nil, rterr.WithOperands(rterr.TypeMismatch,
		"tail requires a List or String operand", v.Display(nil))
}

// Empty reports whether a List or String has no elements/code points.
func Empty(v Value) (Value, error) {
	switch x := v.(type) {
	case List:
		return Bool{V: len(x.V) == 0}, nil
	case String:
		return Bool{V: len(x.V) == 0}, nil
	}
	return nil, rterr.WithOperands(rterr.TypeMismatch,
		"empty requires a List or String operand", v.Display(nil))
}

// Length returns the element count of a List, or the Unicode code-point
// count of a String.
func Length(v Value) (Value, error) {
	switch x := v.(type) {
	case List:
		return Int{V: int64(len(x.V))}, nil
	case String:
		return Int{V: int64(len([]rune(x.V)))}, nil
	}
	return nil, rterr.WithOperands(rterr.TypeMismatch,
		"length requires a List or String operand", v.Display(nil))
}

// Cons prepends v to the front of a List.
func Cons(list Value, v Value) (Value, error) {
	l, ok := list.(List)
	if !ok {
		return nil, rterr.WithOperands(rterr.TypeMismatch,
			"cons requires a List operand", list.Display(nil))
	}
	out := make([]Value, 0, len(l.V)+1)
	out = append(out, v)
	out = append(out, l.V...)
	return List{V: out}, nil
}

// Append concatenates two Lists.
func Append(a, b Value) (Value, error) {
	x, ok1 := a.(List)
	y, ok2 := b.(List)
	if !ok1 || !ok2 {
		return nil, typeMismatch("append", "two List", a, b)
	}
	out := make([]Value, 0, len(x.V)+len(y.V))
	out = append(out, x.V...)
	out = append(out, y.V...)
	return List{V: out}, nil
}

// Words splits a String on whitespace into a List of single-word
// Strings.
func Words(v Value) (Value, error) {
	s, ok := v.(String)
	if !ok {
		return nil, rterr.WithOperands(rterr.TypeMismatch,
			"words requires a String operand", v.Display(nil))
	}
	fields := strings.Fields(s.V)
	out := make([]Value, len(fields))
	for i, f := range fields {
		out[i] = String{V: f}
	}
	return List{V: out}, nil
}

// ParseInt replaces a String with its parsed Int value.
func ParseInt(v Value) (Value, error) {
	s, ok := v.(String)
	if !ok {
		return nil, rterr.WithOperands(rterr.TypeMismatch,
			"parseInteger requires a String operand", v.Display(nil))
	}
	parsed := ParseLiteral(strings.TrimSpace(s.V))
	if n, ok := parsed.(Int); ok {
		return n, nil
	}
	return nil, rterr.WithOperands(rterr.ParseFailure,
		"cannot parse as Int", s.Display(nil))
}

// ParseFloat replaces a String with its parsed Float value.
func ParseFloat(v Value) (Value, error) {
	s, ok := v.(String)
	if !ok {
		return nil, rterr.WithOperands(rterr.TypeMismatch,
			"parseFloat requires a String operand", v.Display(nil))
	}
	trimmed := strings.TrimSpace(s.V)
	parsed := ParseLiteral(trimmed)
	switch n := parsed.(type) {
	case Float:
		return n, nil
	case Int:
		return Float{V: float64(n.V)}, nil
	}
	return nil, rterr.WithOperands(rterr.ParseFailure,
		"cannot parse as Float", s.Display(nil))
}
