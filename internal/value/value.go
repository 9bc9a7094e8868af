// Package value implements the runtime value model: a tagged union of
// the seven kinds a bprog program can push onto the stack, bind to a
// name, or carry inside a list or block.
package value

// Value is any runtime value. Concrete cases are Int, Float, Bool,
// String, List, Block and Symbol. It deliberately avoids interface{}:
// every operator knows exactly which concrete cases it accepts and
// type-switches on Value rather than reflecting on an empty interface.
type Value interface {
	// Kind names the case, used in type-mismatch error messages.
	Kind() string
	// Display renders the value in the format spec'd for user-facing
	// output. vars is consulted to resolve bare Symbol elements inside
	// lists (see List.Display).
	Display(vars Lookup) string
	// Clone returns a deep copy. Every read out of an Env calls Clone
	// so that mutating a pushed value never writes back into the Env.
	Clone() Value
}

// Lookup is the read side of an environment, used only for resolving
// Symbol elements of a List at display time. Defined here (rather than
// importing internal/env) to avoid a dependency cycle: env.Variables
// satisfies it.
type Lookup interface {
	Get(name string) (Value, bool)
}

// Int is a 64-bit signed integer.
type Int struct{ V int64 }

func (Int) Kind() string   { return "Int" }
func (i Int) Clone() Value { return i }

// Float is an IEEE-754 64-bit float.
type Float struct{ V float64 }

func (Float) Kind() string   { return "Float" }
func (f Float) Clone() Value { return f }

// Bool is a two-valued boolean.
type Bool struct{ V bool }

func (Bool) Kind() string   { return "Boolean" }
func (b Bool) Clone() Value { return b }

// String is a sequence of Unicode scalar values.
type String struct{ V string }

func (String) Kind() string   { return "String" }
func (s String) Clone() Value { return s }

// List is an ordered, heterogeneous sequence of already-parsed Values.
type List struct{ V []Value }

func (List) Kind() string { return "List" }

func (l List) Clone() Value {
	out := make([]Value, len(l.V))
	for i, v := range l.V {
		out[i] = v.Clone()
	}
	return List{V: out}
}

// Block is a deferred, unevaluated sequence of raw tokens. Unlike List,
// a Block's content is never pre-parsed: control-flow operators and
// exec re-walk its tokens every time it runs (spec §9 "Deferred
// evaluation").
type Block struct{ Tokens []string }

func (Block) Kind() string { return "Block" }

func (b Block) Clone() Value {
	out := make([]string, len(b.Tokens))
	copy(out, b.Tokens)
	return Block{Tokens: out}
}

// Symbol is an identifier: a token that parsed as none of the literal
// kinds. Used as a variable/function lookup key and as the name operand
// of := and fun.
type Symbol struct{ V string }

func (Symbol) Kind() string   { return "Symbol" }
func (s Symbol) Clone() Value { return s }
